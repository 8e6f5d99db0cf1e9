package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pmyge/humo-tezkor-frontend/application/session"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	utilsContext "github.com/pmyge/humo-tezkor-frontend/utils/context"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
)

// AuthMiddleware validates the webview's session token and attaches the
// device session to the request context. Opening a session and the swagger
// UI stay public.
func AuthMiddleware(sessionApp session.SessionApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			sess, err := sessionApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no session token required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	return path == "/session"
}
