package transport

import (
	"encoding/json"
	"net/http"

	"github.com/pmyge/humo-tezkor-frontend/application/session"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/model"
	utilsContext "github.com/pmyge/humo-tezkor-frontend/utils/context"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
)

// OpenSession handler
// @Summary Open a webview session
// @Description Resolves the device identity from the host init payload and URL, issues a session token
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.OpenSessionRequest true "Open Session Request"
// @Success 200 {object} model.SessionResponse
// @Failure 500 {object} transport.apiResponse
// @Router /session [post]
func (s *RestHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OpenSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SessionApp.Open(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Log out
// @Description Clears the cached identity record for this device
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.apiResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	if err := s.SessionApp.Logout(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// session pulls the device session attached by the auth middleware.
func (s *RestHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return nil, false
	}
	return sess, true
}

// identified additionally requires a resolved identity for server-bound
// mutations.
func (s *RestHandler) identified(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := s.session(w, r)
	if !ok {
		return nil, false
	}
	if sess.TelegramUserID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrIdentityUnresolved))
		return nil, false
	}
	return sess, true
}
