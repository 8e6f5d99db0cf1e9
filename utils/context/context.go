package context

import (
	"context"

	"github.com/pmyge/humo-tezkor-frontend/application/session"
	"github.com/pmyge/humo-tezkor-frontend/constant"
)

// WithSession embeds the authenticated device session into the context.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, constant.SessionKey, s)
}

// GetSession returns the device session attached by the auth middleware.
func GetSession(ctx context.Context) (*session.Session, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
