package ctxkeys

import (
	"context"

	"github.com/campusmeet/sportsapp/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	SessionKey contextKey = "session"
)

func Session(ctx context.Context) *model.Session {
	session, _ := ctx.Value(SessionKey).(*model.Session)
	return session
}

func WithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}
