package service

import "context"

type sessionKey string

const sessionUserKey sessionKey = "session_user_id"

// WithSessionUserID attaches the authenticated user's id to the
// context. Set by the auth middleware; read by services that record
// per-user usage.
func WithSessionUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionUserKey, id)
}

// SessionUserID returns the authenticated user id, if any.
func SessionUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionUserKey).(string)
	return id, ok && id != ""
}
