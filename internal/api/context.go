package api

import (
	"context"

	"github.com/quillhq/quill-api/internal/domain"
)

type contextKey string

// userContextKey carries the authenticated user set by the auth middleware.
const userContextKey contextKey = "currentUser"

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFrom retrieves the authenticated user from the context, if any.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
