package utils

import (
	"context"
)

type contextKey string

const (
	AdminKey contextKey = "is_admin"
	TokenKey contextKey = "token"
)

// SetAdminContext marks the request as coming from a logged-in admin session.
func SetAdminContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, AdminKey, true)
}

func IsAdminFromContext(ctx context.Context) bool {
	v, ok := ctx.Value(AdminKey).(bool)
	return ok && v
}

// SetTokenContext stores the session token for later revocation (logout).
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
