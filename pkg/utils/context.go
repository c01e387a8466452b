package utils

import (
	"context"
)

type contextKey string

const (
	TokenKey      contextKey = "token"
	AuthMethodKey contextKey = "auth_method"
)

const (
	AuthMethodSession      = "session"
	AuthMethodSharedSecret = "shared_secret"
)

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func SetAuthMethodContext(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, AuthMethodKey, method)
}

func GetAuthMethodFromContext(ctx context.Context) (string, bool) {
	method, ok := ctx.Value(AuthMethodKey).(string)
	return method, ok
}
