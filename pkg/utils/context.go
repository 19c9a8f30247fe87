package utils

import (
	"context"
)

type contextKey string

const TokenKey contextKey = "token"

// SetTokenContext stashes the bearer access token for relaying upstream.
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	if !ok || token == "" {
		return "", false
	}

	return token, true
}
