// Package bearer carries the caller's opaque access token from the HTTP edge
// to outgoing backend requests.
package bearer

import (
	"context"
	"strings"
)

type ctxKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, token)
}

func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxKey{}).(string)
	return token, ok && token != ""
}

// FromHeader extracts the token of an "Authorization: Bearer <token>" header value.
func FromHeader(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
