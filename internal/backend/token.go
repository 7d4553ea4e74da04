package backend

import (
	"context"
	"errors"
)

// ErrNoToken is returned when no bearer credential is available for an
// outgoing backend request.
var ErrNoToken = errors.New("no bearer token available")

// TokenProvider supplies the opaque bearer credential attached to every
// backend request. The credential is an explicit dependency of the client
// rather than ambient global state; the aggregation core never sees it.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider returns a fixed credential. Used for service-level
// deployments and tests.
type StaticTokenProvider string

func (p StaticTokenProvider) Token(context.Context) (string, error) {
	if p == "" {
		return "", ErrNoToken
	}
	return string(p), nil
}

type contextTokenKey struct{}

// WithToken stores a bearer credential in the context for later retrieval
// by ContextTokenProvider.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextTokenKey{}, token)
}

// ContextTokenProvider forwards the bearer credential of the request being
// served. The HTTP middleware places the incoming Authorization bearer in
// the context, and every backend call made on behalf of that request reuses
// it.
type ContextTokenProvider struct{}

func (ContextTokenProvider) Token(ctx context.Context) (string, error) {
	token, ok := ctx.Value(contextTokenKey{}).(string)
	if !ok || token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
