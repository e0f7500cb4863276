package http

import (
	"context"

	"skkuri-backend/internal/service"
)

type ctxKey struct{}

var identityKey ctxKey

func withIdentity(ctx context.Context, id *service.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the caller verified by the auth middleware.
func IdentityFromContext(ctx context.Context) (*service.Identity, error) {
	id, ok := ctx.Value(identityKey).(*service.Identity)
	if !ok || id == nil {
		return nil, service.ErrUnauthorized
	}
	return id, nil
}
