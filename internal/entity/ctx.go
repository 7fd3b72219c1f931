package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyIdentity CtxKey = iota
	CtxKeyAuthErr
)

func CtxWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, identity)
}

// CtxWithAuthErr stores the reason a request carries no identity.
func CtxWithAuthErr(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, CtxKeyAuthErr, err)
}

// IdentityFromCtx returns the caller identity or the authentication error recorded for the request.
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	identity, ok := ctx.Value(CtxKeyIdentity).(Identity)
	if ok {
		return identity, nil
	}

	if err, ok := ctx.Value(CtxKeyAuthErr).(error); ok && err != nil {
		return Identity{}, err
	}

	return Identity{}, ErrMissingToken
}

// AdminFromCtx is IdentityFromCtx restricted to administrators.
func AdminFromCtx(ctx context.Context) (Identity, error) {
	identity, err := IdentityFromCtx(ctx)
	if err != nil {
		return Identity{}, err
	}

	if !identity.IsAdmin() {
		return Identity{}, ErrForbidden
	}

	return identity, nil
}
