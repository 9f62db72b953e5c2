package auth

import "context"

type ctxKey struct{}

// WithIdentity returns a copy of ctx carrying the verified claims.
func WithIdentity(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// IdentityFromContext returns the claims stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(Claims)
	return claims, ok
}
