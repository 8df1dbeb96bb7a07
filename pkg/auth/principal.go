package auth

import "context"

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	CustomerID uint
	Email      string
	Role       string
	// Permissions are the authorities the role grants. Token claims do not
	// carry them; the auth middleware fills them in.
	Permissions []string
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored by the auth middleware.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
