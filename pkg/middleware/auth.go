package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
	"github.com/shashiranjanraj/ordermanager/pkg/rbac"
	"github.com/shashiranjanraj/ordermanager/pkg/response"
)

// TokenValidator is satisfied by *auth.Authenticator.
type TokenValidator interface {
	Validate(ctx context.Context, token string, want auth.TokenType) (auth.Principal, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <t>" header.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// Authenticate rejects requests without a valid access token and stores the
// caller's principal, with its role's permissions, in the request context.
func Authenticate(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := v.Validate(r.Context(), BearerToken(r), auth.AccessToken)
			if err != nil {
				if apperr.StatusOf(err) == http.StatusUnauthorized {
					w.Header().Set("WWW-Authenticate", `Bearer realm="ordermanager"`)
				}
				response.Fail(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), rbac.Grant(p))))
		})
	}
}
