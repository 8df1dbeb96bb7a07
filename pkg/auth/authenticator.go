package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/ordermanager/config"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/metrics"
)

// Pair is the response body of a successful login or registration.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Authenticator issues, validates and revokes bearer tokens. A token is
// valid only while its signature and expiry check out AND the store still
// lists it as active.
type Authenticator struct {
	store      TokenStore
	ttl        time.Duration
	refreshTTL time.Duration
}

func NewAuthenticator(store TokenStore) *Authenticator {
	return &Authenticator{
		store:      store,
		ttl:        config.JWTTTL(),
		refreshTTL: config.JWTRefreshTTL(),
	}
}

// Issue signs a new access/refresh pair for p and records both.
func (a *Authenticator) Issue(ctx context.Context, p Principal) (Pair, error) {
	access, err := a.issue(ctx, p, AccessToken, a.ttl)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := a.issue(ctx, p, RefreshToken, a.refreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess signs a single access token, used by the refresh flow.
func (a *Authenticator) IssueAccess(ctx context.Context, p Principal) (string, error) {
	return a.issue(ctx, p, AccessToken, a.ttl)
}

func (a *Authenticator) issue(ctx context.Context, p Principal, typ TokenType, ttl time.Duration) (string, error) {
	token, expires, err := GenerateToken(p, typ, ttl)
	if err != nil {
		return "", apperr.Store(err)
	}
	if err := a.store.Save(ctx, IssuedToken{
		Token:      token,
		Type:       typ,
		CustomerID: p.CustomerID,
		ExpiresAt:  expires,
	}); err != nil {
		return "", apperr.Store(fmt.Errorf("auth: save token: %w", err))
	}
	return token, nil
}

// Validate checks token and returns its principal. want restricts the token
// type so a refresh token cannot be used as an access token.
func (a *Authenticator) Validate(ctx context.Context, token string, want TokenType) (Principal, error) {
	if token == "" {
		return Principal{}, a.reject("missing", "Missing bearer token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		return Principal{}, a.reject("invalid", "Invalid or expired token")
	}
	if claims.Type != want {
		return Principal{}, a.reject("wrong_type", "Invalid or expired token")
	}

	active, err := a.store.IsActive(ctx, token)
	if err != nil {
		return Principal{}, apperr.Store(err)
	}
	if !active {
		return Principal{}, a.reject("revoked", "Token has been revoked")
	}

	return Principal{
		CustomerID: claims.CustomerID,
		Email:      claims.Subject,
		Role:       claims.Role,
	}, nil
}

// Invalidate revokes a single token (logout).
func (a *Authenticator) Invalidate(ctx context.Context, token string) error {
	if err := a.store.Revoke(ctx, token); err != nil {
		return apperr.Store(err)
	}
	return nil
}

// RevokeAll revokes every token issued to the customer.
func (a *Authenticator) RevokeAll(ctx context.Context, customerID uint) error {
	if err := a.store.RevokeAll(ctx, customerID); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (a *Authenticator) reject(reason, message string) error {
	metrics.AuthFailures.WithLabelValues(reason).Inc()
	return apperr.Unauthorized(message)
}
