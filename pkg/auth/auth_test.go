package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
)

type memStore struct {
	mu     sync.Mutex
	tokens map[string]auth.IssuedToken
}

func newMemStore() *memStore { return &memStore{tokens: map[string]auth.IssuedToken{}} }

func (m *memStore) Save(_ context.Context, t auth.IssuedToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[t.Token] = t
	return nil
}

func (m *memStore) IsActive(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tokens[token]
	return ok, nil
}

func (m *memStore) Revoke(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

func (m *memStore) RevokeAll(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, t := range m.tokens {
		if t.CustomerID == id {
			delete(m.tokens, k)
		}
	}
	return nil
}

var alice = auth.Principal{CustomerID: 7, Email: "alice@example.com", Role: "ADMIN"}

func TestGenerateAndValidateToken(t *testing.T) {
	token, expires, err := auth.GenerateToken(alice, auth.AccessToken, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.CustomerID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, auth.AccessToken, claims.Type)
}

func TestTokensAreUnique(t *testing.T) {
	a, _, err := auth.GenerateToken(alice, auth.AccessToken, time.Hour)
	require.NoError(t, err)
	b, _, err := auth.GenerateToken(alice, auth.AccessToken, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, _, err := auth.GenerateToken(alice, auth.AccessToken, -time.Minute)
	require.NoError(t, err)
	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
}

func TestAuthenticatorLifecycle(t *testing.T) {
	ctx := context.Background()
	a := auth.NewAuthenticator(newMemStore())

	pair, err := a.Issue(ctx, alice)
	require.NoError(t, err)

	p, err := a.Validate(ctx, pair.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, alice, p)

	_, err = a.Validate(ctx, pair.RefreshToken, auth.AccessToken)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized), "refresh token must not pass as access token")

	_, err = a.Validate(ctx, pair.RefreshToken, auth.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, a.Invalidate(ctx, pair.AccessToken))
	_, err = a.Validate(ctx, pair.AccessToken, auth.AccessToken)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestRevokeAll(t *testing.T) {
	ctx := context.Background()
	a := auth.NewAuthenticator(newMemStore())

	first, err := a.Issue(ctx, alice)
	require.NoError(t, err)
	require.NoError(t, a.RevokeAll(ctx, alice.CustomerID))

	_, err = a.Validate(ctx, first.AccessToken, auth.AccessToken)
	assert.Error(t, err)
	_, err = a.Validate(ctx, first.RefreshToken, auth.RefreshToken)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	a := auth.NewAuthenticator(newMemStore())
	_, err := a.Validate(context.Background(), "", auth.AccessToken)
	assert.Equal(t, 401, apperr.StatusOf(err))
	_, err = a.Validate(context.Background(), "not.a.jwt", auth.AccessToken)
	assert.Equal(t, 401, apperr.StatusOf(err))
}
