package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
)

var ctx = context.Background()

func newRedisStore(t *testing.T) (*auth.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return auth.NewRedisStore(rdb), mr
}

func issued(token string, customerID uint, ttl time.Duration) auth.IssuedToken {
	return auth.IssuedToken{Token: token, Type: auth.AccessToken, CustomerID: customerID, ExpiresAt: time.Now().Add(ttl)}
}

func TestRedisStoreSaveAndRevoke(t *testing.T) {
	store, mr := newRedisStore(t)

	require.NoError(t, store.Save(ctx, issued("a", 7, time.Hour)))
	ok, err := store.IsActive(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), mr.TTL("ordermanager:token:a").Seconds(), 2)

	require.NoError(t, store.Revoke(ctx, "a"))
	ok, err = store.IsActive(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreSkipsExpiredTokens(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, store.Save(ctx, issued("old", 7, -time.Minute)))
	assert.False(t, mr.Exists("ordermanager:token:old"))
}

func TestRedisStoreCustomerSetKeepsLongestTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	key := "ordermanager:customer_tokens:7"

	require.NoError(t, store.Save(ctx, issued("long", 7, 24*time.Hour)))
	require.NoError(t, store.Save(ctx, issued("short", 7, time.Hour)))
	assert.InDelta(t, (24 * time.Hour).Seconds(), mr.TTL(key).Seconds(), 2)

	members, err := mr.Members(key)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"long", "short"}, members)

	require.NoError(t, store.Save(ctx, issued("longer", 7, 48*time.Hour)))
	assert.InDelta(t, (48 * time.Hour).Seconds(), mr.TTL(key).Seconds(), 2)
}

func TestRedisStoreRevokeAll(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, store.Save(ctx, issued("a", 7, time.Hour)))
	require.NoError(t, store.Save(ctx, issued("b", 7, time.Hour)))
	require.NoError(t, store.Save(ctx, issued("c", 8, time.Hour)))

	require.NoError(t, store.RevokeAll(ctx, 7))

	for token, want := range map[string]bool{"a": false, "b": false, "c": true} {
		ok, err := store.IsActive(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, want, ok, token)
	}
	assert.False(t, mr.Exists("ordermanager:customer_tokens:7"))
	assert.NoError(t, store.RevokeAll(ctx, 99))
}

func TestRedisStoreTokensExpire(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, store.Save(ctx, issued("a", 7, time.Minute)))
	mr.FastForward(2 * time.Minute)

	ok, err := store.IsActive(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthenticatorOnRedis(t *testing.T) {
	store, mr := newRedisStore(t)
	a := auth.NewAuthenticator(store)

	pair, err := a.Issue(ctx, auth.Principal{CustomerID: 3, Email: "ulla@example.com", Role: "USER"})
	require.NoError(t, err)
	_, err = a.Validate(ctx, pair.AccessToken, auth.AccessToken)
	require.NoError(t, err)

	require.NoError(t, a.RevokeAll(ctx, 3))
	_, err = a.Validate(ctx, pair.AccessToken, auth.AccessToken)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	mr.SetError("server down")
	_, err = a.Validate(ctx, pair.RefreshToken, auth.RefreshToken)
	assert.Equal(t, apperr.KindStore, apperr.From(err).Kind)
}
