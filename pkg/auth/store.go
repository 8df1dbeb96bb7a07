package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// IssuedToken is what a TokenStore remembers about a token it handed out.
type IssuedToken struct {
	Token      string
	Type       TokenType
	CustomerID uint
	ExpiresAt  time.Time
}

// TokenStore tracks issued tokens so they can be revoked before expiry.
type TokenStore interface {
	Save(ctx context.Context, t IssuedToken) error
	IsActive(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, customerID uint) error
}

// RedisStore keeps tokens as keys that expire with the token itself, plus
// one set per customer used by RevokeAll.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "ordermanager:"}
}

func (s *RedisStore) tokenKey(token string) string { return s.prefix + "token:" + token }

func (s *RedisStore) customerKey(id uint) string {
	return s.prefix + "customer_tokens:" + strconv.FormatUint(uint64(id), 10)
}

func (s *RedisStore) Save(ctx context.Context, t IssuedToken) error {
	ttl := time.Until(t.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	key := s.customerKey(t.CustomerID)
	// Negative when the set is missing or has no expiry.
	cur, err := s.rdb.TTL(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("auth: redis ttl: %w", err)
	}
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.tokenKey(t.Token), t.CustomerID, ttl)
		p.SAdd(ctx, key, t.Token)
		// The set lives as long as its longest-lived token.
		if cur < ttl {
			p.Expire(ctx, key, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth: redis save: %w", err)
	}
	return nil
}

func (s *RedisStore) IsActive(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.tokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("auth: redis exists: %w", err)
	}
	return n == 1, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, s.tokenKey(token)).Err(); err != nil {
		return fmt.Errorf("auth: redis revoke: %w", err)
	}
	return nil
}

func (s *RedisStore) RevokeAll(ctx context.Context, customerID uint) error {
	key := s.customerKey(customerID)
	tokens, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("auth: redis members: %w", err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		keys = append(keys, s.tokenKey(t))
	}
	keys = append(keys, key)

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("auth: redis revoke all: %w", err)
	}
	return nil
}
