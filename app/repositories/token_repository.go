package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/models"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
)

// TokenRepository persists issued bearer tokens in the tokens table. It is
// the default auth.TokenStore.
type TokenRepository struct {
	base[models.Token]
}

var _ auth.TokenStore = (*TokenRepository)(nil)

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{base[models.Token]{db: db, order: "tokens.id"}}
}

func (r *TokenRepository) WithTx(tx *gorm.DB) *TokenRepository {
	return NewTokenRepository(tx)
}

func (r *TokenRepository) Save(ctx context.Context, t auth.IssuedToken) error {
	return r.Create(ctx, &models.Token{
		Token:      t.Token,
		TokenType:  string(t.Type),
		CustomerID: t.CustomerID,
		ExpiresAt:  t.ExpiresAt.UTC(),
	})
}

// IsActive reports whether token was issued, is neither revoked nor expired
// and has not passed its expiry time.
func (r *TokenRepository) IsActive(ctx context.Context, token string) (bool, error) {
	var n int64
	err := r.query(ctx).
		Where("token = ? AND revoked = ? AND expired = ? AND expires_at > ?", token, false, false, time.Now().UTC()).
		Count(&n).Error
	return n > 0, err
}

func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	return r.query(ctx).Where("token = ?", token).
		Updates(map[string]interface{}{"revoked": true, "expired": true}).Error
}

func (r *TokenRepository) RevokeAll(ctx context.Context, customerID uint) error {
	return r.query(ctx).Where("customer_id = ? AND revoked = ?", customerID, false).
		Updates(map[string]interface{}{"revoked": true, "expired": true}).Error
}

func (r *TokenRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&models.Token{}).Error
}
