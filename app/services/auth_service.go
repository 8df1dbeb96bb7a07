package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/mapper"
	"github.com/shashiranjanraj/ordermanager/app/models"
	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
	"github.com/shashiranjanraj/ordermanager/pkg/metrics"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
	"github.com/shashiranjanraj/ordermanager/pkg/rbac"
)

// AuthService covers registration, login, token refresh, logout and the
// management operations on accounts.
type AuthService struct {
	customers *CustomerService
	repo      *repositories.CustomerRepository
	tokens    *auth.Authenticator
}

func NewAuthService(db *gorm.DB, tokens *auth.Authenticator) *AuthService {
	return &AuthService{
		customers: NewCustomerService(db).WithRevoker(tokens),
		repo:      repositories.NewCustomerRepository(db),
		tokens:    tokens,
	}
}

func principal(c models.Customer) auth.Principal {
	return auth.Principal{CustomerID: c.ID, Email: c.Email, Role: string(c.Role)}
}

// Register creates a USER account and logs it in.
func (s *AuthService) Register(ctx context.Context, d dto.Register) (auth.Pair, error) {
	c := mapper.RegisterToCustomer(d, rbac.RoleUser)
	if err := s.customers.insert(ctx, &c); err != nil {
		return auth.Pair{}, err
	}
	return s.tokens.Issue(ctx, principal(c))
}

// Authenticate checks the credentials, revokes every token the customer
// still holds and issues a fresh pair.
func (s *AuthService) Authenticate(ctx context.Context, d dto.Authenticate) (auth.Pair, error) {
	c, err := s.repo.FindByEmail(ctx, d.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !auth.CheckPassword(c.Password, d.Password)) {
		metrics.AuthFailures.WithLabelValues("bad_credentials").Inc()
		return auth.Pair{}, apperr.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return auth.Pair{}, storeErr(err)
	}
	if err := s.tokens.RevokeAll(ctx, c.ID); err != nil {
		return auth.Pair{}, err
	}
	return s.tokens.Issue(ctx, principal(c))
}

// Refresh exchanges a valid refresh token for a new access token. The role
// is re-read so a changed role applies from the next access token on.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.Pair, error) {
	p, err := s.tokens.Validate(ctx, refreshToken, auth.RefreshToken)
	if err != nil {
		return auth.Pair{}, err
	}
	c, err := s.holder(ctx, p)
	if err != nil {
		return auth.Pair{}, err
	}
	access, err := s.tokens.IssueAccess(ctx, principal(c))
	if err != nil {
		return auth.Pair{}, err
	}
	return auth.Pair{AccessToken: access, RefreshToken: refreshToken}, nil
}

// Logout revokes the presented access token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.tokens.Validate(ctx, token, auth.AccessToken); err != nil {
		return err
	}
	return s.tokens.Invalidate(ctx, token)
}

// Me returns the customer behind an authenticated principal.
func (s *AuthService) Me(ctx context.Context, p auth.Principal) (dto.Customer, error) {
	c, err := s.holder(ctx, p)
	if err != nil {
		return dto.Customer{}, err
	}
	return mapper.CustomerToDTO(c), nil
}

// holder loads the customer a token was issued to. A token whose customer
// is gone, or whose id now belongs to another email, is rejected.
func (s *AuthService) holder(ctx context.Context, p auth.Principal) (models.Customer, error) {
	c, err := s.repo.Find(ctx, p.CustomerID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && c.Email != p.Email) {
		return models.Customer{}, apperr.Unauthorized("Invalid or expired token")
	}
	if err != nil {
		return models.Customer{}, storeErr(err)
	}
	return c, nil
}

// ── Management ───────────────────────────────────────────────────────────────

func (s *AuthService) Accounts(ctx context.Context, page, limit int) ([]dto.Customer, orm.Pagination, error) {
	return s.customers.Page(ctx, page, limit)
}

// CreateAccount creates a customer with an explicit role.
func (s *AuthService) CreateAccount(ctx context.Context, d dto.ManagedCustomer) (dto.Customer, error) {
	role, ok := rbac.ParseRole(d.Role)
	if !ok {
		return dto.Customer{}, apperr.Validation(map[string]string{"role": "The selected role is invalid."})
	}
	return s.customers.CreateWithRole(ctx, d.Register, role)
}

// ChangeRole sets a new role and revokes the customer's tokens, whose
// claims still carry the old one.
func (s *AuthService) ChangeRole(ctx context.Context, id uint, d dto.RoleChange) (dto.Customer, error) {
	role, ok := rbac.ParseRole(d.Role)
	if !ok {
		return dto.Customer{}, apperr.Validation(map[string]string{"role": "The selected role is invalid."})
	}
	c, err := s.repo.Find(ctx, id)
	if err != nil {
		return dto.Customer{}, lookupErr(err, "Customer", "id", id)
	}
	c.Role = role
	if err := s.repo.Save(ctx, &c); err != nil {
		return dto.Customer{}, storeErr(err)
	}
	if err := s.tokens.RevokeAll(ctx, c.ID); err != nil {
		return dto.Customer{}, err
	}
	return mapper.CustomerToDTO(c), nil
}

// RevokeTokens logs the customer out everywhere.
func (s *AuthService) RevokeTokens(ctx context.Context, id uint) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := mustExist(ok, err, "Customer", id); err != nil {
		return err
	}
	return s.tokens.RevokeAll(ctx, id)
}
