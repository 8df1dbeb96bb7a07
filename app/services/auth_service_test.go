package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
)

func newAuth(t *testing.T) (*services.AuthService, *auth.Authenticator) {
	t.Helper()
	db := setup(t)
	tokens := auth.NewAuthenticator(repositories.NewTokenRepository(db))
	return services.NewAuthService(db, tokens), tokens
}

func register(t *testing.T, svc *services.AuthService, email string) auth.Pair {
	t.Helper()
	pair, err := svc.Register(ctx, dto.Register{
		Email: email, Password: "correct-horse", FirstName: "Reg", LastName: "Ister", BornAt: day(t, "1995-07-07"),
	})
	require.NoError(t, err)
	return pair
}

func TestRegisterIssuesUsableTokens(t *testing.T) {
	svc, tokens := newAuth(t)
	pair := register(t, svc, "new@example.com")
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	p, err := tokens.Validate(ctx, pair.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", p.Email)
	assert.Equal(t, "USER", p.Role)

	_, err = tokens.Validate(ctx, pair.RefreshToken, auth.AccessToken)
	assertKind(t, err, apperr.KindUnauthorized)

	_, err = svc.Register(ctx, dto.Register{
		Email: "new@example.com", Password: "another-pass", FirstName: "X", LastName: "Y", BornAt: day(t, "1990-01-01"),
	})
	assertKind(t, err, apperr.KindConflict)
}

func TestAuthenticateRevokesEarlierTokens(t *testing.T) {
	svc, tokens := newAuth(t)
	first := register(t, svc, "login@example.com")

	second, err := svc.Authenticate(ctx, dto.Authenticate{Email: "login@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = tokens.Validate(ctx, first.AccessToken, auth.AccessToken)
	assertKind(t, err, apperr.KindUnauthorized)

	_, err = tokens.Validate(ctx, second.AccessToken, auth.AccessToken)
	assert.NoError(t, err)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuth(t)
	register(t, svc, "who@example.com")

	_, err := svc.Authenticate(ctx, dto.Authenticate{Email: "who@example.com", Password: "wrong"})
	assertKind(t, err, apperr.KindUnauthorized)

	_, err = svc.Authenticate(ctx, dto.Authenticate{Email: "nobody@example.com", Password: "correct-horse"})
	assertKind(t, err, apperr.KindUnauthorized)
}

func TestRefreshAndLogout(t *testing.T) {
	svc, tokens := newAuth(t)
	pair := register(t, svc, "r@example.com")

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshToken, refreshed.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, refreshed.AccessToken)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	assertKind(t, err, apperr.KindUnauthorized)

	require.NoError(t, svc.Logout(ctx, refreshed.AccessToken))
	_, err = tokens.Validate(ctx, refreshed.AccessToken, auth.AccessToken)
	assertKind(t, err, apperr.KindUnauthorized)

	assertKind(t, svc.Logout(ctx, refreshed.AccessToken), apperr.KindUnauthorized)
}

func TestManagementAccounts(t *testing.T) {
	svc, tokens := newAuth(t)
	pair := register(t, svc, "user@example.com")

	created, err := svc.CreateAccount(ctx, dto.ManagedCustomer{
		Register: dto.Register{Email: "boss@example.com", Password: "boss-password", FirstName: "B", LastName: "Oss", BornAt: day(t, "1970-01-01")},
		Role:     "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "MANAGER", created.Role)

	me, err := tokens.Validate(ctx, pair.AccessToken, auth.AccessToken)
	require.NoError(t, err)

	promoted, err := svc.ChangeRole(ctx, me.CustomerID, dto.RoleChange{Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", promoted.Role)

	_, err = tokens.Validate(ctx, pair.AccessToken, auth.AccessToken)
	assertKind(t, err, apperr.KindUnauthorized)

	_, err = svc.ChangeRole(ctx, me.CustomerID, dto.RoleChange{Role: "ROOT"})
	assertKind(t, err, apperr.KindValidation)

	assertKind(t, svc.RevokeTokens(ctx, 999), apperr.KindNotFound)

	accounts, p, err := svc.Accounts(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.EqualValues(t, 2, p.Total)
}
