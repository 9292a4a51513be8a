package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gstrly/internal/config"
	"gstrly/internal/domain"
	"gstrly/internal/service"
)

type stubUserRepo struct {
	user *domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, u *domain.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if s.user == nil || s.user.ID != userID {
		return nil, domain.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, domain.ErrNotFound
	}
	return s.user, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-do-not-use",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "gstrly",
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		BusinessID:   uuid.New(),
		Email:        "owner@kaveri.in",
		PasswordHash: string(hash),
		FullName:     "Ramesh Kaveri",
		Role:         domain.RoleOwner,
		IsActive:     true,
	}
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	user := activeUser(t, "correct-horse-battery")
	svc := service.NewAuthService(&stubUserRepo{user: user}, testJWTConfig())

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@kaveri.in",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.BusinessID, claims.BusinessID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleOwner, claims.Role)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	user := activeUser(t, "correct-horse-battery")
	svc := service.NewAuthService(&stubUserRepo{user: user}, testJWTConfig())

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@kaveri.in",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc := service.NewAuthService(&stubUserRepo{}, testJWTConfig())

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@kaveri.in",
		Password: "correct-horse-battery",
	})

	// Unknown emails map to the same error as bad passwords so the login
	// endpoint does not leak which emails exist.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	user := activeUser(t, "correct-horse-battery")
	user.IsActive = false
	svc := service.NewAuthService(&stubUserRepo{user: user}, testJWTConfig())

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@kaveri.in",
		Password: "correct-horse-battery",
	})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_RefreshToken(t *testing.T) {
	user := activeUser(t, "correct-horse-battery")
	svc := service.NewAuthService(&stubUserRepo{user: user}, testJWTConfig())

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@kaveri.in",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// An access token is not accepted on the refresh path.
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateRejectsRefreshToken(t *testing.T) {
	user := activeUser(t, "correct-horse-battery")
	svc := service.NewAuthService(&stubUserRepo{user: user}, testJWTConfig())

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@kaveri.in",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_ValidateRejectsForgedToken(t *testing.T) {
	user := activeUser(t, "correct-horse-battery")
	svc := service.NewAuthService(&stubUserRepo{user: user}, testJWTConfig())

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@kaveri.in",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-different-secret"
	other := service.NewAuthService(&stubUserRepo{user: user}, otherCfg)

	_, err = other.ValidateToken(pair.AccessToken)
	assert.Error(t, err)
}
