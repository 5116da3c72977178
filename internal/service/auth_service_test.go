package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/goods-service/internal/auth"
	"github.com/spec-kit/goods-service/internal/config"
	"github.com/spec-kit/goods-service/internal/domain"
	"github.com/spec-kit/goods-service/internal/repository"
)

const testAdminID = "00000000-0000-4000-8000-000000000001"

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			PasswordSalt:          "s1",
			AdminID:               testAdminID,
		},
	}
}

// countingUserRepo tracks inserts so seeding idempotence is observable.
type countingUserRepo struct {
	repository.SystemUserRepository
	creates int
}

func (r *countingUserRepo) Create(ctx context.Context, user *domain.SystemUser) error {
	r.creates++
	return r.SystemUserRepository.Create(ctx, user)
}

var errStorage = errors.New("storage unavailable")

type failingUserRepo struct{}

func (failingUserRepo) Create(context.Context, *domain.SystemUser) error {
	return errStorage
}

func (failingUserRepo) GetByID(context.Context, string) (*domain.SystemUser, error) {
	return nil, errStorage
}

func TestEnsureAdminIdempotent(t *testing.T) {
	repo := &countingUserRepo{SystemUserRepository: repository.NewMemorySystemUserRepository()}
	svc := NewAuthService(testConfig(), repo, zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, svc.EnsureAdmin(ctx), "first seeding should succeed")
	first, err := repo.GetByID(ctx, testAdminID)
	assert.NoError(t, err, "admin record should exist after seeding")
	assert.Equal(t, "admin", first.Account, "seeded account should be admin")
	assert.Equal(t, auth.HashPassword("admin", "s1"), first.PasswordHash, "seeded hash should digest admin with the configured salt")

	assert.NoError(t, svc.EnsureAdmin(ctx), "second seeding should succeed")
	second, err := repo.GetByID(ctx, testAdminID)
	assert.NoError(t, err)
	assert.Equal(t, first, second, "record should be unchanged by the second call")
	assert.Equal(t, 1, repo.creates, "exactly one insert should have happened")
}

func TestEnsureAdminStorageFault(t *testing.T) {
	svc := NewAuthService(testConfig(), failingUserRepo{}, zap.NewNop())

	err := svc.EnsureAdmin(context.Background())
	assert.ErrorIs(t, err, errStorage, "storage faults should propagate for a fatal startup")
}

func TestLogin(t *testing.T) {
	repo := repository.NewMemorySystemUserRepository()
	svc := NewAuthService(testConfig(), repo, zap.NewNop())
	ctx := context.Background()
	assert.NoError(t, svc.EnsureAdmin(ctx))

	{
		token, err := svc.Login(ctx, "admin", "admin")
		assert.NoError(t, err, "seeded credentials should log in")
		claims, verifyErr := svc.TokenManager().Verify(token, auth.VerifyOptions{})
		assert.NoError(t, verifyErr, "issued token should verify")
		assert.Equal(t, domain.RoleAdmin, claims.Role, "issued token should carry the admin role")
		assert.Equal(t, testAdminID, claims.UserID, "issued token should carry the stored admin id")
	}
	{
		// Only the password is checked; the account name is not compared
		// to the stored one.
		_, err := svc.Login(ctx, "someone-else", "admin")
		assert.NoError(t, err, "account name should not be verified")
	}
	{
		_, err := svc.Login(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidAccountOrPassword, "wrong password should fail")
	}
	{
		_, err := svc.Login(ctx, "", "admin")
		assert.ErrorIs(t, err, ErrInvalidInput, "missing account should be invalid input")
		_, err = svc.Login(ctx, "admin", "")
		assert.ErrorIs(t, err, ErrInvalidInput, "missing password should be invalid input")
	}
}

func TestLoginWithoutSeededAdmin(t *testing.T) {
	svc := NewAuthService(testConfig(), repository.NewMemorySystemUserRepository(), zap.NewNop())

	_, err := svc.Login(context.Background(), "admin", "admin")
	assert.ErrorIs(t, err, ErrAccountMissing, "login requires the seeded admin record")
}
