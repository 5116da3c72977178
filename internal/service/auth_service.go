package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/goods-service/internal/auth"
	"github.com/spec-kit/goods-service/internal/config"
	"github.com/spec-kit/goods-service/internal/domain"
	"github.com/spec-kit/goods-service/internal/repository"
)

// Login failure kinds. Handlers map these to envelope codes; anything else
// escaping the service is an unexpected fault.
var (
	ErrAccountMissing           = errors.New("admin account missing")
	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidAccountOrPassword = errors.New("invalid account or password")
)

// AuthService coordinates admin seeding and the login flow.
type AuthService struct {
	users    repository.SystemUserRepository
	tokenMgr *auth.TokenManager
	salt     string
	adminID  string
	logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.SystemUserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		salt:     cfg.Auth.PasswordSalt,
		adminID:  cfg.Auth.AdminID,
		logger:   logger,
	}
}

// EnsureAdmin seeds the administrative credential if it does not exist.
// Idempotent. Storage faults propagate to the caller; the process must not
// serve requests with an unknown admin state.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.users.GetByID(ctx, s.adminID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	admin := &domain.SystemUser{
		ID:           s.adminID,
		Account:      "admin",
		PasswordHash: auth.HashPassword("admin", s.salt),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("admin credential seeded", zap.String("id", s.adminID))
	return nil
}

// Login authenticates the single admin and issues a signed token.
func (s *AuthService) Login(ctx context.Context, account, password string) (string, error) {
	admin, err := s.users.GetByID(ctx, s.adminID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrAccountMissing
	}
	if err != nil {
		return "", err
	}

	if account == "" || password == "" {
		return "", ErrInvalidInput
	}

	// The submitted account is not compared to the stored one: there is a
	// single fixed admin identity and only its password is verified.
	if !auth.VerifyPassword(password, s.salt, admin.PasswordHash) {
		return "", ErrInvalidAccountOrPassword
	}

	token, _, err := s.tokenMgr.Issue(admin.ID, domain.RoleAdmin)
	if err != nil {
		return "", err
	}
	return token, nil
}

// TokenManager exposes the underlying token manager for the gate.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
