package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/config"
	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/repository"
	"github.com/luxeride/rental-service/internal/session"
)

// AuthResult bundles the outcome of a successful register or login.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
	SessionID string
}

// AuthService coordinates registration, login and session lifecycle.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	flags      session.FlagStore
	revoker    auth.TokenRevoker
	tokenMgr   *auth.TokenManager
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	FlagStore         session.FlagStore
	Revoker           auth.TokenRevoker
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		flags:      deps.FlagStore,
		revoker:    deps.Revoker,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// Register creates a new customer account and opens a session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, errors.New("email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

// Login authenticates a user and opens a fresh session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}
	if user.Status != domain.UserStatusActive {
		return nil, errors.New("account suspended")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errors.New("invalid credentials")
	}
	return s.openSession(ctx, user)
}

// openSession mints a session ID, initializes its flag record and issues the
// token carrying it.
func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	sessionID := uuid.NewString()
	if err := s.flags.Init(ctx, sessionID); err != nil {
		return nil, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role, sessionID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: exp, SessionID: sessionID}, nil
}

// Logout revokes the caller's session and destroys its flag record.
func (s *AuthService) Logout(ctx context.Context, principal *auth.Principal) error {
	if principal == nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, principal.SessionID, s.tokenMgr.TTL()); err != nil {
		return err
	}
	return s.flags.Clear(ctx, principal.SessionID)
}

// RequestPasswordReset persists a reset token for the account email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return errors.New("token expired or used")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	return s.resets.MarkUsed(ctx, token.ID)
}

// ChangePassword verifies the current password before updating to a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return errors.New("invalid credentials")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
