package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/repository"
	apperrors "github.com/luxeride/rental-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for one request.
type Principal struct {
	User      *domain.User
	SessionID string
}

// Role returns the caller's role.
func (p *Principal) Role() domain.Role {
	if p == nil || p.User == nil {
		return ""
	}
	return p.User.Role
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens  *TokenManager
	users   repository.UserRepository
	revoker TokenRevoker
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, revoker TokenRevoker) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, revoker: revoker}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	principal, err := m.resolve(c)
	if err != nil {
		return err
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

// HandleOptional resolves the principal when a valid token is present but
// lets unauthenticated requests through. Used by the guard endpoint, which
// must evaluate both states.
func (m *AuthMiddleware) HandleOptional(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Next()
	}
	principal, err := m.resolve(c)
	if err != nil {
		// Invalid or revoked token reads as unauthenticated here.
		return c.Next()
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*Principal, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}

	if m.revoker != nil && m.revoker.IsRevoked(c.Context(), claims.SessionID) {
		return nil, apperrors.NewUnauthorized("session revoked")
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, apperrors.MapError(err)
	}
	if user.Status != domain.UserStatusActive {
		return nil, apperrors.NewUnauthorized("account suspended")
	}

	return &Principal{User: user, SessionID: claims.SessionID}, nil
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
