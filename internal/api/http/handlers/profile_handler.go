package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/luxeride/rental-service/internal/api/dto"
	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/repository"
	"github.com/luxeride/rental-service/internal/service"
)

// ProfileHandler exposes profile and settings endpoints.
type ProfileHandler struct {
	users *service.UserService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(users *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	user, err := h.users.GetProfile(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(user)})
}

// Update handles PUT /profile.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateProfile(c.Context(), principal.User.ID, req.Name, req.Phone)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(user)})
}

// GetSettings handles GET /settings.
func (h *ProfileHandler) GetSettings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	settings, err := h.users.GetSettings(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SettingsPayload{Currency: settings.Currency, Locale: settings.Locale}})
}

// UpdateSettings handles PUT /settings.
func (h *ProfileHandler) UpdateSettings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.SettingsPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	settings := repository.Settings{Currency: req.Currency, Locale: req.Locale}
	if err := h.users.UpdateSettings(c.Context(), principal.User.ID, settings); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SettingsPayload{Currency: settings.Currency, Locale: settings.Locale}})
}
