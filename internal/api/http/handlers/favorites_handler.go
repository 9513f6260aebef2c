package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/luxeride/rental-service/internal/api/dto"
	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/service"
)

// FavoritesHandler exposes saved-vehicle endpoints.
type FavoritesHandler struct {
	favorites *service.FavoriteService
}

// NewFavoritesHandler constructs handler.
func NewFavoritesHandler(favorites *service.FavoriteService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// List handles GET /favorites.
func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	vehicles, err := h.favorites.List(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVehicleResponses(vehicles)})
}

// Add handles PUT /favorites/:vehicleID.
func (h *FavoritesHandler) Add(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.favorites.Add(c.Context(), principal.User.ID, c.Params("vehicleID")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).Send(nil)
}

// Remove handles DELETE /favorites/:vehicleID.
func (h *FavoritesHandler) Remove(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.favorites.Remove(c.Context(), principal.User.ID, c.Params("vehicleID")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).Send(nil)
}
