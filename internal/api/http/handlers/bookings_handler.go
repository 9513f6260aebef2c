package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/luxeride/rental-service/internal/api/dto"
	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/service"
)

// BookingsHandler exposes reservation endpoints.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// Create handles POST /bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.VehicleID == "" {
		return fiber.NewError(http.StatusBadRequest, "vehicle_id required")
	}

	booking, err := h.bookings.Create(c.Context(), principal.User.ID, service.BookingCreateInput{
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewBookingResponse(*booking)})
}

// ListMine handles GET /bookings.
func (h *BookingsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	bookings, err := h.bookings.ListForUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}

// Cancel handles POST /bookings/:id/cancel.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	booking, err := h.bookings.Cancel(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(*booking)})
}

// ListAll handles GET /admin/bookings.
func (h *BookingsHandler) ListAll(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListAll(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}

// Confirm handles POST /admin/bookings/:id/confirm.
func (h *BookingsHandler) Confirm(c *fiber.Ctx) error {
	booking, err := h.bookings.Confirm(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(*booking)})
}
