package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/luxeride/rental-service/internal/api/dto"
	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/repository"
	"github.com/luxeride/rental-service/internal/service"
)

// VehiclesHandler exposes catalog browsing, comparison and admin management.
type VehiclesHandler struct {
	vehicles *service.VehicleService
}

// NewVehiclesHandler constructs handler.
func NewVehiclesHandler(vehicles *service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{vehicles: vehicles}
}

// List handles GET /vehicles.
func (h *VehiclesHandler) List(c *fiber.Ctx) error {
	filter := parseVehicleFilter(c)
	vehicles, err := h.vehicles.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVehicleResponses(vehicles)})
}

// Get handles GET /vehicles/:id.
func (h *VehiclesHandler) Get(c *fiber.Ctx) error {
	vehicle, err := h.vehicles.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVehicleResponse(*vehicle)})
}

// Compare handles POST /vehicles/compare.
func (h *VehiclesHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.vehicles.Compare(c.Context(), req.VehicleIDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCompareResponse(result)})
}

// Create handles POST /admin/vehicles.
func (h *VehiclesHandler) Create(c *fiber.Ctx) error {
	var req dto.VehicleUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	vehicle := req.ToDomain("")
	if err := h.vehicles.CreateVehicle(c.Context(), vehicle); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewVehicleResponse(*vehicle)})
}

// Update handles PUT /admin/vehicles/:id.
func (h *VehiclesHandler) Update(c *fiber.Ctx) error {
	var req dto.VehicleUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	vehicle := req.ToDomain(c.Params("id"))
	if err := h.vehicles.UpdateVehicle(c.Context(), vehicle); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVehicleResponse(*vehicle)})
}

// SetAvailability handles PATCH /admin/vehicles/:id/availability.
func (h *VehiclesHandler) SetAvailability(c *fiber.Ctx) error {
	var req dto.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.vehicles.SetAvailability(c.Context(), c.Params("id"), req.Available); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"available": req.Available}})
}

func parseVehicleFilter(c *fiber.Ctx) repository.VehicleFilter {
	filter := repository.VehicleFilter{
		OnlyAvailable: c.QueryBool("available_only", false),
		Limit:         c.QueryInt("limit", 50),
		Offset:        c.QueryInt("offset", 0),
	}

	if brand := c.Query("brand"); brand != "" {
		filter.Brand = &brand
	}
	if category := c.Query("category"); category != "" {
		cat := domain.VehicleCategory(category)
		filter.Category = &cat
	}
	if transmission := c.Query("transmission"); transmission != "" {
		tr := domain.Transmission(transmission)
		filter.Transmission = &tr
	}
	if fuel := c.Query("fuel"); fuel != "" {
		f := domain.FuelType(fuel)
		filter.Fuel = &f
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if parsed, err := strconv.ParseFloat(minPrice, 64); err == nil {
			filter.MinPrice = &parsed
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if parsed, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			filter.MaxPrice = &parsed
		}
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	return filter
}
