package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/luxeride/rental-service/internal/api/dto"
	"github.com/luxeride/rental-service/internal/auth"
	"github.com/luxeride/rental-service/internal/guard"
)

// GuardHandler exposes the navigation guard to the client.
type GuardHandler struct {
	guard *guard.Guard
}

// NewGuardHandler constructs handler.
func NewGuardHandler(g *guard.Guard) *GuardHandler {
	return &GuardHandler{guard: g}
}

// Evaluate handles POST /guard/evaluate. The client calls it on mount, on
// every path change and on every popstate event; authentication is optional
// since the guard must also decide for anonymous visitors.
func (h *GuardHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.GuardEvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Path == "" {
		return fiber.NewError(http.StatusBadRequest, "path required")
	}

	trigger := guard.Trigger(req.Trigger)
	switch trigger {
	case guard.TriggerMount, guard.TriggerNavigate, guard.TriggerPopstate:
	case "":
		trigger = guard.TriggerNavigate
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown trigger")
	}

	principal, _ := auth.PrincipalFromContext(c)
	decision := h.guard.Evaluate(c.Context(), principal, req.Path, trigger)

	return c.JSON(fiber.Map{"data": dto.GuardEvaluateResponse{
		Action:  string(decision.Action),
		Target:  decision.Target,
		Replace: decision.Replace,
		Message: decision.Message,
	}})
}
