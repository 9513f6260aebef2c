package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/luxeride/rental-service/internal/api/dto"
	"github.com/luxeride/rental-service/internal/chat"
)

// ChatHandler exposes the rule-based chat widget backend.
type ChatHandler struct{}

// NewChatHandler constructs handler.
func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

// Message handles POST /chat/message.
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(http.StatusBadRequest, "message required")
	}

	reply := chat.Respond(req.Message)
	return c.JSON(fiber.Map{"data": dto.ChatMessageResponse{Topic: reply.Topic, Message: reply.Message}})
}
