package delivery

import (
	"yumi/domain"

	"github.com/gofiber/fiber/v2"
)

type messageHandler struct {
	muc domain.MessageUseCase
}

func NewMessageDelivery(router fiber.Router, uc domain.MessageUseCase) {
	handler := &messageHandler{
		muc: uc,
	}

	route := router.Group("/messages")
	route.Post("/", handler.SendMessage)
	route.Get("/", handler.Inbox)
	route.Get("/conversation", handler.Conversation)
	route.Patch("/:id/read", handler.MarkRead)
}

func (h *messageHandler) SendMessage(c *fiber.Ctx) error {
	var req domain.MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "SendMessage", "Invalid request body")
	}

	msg, err := h.muc.Send(c.Context(), &req)
	if err != nil {
		return respondError(c, "SendMessage", "Failed to send message", err)
	}
	return respond(c, fiber.StatusCreated, "SendMessage", "Message sent successfully", msg)
}

func (h *messageHandler) Inbox(c *fiber.Ctx) error {
	userID, err := queryInt(c, "userId")
	if err != nil {
		return respondError(c, "Inbox", "Invalid userId", err)
	}
	if userID == nil {
		return badRequest(c, "Inbox", "userId is required")
	}

	msgs, err := h.muc.Inbox(c.Context(), *userID)
	if err != nil {
		return respondError(c, "Inbox", "Failed to retrieve messages", err)
	}
	return respond(c, fiber.StatusOK, "Inbox", "Messages retrieved successfully", msgs)
}

func (h *messageHandler) Conversation(c *fiber.Ctx) error {
	userA, err := queryInt(c, "userA")
	if err != nil {
		return respondError(c, "Conversation", "Invalid userA", err)
	}
	userB, err := queryInt(c, "userB")
	if err != nil {
		return respondError(c, "Conversation", "Invalid userB", err)
	}
	if userA == nil || userB == nil {
		return badRequest(c, "Conversation", "userA and userB are required")
	}

	msgs, err := h.muc.Conversation(c.Context(), *userA, *userB)
	if err != nil {
		return respondError(c, "Conversation", "Failed to retrieve conversation", err)
	}
	return respond(c, fiber.StatusOK, "Conversation", "Conversation retrieved successfully", msgs)
}

func (h *messageHandler) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "MarkRead", "Invalid message id", err)
	}

	if err := h.muc.MarkRead(c.Context(), id); err != nil {
		return respondError(c, "MarkRead", "Failed to update message", err)
	}
	return respond(c, fiber.StatusOK, "MarkRead", "Message marked as read", nil)
}
