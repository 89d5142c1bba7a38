package delivery

import (
	"yumi/config"
	"yumi/domain"

	"github.com/gofiber/fiber/v2"
)

type availabilityHandler struct {
	auc domain.AvailabilityUseCase
}

func NewAvailabilityDelivery(router fiber.Router, uc domain.AvailabilityUseCase) {
	handler := &availabilityHandler{
		auc: uc,
	}

	route := router.Group("/expert-availability")
	route.Get("/:expertId", handler.ListAvailability)
	route.Post("/", handler.CreateAvailability)
	route.Delete("/:id", handler.DeleteAvailability)
}

func (h *availabilityHandler) ListAvailability(c *fiber.Ctx) error {
	expertID, err := paramID(c, "expertId")
	if err != nil {
		return respondError(c, "ListAvailability", "Invalid expert id", err)
	}

	slots, err := h.auc.ListByExpert(c.Context(), expertID)
	if err != nil {
		return respondError(c, "ListAvailability", "Failed to retrieve availability", err)
	}
	return respond(c, fiber.StatusOK, "ListAvailability", "Availability retrieved successfully", slots)
}

func (h *availabilityHandler) CreateAvailability(c *fiber.Ctx) error {
	var req domain.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "CreateAvailability", "Invalid request body")
	}

	slot, created, err := h.auc.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, "CreateAvailability", "Failed to add availability", err)
	}

	if !created {
		config.PrintLogInfo(currentUser(c), fiber.StatusOK, "CreateAvailability")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "This slot already exists",
			"created": false,
			"data":    slot,
		})
	}

	config.PrintLogInfo(currentUser(c), fiber.StatusCreated, "CreateAvailability")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Availability added successfully",
		"created": true,
		"data":    slot,
	})
}

func (h *availabilityHandler) DeleteAvailability(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "DeleteAvailability", "Invalid slot id", err)
	}

	if err := h.auc.Delete(c.Context(), id); err != nil {
		return respondError(c, "DeleteAvailability", "Slot not found", err)
	}

	config.PrintLogInfo(currentUser(c), fiber.StatusNoContent, "DeleteAvailability")
	return c.SendStatus(fiber.StatusNoContent)
}
