package delivery

import (
	"yumi/domain"

	"github.com/gofiber/fiber/v2"
)

type childHandler struct {
	cuc domain.ChildUseCase
}

func NewChildDelivery(router fiber.Router, uc domain.ChildUseCase) {
	handler := &childHandler{
		cuc: uc,
	}

	route := router.Group("/children")
	route.Get("/", handler.ListChildren)
	route.Post("/", handler.CreateChild)
	route.Delete("/:id", handler.DeleteChild)
}

func (h *childHandler) ListChildren(c *fiber.Ctx) error {
	parentID, err := queryInt(c, "parentId")
	if err != nil {
		return respondError(c, "ListChildren", "Invalid parentId", err)
	}
	if parentID == nil {
		return badRequest(c, "ListChildren", "parentId is required")
	}

	children, err := h.cuc.ListByParent(c.Context(), *parentID)
	if err != nil {
		return respondError(c, "ListChildren", "Failed to retrieve child profiles", err)
	}
	return respond(c, fiber.StatusOK, "ListChildren", "Child profiles retrieved successfully", children)
}

func (h *childHandler) CreateChild(c *fiber.Ctx) error {
	var req domain.ChildRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "CreateChild", "Invalid request body")
	}

	child, err := h.cuc.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, "CreateChild", "Failed to create child profile", err)
	}
	return respond(c, fiber.StatusCreated, "CreateChild", "Child profile created successfully", child)
}

func (h *childHandler) DeleteChild(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "DeleteChild", "Invalid child id", err)
	}

	if err := h.cuc.Delete(c.Context(), id); err != nil {
		return respondError(c, "DeleteChild", "Failed to delete child profile", err)
	}
	return respond(c, fiber.StatusOK, "DeleteChild", "Child profile deleted successfully", nil)
}
