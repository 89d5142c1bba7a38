package delivery

import (
	"yumi/domain"

	"github.com/gofiber/fiber/v2"
)

type userHandler struct {
	uuc domain.UserUseCase
}

// NewUserDelivery registers the user routes. adminGuards run in front of the
// admin-only routes and may be empty.
func NewUserDelivery(router fiber.Router, uc domain.UserUseCase, adminGuards ...fiber.Handler) {
	handler := &userHandler{
		uuc: uc,
	}

	route := router.Group("/users")
	route.Get("/", handler.ListUsers)
	route.Get("/experts", handler.ListExperts)
	route.Get("/:id", handler.GetUser)
	route.Post("/experts", guarded(adminGuards, handler.CreateExpert)...)
	route.Patch("/:id/active", guarded(adminGuards, handler.SetActive)...)
	route.Delete("/:id", guarded(adminGuards, handler.DeleteUser)...)
}

func (h *userHandler) ListUsers(c *fiber.Ctx) error {
	var filter domain.UserFilter
	if raw := c.Query("role"); raw != "" {
		role, err := domain.ParseRole(raw)
		if err != nil {
			return respondError(c, "ListUsers", "Invalid role filter", err)
		}
		filter.Role = &role
	}
	active, err := queryBool(c, "active")
	if err != nil {
		return respondError(c, "ListUsers", "Invalid active filter", err)
	}
	filter.Active = active

	users, err := h.uuc.ListUsers(c.Context(), filter)
	if err != nil {
		return respondError(c, "ListUsers", "Failed to retrieve users", err)
	}
	return respond(c, fiber.StatusOK, "ListUsers", "Users retrieved successfully", users)
}

func (h *userHandler) ListExperts(c *fiber.Ctx) error {
	experts, err := h.uuc.ListExperts(c.Context())
	if err != nil {
		return respondError(c, "ListExperts", "Failed to retrieve experts", err)
	}
	return respond(c, fiber.StatusOK, "ListExperts", "Experts retrieved successfully", experts)
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "GetUser", "Invalid user id", err)
	}

	user, err := h.uuc.GetUser(c.Context(), id)
	if err != nil {
		return respondError(c, "GetUser", "Failed to retrieve user", err)
	}
	return respond(c, fiber.StatusOK, "GetUser", "User retrieved successfully", user)
}

func (h *userHandler) CreateExpert(c *fiber.Ctx) error {
	var req domain.CreateExpertRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "CreateExpert", "Invalid request body")
	}

	expert, err := h.uuc.CreateExpert(c.Context(), &req)
	if err != nil {
		return respondError(c, "CreateExpert", "Failed to create expert", err)
	}
	return respond(c, fiber.StatusCreated, "CreateExpert", "Expert created successfully", expert)
}

func (h *userHandler) SetActive(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "SetActive", "Invalid user id", err)
	}

	var req domain.SetActiveRequest
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return badRequest(c, "SetActive", "is_active is required")
	}

	user, err := h.uuc.SetActive(c.Context(), id, *req.IsActive)
	if err != nil {
		return respondError(c, "SetActive", "Failed to update user", err)
	}
	return respond(c, fiber.StatusOK, "SetActive", "User updated successfully", user)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "DeleteUser", "Invalid user id", err)
	}

	if err := h.uuc.DeleteUser(c.Context(), id); err != nil {
		return respondError(c, "DeleteUser", "Failed to delete user", err)
	}
	return respond(c, fiber.StatusOK, "DeleteUser", "User deleted successfully", nil)
}

func guarded(guards []fiber.Handler, h fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, h)
}
