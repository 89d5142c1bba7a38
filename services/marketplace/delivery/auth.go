package delivery

import (
	"yumi/domain"

	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	auc domain.AuthUseCase
}

func NewAuthDelivery(router fiber.Router, uc domain.AuthUseCase) {
	handler := &authHandler{
		auc: uc,
	}

	route := router.Group("/auth")
	route.Post("/register", handler.Register)
	route.Post("/login", handler.Login)
}

func (h *authHandler) Register(c *fiber.Ctx) error {
	var req domain.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Register", "Invalid request body")
	}

	user, err := h.auc.Register(c.Context(), &req)
	if err != nil {
		return respondError(c, "Register", "Registration failed", err)
	}

	return respond(c, fiber.StatusCreated, "Register", "Registration successful", user)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Login", "Invalid request body")
	}

	res, err := h.auc.Login(c.Context(), &req)
	if err != nil {
		return respondError(c, "Login", "Login failed", err)
	}

	return respond(c, fiber.StatusOK, "Login", "Login successful", res)
}
