package delivery

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type healthHandler struct {
	db *gorm.DB
}

func NewHealthDelivery(router fiber.Router, db *gorm.DB) {
	handler := &healthHandler{db: db}
	router.Get("/health", handler.Health)
}

func (h *healthHandler) Health(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "Database unreachable",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "OK",
	})
}
