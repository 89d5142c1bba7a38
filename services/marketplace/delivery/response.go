package delivery

import (
	"errors"
	"strconv"
	"strings"

	"yumi/config"
	"yumi/domain"
	"yumi/middleware"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) *string {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return nil
	}
	return &claims.Email
}

// errorStatus maps domain errors onto HTTP statuses.
func errorStatus(err error) int {
	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrSelfMessage):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrAccountInactive):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrHasDependents),
		errors.Is(err, domain.ErrAlreadyAnswered):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrTooManyAttempts):
		return fiber.StatusTooManyRequests
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, fn, message string, err error) error {
	status := errorStatus(err)
	config.PrintLogInfo(currentUser(c), status, fn)

	body := fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
		"data":    nil,
	}
	if status == fiber.StatusInternalServerError {
		config.GetLogrusInstance().WithError(err).Errorf("%s failed", fn)
		body["error"] = "internal server error"
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body["data"] = ve.Fields
	}
	return c.Status(status).JSON(body)
}

func respond(c *fiber.Ctx, status int, fn, message string, data interface{}) error {
	config.PrintLogInfo(currentUser(c), status, fn)
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func badRequest(c *fiber.Ctx, fn, message string) error {
	return respondError(c, fn, message, domain.NewValidationError("request", message))
}

func paramID(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "Invalid "+name)
	}
	return id, nil
}

// queryInt returns nil when the parameter is absent.
func queryInt(c *fiber.Ctx, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, name+" must be a number")
	}
	return &n, nil
}

func queryBool(c *fiber.Ctx, name string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, name+" must be true or false")
	}
	return &b, nil
}
