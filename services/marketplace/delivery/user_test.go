package delivery_test

import (
	"fmt"
	"testing"

	"yumi/domain"
	"yumi/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoutes(t *testing.T) {
	app, db := newTestApp(t)
	parent := testutil.CreateUser(t, db, domain.RoleParent)

	status, env := doJSON(t, app, fiber.MethodPost, "/api/users/experts",
		fiber.Map{"name": "Dr. K", "email": "k@yumi.test", "password": "secret123", "title": "Pediatrician"})
	require.Equal(t, fiber.StatusCreated, status)
	expertID := int(dataMap(t, env)["id"].(float64))

	status, env = doJSON(t, app, fiber.MethodGet, "/api/users/experts", nil)
	require.Equal(t, fiber.StatusOK, status)
	experts := dataList(t, env)
	require.Len(t, experts, 1)
	assert.Equal(t, "Pediatrician", experts[0].(map[string]interface{})["title"])
	assert.NotContains(t, experts[0], "email")

	status, env = doJSON(t, app, fiber.MethodGet, "/api/users?role=expert", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, dataList(t, env), 1)

	status, _ = doJSON(t, app, fiber.MethodGet, "/api/users?role=wizard", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/users/%d", parent.ID), nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/api/users/%d/active", expertID), fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/users/%d", expertID), nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/users/%d", expertID), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodGet, "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
}
