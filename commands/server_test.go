package commands

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"yumi/config"
	"yumi/domain"
	"yumi/middleware"
	"yumi/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPAppServesHealth(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	app := NewHTTPApp(Deps{DB: db, Auth: config.AuthConfig{JWTSecret: "s"}})

	req := httptest.NewRequest(fiber.MethodGet, "/api/health", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestNewHTTPAppEnforcesAdminRoutes(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	auth := config.AuthConfig{JWTSecret: "s", TokenTTL: time.Hour, Enforce: true}
	app := NewHTTPApp(Deps{DB: db, Auth: auth})

	admin := testutil.CreateUser(t, db, domain.RoleAdmin)
	parent := testutil.CreateUser(t, db, domain.RoleParent)
	tokens := middleware.NewJWTManager(auth.JWTSecret, auth.TokenTTL)
	adminToken, err := tokens.GenerateToken(admin)
	require.NoError(t, err)
	parentToken, err := tokens.GenerateToken(parent)
	require.NoError(t, err)

	body := []byte(`{"name":"Dr. K","email":"k@yumi.test","password":"secret123"}`)
	post := func(token string) int {
		req := httptest.NewRequest(fiber.MethodPost, "/api/users/experts", bytes.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
		if token != "" {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusUnauthorized, post(""))
	assert.Equal(t, fiber.StatusForbidden, post(parentToken))
	assert.Equal(t, fiber.StatusCreated, post(adminToken))

	// public routes stay open
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/users/experts", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
