package delivery_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"yumi/config"
	"yumi/middleware"
	"yumi/services/marketplace/delivery"
	"yumi/services/marketplace/repository"
	"yumi/services/marketplace/usecase"
	"yumi/testutil"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   string      `json:"error"`
	Created *bool       `json:"created"`
	Data    interface{} `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	to := 5 * time.Second

	userRepo := repository.NewUserRepository(db)
	tokens := middleware.NewJWTManager("test-secret", time.Hour)

	app := fiber.New(config.GetFiberConfig())
	app.Use(tokens.OptionalAuth())
	api := app.Group("/api")
	delivery.NewHealthDelivery(api, db)
	delivery.NewAuthDelivery(api, usecase.NewAuthUseCase(userRepo, tokens, nil, to))
	delivery.NewUserDelivery(api, usecase.NewUserUseCase(userRepo, to))
	delivery.NewChildDelivery(api, usecase.NewChildUseCase(repository.NewChildRepository(db), userRepo, to))
	delivery.NewAvailabilityDelivery(api, usecase.NewAvailabilityUseCase(repository.NewAvailabilityRepository(db), userRepo, to))
	delivery.NewAppointmentDelivery(api, usecase.NewAppointmentUseCase(repository.NewAppointmentRepository(db), nil, to))
	delivery.NewMessageDelivery(api, usecase.NewMessageUseCase(repository.NewMessageRepository(db), userRepo, to))
	delivery.NewQuestionDelivery(api, usecase.NewQuestionUseCase(repository.NewQuestionRepository(db), userRepo, to))
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func dataMap(t *testing.T, env envelope) map[string]interface{} {
	t.Helper()
	m, ok := env.Data.(map[string]interface{})
	require.True(t, ok, "data is %T", env.Data)
	return m
}

func dataList(t *testing.T, env envelope) []interface{} {
	t.Helper()
	l, ok := env.Data.([]interface{})
	require.True(t, ok, "data is %T", env.Data)
	return l
}
