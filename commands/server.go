package commands

import (
	"time"

	"yumi/config"
	"yumi/domain"
	"yumi/middleware"
	"yumi/services/marketplace/delivery"
	"yumi/services/marketplace/repository"
	"yumi/services/marketplace/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier domain.Notifier
	Auth     config.AuthConfig
	Timeout  time.Duration
}

// NewHTTPApp wires repositories, use cases and handlers under /api.
func NewHTTPApp(deps Deps) *fiber.App {
	app := fiber.New(config.GetFiberConfig())

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(config.GetLogrusInstance()))

	jwtManager := middleware.NewJWTManager(deps.Auth.JWTSecret, deps.Auth.TokenTTL)
	app.Use(jwtManager.OptionalAuth())

	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	userRepo := repository.NewUserRepository(deps.DB)
	childRepo := repository.NewChildRepository(deps.DB)
	availabilityRepo := repository.NewAvailabilityRepository(deps.DB)
	appointmentRepo := repository.NewAppointmentRepository(deps.DB)
	messageRepo := repository.NewMessageRepository(deps.DB)
	questionRepo := repository.NewQuestionRepository(deps.DB)

	var limiter domain.LoginLimiter
	if deps.Redis != nil {
		limiter = repository.NewRedisLoginLimiter(deps.Redis, deps.Auth.LoginAttempts, deps.Auth.LoginWindow)
	}

	authUC := usecase.NewAuthUseCase(userRepo, jwtManager, limiter, timeout)
	userUC := usecase.NewUserUseCase(userRepo, timeout)
	childUC := usecase.NewChildUseCase(childRepo, userRepo, timeout)
	availabilityUC := usecase.NewAvailabilityUseCase(availabilityRepo, userRepo, timeout)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, deps.Notifier, timeout)
	messageUC := usecase.NewMessageUseCase(messageRepo, userRepo, timeout)
	questionUC := usecase.NewQuestionUseCase(questionRepo, userRepo, timeout)

	var adminGuards []fiber.Handler
	if deps.Auth.Enforce {
		adminGuards = []fiber.Handler{jwtManager.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin)}
	}

	api := app.Group("/api")
	delivery.NewHealthDelivery(api, deps.DB)
	delivery.NewAuthDelivery(api, authUC)
	delivery.NewUserDelivery(api, userUC, adminGuards...)
	delivery.NewChildDelivery(api, childUC)
	delivery.NewAvailabilityDelivery(api, availabilityUC)
	delivery.NewAppointmentDelivery(api, appointmentUC)
	delivery.NewMessageDelivery(api, messageUC)
	delivery.NewQuestionDelivery(api, questionUC)

	return app
}
