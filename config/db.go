package config

import (
	"errors"
	"fmt"
	"time"

	"yumi/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(GetLogrusInstance(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// BootDB opens the postgres connection, migrates the schema and seeds the
// default admin.
func BootDB(cfg DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := Migrate(db); err != nil {
		return db, err
	}
	if err := SeedAdmin(db, LoadAdminSeed()); err != nil {
		return db, err
	}

	GetLogrusInstance().Info("DB initialized")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	// tables without foreign keys first
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
	); err != nil {
		return fmt.Errorf("failed to migrate base tables: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.ChildProfile{},
		&domain.ExpertAvailability{},
		&domain.Appointment{},
		&domain.BlogPost{},
		&domain.Message{},
		&domain.ExpertQuestion{},
	); err != nil {
		return fmt.Errorf("failed to migrate relational tables: %w", err)
	}
	return nil
}

// SeedAdmin creates the default admin account when no admin exists yet.
// An empty seed password skips seeding.
func SeedAdmin(db *gorm.DB, seed AdminSeed) error {
	log := GetLogrusInstance()

	var existingAdmin domain.User
	err := db.Where("role = ?", domain.RoleAdmin).First(&existingAdmin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if seed.Password == "" {
		log.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	log.Info("Creating default admin account....")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	admin := domain.User{
		Name:         seed.Name,
		Email:        seed.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	log.WithField("email", admin.Email).Info("Admin account created")
	return nil
}
