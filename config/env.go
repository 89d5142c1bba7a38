package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv reads the given env files, or ./.env when none is named. A
// missing ./.env is fine in containers where the environment is injected
// directly; a file named explicitly must exist.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil || (len(files) == 0 && os.IsNotExist(err)) {
		return nil
	}
	return fmt.Errorf("failed to load env file: %w", err)
}

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.TimeZone)
}

func LoadDBConfig() (DBConfig, error) {
	cfg := DBConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnvInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", ""),
		Name:            getEnv("DB_DATABASE", "yumi"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
	}
	if cfg.Host == "" || cfg.User == "" || cfg.Name == "" {
		return cfg, fmt.Errorf("invalid db config: DB_HOST, DB_USER and DB_DATABASE are required")
	}
	return cfg, nil
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	Enforce       bool
	LoginAttempts int
	LoginWindow   time.Duration
}

func LoadAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:     getEnv("JWT_SECRET", "yumi-dev-secret"),
		TokenTTL:      time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		Enforce:       getEnvBool("AUTH_ENFORCE", false),
		LoginAttempts: getEnvInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:   time.Duration(getEnvInt("LOGIN_WINDOW_MINUTES", 15)) * time.Minute,
	}
}

type AdminSeed struct {
	Email    string
	Name     string
	Password string
}

func LoadAdminSeed() AdminSeed {
	return AdminSeed{
		Email:    strings.ToLower(getEnv("ADMIN_EMAIL", "admin@yumi.local")),
		Name:     getEnv("ADMIN_NAME", "Administrator"),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}
}

func GetContextTimeout() time.Duration {
	return time.Duration(getEnvInt("CONTEXT_TIMEOUT_SECONDS", 10)) * time.Second
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
