package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
	Policy   PolicyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// Apply migrations/ on startup
	AutoMigrate bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendOrigin string
}

// StorageConfig is where evidence files live and the URL prefix they are served under.
type StorageConfig struct {
	BasePath string
	BaseURL  string
}

// PolicyConfig holds the attendance rules that vary per institution.
type PolicyConfig struct {
	ForgotAttendanceQuota int
	DefaultLeaveQuota     int
	ReportCacheTTL        time.Duration
	ReportPruneInterval   time.Duration
}

func Load() (*Config, error) {
	// .env is optional, the platform may inject variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	} else if err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "absensi_dosen"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		AutoMigrate: autoMigrate,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", fmt.Sprintf("http://localhost:%d/uploads", appPort)),
	}

	// Policy configuration
	forgotQuota, err := strconv.Atoi(getEnv("FORGOT_ATTENDANCE_QUOTA", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid FORGOT_ATTENDANCE_QUOTA: %w", err)
	}
	leaveQuota, err := strconv.Atoi(getEnv("DEFAULT_LEAVE_QUOTA", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LEAVE_QUOTA: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("REPORT_CACHE_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_CACHE_TTL: %w", err)
	}
	pruneInterval, err := time.ParseDuration(getEnv("REPORT_PRUNE_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_PRUNE_INTERVAL: %w", err)
	}

	config.Policy = PolicyConfig{
		ForgotAttendanceQuota: forgotQuota,
		DefaultLeaveQuota:     leaveQuota,
		ReportCacheTTL:        cacheTTL,
		ReportPruneInterval:   pruneInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Policy.ForgotAttendanceQuota <= 0 {
		return fmt.Errorf("FORGOT_ATTENDANCE_QUOTA must be positive")
	}
	if c.Policy.DefaultLeaveQuota < 0 {
		return fmt.Errorf("DEFAULT_LEAVE_QUOTA must not be negative")
	}
	if c.Policy.ReportCacheTTL <= 0 || c.Policy.ReportPruneInterval <= 0 {
		return fmt.Errorf("REPORT_CACHE_TTL and REPORT_PRUNE_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
