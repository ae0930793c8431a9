package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Engine   EngineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// EngineConfig holds the timesheet engine's tuning constants. Defaults
// match the payroll rules; the tolerance is a product rule kept out of
// code on purpose.
type EngineConfig struct {
	WorkedDayHours        float64
	SufficiencyTolerance  float64
	FallbackStandardHours float64
	FallbackShiftStart    float64
	FallbackShiftEnd      float64
}

func Load() (*Config, error) {
	// Running without a .env file is fine; env vars may come from the
	// environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "cmlabs-timekeeping"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Engine configuration
	config.Engine = EngineConfig{
		WorkedDayHours:        getEnvFloat("ENGINE_WORKED_DAY_HOURS", 8),
		SufficiencyTolerance:  getEnvFloat("ENGINE_SUFFICIENCY_TOLERANCE", 0.1),
		FallbackStandardHours: getEnvFloat("ENGINE_FALLBACK_STANDARD_HOURS", 8),
		FallbackShiftStart:    getEnvFloat("ENGINE_FALLBACK_SHIFT_START", 8),
		FallbackShiftEnd:      getEnvFloat("ENGINE_FALLBACK_SHIFT_END", 17),
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
	if c.Engine.WorkedDayHours <= 0 {
		return fmt.Errorf("ENGINE_WORKED_DAY_HOURS must be positive")
	}
	if c.Engine.FallbackShiftStart >= c.Engine.FallbackShiftEnd {
		return fmt.Errorf("ENGINE_FALLBACK_SHIFT_START must be before ENGINE_FALLBACK_SHIFT_END")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
