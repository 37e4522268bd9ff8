// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Validation ValidationConfig
}

type ServerConfig struct {
	GRPCPort         string
	Environment      string
	EnableReflection bool
	AutoMigrate      bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret        string
	TokenDuration time.Duration
}

type ValidationConfig struct {
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxNameLength        int
	MaxEmailLength       int
	MinPasswordLength    int
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			GRPCPort:         getEnv("GRPC_PORT", "50051"),
			Environment:      getEnv("ENVIRONMENT", "development"),
			EnableReflection: getEnvAsBool("GRPC_REFLECTION", true),
			AutoMigrate:      getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "planmaster"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			TokenDuration: getEnvAsDuration("JWT_TOKEN_DURATION", 24*time.Hour),
		},
		Validation: ValidationConfig{
			MaxTitleLength:       getEnvAsInt("MAX_TITLE_LENGTH", 200),
			MaxDescriptionLength: getEnvAsInt("MAX_DESCRIPTION_LENGTH", 5000),
			MaxNameLength:        getEnvAsInt("MAX_NAME_LENGTH", 100),
			MaxEmailLength:       getEnvAsInt("MAX_EMAIL_LENGTH", 255),
			MinPasswordLength:    getEnvAsInt("MIN_PASSWORD_LENGTH", 8),
		},
	}, nil
}

// ValidateConfig rejects configurations that cannot run safely.
func (c *Config) ValidateConfig() error {
	if !c.IsDevelopment() && c.JWT.Secret == "dev-secret-change-in-production" {
		return fmt.Errorf("JWT_SECRET must be set outside development")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	return defaultValue
}
