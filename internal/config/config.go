package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/yukikurage/task-tracker-api/internal/constants"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")
	ErrDefaultJWTSecret = errors.New("JWT_SECRET must be changed from the default in production")
	ErrUnknownDBDriver  = errors.New("DB_DRIVER must be one of postgres, mysql, sqlite")
)

type Config struct {
	Stage      string
	Port       string
	GinMode    string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	JWTSecret  string
	BcryptCost int
	LogLevel   string
	LogFile    string
}

func Load() *Config {
	return &Config{
		Stage:      getEnv("STAGE", "dev"),
		Port:       getEnv("PORT", "3000"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "task_tracker"),
		DBSSLMode:  getEnv("DB_SSLMODE", ""),
		JWTSecret:  getEnv("JWT_SECRET", constants.DefaultJWTSecret),
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", ""),
	}
}

// IsProduction reports whether the service runs in the prod stage
func (c *Config) IsProduction() bool {
	return c.Stage == "prod"
}

// Validate checks settings that would make the service unsafe or unable to start
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.IsProduction() && c.JWTSecret == constants.DefaultJWTSecret {
		return ErrDefaultJWTSecret
	}
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return ErrUnknownDBDriver
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
