package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/task-tracker-api/internal/constants"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("DB_NAME", "")

	cfg := Load()

	assert.Equal(t, constants.DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "task_tracker", cfg.DBName)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.False(t, cfg.IsProduction())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STAGE", "prod")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PORT", "8080")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "a-real-secret", cfg.JWTSecret)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "8080", cfg.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidBcryptCostFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "twelve")

	assert.Equal(t, bcrypt.DefaultCost, Load().BcryptCost)
}

func TestValidate(t *testing.T) {
	base := Config{DBDriver: "postgres", JWTSecret: "secret"}

	cfg := base
	cfg.JWTSecret = ""
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)

	cfg = base
	cfg.Stage = "prod"
	cfg.JWTSecret = constants.DefaultJWTSecret
	assert.ErrorIs(t, cfg.Validate(), ErrDefaultJWTSecret)

	cfg = base
	cfg.DBDriver = "mongo"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownDBDriver)
}
