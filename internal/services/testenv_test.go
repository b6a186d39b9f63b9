package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker-api/internal/logging"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"github.com/yukikurage/task-tracker-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key-must-be-at-least-32-bytes-long"

type serviceTestEnv struct {
	db          *gorm.DB
	clock       *utils.MockClock
	tokens      *TokenService
	authService *AuthService
	resolver    *IdentityResolver
	taskService *TaskService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	logger := logging.Discard()
	clock := utils.NewMockClock(time.Now())
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := NewTokenService(testSecret, clock)

	return serviceTestEnv{
		db:          db,
		clock:       clock,
		tokens:      tokens,
		authService: NewAuthService(userRepo, NewBcryptHasher(bcrypt.MinCost), tokens, logger),
		resolver:    NewIdentityResolver(tokens, userRepo, logger),
		taskService: NewTaskService(taskRepo, logger),
	}
}

func (env serviceTestEnv) signup(t *testing.T, username, password string) *models.User {
	t.Helper()

	user, err := env.authService.Signup(context.Background(), SignupInput{Username: username, Password: password})
	require.NoError(t, err)
	return user
}
