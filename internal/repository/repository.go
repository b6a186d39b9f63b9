package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/task-tracker-api/internal/models"
)

var (
	// ErrDuplicateUsername is returned when the username unique index rejects an insert.
	ErrDuplicateUsername = errors.New("user repository: username already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user; ErrDuplicateUsername on a taken username
	Create(ctx context.Context, user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByUsernameWithTasks finds a user by username and loads the owned tasks
	FindByUsernameWithTasks(ctx context.Context, username string) (*models.User, error)
}

// TaskRepository defines the interface for task data access.
// Every method is scoped to an owner.
type TaskRepository interface {
	// List retrieves the owner's tasks matching the filter
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	// FindOne finds a task by id among the owner's tasks
	FindOne(ctx context.Context, ownerID, taskID string) (*models.Task, error)

	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// UpdateStatus persists the task's status
	UpdateStatus(ctx context.Context, task *models.Task) error

	// Delete deletes at most one owned task and returns the affected row count
	Delete(ctx context.Context, ownerID, taskID string) (int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	OwnerID string
	Status  *models.TaskStatus
	Search  string
}
