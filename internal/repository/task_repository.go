package repository

import (
	"context"

	"github.com/yukikurage/task-tracker-api/internal/database"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// List retrieves the owner's tasks with the optional status and search filters
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}

	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Scopes(
			database.OwnedBy(filter.OwnerID),
			database.WithStatus(filter.Status),
			database.MatchingSearch(filter.Search),
		).
		Order("tasks.created_at ASC, tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// FindOne finds a task matching both id and owner
func (r *GormTaskRepository) FindOne(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(ownerID)).
		Where("tasks.id = ?", taskID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// UpdateStatus writes the task's status, still filtered by owner
func (r *GormTaskRepository) UpdateStatus(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).
		Model(task).
		Scopes(database.OwnedBy(task.OwnerID)).
		Update("status", task.Status).Error
}

// Delete removes the task only if it belongs to ownerID
func (r *GormTaskRepository) Delete(ctx context.Context, ownerID, taskID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(ownerID)).
		Where("tasks.id = ?", taskID).
		Delete(&models.Task{})
	return result.RowsAffected, result.Error
}
