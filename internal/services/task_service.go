package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"
	"github.com/yukikurage/task-tracker-api/internal/metrics"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"github.com/yukikurage/task-tracker-api/internal/utils"
	"gorm.io/gorm"
)

// ErrTaskNotFound covers both a missing task and a task owned by someone else.
var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic. Every operation is scoped to the
// user passed in; there is no way to reach another user's task.
type TaskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, logger *slog.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// TaskFilterInput represents the optional filters for listing tasks
type TaskFilterInput struct {
	Status *models.TaskStatus
	Search string
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
}

// GetTasks returns the user's tasks matching the filters
func (s *TaskService) GetTasks(ctx context.Context, user *models.User, input TaskFilterInput) ([]models.Task, error) {
	filter := repository.TaskFilter{
		OwnerID: user.ID,
		Status:  input.Status,
		Search:  input.Search,
	}

	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("list", metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to get tasks",
			"error", oops.In("tasks").Code("TASK_LIST_FAILED").
				With("username", user.Username).
				With("status", input.Status).
				With("search", input.Search).
				Wrap(err))
		return nil, ErrInternal
	}

	metrics.TaskOperationsTotal.WithLabelValues("list", metrics.ResultSuccess).Inc()
	return tasks, nil
}

// GetTaskByID returns the task only if the user owns it
func (s *TaskService) GetTaskByID(ctx context.Context, user *models.User, id string) (*models.Task, error) {
	task, err := s.findOwned(ctx, user, id, "get")
	if err != nil {
		return nil, err
	}
	metrics.TaskOperationsTotal.WithLabelValues("get", metrics.ResultSuccess).Inc()
	return task, nil
}

// CreateTask creates an OPEN task owned by the user
func (s *TaskService) CreateTask(ctx context.Context, user *models.User, input CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.TaskStatusOpen,
		OwnerID:     user.ID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("create", metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to create task",
			"error", oops.In("tasks").Code("TASK_CREATE_FAILED").With("username", user.Username).Wrap(err))
		return nil, ErrInternal
	}

	metrics.TaskOperationsTotal.WithLabelValues("create", metrics.ResultSuccess).Inc()
	return task, nil
}

// DeleteTask deletes the user's task; ErrTaskNotFound when nothing was deleted
func (s *TaskService) DeleteTask(ctx context.Context, user *models.User, id string) error {
	if !utils.IsValidID(id) {
		metrics.TaskOperationsTotal.WithLabelValues("delete", metrics.ResultNotFound).Inc()
		return ErrTaskNotFound
	}

	affected, err := s.taskRepo.Delete(ctx, user.ID, id)
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("delete", metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to delete task",
			"error", oops.In("tasks").Code("TASK_DELETE_FAILED").
				With("username", user.Username).
				With("task_id", id).
				Wrap(err))
		return ErrInternal
	}

	if affected == 0 {
		metrics.TaskOperationsTotal.WithLabelValues("delete", metrics.ResultNotFound).Inc()
		return ErrTaskNotFound
	}

	metrics.TaskOperationsTotal.WithLabelValues("delete", metrics.ResultSuccess).Inc()
	return nil
}

// UpdateTaskStatus sets a new status on the user's task. The read and the
// write are separate statements; concurrent updates resolve last-write-wins.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, user *models.User, id string, status models.TaskStatus) (*models.Task, error) {
	task, err := s.findOwned(ctx, user, id, "update_status")
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := s.taskRepo.UpdateStatus(ctx, task); err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("update_status", metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to update task status",
			"error", oops.In("tasks").Code("TASK_UPDATE_STATUS_FAILED").
				With("username", user.Username).
				With("task_id", id).
				With("status", status).
				Wrap(err))
		return nil, ErrInternal
	}

	metrics.TaskOperationsTotal.WithLabelValues("update_status", metrics.ResultSuccess).Inc()
	return task, nil
}

func (s *TaskService) findOwned(ctx context.Context, user *models.User, id, operation string) (*models.Task, error) {
	if !utils.IsValidID(id) {
		metrics.TaskOperationsTotal.WithLabelValues(operation, metrics.ResultNotFound).Inc()
		return nil, ErrTaskNotFound
	}

	task, err := s.taskRepo.FindOne(ctx, user.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.TaskOperationsTotal.WithLabelValues(operation, metrics.ResultNotFound).Inc()
			return nil, ErrTaskNotFound
		}
		metrics.TaskOperationsTotal.WithLabelValues(operation, metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to find task",
			"error", oops.In("tasks").Code("TASK_FIND_FAILED").
				With("username", user.Username).
				With("task_id", id).
				Wrap(err))
		return nil, ErrInternal
	}

	return task, nil
}
