package dto

import (
	"time"

	"github.com/yukikurage/task-tracker-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserWithTasksDTO represents the current user together with their tasks
type UserWithTasksDTO struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Tasks    []TaskDTO `json:"tasks"`
}

// TaskDTO represents a task in API responses. The owner is never exposed.
type TaskDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SigninResponse carries the access token issued on signin
type SigninResponse struct {
	AccessToken string `json:"accessToken"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToUserWithTasksDTO converts a User with preloaded tasks
func ToUserWithTasksDTO(user models.User) UserWithTasksDTO {
	return UserWithTasksDTO{
		ID:       user.ID,
		Username: user.Username,
		Tasks:    ToTaskDTOs(user.Tasks),
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
