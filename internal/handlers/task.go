package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/middleware"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	dto.RegisterValidators()
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the current user's tasks
// Can filter by status and search text
func (h *TaskHandler) ListTasks(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.GetTasksFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := services.TaskFilterInput{Search: req.Search}
	if req.Status != "" {
		status := models.TaskStatus(req.Status)
		input.Status = &status
	}

	tasks, err := h.taskService.GetTasks(c.Request.Context(), user, input)
	if err != nil {
		apierrors.FromService(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
// Task is already loaded by RequireTaskAccess middleware
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, exists := middleware.GetTask(c)
	if !exists {
		apierrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task owned by the current user
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), user, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		apierrors.FromService(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// DeleteTask deletes one of the current user's tasks
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID := c.Param("id")
	if err := h.taskService.DeleteTask(c.Request.Context(), user, taskID); err != nil {
		apierrors.FromService(c, err, taskID)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateTaskStatus changes the status of one of the current user's tasks
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.UpdateTaskStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	taskID := c.Param("id")
	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), user, taskID, models.TaskStatus(req.Status))
	if err != nil {
		apierrors.FromService(c, err, taskID)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}
