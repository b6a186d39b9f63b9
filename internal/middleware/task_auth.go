package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/constants"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/models"
)

// TaskFinder loads a task scoped to its owner
type TaskFinder interface {
	GetTaskByID(ctx context.Context, user *models.User, id string) (*models.Task, error)
}

// RequireTaskAccess loads the task named by the :id parameter for the current
// user. Tasks owned by someone else are reported as not found so their
// existence is never revealed.
func RequireTaskAccess(finder TaskFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := GetUser(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		taskID := c.Param("id")
		task, err := finder.GetTaskByID(c.Request.Context(), user, taskID)
		if err != nil {
			apierrors.FromService(c, err, taskID)
			return
		}

		c.Set(constants.ContextKeyTask, task)
		c.Next()
	}
}

// GetTask retrieves the task loaded by RequireTaskAccess
func GetTask(c *gin.Context) (*models.Task, bool) {
	value, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return nil, false
	}

	task, ok := value.(*models.Task)
	if !ok || task == nil {
		return nil, false
	}
	return task, true
}
