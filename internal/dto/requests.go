package dto

// AuthCredentialsRequest is the body of signup and signin
type AuthCredentialsRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=8,max=32,password_strength"`
}

// CreateTaskRequest is the body of task creation
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateTaskStatusRequest is the body of a status change
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,task_status"`
}

// GetTasksFilterRequest holds the optional list filters from the query string
type GetTasksFilterRequest struct {
	Status string `form:"status" binding:"omitempty,task_status"`
	Search string `form:"search"`
}
