package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/middleware"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	dto.RegisterValidators()
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new user.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.AuthCredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		apierrors.FromService(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Signin verifies credentials and returns an access token.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.AuthCredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authService.Signin(c.Request.Context(), services.SigninInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		apierrors.FromService(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.SigninResponse{AccessToken: token})
}

// GetCurrentUser returns the authenticated user with their tasks.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	loaded, err := h.authService.Me(c.Request.Context(), user)
	if err != nil {
		apierrors.FromService(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserWithTasksDTO(*loaded))
}

// bindJSON binds and validates the request body, answering 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func respondBindError(c *gin.Context, err error) {
	if details := dto.DescribeValidationError(err); details != nil {
		apierrors.BadRequest(c, "Validation failed", details)
		return
	}
	apierrors.BadRequest(c, "Invalid request body", nil)
}
