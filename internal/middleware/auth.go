package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/constants"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
	"github.com/yukikurage/task-tracker-api/internal/metrics"
	"github.com/yukikurage/task-tracker-api/internal/models"
)

// IdentityResolver resolves a bearer token to its user
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// RequireAuth resolves the bearer token on every request and stores the user
// in the context. Requests without a valid token are rejected with 401.
func RequireAuth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.AuthorizationHeader))
		if !ok {
			metrics.AuthenticationFailures.WithLabelValues("missing_token").Inc()
			apierrors.Unauthorized(c, "")
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			apierrors.FromService(c, err, "")
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetUser retrieves the authenticated user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func bearerToken(header string) (string, bool) {
	prefixLen := len(constants.BearerPrefix)
	if len(header) < prefixLen || !strings.EqualFold(header[:prefixLen], constants.BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[prefixLen:])
	return token, token != ""
}
