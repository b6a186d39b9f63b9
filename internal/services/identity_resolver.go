package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"
	"github.com/yukikurage/task-tracker-api/internal/metrics"
	"github.com/yukikurage/task-tracker-api/internal/models"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// IdentityResolver turns a bearer token into the user it names
type IdentityResolver struct {
	tokens   *TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewIdentityResolver(tokens *TokenService, userRepo repository.UserRepository, logger *slog.Logger) *IdentityResolver {
	return &IdentityResolver{
		tokens:   tokens,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Resolve verifies token and loads its user. A valid token naming a user that
// no longer exists is rejected exactly like an invalid token.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	claims, err := r.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := r.userRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.AuthenticationFailures.WithLabelValues("unknown_user").Inc()
			return nil, ErrUnauthorized
		}
		r.logger.ErrorContext(ctx, "failed to resolve identity",
			"error", oops.In("auth").Code("AUTH_RESOLVE_FAILED").With("username", claims.Username).Wrap(err))
		return nil, ErrInternal
	}

	return user, nil
}
