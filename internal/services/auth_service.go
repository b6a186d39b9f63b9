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

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("please check your login credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
)

// AuthService handles signup and signin.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   *TokenService
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, tokens *TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignupInput represents the required information to create a new user.
// Length and strength rules are enforced at the HTTP boundary.
type SignupInput struct {
	Username string
	Password string
}

// Signup hashes the password and stores a new user.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to hash password",
			"error", oops.In("auth").Code("AUTH_HASH_FAILED").With("username", input.Username).Wrap(err))
		return nil, ErrInternal
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			metrics.SignupsTotal.WithLabelValues(metrics.ResultConflict).Inc()
			return nil, ErrUsernameTaken
		}
		metrics.SignupsTotal.WithLabelValues(metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to create user",
			"error", oops.In("auth").Code("AUTH_SIGNUP_FAILED").With("username", input.Username).Wrap(err))
		return nil, ErrInternal
	}

	metrics.SignupsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return user, nil
}

// SigninInput holds the credentials for authentication.
type SigninInput struct {
	Username string
	Password string
}

// Signin verifies credentials and returns a signed access token. An unknown
// username and a wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, input SigninInput) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.SigninsTotal.WithLabelValues(metrics.ResultDenied).Inc()
			return "", ErrInvalidCredentials
		}
		metrics.SigninsTotal.WithLabelValues(metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to find user",
			"error", oops.In("auth").Code("AUTH_SIGNIN_LOOKUP_FAILED").With("username", input.Username).Wrap(err))
		return "", ErrInternal
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		metrics.SigninsTotal.WithLabelValues(metrics.ResultDenied).Inc()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues(metrics.ResultError).Inc()
		s.logger.ErrorContext(ctx, "failed to issue token",
			"error", oops.In("auth").Code("AUTH_TOKEN_ISSUE_FAILED").With("username", user.Username).Wrap(err))
		return "", ErrInternal
	}

	metrics.SigninsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return token, nil
}

// Me returns the user together with the tasks they own.
func (s *AuthService) Me(ctx context.Context, user *models.User) (*models.User, error) {
	loaded, err := s.userRepo.FindByUsernameWithTasks(ctx, user.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		s.logger.ErrorContext(ctx, "failed to load user with tasks",
			"error", oops.In("auth").Code("AUTH_ME_FAILED").With("username", user.Username).Wrap(err))
		return nil, ErrInternal
	}
	return loaded, nil
}
