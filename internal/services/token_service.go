package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yukikurage/task-tracker-api/internal/constants"
	"github.com/yukikurage/task-tracker-api/internal/metrics"
	"github.com/yukikurage/task-tracker-api/internal/utils"
)

// TokenClaims is the identity asserted by a session token
type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-bounded session tokens.
// Verification is stateless; there is no server-side session table.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  utils.Clock
}

// NewTokenService creates a TokenService signing with secret
func NewTokenService(secret string, clock utils.Clock) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    constants.TokenTTL,
		clock:  clock,
	}
}

// Issue signs a token for username valid for one hour from now
func (s *TokenService) Issue(username string) (string, error) {
	now := s.clock.Now()
	claims := TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	metrics.AccessTokensIssued.Inc()
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Every failure is reported as ErrUnauthorized.
func (s *TokenService) Verify(tokenString string) (TokenClaims, error) {
	var claims TokenClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !parsed.Valid {
		metrics.AuthenticationFailures.WithLabelValues(failureReason(err)).Inc()
		return TokenClaims{}, ErrUnauthorized
	}

	if claims.Username == "" {
		metrics.AuthenticationFailures.WithLabelValues("missing_claim").Inc()
		return TokenClaims{}, ErrUnauthorized
	}

	return claims, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	default:
		return "invalid"
	}
}
