package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type Service struct {
	config Config

	logger *zap.Logger
}

func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Enabled reports whether requests must carry a valid token.
func (s *Service) Enabled() bool {
	return len(s.config.SecretKey) > 0
}

// GenerateToken issues a token for subject.
func (s *Service) GenerateToken(subject string, role UserRole) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	claims := NewJWTClaims(subject, s.config.Issuer, role, time.Now().Add(s.config.TokenTTL))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("token issued", zap.String("subject", subject), zap.String("role", string(role)))

	return signed, nil
}

// Validate parses and verifies a token and returns its claims.
func (s *Service) Validate(tokenString string) (*JWTClaims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(_ *jwt.Token) (any, error) {
		return s.config.SecretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
