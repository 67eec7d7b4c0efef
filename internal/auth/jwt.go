package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserRole represents the role of a token holder
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
)

// JWTClaims represents the claims stored in a JWT token
type JWTClaims struct {
	jwt.RegisteredClaims
	Role UserRole `json:"role"`
}

// NewJWTClaims creates a new JWTClaims instance
func NewJWTClaims(subject, issuer string, role UserRole, expiresAt time.Time) *JWTClaims {
	now := time.Now()

	return &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Role: role,
	}
}
