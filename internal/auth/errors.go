package auth

import "errors"

var (
	ErrDisabled     = errors.New("authentication is disabled")
	ErrTokenMissing = errors.New("missing bearer token")
	ErrTokenInvalid = errors.New("invalid token")
)
