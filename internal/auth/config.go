package auth

import "time"

type Config struct {
	// SecretKey signs and verifies tokens. Authentication is disabled when
	// it is empty.
	SecretKey []byte
	Issuer    string
	TokenTTL  time.Duration
}
