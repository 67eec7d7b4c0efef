package auth_test

import (
	"testing"
	"time"

	"github.com/Marat1506/hadj-admin/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newService(t *testing.T, secret string, ttl time.Duration) *auth.Service {
	t.Helper()

	return auth.NewService(auth.Config{
		SecretKey: []byte(secret),
		Issuer:    "hadj-admin",
		TokenTTL:  ttl,
	}, zaptest.NewLogger(t))
}

func TestService_RoundTrip(t *testing.T) {
	svc := newService(t, "s3cret", time.Hour)
	require.True(t, svc.Enabled())

	token, err := svc.GenerateToken("editor@example.com", auth.UserRoleEditor)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", claims.Subject)
	assert.Equal(t, auth.UserRoleEditor, claims.Role)
	assert.Equal(t, "hadj-admin", claims.Issuer)
}

func TestService_Validate(t *testing.T) {
	svc := newService(t, "s3cret", time.Hour)

	_, err := svc.Validate("")
	assert.ErrorIs(t, err, auth.ErrTokenMissing)

	_, err = svc.Validate("not-a-token")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)

	other, err := newService(t, "other", time.Hour).GenerateToken("x", auth.UserRoleAdmin)
	require.NoError(t, err)
	_, err = svc.Validate(other)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid, "wrong signature")

	expired, err := newService(t, "s3cret", -time.Minute).GenerateToken("x", auth.UserRoleAdmin)
	require.NoError(t, err)
	_, err = svc.Validate(expired)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid, "expired")
}

func TestService_Disabled(t *testing.T) {
	svc := newService(t, "", time.Hour)
	assert.False(t, svc.Enabled())

	_, err := svc.GenerateToken("x", auth.UserRoleAdmin)
	assert.ErrorIs(t, err, auth.ErrDisabled)
}
