package jwt

import (
	"strings"
	"testing"
	"time"

	"hms-backend/config"
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "a@x.com", entity.RoleDoctor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, entity.RoleDoctor, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestService(-time.Second)

	token, err := svc.GenerateToken(uuid.New(), "a@x.com", entity.RolePatient)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken(uuid.New(), "a@x.com", entity.RoleAdmin)
	require.NoError(t, err)

	// Flip one byte of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.ValidateToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken(uuid.New(), "a@x.com", entity.RolePatient)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", Expiry: time.Hour})
	claims, err := other.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := svc.ValidateToken(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
