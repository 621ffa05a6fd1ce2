package serverutils

import (
	"testing"
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	userId := uuid.New()
	signed, err := SignToken(jwt.MapClaims{
		"user_id":  userId.String(),
		"username": "alice",
		"role":     "customer",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	claims, err := VerifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userId, claims.UserId)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "customer", claims.Role)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	_, err := VerifyToken("not-a-token")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	signed, err := SignToken(jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = VerifyToken(signed)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret_a")
	signed, err := SignToken(jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret_b")
	_, err = VerifyToken(signed)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}

func TestVerifyTokenRequiresUserId(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	signed, err := SignToken(jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, err = VerifyToken(signed)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}
