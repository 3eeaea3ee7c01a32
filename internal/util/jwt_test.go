package util

import (
	"testing"
	"time"

	"learning_portal_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	user := &model.User{Role: model.Teacher}
	user.ID = "user-1"

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, model.Teacher, claims.Role)
}

func TestJWT_Rejections(t *testing.T) {
	user := &model.User{Role: model.Student}
	user.ID = "user-1"

	expired, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	require.Error(t, err)
	assert.True(t, IsTokenExpired(err))

	valid, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(valid, "other-secret")
	require.Error(t, err)
	assert.False(t, IsTokenExpired(err))

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseJWT(unsigned, "secret")
	assert.Error(t, err)

	_, err = ParseJWT("garbage", "secret")
	assert.Error(t, err)
}

func TestResetToken(t *testing.T) {
	token, hashed, err := NewResetToken()
	require.NoError(t, err)
	assert.Len(t, token, 40)
	assert.Len(t, hashed, 64)
	assert.Equal(t, hashed, HashResetToken(token))
	assert.NotEqual(t, token, hashed)

	other, _, err := NewResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
