package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusboard/campusboard/internal/domain"
)

var secretKey = "testJwtKey"
var user = domain.User{Id: "u-123", StudentId: "A123", Email: "test@campus.edu"}

func TestDecodeTokenCorrect(t *testing.T) {
	j := New(secretKey, 10*time.Second)
	token, err := j.NewToken(user)
	require.NoError(t, err)

	decoded, err := j.DecodeToken(token)
	require.NoError(t, err)

	claims, ok := decoded.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u-123", claims["uid"])
	assert.Equal(t, "A123", claims["sid"])
}

func TestDecodeTokenExpired(t *testing.T) {
	j := New(secretKey, -time.Second)
	token, err := j.NewToken(user)
	require.NoError(t, err)

	_, err = j.DecodeToken(token)
	assert.Error(t, err, "we shouldn't decode expired token")
}

func TestDecodeTokenInvalidSecretKey(t *testing.T) {
	token, err := New(secretKey, 10*time.Second).NewToken(user)
	require.NoError(t, err)

	_, err = New("invalidSecret", 10*time.Second).DecodeToken(token)
	assert.Error(t, err, "we shouldn't decode token with invalid secret")
}

func TestTokenExpiryMatchesTTL(t *testing.T) {
	ttl := 7 * 24 * time.Hour
	token, err := New(secretKey, ttl).NewToken(user)
	require.NoError(t, err)

	decoded, err := New(secretKey, ttl).DecodeToken(token)
	require.NoError(t, err)

	claims := decoded.Claims.(jwt.MapClaims)
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	expected := time.Now().Add(ttl).Unix()
	assert.InDelta(t, expected, int64(exp), 5)
}
