package services_test

import (
	"testing"
	"time"

	"autoservice-backend/internal/config"
	"autoservice-backend/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

func TestAuthService_LoginWithPlainPassword(t *testing.T) {
	auth, err := services.NewAuthService(&config.Config{
		StaffPassword: "letmein",
		JWTSecret:     testSecret,
		JWTTTL:        time.Hour,
	})
	require.NoError(t, err)

	tokenString, expiresAt, err := auth.Login("letmein")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, services.StaffSubject, claims["sub"])
	assert.Equal(t, "staff", claims["role"])
}

func TestAuthService_LoginWithHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth, err := services.NewAuthService(&config.Config{
		StaffPasswordHash: string(hash),
		JWTSecret:         testSecret,
	})
	require.NoError(t, err)

	_, _, err = auth.Login("s3cret")
	assert.NoError(t, err)

	_, _, err = auth.Login("wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_RejectsMalformedHash(t *testing.T) {
	_, err := services.NewAuthService(&config.Config{
		StaffPasswordHash: "plain-text",
		JWTSecret:         testSecret,
	})
	assert.Error(t, err)
}
