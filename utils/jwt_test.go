package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	SetSecret("unit-test-secret")

	token, err := GenerateToken(7, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	SetSecret("unit-test-secret")

	token, err := GenerateToken(7, "admin")
	require.NoError(t, err)

	_, err = VerifyToken(token + "x")
	assert.Error(t, err)

	_, err = VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(1, "editor")
	require.NoError(t, err)

	SetSecret("second-secret")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	SetSecret("")

	_, err := GenerateToken(1, "admin")
	assert.Error(t, err)
}
