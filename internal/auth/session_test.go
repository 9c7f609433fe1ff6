// internal/auth/session_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	Init()

	token, err := CreateJWT("7e6a2c5e-4a6e-4c52-a3a4-111111111111")
	require.NoError(t, err)

	sub, err := AuthenticateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "7e6a2c5e-4a6e-4c52-a3a4-111111111111", sub)
}

func TestJWTRejectsGarbage(t *testing.T) {
	Init()

	_, err := AuthenticateJWT("not.a.token")
	assert.Error(t, err)

	_, err = AuthenticateJWT("")
	assert.Error(t, err)
}
