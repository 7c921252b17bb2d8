package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	digest, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", digest)

	ok, err := VerifyPassword("password123", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	// Salted digests differ but both verify
	assert.NotEqual(t, first, second)

	ok, err := VerifyPassword("password123", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	digest, err := HashPassword("password123")
	require.NoError(t, err)

	ok, err := VerifyPassword("wrong-password", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	ok, err := VerifyPassword("password123", "not-a-bcrypt-digest")
	assert.Error(t, err)
	assert.False(t, ok)
}
