package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "secret123", hash, "hash must never equal the plaintext")
	assert.True(t, h.Verify("secret123", hash))
	assert.False(t, h.Verify("wrong-password", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := New(bcrypt.MinCost)

	h1, err := h.Hash("secret123")
	require.NoError(t, err)
	h2, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestNew_InvalidCostFallsBackToDefault(t *testing.T) {
	h := New(99)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.True(t, h.Verify("secret123", hash))
}
