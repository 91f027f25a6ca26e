package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("pass1234")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "pass1234")

	assert.True(t, h.Verify(hash, "pass1234"))
	assert.False(t, h.Verify(hash, "wrongpass"))
}

func TestHasher_SamePlaintextDifferentHashes(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("pass1234")
	require.NoError(t, err)
	second, err := h.Hash("pass1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify(first, "pass1234"))
	assert.True(t, h.Verify(second, "pass1234"))
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher()

	assert.False(t, h.Verify("", "pass1234"))
	assert.False(t, h.Verify("not-a-bcrypt-hash", "pass1234"))
}
