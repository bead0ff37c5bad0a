package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHasher() *PasswordHasher {
	// Small parameters keep the test fast
	return NewPasswordHasherWithParams(&Argon2Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

func TestHashAndVerify(t *testing.T) {
	h := testHasher()

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	match, err := h.Verify("secret123", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = h.Verify("wrongpass", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHash_EmptyPassword(t *testing.T) {
	h := testHasher()

	_, err := h.Hash("")
	assert.Error(t, err)
}

func TestHash_UniqueSalts(t *testing.T) {
	h := testHasher()

	hash1, err := h.Hash("secret123")
	require.NoError(t, err)
	hash2, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestVerify_InvalidHashFormat(t *testing.T) {
	h := testHasher()

	_, err := h.Verify("secret123", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestVerifyOrError(t *testing.T) {
	h := testHasher()

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NoError(t, h.VerifyOrError("secret123", hash))
	assert.ErrorIs(t, h.VerifyOrError("wrongpass", hash), ErrMismatchedHash)
}
