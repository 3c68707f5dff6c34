package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("p1")
	require.NoError(t, err)

	assert.NotEqual(t, "p1", digest)
	assert.NoError(t, h.Compare(digest, "p1"))
	assert.ErrorIs(t, h.Compare(digest, "p2"), ErrPasswordMismatch)
}

func TestPasswordHasher_SaltedDigests(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	d1, err := h.Hash("same-password")
	require.NoError(t, err)
	d2, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2, "equal plaintexts must not produce equal digests")
}

func TestPasswordHasher_DefaultCost(t *testing.T) {
	h := NewPasswordHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))

	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestPasswordHasher_LegacyDigest(t *testing.T) {
	sum := sha256.Sum256([]byte("p1"))
	legacy := hex.EncodeToString(sum[:])
	h := NewPasswordHasher(bcrypt.MinCost)

	assert.NoError(t, h.Compare(legacy, "p1"))
	assert.ErrorIs(t, h.Compare(legacy, "p2"), ErrPasswordMismatch)
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	err := h.Compare("not-a-digest", "p1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestIsLegacyDigest(t *testing.T) {
	assert.True(t, isLegacyDigest(strings.Repeat("a1", 32)))
	assert.False(t, isLegacyDigest(strings.Repeat("A1", 32)), "uppercase hex is not produced by the legacy format")
	assert.False(t, isLegacyDigest(strings.Repeat("a", 63)))
	assert.False(t, isLegacyDigest("$2a$10$"+strings.Repeat("x", 53)))
}
