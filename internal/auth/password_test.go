package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.NotContains(t, hash, "hunter2")

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	again, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes must be salted")
}

func TestComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := ComparePassword(hash, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ComparePassword(hash, "wrong horse")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ComparePassword("not-a-hash", "x")
	assert.Error(t, err)
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
}
