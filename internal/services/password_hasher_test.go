package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_SaltPerCall(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	second, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("Passw0rd!", first))
	assert.True(t, hasher.Verify("Passw0rd!", second))
}

func TestBcryptHasher_RejectsOtherPasswords(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)

	for _, candidate := range []string{"passw0rd!", "Passw0rd", "Passw0rd!!", ""} {
		assert.False(t, hasher.Verify(candidate, hash), candidate)
	}
	assert.False(t, hasher.Verify("Passw0rd!", "not-a-hash"))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}

func TestBcryptHasher_LongMultiBytePassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	password := "Pa1" + strings.Repeat("日", 29)
	require.Greater(t, len(password), 72)

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Verify(password, hash))
	assert.False(t, hasher.Verify("Pa1"+strings.Repeat("月", 29), hash))
}
