package auth

import (
	"testing"

	"board/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)
	second, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	// bcrypt salts each hash, so equal inputs produce distinct hashes.
	assert.NotEqual(t, first, second)
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	hasher := NewSHA256Hasher()

	first := hasher.Hash("client-secret-value")
	second := hasher.Hash("client-secret-value")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestSHA256Hasher_DistinctInputs(t *testing.T) {
	hasher := NewSHA256Hasher()

	// A one character change must produce an unrelated digest.
	assert.NotEqual(t, hasher.Hash("client-secret-value"), hasher.Hash("client-secret-valuf"))
}
