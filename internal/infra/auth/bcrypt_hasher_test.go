package auth

import (
	"testing"

	"accounts/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	password := "same password twice"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Each hash embeds a fresh salt, so the outputs differ
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)
	password := "correct horse battery staple"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CostFloor(t *testing.T) {
	// Costs below the floor are raised to it
	hasher := newBcryptHasherWithCost(4)
	assert.Equal(t, minCost, hasher.cost)

	// Configured costs above the floor are kept
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 12}}
	configured := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, 12, configured.cost)
}

func TestBcryptHasher_HashUsesConfiguredCost(t *testing.T) {
	hasher := newBcryptHasherWithCost(10)

	hash, err := hasher.Hash("correct horse battery staple")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 10, cost)
}
