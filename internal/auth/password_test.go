package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
}

func TestCheckPassword_MalformedHashIsNonMatch(t *testing.T) {
	assert.False(t, CheckPassword("", "password123"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "password123"))
	assert.False(t, CheckPassword("$2a$10$garbage", "password123"))
}

func TestHashPassword_SaltsPerRecord(t *testing.T) {
	a, err := HashPassword("password123")
	assert.NoError(t, err)
	b, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
