package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.NoError(t, CheckPassword("s3nha-forte", hash))
	assert.Error(t, CheckPassword("errada", hash))
}

func TestIsBcryptHash(t *testing.T) {
	assert.False(t, IsBcryptHash("admin123"))
	assert.False(t, IsBcryptHash("$2a$short"))
}
