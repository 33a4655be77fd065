package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenPairCarriesRoleAndUsername(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Minute, time.Hour)

	pair, err := m.GenerateTokenPair(7, "maria", "editor")
	require.NoError(t, err)

	access, err := m.ValidateTokenType(pair.Access, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(7), access.UserID)
	assert.Equal(t, "maria", access.Username)
	assert.Equal(t, "editor", access.Role)
	assert.Equal(t, "7", access.Subject)

	refresh, err := m.ValidateTokenType(pair.Refresh, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "editor", refresh.Role)
	assert.Equal(t, pair.RefreshClaims.ID, refresh.ID)
	assert.NotEqual(t, access.ID, refresh.ID)
	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt.Time))
}

func TestValidateTokenTypeMismatch(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Minute, time.Hour)
	pair, err := m.GenerateTokenPair(1, "a", "viewer")
	require.NoError(t, err)

	_, err = m.ValidateTokenType(pair.Access, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrUnexpectedTokenType)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTManager("one", "HS256", time.Minute, time.Hour)
	verifier := NewJWTManager("two", "HS256", time.Minute, time.Hour)

	token, err := issuer.GenerateAccessToken(1, "a", "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", "HS256", -time.Minute, time.Hour)
	token, err := m.GenerateAccessToken(1, "a", "admin")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsOtherAlgorithm(t *testing.T) {
	hs512 := NewJWTManager("secret", "HS512", time.Minute, time.Hour)
	hs256 := NewJWTManager("secret", "HS256", time.Minute, time.Hour)

	token, err := hs512.GenerateAccessToken(1, "a", "admin")
	require.NoError(t, err)

	_, err = hs256.ValidateToken(token)
	assert.Error(t, err)
}
