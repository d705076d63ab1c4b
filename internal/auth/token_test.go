package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestGeneratePair_AccessClaims(t *testing.T) {
	m := newTestManager()

	pair, refreshExpiry, err := m.GeneratePair("user-1", "qost-abc", "user", "new")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), refreshExpiry, 5*time.Second)

	claims, err := m.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "qost-abc", claims.Username)
	assert.Equal(t, "user", claims.UserState)
	assert.Equal(t, "new", claims.AuthStage)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestGeneratePair_RefreshClaims(t *testing.T) {
	m := newTestManager()

	pair, _, err := m.GeneratePair("user-2", "qost-def", "user", "done")
	require.NoError(t, err)

	claims, err := m.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.Subject)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	// Refresh tokens carry identity only, no profile claims.
	assert.Empty(t, claims.Username)
}

func TestParse_RejectsWrongTokenType(t *testing.T) {
	m := newTestManager()

	pair, _, err := m.GeneratePair("user-3", "qost-ghi", "user", "new")
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = m.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewTokenManager("other-secret", 15*time.Minute, 7*24*time.Hour)

	pair, _, err := m.GeneratePair("user-4", "qost-jkl", "user", "new")
	require.NoError(t, err)

	_, err = other.ParseAccess(pair.AccessToken)
	assert.Error(t, err)
}

func TestParse_RejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute, 7*24*time.Hour)

	pair, _, err := m.GeneratePair("user-5", "qost-mno", "user", "new")
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.AccessToken)
	assert.Error(t, err)
}

func TestParse_RejectsGarbage(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseAccess("not.a.token")
	assert.Error(t, err)

	_, err = m.ParseRefresh("")
	assert.Error(t, err)
}
