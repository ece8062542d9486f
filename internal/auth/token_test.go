package auth

import (
	"testing"
	"time"

	"schedcast/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("")
	assert.Error(t, err)
}

func TestTokenRoundtrip(t *testing.T) {
	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	identity := Identity{UserID: 42, Email: "test@example.com", Role: models.RoleAdmin}
	token, err := tm.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, got.UserID)
	assert.Equal(t, identity.Email, got.Email)
	assert.Equal(t, identity.Role, got.Role)
}

func TestVerify_ExpiredToken(t *testing.T) {
	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	// Issued long enough ago that the TTL has fully elapsed
	token, err := tm.issueAt(Identity{UserID: 1, Email: "a@b.co", Role: models.RoleUser},
		time.Now().Add(-TokenTTL-time.Hour))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_InvalidTokens(t *testing.T) {
	tm, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	other, err := NewTokenManager("different-secret")
	require.NoError(t, err)

	wrongSecret, err := other.Issue(Identity{UserID: 1, Email: "a@b.co", Role: models.RoleUser})
	require.NoError(t, err)

	valid, err := tm.Issue(Identity{UserID: 1, Email: "a@b.co", Role: models.RoleUser})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong secret", wrongSecret},
		{"tampered", valid + "aaaa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.Verify(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
