package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	provider := NewTokenProvider("test-secret", time.Hour)
	userId := uuid.New()

	token, expiresAt, err := provider.Issue(userId, "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	identity, err := provider.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userId, identity.UserId)
	assert.Equal(t, "Alice", identity.Name)
}

func TestTokenExpired(t *testing.T) {
	provider := NewTokenProvider("test-secret", -time.Minute)

	token, _, err := provider.Issue(uuid.New(), "Alice")
	require.NoError(t, err)

	_, err = provider.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenProvider("secret-one", time.Hour)
	verifier := NewTokenProvider("secret-two", time.Hour)

	token, _, err := issuer.Issue(uuid.New(), "Alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTampered(t *testing.T) {
	provider := NewTokenProvider("test-secret", time.Hour)

	token, _, err := provider.Issue(uuid.New(), "Alice")
	require.NoError(t, err)

	_, err = provider.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = provider.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
