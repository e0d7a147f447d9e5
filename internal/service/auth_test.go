package service

import (
	"context"
	"testing"
	"time"

	"gig-marketplace-api/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestEnv() (*memStore, *AuthService, *security.TokenProvider) {
	store := newMemStore()
	repos := newFakeRepositories(store)
	tokens := security.NewTokenProvider("test-secret", time.Hour)

	return store, NewAuthService(repos, tokens), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	_, auth, tokens := newAuthTestEnv()
	ctx := context.Background()

	user, token, expiresAt, err := auth.Register(ctx, "Alice", "alice@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, expiresAt.After(time.Now()))

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Id, identity.UserId.String())
	assert.Equal(t, "Alice", identity.Name)

	loggedIn, token, _, err := auth.Login(ctx, "alice@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, user.Id, loggedIn.Id)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, auth, _ := newAuthTestEnv()
	ctx := context.Background()

	_, _, _, err := auth.Register(ctx, "Alice", "alice@example.com", "s3cret!")
	require.NoError(t, err)

	_, _, _, err = auth.Register(ctx, "Other Alice", "alice@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailAlreadyTaken)
	assert.Equal(t, KindInvalidState, KindOf(err))
}

func TestLoginWrongPassword(t *testing.T) {
	_, auth, _ := newAuthTestEnv()
	ctx := context.Background()

	_, _, _, err := auth.Register(ctx, "Alice", "alice@example.com", "s3cret!")
	require.NoError(t, err)

	_, _, _, err = auth.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	_, auth, _ := newAuthTestEnv()

	_, _, _, err := auth.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserById(t *testing.T) {
	_, auth, _ := newAuthTestEnv()
	ctx := context.Background()

	user, _, _, err := auth.Register(ctx, "Alice", "alice@example.com", "s3cret!")
	require.NoError(t, err)

	found, err := auth.GetUserById(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = auth.GetUserById(ctx, "c3b5fb26-97a6-4f8b-9b6e-57d94bb0e9ef")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
