package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	a := New()
	a.Enable("test-secret")

	tok, err := a.CreateToken("alice", "alice@example.com")
	require.NoError(t, err)

	ctx, err := a.ValidateToken(tok)
	require.NoError(t, err)
	require.True(t, ctx.Authenticated)
	require.Equal(t, "alice", ctx.UID)
	require.Equal(t, "alice@example.com", ctx.Email)
}

func TestDisabledAuthReturnsErrAuthDisabled(t *testing.T) {
	a := New()
	_, err := a.CreateToken("alice", "")
	require.ErrorIs(t, err, ErrAuthDisabled)
	_, err = a.ValidateToken("whatever")
	require.ErrorIs(t, err, ErrAuthDisabled)
}

func TestExpiredTokenRejected(t *testing.T) {
	a := New()
	a.Enable("test-secret")
	a.ttl = -time.Second

	tok, err := a.CreateToken("alice", "")
	require.NoError(t, err)

	_, err = a.ValidateToken(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestWrongSecretRejected(t *testing.T) {
	a := New()
	a.Enable("secret-a")
	tok, err := a.CreateToken("alice", "")
	require.NoError(t, err)

	b := New()
	b.Enable("secret-b")
	_, err = b.ValidateToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}
