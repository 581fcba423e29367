package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dikshant1602/wandwrite/core"
	localidentity "github.com/dikshant1602/wandwrite/services/identity/local"
)

func setup(t *testing.T) (*Gate, core.IdentityProvider) {
	t.Helper()
	conf := &core.Config{SecretKey: []byte("test-secret"), SessionTTL: time.Hour}
	provider := localidentity.NewService(conf)
	return NewGate(provider), provider
}

func Test_Gate_LogIn(t *testing.T) {
	gate, provider := setup(t)
	ctx := context.Background()

	_, err := provider.CreateAccount(ctx, "hg@x.com", "alohomora")
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}

	// valid credentials
	sess, err := gate.LogIn(ctx, "HG@x.com", "alohomora") // email is cleaned
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.True(t, gate.CheckStatus(ctx, sess.Token))

	// invalid credentials
	_, err = gate.LogIn(ctx, "hg@x.com", "expelliarmus")
	if assert.Error(t, err) {
		assert.NotEmpty(t, err.Error())
		authErr, ok := core.AuthErrorFrom(err)
		assert.True(t, ok)
		assert.Equal(t, core.AuthErrInvalidCredentials, authErr.Code)
	}

	// unknown account
	_, err = gate.LogIn(ctx, "nobody@x.com", "pw")
	assert.Error(t, err)
}

func Test_Gate_LogOut(t *testing.T) {
	gate, provider := setup(t)
	ctx := context.Background()

	_, err := provider.CreateAccount(ctx, "hg@x.com", "alohomora")
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}

	sess, err := gate.LogIn(ctx, "hg@x.com", "alohomora")
	assert.NoError(t, err)
	assert.True(t, gate.CheckStatus(ctx, sess.Token))

	assert.NoError(t, gate.LogOut(ctx, sess.Token))
	assert.False(t, gate.CheckStatus(ctx, sess.Token))

	// a logged-out token cannot be logged out again
	assert.Error(t, gate.LogOut(ctx, sess.Token))
}

func Test_Gate_CheckStatus(t *testing.T) {
	gate, _ := setup(t)
	ctx := context.Background()

	assert.False(t, gate.CheckStatus(ctx, ""))
	assert.False(t, gate.CheckStatus(ctx, "not-a-session-token"))
}
