package localidentity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dikshant1602/wandwrite/core"
)

func newTestService() core.IdentityProvider {
	conf := &core.Config{SecretKey: []byte("test-secret"), SessionTTL: time.Hour}
	return NewService(conf)
}

func Test_service_CreateAccount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sess, err := svc.CreateAccount(ctx, "hg@x.com", "alohomora")
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.AccountID)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "hg@x.com", sess.Email)

	// duplicate email
	_, err = svc.CreateAccount(ctx, "hg@x.com", "other")
	if assert.Error(t, err) {
		authErr, ok := core.AuthErrorFrom(err)
		assert.True(t, ok)
		assert.Equal(t, core.AuthErrAccountExists, authErr.Code)
	}
}

func Test_service_SignIn(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, "hg@x.com", "alohomora")
	assert.NoError(t, err)

	sess, err := svc.SignIn(ctx, "hg@x.com", "alohomora")
	assert.NoError(t, err)
	assert.Equal(t, created.AccountID, sess.AccountID)
	assert.NotEmpty(t, sess.Token)

	// wrong password and unknown email both surface the same code
	for _, creds := range [][2]string{{"hg@x.com", "expelliarmus"}, {"nobody@x.com", "alohomora"}} {
		_, err = svc.SignIn(ctx, creds[0], creds[1])
		if assert.Error(t, err) {
			authErr, ok := core.AuthErrorFrom(err)
			assert.True(t, ok)
			assert.Equal(t, core.AuthErrInvalidCredentials, authErr.Code)
		}
	}
}

func Test_service_CurrentSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sess, err := svc.CreateAccount(ctx, "hg@x.com", "alohomora")
	assert.NoError(t, err)

	got, err := svc.CurrentSession(ctx, sess.Token)
	assert.NoError(t, err)
	assert.Equal(t, sess.AccountID, got.AccountID)
	assert.Equal(t, "hg@x.com", got.Email)

	_, err = svc.CurrentSession(ctx, "not-a-token")
	assert.Equal(t, core.ErrNoSession, err)
}

func Test_service_SignOut(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sess, err := svc.CreateAccount(ctx, "hg@x.com", "alohomora")
	assert.NoError(t, err)

	assert.NoError(t, svc.SignOut(ctx, sess.Token))

	// the session is gone
	_, err = svc.CurrentSession(ctx, sess.Token)
	assert.Equal(t, core.ErrNoSession, err)

	// signing out again fails
	assert.Equal(t, core.ErrNoSession, svc.SignOut(ctx, sess.Token))

	// a fresh sign-in mints a new, valid session
	sess, err = svc.SignIn(ctx, "hg@x.com", "alohomora")
	assert.NoError(t, err)
	_, err = svc.CurrentSession(ctx, sess.Token)
	assert.NoError(t, err)
}

func Test_service_DeleteAccount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sess, err := svc.CreateAccount(ctx, "hg@x.com", "alohomora")
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteAccount(ctx, sess.AccountID))
	assert.Error(t, svc.DeleteAccount(ctx, sess.AccountID))

	// outstanding tokens no longer resolve
	_, err = svc.CurrentSession(ctx, sess.Token)
	assert.Equal(t, core.ErrNoSession, err)

	_, err = svc.SignIn(ctx, "hg@x.com", "alohomora")
	assert.Error(t, err)
}
