package core

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNoSession is returned by CurrentSession when the presented token
// does not resolve to a valid session.
var ErrNoSession = errors.New("no current session")

// Session is the provider-issued proof of authentication. The token is
// opaque to this module; it is minted and verified by the provider.
type Session struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// IdentityProvider is the external service that owns credentials and
// sessions (Firebase Auth in production). Failures surface as
// AuthError; messages are shown to users as-is.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, email, password string) (Session, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentSession(ctx context.Context, token string) (Session, error)

	// DeleteAccount compensates a sign-up whose profile write failed.
	DeleteAccount(ctx context.Context, accountID string) error
}
