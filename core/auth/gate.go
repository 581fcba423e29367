// Package auth gates access to application features on the presence of
// a valid identity-provider session.
package auth

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dikshant1602/wandwrite/core"
)

// Gate tracks nothing itself: authentication status is re-derived from
// the provider on every call, so there is no local expiry logic and no
// credential caching.
type Gate struct {
	provider core.IdentityProvider
}

func NewGate(provider core.IdentityProvider) *Gate {
	return &Gate{provider: provider}
}

// CheckStatus reports whether the token resolves to a valid session.
// It has no side effects beyond the provider query.
func (g *Gate) CheckStatus(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	_, err := g.provider.CurrentSession(ctx, token)
	return err == nil
}

// LogIn submits credentials to the provider. No retry is attempted;
// the provider's message is surfaced to the caller on failure.
func (g *Gate) LogIn(ctx context.Context, email, password string) (core.Session, error) {
	sess, err := g.provider.SignIn(ctx, core.CleanString(email, true /* lower */), password)
	if err != nil {
		return core.Session{}, errors.Wrap(err, "signing in")
	}
	return sess, nil
}

// LogOut invalidates the current session. On failure the session is
// left as-is and the error is surfaced.
func (g *Gate) LogOut(ctx context.Context, token string) error {
	if err := g.provider.SignOut(ctx, token); err != nil {
		return errors.Wrap(err, "signing out")
	}
	return nil
}
