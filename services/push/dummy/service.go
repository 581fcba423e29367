// Package dummypush provides in-process push doubles for DEV and tests.
package dummypush

import (
	"context"
	"sync"

	"github.com/dikshant1602/wandwrite/core"
)

type TokenSource struct {
	Token string
	Err   error
}

var _ core.DeviceTokenSource = (*TokenSource)(nil)

// NewTokenSource returns a source that always yields `token` (which
// may be empty, matching a device without push entitlements).
func NewTokenSource(token string) *TokenSource {
	return &TokenSource{Token: token}
}

func (src *TokenSource) FetchDeviceToken(context.Context) (string, error) {
	return src.Token, src.Err
}

// Notifier records every notification instead of delivering it.
type Notifier struct {
	mu   sync.Mutex
	sent []core.Notification
}

var _ core.Notifier = (*Notifier)(nil)

func NewNotifier() *Notifier { return &Notifier{} }

func (n *Notifier) Send(_ context.Context, notif core.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notif)
	return nil
}

func (n *Notifier) Sent() []core.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]core.Notification, len(n.sent))
	copy(out, n.sent)
	return out
}
