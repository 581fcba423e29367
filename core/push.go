package core

import "context"

// DeviceTokenSource yields the push token to attach to a new profile.
// Fetching is best-effort: a failure never blocks sign-up.
type DeviceTokenSource interface {
	FetchDeviceToken(ctx context.Context) (string, error)
}

type Notification struct {
	Title  string
	Body   string
	Topic  string
	Tokens []string
}

// Notifier delivers push notifications (FCM in production).
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
