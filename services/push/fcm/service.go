// Package fcmpush delivers notifications over Firebase Cloud Messaging.
package fcmpush

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/dikshant1602/wandwrite/core"
)

type notifier struct {
	client *messaging.Client
}

var _ core.Notifier = (*notifier)(nil)

func NewNotifier(ctx context.Context, conf *core.Config) (core.Notifier, error) {
	var opts []option.ClientOption
	if conf.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initializing firebase app")
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing messaging client")
	}
	return &notifier{client: client}, nil
}

func (n *notifier) Send(ctx context.Context, notif core.Notification) error {
	note := &messaging.Notification{Title: notif.Title, Body: notif.Body}

	if len(notif.Tokens) == 0 {
		if notif.Topic == "" {
			return nil
		}
		_, err := n.client.Send(ctx, &messaging.Message{Topic: notif.Topic, Notification: note})
		return errors.Wrap(err, "sending topic notification")
	}

	for _, token := range notif.Tokens {
		if _, err := n.client.Send(ctx, &messaging.Message{Token: token, Notification: note}); err != nil {
			return errors.Wrapf(err, "sending notification to token %s", token)
		}
	}
	return nil
}
