// Package firestoredb adapts the Cloud Firestore document database,
// the store the production deployment runs on.
package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dikshant1602/wandwrite/core"
)

const (
	usersCollection    = "users"
	requestsCollection = "requests"
)

func Open(ctx context.Context, conf *core.Config) (*firestore.Client, error) {
	var opts []option.ClientOption
	if conf.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.Firebase.CredentialsFile))
	}
	client, err := firestore.NewClient(ctx, conf.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "opening firestore client")
	}
	return client, nil
}

// wrapErr wraps a store failure. Rejected credentials never heal
// without a restart, so they bounce the process via the shutdown
// sentinel instead of surfacing as a plain error.
func wrapErr(err error, msg string) error {
	if status.Code(err) == codes.Unauthenticated {
		return core.NewShutdownError(msg + ": store credentials rejected")
	}
	return errors.Wrap(err, msg)
}
