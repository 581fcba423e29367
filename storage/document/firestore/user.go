package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dikshant1602/wandwrite/core/user"
)

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) user.Repository {
	return &userRepository{client: client}
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	if _, err := repo.client.Collection(usersCollection).Doc(usr.ID).Create(ctx, usr); err != nil {
		return user.User{}, wrapErr(err, "creating user document")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	snap, err := repo.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, wrapErr(err, "reading user document")
	}

	var usr user.User
	if err = snap.DataTo(&usr); err != nil {
		return user.User{}, errors.Wrap(err, "decoding user document")
	}
	usr.ID = snap.Ref.ID
	return usr, nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	if _, err := repo.client.Collection(usersCollection).Doc(usr.ID).Set(ctx, usr); err != nil {
		return user.User{}, wrapErr(err, "writing user document")
	}
	return usr, nil
}
