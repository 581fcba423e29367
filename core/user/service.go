package user

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/dikshant1602/wandwrite/core"
)

var ErrNotFound = errors.New("user not found")

// ProfileWriteError signals that the profile document could not be
// stored. By the time it surfaces, the freshly created account has
// already been deleted again.
type ProfileWriteError struct {
	Err error
}

func NewProfileWriteError(err error) error {
	return &ProfileWriteError{Err: err}
}

func (err ProfileWriteError) Error() string {
	return fmt.Sprintf("failed to create user document: %v", err.Err)
}

func (err ProfileWriteError) Unwrap() error { return err.Err }

type (
	Repository interface {
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
	}

	// Service provisions accounts: it turns a successful
	// identity-provider sign-up into a stored profile document.
	Service struct {
		provider core.IdentityProvider
		repo     Repository
		tokens   core.DeviceTokenSource
		logger   core.Logger
	}
)

func NewService(provider core.IdentityProvider, repo Repository, tokens core.DeviceTokenSource, logger core.Logger) *Service {
	return &Service{
		provider: provider,
		repo:     repo,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignUp creates the identity-provider account, then writes the
// initial profile document keyed by the new account id. If the profile
// write fails the account is deleted again so no authenticated
// identity is left without a profile.
func (svc *Service) SignUp(ctx context.Context, nu NewUser) (User, core.Session, error) {
	sess, err := svc.provider.CreateAccount(ctx, nu.Email, nu.Password)
	if err != nil {
		if authErr, ok := core.AuthErrorFrom(err); ok && authErr.Code == core.AuthErrAccountExists {
			return User{}, core.Session{}, core.NewValidationError(authErr, core.FieldError{Field: "email", Error: authErr.Error()})
		}
		return User{}, core.Session{}, errors.Wrap(err, "creating account")
	}

	usr := User{
		ID:                 sess.AccountID,
		Name:               nu.Name,
		IsStudent:          true,
		SubjectList:        []string{},
		NotificationTokens: []string{},
	}

	// best-effort: a missing device token never blocks sign-up
	if token, err := svc.tokens.FetchDeviceToken(ctx); err != nil {
		svc.logger.Warn(fmt.Sprintf("fetching device token: %v", err))
	} else if token != "" {
		usr.NotificationTokens = append(usr.NotificationTokens, token)
	}

	usr, err = svc.repo.CreateUser(ctx, usr)
	if err != nil {
		if delErr := svc.provider.DeleteAccount(ctx, sess.AccountID); delErr != nil {
			svc.logger.Error(fmt.Sprintf("compensating account %s after failed profile write: %v", sess.AccountID, delErr), delErr)
		}
		return User{}, core.Session{}, NewProfileWriteError(err)
	}
	return usr, sess, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

// Approve lifts the sign-up gate on elevated actions.
func (svc *Service) Approve(ctx context.Context, id string) (User, error) {
	usr, err := svc.repo.GetUserByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	usr.IsApproved = true
	return svc.repo.UpdateUser(ctx, usr)
}

// ElevateToClassRepresentative marks the user as a reviewer. The role
// only becomes effective once the account is approved.
func (svc *Service) ElevateToClassRepresentative(ctx context.Context, id string) (User, error) {
	usr, err := svc.repo.GetUserByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	usr.IsClassRep = true
	return svc.repo.UpdateUser(ctx, usr)
}
