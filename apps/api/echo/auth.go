package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dikshant1602/wandwrite/core"
	"github.com/dikshant1602/wandwrite/core/user"
)

var (
	contextSessionKey = "session"
	contextUserKey    = "user"

	errSessionNotInCtx = errors.New("session not found in echo.Context")
)

// sessionMiddleware resolves the bearer token against the identity
// provider on every request; nothing is cached locally.
func sessionMiddleware(provider core.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				return errUnauthorized
			}
			sess, err := provider.CurrentSession(ctx.Request().Context(), token)
			if err != nil {
				return errUnauthorized
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func getContextSession(ctx echo.Context) (core.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(core.Session); ok {
		return sess, nil
	}
	return core.Session{}, errSessionNotInCtx
}

func getContextUser(ctx echo.Context, svc *user.Service) (user.User, error) {
	if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
		return usr, nil
	}

	sess, err := getContextSession(ctx)
	if err != nil {
		return user.User{}, err
	}
	usr, err := svc.GetByID(ctx.Request().Context(), sess.AccountID)
	if err != nil {
		return user.User{}, errors.Wrap(err, "finding user by ID")
	}
	ctx.Set(contextUserKey, usr)
	return usr, nil
}

// requireActionMiddleware loads the caller's profile and enforces the
// role-derived permission for the given action.
func requireActionMiddleware(svc *user.Service, action user.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := getContextUser(ctx, svc)
			if err != nil {
				if errors.Cause(err) == user.ErrNotFound {
					return errHttpForbidden
				}
				return err
			}
			if !usr.Can(action) {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}
