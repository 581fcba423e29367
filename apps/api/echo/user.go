package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dikshant1602/wandwrite/core"
	"github.com/dikshant1602/wandwrite/core/user"
)

type authApi struct {
	deps ServerDeps
}

func registerAuthAPI(g *echo.Group, deps ServerDeps) {
	api := authApi{deps: deps}

	ag := g.Group("/auth")
	ag.POST("/signup", api.signup)
	ag.POST("/login", api.login)
	ag.POST("/logout", api.logout)
	ag.GET("/status", api.status)
}

func registerUserAPI(g *echo.Group, session echo.MiddlewareFunc, deps ServerDeps) {
	api := authApi{deps: deps}

	ug := g.Group("/users", session)
	ug.GET("/:id", api.retrieve)
}

// Handlers

func (api *authApi) signup(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	usr, sess, err := api.deps.UserSvc.SignUp(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, SignupResponse{User: usr, Token: sess.Token})
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	sess, err := api.deps.Gate.LogIn(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: sess.Token})
}

func (api *authApi) logout(ctx echo.Context) error {
	token := bearerToken(ctx)
	if token == "" {
		return errUnauthorized
	}
	if err := api.deps.Gate.LogOut(ctx.Request().Context(), token); err != nil {
		if errors.Cause(err) == core.ErrNoSession {
			return errUnauthorized
		}
		return err
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Logged out successfully."})
}

// status reports the boolean authentication state; the token is
// re-checked against the provider on every call.
func (api *authApi) status(ctx echo.Context) error {
	authenticated := api.deps.Gate.CheckStatus(ctx.Request().Context(), bearerToken(ctx))
	return ctx.JSON(http.StatusOK, StatusResponse{Authenticated: authenticated})
}

// retrieve returns a profile document: one's own, or any profile for
// callers allowed to review requests.
func (api *authApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}

	id := ctx.Param("id")
	if id != sess.AccountID {
		ctxUsr, err := getContextUser(ctx, api.deps.UserSvc)
		if err != nil || !ctxUsr.Can(user.ActionReviewRequests) {
			return errHttpNotFound
		}
	}

	usr, err := api.deps.UserSvc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding user by ID")
	}
	return ctx.JSON(http.StatusOK, usr)
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	SignupResponse struct {
		User  user.User `json:"user"`
		Token string    `json:"token"`
	}

	StatusResponse struct {
		Authenticated bool `json:"authenticated"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}
