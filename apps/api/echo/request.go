package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dikshant1602/wandwrite/core/request"
	"github.com/dikshant1602/wandwrite/core/user"
)

type requestApi struct {
	deps ServerDeps
}

func registerRequestAPI(g *echo.Group, session echo.MiddlewareFunc, deps ServerDeps) {
	api := requestApi{deps: deps}

	rg := g.Group("/requests", session)
	rg.POST("", api.submit)

	// decisions are reserved for reviewers
	review := requireActionMiddleware(deps.UserSvc, user.ActionReviewRequests)
	rg.GET("", api.query, review)
	rg.POST("/:id/approve", api.approve, review)
	rg.POST("/:id/deny", api.deny, review)
}

// Handlers

func (api *requestApi) submit(ctx echo.Context) error {
	var data request.NewRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	req, err := api.deps.RequestSvc.Submit(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "submitting request")
	}
	return ctx.JSON(http.StatusCreated, req)
}

func (api *requestApi) query(ctx echo.Context) error {
	reqs, err := api.deps.RequestSvc.Query(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying requests")
	}
	if reqs == nil {
		reqs = []request.Request{}
	}
	return ctx.JSON(http.StatusOK, reqs)
}

func (api *requestApi) approve(ctx echo.Context) error {
	return api.decide(ctx, api.deps.RequestSvc.Approve)
}

func (api *requestApi) deny(ctx echo.Context) error {
	return api.decide(ctx, api.deps.RequestSvc.Deny)
}

// decide runs a transition; the ledger treats terminal and unknown
// requests as no-ops, so unknown ids only become 404s here at the edge.
func (api *requestApi) decide(ctx echo.Context, fn func(context.Context, string) (request.Request, error)) error {
	req, err := fn(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "deciding request")
	}
	if req.ID == "" {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, req)
}
