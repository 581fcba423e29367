package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerSubjectAPI(g *echo.Group, deps ServerDeps) {
	g.GET("/subjects", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, deps.Subjects.Search(ctx.QueryParam("search")))
	})
}
