package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/chmielvu/endecja-graph/pkg/ai"
	"github.com/chmielvu/endecja-graph/pkg/graphstore"
)

type App struct {
	Store    *graphstore.Store
	AiClient ai.GraphAIClient
	APIKey   string
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
