package routes

import (
	"net/http"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/pkg/common"

	"github.com/labstack/echo/v4"
)

// UndoHandler restores the previous graph state.
func UndoHandler(c echo.Context) error {
	return historyResponse(c, func(c *middleware.AppContext) (common.Graph, bool) {
		return c.App.Store.Undo()
	}, "Nothing to undo")
}

// RedoHandler restores the most recently undone graph state.
func RedoHandler(c echo.Context) error {
	return historyResponse(c, func(c *middleware.AppContext) (common.Graph, bool) {
		return c.App.Store.Redo()
	}, "Nothing to redo")
}

func historyResponse(c echo.Context, step func(*middleware.AppContext) (common.Graph, bool), emptyMsg string) error {
	type historyStepResponse struct {
		Message string        `json:"message,omitempty"`
		Graph   *common.Graph `json:"graph,omitempty"`
	}

	g, ok := step(c.(*middleware.AppContext))
	if !ok {
		return c.JSON(http.StatusConflict, historyStepResponse{Message: emptyMsg})
	}
	return c.JSON(http.StatusOK, historyStepResponse{Graph: &g})
}
