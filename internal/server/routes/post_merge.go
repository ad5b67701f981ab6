package routes

import (
	"net/http"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/pkg/common"

	"github.com/labstack/echo/v4"
)

// MergeNodesHandler collapses a duplicate node into the node being kept.
func MergeNodesHandler(c echo.Context) error {
	type mergeNodesBody struct {
		KeepID string `json:"keepId" validate:"required"`
		DropID string `json:"dropId" validate:"required"`
	}

	type mergeNodesResponse struct {
		Message string        `json:"message,omitempty"`
		Graph   *common.Graph `json:"graph,omitempty"`
	}

	data := new(mergeNodesBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, mergeNodesResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, mergeNodesResponse{
			Message: "Invalid request body",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	g, err := store.MergeNodes(data.KeepID, data.DropID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, mergeNodesResponse{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, mergeNodesResponse{Graph: &g})
}
