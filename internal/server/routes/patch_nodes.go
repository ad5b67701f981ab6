package routes

import (
	"net/http"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/pkg/common"
	"github.com/chmielvu/endecja-graph/pkg/patch"

	"github.com/labstack/echo/v4"
)

// UpdateNodeHandler shallow-merges the supplied fields over an existing
// node.
func UpdateNodeHandler(c echo.Context) error {
	type updateNodeResponse struct {
		Message string        `json:"message,omitempty"`
		Graph   *common.Graph `json:"graph,omitempty"`
	}

	data := new(patch.ProposedNode)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateNodeResponse{
			Message: "Invalid request body",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	g, err := store.UpdateNode(c.Param("id"), *data)
	if err != nil {
		return c.JSON(http.StatusNotFound, updateNodeResponse{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, updateNodeResponse{Graph: &g})
}

// DeleteNodeHandler removes a single node and its edges.
func DeleteNodeHandler(c echo.Context) error {
	type deleteNodeResponse struct {
		Message string        `json:"message,omitempty"`
		Graph   *common.Graph `json:"graph,omitempty"`
	}

	store := c.(*middleware.AppContext).App.Store
	g, err := store.RemoveNode(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, deleteNodeResponse{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, deleteNodeResponse{Graph: &g})
}
