package routes

import (
	"net/http"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/pkg/common"
	"github.com/chmielvu/endecja-graph/pkg/patch"

	"github.com/labstack/echo/v4"
)

// ApplyPatchHandler upserts a batch of proposed nodes and edges.
// Individual invalid items are skipped by the patch engine rather than
// failing the batch, so the handler only rejects malformed envelopes.
func ApplyPatchHandler(c echo.Context) error {
	type applyPatchBody struct {
		Nodes []patch.ProposedNode `json:"nodes"`
		Edges []patch.ProposedEdge `json:"edges"`
	}

	type applyPatchResponse struct {
		Message string        `json:"message,omitempty"`
		Graph   *common.Graph `json:"graph,omitempty"`
	}

	data := new(applyPatchBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, applyPatchResponse{
			Message: "Invalid request body",
		})
	}
	if len(data.Nodes) == 0 && len(data.Edges) == 0 {
		return c.JSON(http.StatusBadRequest, applyPatchResponse{
			Message: "Empty patch",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	g := store.ApplyPatch(data.Nodes, data.Edges)
	return c.JSON(http.StatusOK, applyPatchResponse{Graph: &g})
}
