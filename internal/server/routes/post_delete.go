package routes

import (
	"net/http"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/pkg/common"

	"github.com/labstack/echo/v4"
)

// BulkDeleteHandler removes a set of nodes and every edge touching them.
// Unknown ids are ignored.
func BulkDeleteHandler(c echo.Context) error {
	type bulkDeleteBody struct {
		IDs []string `json:"ids" validate:"required,min=1"`
	}

	type bulkDeleteResponse struct {
		Message string        `json:"message,omitempty"`
		Graph   *common.Graph `json:"graph,omitempty"`
	}

	data := new(bulkDeleteBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, bulkDeleteResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, bulkDeleteResponse{
			Message: "Invalid request body",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	g := store.BulkDelete(data.IDs)
	return c.JSON(http.StatusOK, bulkDeleteResponse{Graph: &g})
}
