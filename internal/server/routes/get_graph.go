package routes

import (
	"net/http"
	"strconv"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/pkg/common"

	"github.com/labstack/echo/v4"
)

// GetGraphHandler returns the current enriched graph. An optional
// ?year= query parameter returns the temporal view up to that year
// instead.
func GetGraphHandler(c echo.Context) error {
	type getGraphResponse struct {
		Message string        `json:"message,omitempty"`
		Graph   *common.Graph `json:"graph,omitempty"`
	}

	store := c.(*middleware.AppContext).App.Store

	if raw := c.QueryParam("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year <= 0 {
			return c.JSON(http.StatusBadRequest, getGraphResponse{
				Message: "Invalid year parameter",
			})
		}
		g := store.FilteredByYear(year)
		return c.JSON(http.StatusOK, getGraphResponse{Graph: &g})
	}

	g := store.Current()
	return c.JSON(http.StatusOK, getGraphResponse{Graph: &g})
}
