package routes

import (
	"net/http"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// GetRegionalAnalysisHandler returns isolation scores, cross-region
// bridges, and the dominant region for the current graph.
func GetRegionalAnalysisHandler(c echo.Context) error {
	store := c.(*middleware.AppContext).App.Store
	return c.JSON(http.StatusOK, store.RegionalAnalysis())
}

// GetCommunitiesHandler returns the multi-resolution community index.
func GetCommunitiesHandler(c echo.Context) error {
	store := c.(*middleware.AppContext).App.Store
	return c.JSON(http.StatusOK, store.CommunityIndex())
}
