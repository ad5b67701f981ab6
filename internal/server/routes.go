package server

import (
	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Graph routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)
	apiRoutes.POST("/graph/patch", routes.ApplyPatchHandler)
	apiRoutes.POST("/graph/merge", routes.MergeNodesHandler)
	apiRoutes.POST("/graph/delete", routes.BulkDeleteHandler)
	apiRoutes.PATCH("/graph/nodes/:id", routes.UpdateNodeHandler)
	apiRoutes.DELETE("/graph/nodes/:id", routes.DeleteNodeHandler)

	// History routes
	apiRoutes.POST("/graph/undo", routes.UndoHandler)
	apiRoutes.POST("/graph/redo", routes.RedoHandler)

	// Analysis routes
	apiRoutes.GET("/graph/duplicates", routes.GetDuplicatesHandler)
	apiRoutes.GET("/analysis/communities", routes.GetCommunitiesHandler)
	apiRoutes.GET("/analysis/regional", routes.GetRegionalAnalysisHandler)

	// Research routes
	apiRoutes.POST("/research/expand", routes.ExpandHandler)
	apiRoutes.POST("/research/deepen", routes.DeepenHandler)
	apiRoutes.POST("/research/predict", routes.PredictHandler)
}
