package routes

import (
	"net/http"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/pkg/common"

	"github.com/labstack/echo/v4"
)

// GetDuplicatesHandler lists suspected duplicate node pairs, lexical
// first and semantic when an embedding backend is configured.
func GetDuplicatesHandler(c echo.Context) error {
	type getDuplicatesResponse struct {
		Message    string                      `json:"message,omitempty"`
		Candidates []common.DuplicateCandidate `json:"candidates"`
	}

	store := c.(*middleware.AppContext).App.Store
	candidates, err := store.Duplicates(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getDuplicatesResponse{
			Message: "Duplicate scan failed",
		})
	}
	if candidates == nil {
		candidates = []common.DuplicateCandidate{}
	}
	return c.JSON(http.StatusOK, getDuplicatesResponse{Candidates: candidates})
}
