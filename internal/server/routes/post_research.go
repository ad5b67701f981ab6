package routes

import (
	"net/http"

	"github.com/chmielvu/endecja-graph/internal/server/middleware"
	"github.com/chmielvu/endecja-graph/pkg/ai"

	"github.com/labstack/echo/v4"
)

// ExpandHandler asks the oracle for new material around a research
// query. The proposal is returned for review; accepted material is
// applied through the patch endpoint.
func ExpandHandler(c echo.Context) error {
	type expandBody struct {
		Query string `json:"query" validate:"required"`
	}

	type expandResponse struct {
		Message  string            `json:"message,omitempty"`
		Proposal *ai.GraphProposal `json:"proposal,omitempty"`
	}

	data := new(expandBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, expandResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, expandResponse{
			Message: "Invalid request body",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	proposal, err := store.Expand(c.Request().Context(), data.Query)
	if err != nil {
		return c.JSON(http.StatusBadGateway, expandResponse{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, expandResponse{Proposal: proposal})
}

// DeepenHandler asks the oracle to fill gaps on one existing node.
func DeepenHandler(c echo.Context) error {
	type deepenBody struct {
		NodeID string `json:"nodeId" validate:"required"`
	}

	type deepenResponse struct {
		Message  string             `json:"message,omitempty"`
		Proposal *ai.DeepenProposal `json:"proposal,omitempty"`
	}

	data := new(deepenBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, deepenResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, deepenResponse{
			Message: "Invalid request body",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	proposal, err := store.Deepen(c.Request().Context(), data.NodeID)
	if err != nil {
		return c.JSON(http.StatusBadGateway, deepenResponse{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, deepenResponse{Proposal: proposal})
}

// PredictHandler extrapolates likely relations around a target year.
func PredictHandler(c echo.Context) error {
	type predictBody struct {
		TargetYear int `json:"targetYear" validate:"required,gt=0"`
	}

	type predictResponse struct {
		Message     string                  `json:"message,omitempty"`
		Predictions []ai.TemporalPrediction `json:"predictions"`
	}

	data := new(predictBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, predictResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, predictResponse{
			Message: "Invalid request body",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	predictions, err := store.Predict(c.Request().Context(), data.TargetYear)
	if err != nil {
		return c.JSON(http.StatusBadGateway, predictResponse{
			Message: err.Error(),
		})
	}
	if predictions == nil {
		predictions = []ai.TemporalPrediction{}
	}
	return c.JSON(http.StatusOK, predictResponse{Predictions: predictions})
}
