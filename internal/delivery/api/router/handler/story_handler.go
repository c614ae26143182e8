package handler

import (
	"whatwashere/internal/delivery/api/response"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoryHandlerParams holds dependencies for StoryHandler, injected by Fx.
type StoryHandlerParams struct {
	fx.In

	EnrichmentUC usecase.EnrichmentUsecase
}

// StoryHandler serves story expansion and summaries
type StoryHandler struct {
	enrichmentUC usecase.EnrichmentUsecase
}

// NewStoryHandler is the constructor for StoryHandler
func NewStoryHandler(params StoryHandlerParams) *StoryHandler {
	return &StoryHandler{
		enrichmentUC: params.EnrichmentUC,
	}
}

// SummarizeStoryRequest is the body of POST /api/summarize-story
type SummarizeStoryRequest struct {
	Story string `json:"story"`
}

// ExpandStory answers with the expanded story, or the original one when
// expansion is not possible.
func (h *StoryHandler) ExpandStory(c echo.Context) error {
	var req service.ExpandStoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid place summary")
	}

	return response.Text(c, h.enrichmentUC.ExpandStory(c.Request().Context(), req))
}

// SummarizeStory answers with a short version of the story
func (h *StoryHandler) SummarizeStory(c echo.Context) error {
	var req SummarizeStoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid story input")
	}

	return response.Text(c, h.enrichmentUC.SummarizeStory(c.Request().Context(), req.Story))
}
