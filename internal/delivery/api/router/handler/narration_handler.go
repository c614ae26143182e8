package handler

import (
	"net/http"

	"whatwashere/internal/delivery/api/response"
	"whatwashere/internal/domain/constants"
	"whatwashere/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NarrationHandlerParams holds dependencies for NarrationHandler, injected by Fx.
type NarrationHandlerParams struct {
	fx.In

	EnrichmentUC usecase.EnrichmentUsecase
}

// NarrationHandler serves synthesized speech
type NarrationHandler struct {
	enrichmentUC usecase.EnrichmentUsecase
}

// NewNarrationHandler is the constructor for NarrationHandler
func NewNarrationHandler(params NarrationHandlerParams) *NarrationHandler {
	return &NarrationHandler{
		enrichmentUC: params.EnrichmentUC,
	}
}

// NarrateRequest is the body of POST /api/narrate
type NarrateRequest struct {
	Text string `json:"text"`
}

// Narrate answers with audio bytes, or a JSON error carrying the upstream status
func (h *NarrationHandler) Narrate(c echo.Context) error {
	var req NarrateRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid narration input")
	}

	speech, err := h.enrichmentUC.Narrate(c.Request().Context(), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	contentType := speech.ContentType
	if contentType == "" {
		contentType = constants.AudioContentType
	}

	return c.Blob(http.StatusOK, contentType, speech.Audio)
}
