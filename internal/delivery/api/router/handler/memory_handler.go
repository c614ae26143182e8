package handler

import (
	"io"
	"net/http"
	"strings"

	"whatwashere/internal/delivery/api/response"
	"whatwashere/internal/domain/entity"
	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MemoryHandlerParams holds dependencies for MemoryHandler, injected by Fx.
type MemoryHandlerParams struct {
	fx.In

	MemoryDocumentUC usecase.MemoryDocumentUsecase
}

// MemoryHandler serves the photo memory document
type MemoryHandler struct {
	memoryDocumentUC usecase.MemoryDocumentUsecase
}

// NewMemoryHandler is the constructor for MemoryHandler
func NewMemoryHandler(params MemoryHandlerParams) *MemoryHandler {
	return &MemoryHandler{
		memoryDocumentUC: params.MemoryDocumentUC,
	}
}

// GetMemories returns the stored document as is
func (h *MemoryHandler) GetMemories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.memoryDocumentUC.GetDocument(c.Request().Context()))
}

// ReplaceMemories overwrites the document with the request body. An empty
// body stores an empty document.
func (h *MemoryHandler) ReplaceMemories(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrMemoryDocumentInvalid.WithDetails(err.Error()))
	}
	if strings.TrimSpace(string(body)) == "" {
		body = []byte("{}")
	}

	memories, err := entity.DecodeMemoryMap(body)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrMemoryDocumentInvalid.WithDetails(err.Error()))
	}

	if err := h.memoryDocumentUC.ReplaceDocument(c.Request().Context(), memories); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
