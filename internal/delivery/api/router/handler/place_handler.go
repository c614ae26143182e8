package handler

import (
	"log/slog"
	"net/http"

	"whatwashere/internal/delivery/api/response"
	deliverycontext "whatwashere/internal/delivery/context"
	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// PlaceHandler holds dependencies for place catalog handlers
type PlaceHandler struct {
	catalogUC usecase.CatalogUsecase
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		catalogUC: params.CatalogUC,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

// ListPlaces returns the combined catalog, optionally limited to a bbox
// of the form minLng,minLat,maxLng,maxLat.
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	ctx := c.Request().Context()

	raw := c.QueryParam("bbox")
	if raw == "" {
		return response.Success(c, http.StatusOK, h.catalogUC.AllPlaces(ctx))
	}

	bound, err := entity.ParseBound(raw)
	if err != nil {
		return response.BadRequestWithDetails(c, "INVALID_BBOX", "bbox must be minLng,minLat,maxLng,maxLat", raw)
	}

	return response.Success(c, http.StatusOK, h.catalogUC.PlacesInBound(ctx, bound))
}

// GeoJSON returns the catalog as a FeatureCollection for map layers.
func (h *PlaceHandler) GeoJSON(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogUC.FeatureCollection(c.Request().Context()))
}

// GetPlace returns a single place
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	place, err := h.catalogUC.GetPlaceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, place)
}

// CreatePlace adds a user place by address
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	var req usecase.AddPlaceInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid place input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid place input", err.Error())
	}

	place, err := h.catalogUC.AddUserPlace(c.Request().Context(), &req)
	if err != nil {
		deliverycontext.Logger(c, h.logger).Info("Place not added", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, place)
}

// PlaceQR renders the share link of a place as a PNG QR code
func (h *PlaceHandler) PlaceQR(c echo.Context) error {
	place, err := h.catalogUC.GetPlaceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCode.GeneratePlaceQR(place.ID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
