package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"travelalarm/internal/delivery/http/response"
	domainerrors "travelalarm/internal/domain/errors"
	domainservice "travelalarm/internal/domain/service"
	"travelalarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodeUC usecase.GeocodeUsecase
	Logger    *slog.Logger
}

// GeocodeHandler holds dependencies for address search handlers
type GeocodeHandler struct {
	geocodeUC usecase.GeocodeUsecase
	logger    *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: params.GeocodeUC,
		logger:    params.Logger,
	}
}

// Search handles GET /geocode/search
func (h *GeocodeHandler) Search(c echo.Context) error {
	text := c.QueryParam("q")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	places, err := h.geocodeUC.Search(c.Request().Context(), text, limit)
	if err != nil {
		return response.HandleAppError(c, mapGeocodeError(err))
	}

	return response.Success(c, http.StatusOK, places, "")
}

// Reverse handles GET /geocode/reverse
func (h *GeocodeHandler) Reverse(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if latErr != nil || lonErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lon query parameters are required")
	}

	place, err := h.geocodeUC.ReverseLookup(c.Request().Context(), lat, lon)
	if err != nil {
		return response.HandleAppError(c, mapGeocodeError(err))
	}

	return response.Success(c, http.StatusOK, place, "")
}

func mapGeocodeError(err error) error {
	if errors.Is(err, domainservice.ErrGeocodingFailed) {
		return domainerrors.ErrGeocodingFailed
	}

	return err
}
