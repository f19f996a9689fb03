package handler

import (
	"log/slog"
	"net/http"

	"travelalarm/internal/delivery/http/response"
	"travelalarm/internal/domain/entity"
	"travelalarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PositionHandlerParams holds dependencies for PositionHandler, injected by Fx.
type PositionHandlerParams struct {
	fx.In

	TrackerUC usecase.PositionTracker
	Logger    *slog.Logger
}

// PositionHandler holds dependencies for position ingest handlers
type PositionHandler struct {
	trackerUC usecase.PositionTracker
	logger    *slog.Logger
}

// NewPositionHandler is the constructor for PositionHandler
func NewPositionHandler(params PositionHandlerParams) *PositionHandler {
	return &PositionHandler{
		trackerUC: params.TrackerUC,
		logger:    params.Logger,
	}
}

// IngestPositionRequest represents a position fix pushed over HTTP
type IngestPositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// SetStatusRequest represents a provider status transition pushed over HTTP
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=enabled disabled unavailable"`
}

// PositionStateResponse describes the tracker state.
type PositionStateResponse struct {
	Last   *entity.PositionSample `json:"last,omitempty"`
	Status entity.ProviderStatus  `json:"status"`
}

// IngestPosition handles POST /position
func (h *PositionHandler) IngestPosition(c echo.Context) error {
	var req IngestPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	// Delivery is synchronous: the geofence engine has evaluated this fix
	// by the time the response is written.
	h.trackerUC.OnPosition(c.Request().Context(), req.Latitude, req.Longitude)

	return response.Success(c, http.StatusAccepted, nil, "Position accepted")
}

// SetStatus handles PUT /position/status
func (h *PositionHandler) SetStatus(c echo.Context) error {
	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	h.trackerUC.OnStatus(c.Request().Context(), entity.ProviderStatus(req.Status))

	return response.Success(c, http.StatusOK, nil, "Status updated")
}

// GetPosition handles GET /position
func (h *PositionHandler) GetPosition(c echo.Context) error {
	state := PositionStateResponse{
		Status: h.trackerUC.Status(),
	}
	if last, ok := h.trackerUC.LastKnown(); ok {
		state.Last = &last
	}

	return response.Success(c, http.StatusOK, state, "")
}
