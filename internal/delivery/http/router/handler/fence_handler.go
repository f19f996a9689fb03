package handler

import (
	"errors"
	"log/slog"
	"net/http"

	domainerrors "travelalarm/internal/domain/errors"
	"travelalarm/internal/domain/repository"
	domainservice "travelalarm/internal/domain/service"
	"travelalarm/internal/delivery/http/response"
	"travelalarm/internal/domain/entity"
	"travelalarm/internal/geo"
	"travelalarm/internal/usecase"
	"travelalarm/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FenceHandlerParams holds dependencies for FenceHandler, injected by Fx.
type FenceHandlerParams struct {
	fx.In

	FenceUC  usecase.FenceUsecase
	EngineUC usecase.GeofenceEngine
	Logger   *slog.Logger
}

// FenceHandler holds dependencies for fence-related handlers
type FenceHandler struct {
	fenceUC  usecase.FenceUsecase
	engineUC usecase.GeofenceEngine
	logger   *slog.Logger
}

// NewFenceHandler is the constructor for FenceHandler
func NewFenceHandler(params FenceHandlerParams) *FenceHandler {
	return &FenceHandler{
		fenceUC:  params.FenceUC,
		engineUC: params.EngineUC,
		logger:   params.Logger,
	}
}

// FenceResponse is the wire representation of a fence.
type FenceResponse struct {
	ID         uuid.UUID `json:"id"`
	IsActive   bool      `json:"is_active"`
	Label      string    `json:"label"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Radius     float64   `json:"radius"`
	RadiusUnit string    `json:"radius_unit"`
	CreatedAt  string    `json:"created_at"`
}

func toFenceResponse(fence *entity.Fence) *FenceResponse {
	return &FenceResponse{
		ID:         fence.ID,
		IsActive:   fence.IsActive,
		Label:      fence.Label,
		Latitude:   fence.Latitude,
		Longitude:  fence.Longitude,
		Radius:     fence.Radius,
		RadiusUnit: string(fence.RadiusUnit),
		CreatedAt:  fence.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toFenceListResponse(fences []*entity.Fence) []*FenceResponse {
	out := make([]*FenceResponse, 0, len(fences))
	for _, fence := range fences {
		out = append(out, toFenceResponse(fence))
	}

	return out
}

// CreateFenceRequest represents the request body for creating a fence.
// Either an address to geocode or explicit coordinates must be supplied.
type CreateFenceRequest struct {
	Address   string   `json:"address,omitempty"`
	Label     string   `json:"label,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// UpdateRadiusRequest represents the request body for changing a fence radius
type UpdateRadiusRequest struct {
	Radius float64 `json:"radius" validate:"required"`
	Unit   string  `json:"unit" validate:"required"`
}

// UpdateCenterRequest represents the request body for moving a fence
type UpdateCenterRequest struct {
	Label     string  `json:"label" validate:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RegeocodeRequest represents the request body for re-resolving a fence address
type RegeocodeRequest struct {
	Address string `json:"address" validate:"required"`
}

// SetActiveRequest represents the request body for arming or disarming a fence
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ListFences handles GET /fences
func (h *FenceHandler) ListFences(c echo.Context) error {
	order := entity.ListOrder(c.QueryParam("order"))

	fences, err := h.fenceUC.ListFences(c.Request().Context(), order)
	if err != nil {
		return response.HandleAppError(c, mapFenceError(err))
	}

	return response.Success(c, http.StatusOK, toFenceListResponse(fences), "")
}

// GetFence handles GET /fences/:id
func (h *FenceHandler) GetFence(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid fence ID")
	}

	fence, err := h.fenceUC.GetFence(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, mapFenceError(err))
	}

	return response.Success(c, http.StatusOK, toFenceResponse(fence), "")
}

// CreateFence handles POST /fences
func (h *FenceHandler) CreateFence(c echo.Context) error {
	var req CreateFenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fence input")
	}

	ctx := c.Request().Context()

	var fence *entity.Fence
	var err error
	switch {
	case req.Address != "":
		fence, err = h.fenceUC.AddFenceByAddress(ctx, req.Address)
	case req.Latitude != nil && req.Longitude != nil:
		fence, err = h.fenceUC.AddFence(ctx, &usecase.AddFenceInput{
			Label:     req.Label,
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		})
	default:
		return response.BadRequest(c, "VALIDATION_ERROR", "Either address or coordinates are required")
	}
	if err != nil {
		return response.HandleAppError(c, mapFenceError(err))
	}

	// A new fence is born armed; check it against the current position.
	h.engineUC.Reevaluate(ctx)

	return response.Success(c, http.StatusCreated, toFenceResponse(fence), "Fence created successfully")
}

// UpdateRadius handles PUT /fences/:id/radius
func (h *FenceHandler) UpdateRadius(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid fence ID")
	}

	var req UpdateRadiusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid radius input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	fence, err := h.fenceUC.UpdateRadius(ctx, id, req.Radius, geo.Unit(req.Unit))
	if err != nil {
		return response.HandleAppError(c, mapFenceError(err))
	}

	// A grown radius may swallow the current position.
	h.engineUC.Reevaluate(ctx)

	return response.Success(c, http.StatusOK, toFenceResponse(fence), "Fence radius updated successfully")
}

// UpdateCenter handles PUT /fences/:id/center
func (h *FenceHandler) UpdateCenter(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid fence ID")
	}

	var req UpdateCenterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid center input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	fence, err := h.fenceUC.UpdateCenter(ctx, id, req.Label, req.Latitude, req.Longitude)
	if err != nil {
		return response.HandleAppError(c, mapFenceError(err))
	}

	h.engineUC.Reevaluate(ctx)

	return response.Success(c, http.StatusOK, toFenceResponse(fence), "Fence center updated successfully")
}

// Regeocode handles POST /fences/:id/regeocode
func (h *FenceHandler) Regeocode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid fence ID")
	}

	var req RegeocodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid regeocode input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	fence, err := h.fenceUC.RegeocodeFence(ctx, id, req.Address)
	if err != nil {
		return response.HandleAppError(c, mapFenceError(err))
	}

	h.engineUC.Reevaluate(ctx)

	return response.Success(c, http.StatusOK, toFenceResponse(fence), "Fence re-geocoded successfully")
}

// SetActive handles PUT /fences/:id/active
func (h *FenceHandler) SetActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid fence ID")
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	if err := h.fenceUC.SetActive(ctx, id, *req.Active); err != nil {
		return response.HandleAppError(c, mapFenceError(err))
	}

	// Re-arming while already inside the buffer must ring immediately.
	if *req.Active {
		h.engineUC.Reevaluate(ctx)
	}

	return response.Success(c, http.StatusOK, nil, "Fence state updated successfully")
}

// DeleteFence handles DELETE /fences/:id
func (h *FenceHandler) DeleteFence(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid fence ID")
	}

	if err := h.fenceUC.DeleteFence(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, mapFenceError(err))
	}

	return response.Success(c, http.StatusOK, nil, "Fence deleted successfully")
}

// mapFenceError converts sentinel errors from the core into AppErrors the
// response layer can render.
func mapFenceError(err error) error {
	switch {
	case errors.Is(err, repository.ErrFenceNotFound):
		return domainerrors.ErrFenceNotFound
	case errors.Is(err, impl.ErrInvalidRadius):
		return domainerrors.ErrInvalidRadius
	case errors.Is(err, geo.ErrInvalidUnit):
		return domainerrors.ErrInvalidUnit
	case errors.Is(err, domainservice.ErrGeocodingFailed):
		return domainerrors.ErrGeocodingFailed
	default:
		return err
	}
}
