package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"travelalarm/internal/delivery/http/response"
	"travelalarm/internal/domain/entity"
	"travelalarm/internal/usecase"
	"travelalarm/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// SettingsHandler holds dependencies for settings handlers
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// SettingsResponse aggregates every user preference.
type SettingsResponse struct {
	ListOrder      entity.ListOrder   `json:"list_order"`
	ThemeStyle     string             `json:"theme_style"`
	PrimaryPalette string             `json:"primary_palette"`
	AlarmSound     string             `json:"alarm_sound"`
	MapViewport    entity.MapViewport `json:"map_viewport"`
}

// UpdateSettingsRequest carries the preferences to change. Omitted fields
// keep their stored values.
type UpdateSettingsRequest struct {
	ListOrder      *string             `json:"list_order,omitempty"`
	ThemeStyle     *string             `json:"theme_style,omitempty"`
	PrimaryPalette *string             `json:"primary_palette,omitempty"`
	AlarmSound     *string             `json:"alarm_sound,omitempty"`
	MapViewport    *entity.MapViewport `json:"map_viewport,omitempty"`
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()

	listOrder, err := h.settingsUC.ListOrder(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	themeStyle, err := h.settingsUC.ThemeStyle(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	palette, err := h.settingsUC.PrimaryPalette(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sound, err := h.settingsUC.AlarmSound(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	viewport, err := h.settingsUC.MapViewport(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SettingsResponse{
		ListOrder:      listOrder,
		ThemeStyle:     themeStyle,
		PrimaryPalette: palette,
		AlarmSound:     sound,
		MapViewport:    viewport,
	}, "")
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	ctx := c.Request().Context()

	if req.ListOrder != nil {
		if err := h.settingsUC.SetListOrder(ctx, entity.ListOrder(*req.ListOrder)); err != nil {
			if errors.Is(err, impl.ErrInvalidListOrder) {
				return response.BadRequest(c, "VALIDATION_ERROR", "Unknown list order")
			}

			return response.HandleAppError(c, err)
		}
	}
	if req.ThemeStyle != nil {
		if err := h.settingsUC.SetThemeStyle(ctx, *req.ThemeStyle); err != nil {
			return response.HandleAppError(c, err)
		}
	}
	if req.PrimaryPalette != nil {
		if err := h.settingsUC.SetPrimaryPalette(ctx, *req.PrimaryPalette); err != nil {
			return response.HandleAppError(c, err)
		}
	}
	if req.AlarmSound != nil {
		if err := h.settingsUC.SetAlarmSound(ctx, *req.AlarmSound); err != nil {
			return response.HandleAppError(c, err)
		}
	}
	if req.MapViewport != nil {
		if err := h.settingsUC.SetMapViewport(ctx, *req.MapViewport); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	return response.Success(c, http.StatusOK, nil, "Settings updated successfully")
}
