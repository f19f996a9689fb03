package handler

import (
	"log/slog"
	"net/http"

	"travelalarm/internal/delivery/http/response"
	"travelalarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlarmHandlerParams holds dependencies for AlarmHandler, injected by Fx.
type AlarmHandlerParams struct {
	fx.In

	AlarmUC usecase.AlarmUsecase
	Logger  *slog.Logger
}

// AlarmHandler holds dependencies for alarm-related handlers
type AlarmHandler struct {
	alarmUC usecase.AlarmUsecase
	logger  *slog.Logger
}

// NewAlarmHandler is the constructor for AlarmHandler
func NewAlarmHandler(params AlarmHandlerParams) *AlarmHandler {
	return &AlarmHandler{
		alarmUC: params.AlarmUC,
		logger:  params.Logger,
	}
}

// AlarmStateResponse describes the ringing alarm and the queue behind it.
type AlarmStateResponse struct {
	Current *usecase.ActiveAlarm   `json:"current,omitempty"`
	Pending []*usecase.ActiveAlarm `json:"pending"`
}

// GetAlarm handles GET /alarm
func (h *AlarmHandler) GetAlarm(c echo.Context) error {
	state := AlarmStateResponse{
		Pending: h.alarmUC.Pending(),
	}
	if current, ok := h.alarmUC.Current(); ok {
		state.Current = current
	}

	return response.Success(c, http.StatusOK, state, "")
}

// StopAlarm handles POST /alarm/stop
func (h *AlarmHandler) StopAlarm(c echo.Context) error {
	h.alarmUC.StopAlarm(c.Request().Context())

	state := AlarmStateResponse{
		Pending: h.alarmUC.Pending(),
	}
	if current, ok := h.alarmUC.Current(); ok {
		state.Current = current
	}

	return response.Success(c, http.StatusOK, state, "Alarm dismissed")
}
