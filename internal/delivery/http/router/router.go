// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"travelalarm/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FenceHandler    *handler.FenceHandler
	AlarmHandler    *handler.AlarmHandler
	PositionHandler *handler.PositionHandler
	GeocodeHandler  *handler.GeocodeHandler
	SettingsHandler *handler.SettingsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	fenceHandler    *handler.FenceHandler
	alarmHandler    *handler.AlarmHandler
	positionHandler *handler.PositionHandler
	geocodeHandler  *handler.GeocodeHandler
	settingsHandler *handler.SettingsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		fenceHandler:    params.FenceHandler,
		alarmHandler:    params.AlarmHandler,
		positionHandler: params.PositionHandler,
		geocodeHandler:  params.GeocodeHandler,
		settingsHandler: params.SettingsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Fence routes
	fenceGroup := e.Group("/fences")
	{
		fenceGroup.GET("", r.fenceHandler.ListFences)
		fenceGroup.POST("", r.fenceHandler.CreateFence)
		fenceGroup.GET("/:id", r.fenceHandler.GetFence)
		fenceGroup.PUT("/:id/radius", r.fenceHandler.UpdateRadius)
		fenceGroup.PUT("/:id/center", r.fenceHandler.UpdateCenter)
		fenceGroup.POST("/:id/regeocode", r.fenceHandler.Regeocode)
		fenceGroup.PUT("/:id/active", r.fenceHandler.SetActive)
		fenceGroup.DELETE("/:id", r.fenceHandler.DeleteFence)
	}

	// Alarm routes
	alarmGroup := e.Group("/alarm")
	{
		alarmGroup.GET("", r.alarmHandler.GetAlarm)
		alarmGroup.POST("/stop", r.alarmHandler.StopAlarm)
	}

	// Position ingest routes
	positionGroup := e.Group("/position")
	{
		positionGroup.GET("", r.positionHandler.GetPosition)
		positionGroup.POST("", r.positionHandler.IngestPosition)
		positionGroup.PUT("/status", r.positionHandler.SetStatus)
	}

	// Geocoding routes
	geocodeGroup := e.Group("/geocode")
	{
		geocodeGroup.GET("/search", r.geocodeHandler.Search)
		geocodeGroup.GET("/reverse", r.geocodeHandler.Reverse)
	}

	// Settings routes
	settingsGroup := e.Group("/settings")
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PUT("", r.settingsHandler.UpdateSettings)
	}
}
