package entity

import "time"

// PositionSample is a single fix delivered by the location provider.
// Samples are transient; only the latest one is retained by the tracker.
type PositionSample struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// ProviderStatus is the live state of the device's location service.
type ProviderStatus string

const (
	// ProviderEnabled means the provider is delivering fixes.
	ProviderEnabled ProviderStatus = "enabled"
	// ProviderDisabled means the user turned location services off.
	ProviderDisabled ProviderStatus = "disabled"
	// ProviderUnavailable means the platform has no usable provider.
	ProviderUnavailable ProviderStatus = "unavailable"
)
