// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"travelalarm/internal/geo"

	"github.com/google/uuid"
)

// Fence is a saved location ("pin") with a circular trigger buffer around it.
// While a fence is active the geofence engine evaluates incoming position
// samples against its buffer; entering the buffer raises an alarm and
// deactivates the fence until a user re-arms it.
type Fence struct {
	ID         uuid.UUID // Unique identifier, assigned at creation, immutable.
	IsActive   bool      // Inactive fences are ignored by the engine.
	Label      string    // Display address text, updated on re-geocode.
	Latitude   float64   // Buffer center latitude, WGS84 degrees.
	Longitude  float64   // Buffer center longitude, WGS84 degrees.
	Radius     float64   // Buffer radius magnitude.
	RadiusUnit geo.Unit  // Unit of the radius ("m" or "km").
	CreatedAt  time.Time // Set once, default sort key for listings.
}

// RadiusMeters returns the buffer radius converted to meters.
func (f *Fence) RadiusMeters() (float64, error) {
	return geo.ToMeters(f.Radius, f.RadiusUnit)
}

// ListOrder selects the ordering of fence listings. Ordering is a
// presentation concern; unknown values fall back to creation time.
type ListOrder string

const (
	// ListOrderCreated orders by creation time, newest first.
	ListOrderCreated ListOrder = "created"
	// ListOrderActive orders active fences before inactive ones.
	ListOrderActive ListOrder = "active"
	// ListOrderLabel orders by label, ascending.
	ListOrderLabel ListOrder = "label"
)
