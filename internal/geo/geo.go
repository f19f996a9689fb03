// Package geo provides distance and radius unit helpers shared by fence
// validation and the geofence engine.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// Unit is the unit a fence radius is expressed in.
type Unit string

const (
	// UnitMeters expresses the radius in meters.
	UnitMeters Unit = "m"
	// UnitKilometers expresses the radius in kilometers.
	UnitKilometers Unit = "km"
)

// ErrInvalidUnit is returned when a radius unit is not one of the supported units.
var ErrInvalidUnit = errors.New("invalid radius unit")

var unitFactors = map[Unit]float64{
	UnitMeters:     1,
	UnitKilometers: 1000,
}

// Valid reports whether the unit is supported.
func (u Unit) Valid() bool {
	_, ok := unitFactors[u]

	return ok
}

// DistanceMeters returns the great-circle distance in meters between two
// WGS84 coordinates. The result is symmetric and zero for identical points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return orbgeo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}

// ToMeters converts a radius magnitude in the given unit to meters.
func ToMeters(radius float64, unit Unit) (float64, error) {
	factor, ok := unitFactors[unit]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidUnit, "unit %q", unit)
	}

	return radius * factor, nil
}
