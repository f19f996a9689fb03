package geo

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMeters(t *testing.T) {
	got, err := ToMeters(1, UnitKilometers)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	got, err = ToMeters(1, UnitMeters)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = ToMeters(2.5, UnitKilometers)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, got)
}

func TestToMeters_InvalidUnit(t *testing.T) {
	_, err := ToMeters(1, Unit("mi"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnit))
}

func TestDistanceMeters_Identity(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{52.2297, 21.0122},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}

	for _, p := range points {
		assert.Zero(t, DistanceMeters(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	d1 := DistanceMeters(52.2297, 21.0122, 50.0647, 19.9450)
	d2 := DistanceMeters(50.0647, 19.9450, 52.2297, 21.0122)
	assert.Equal(t, d1, d2)
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// One degree of latitude is roughly 111.2 km.
	d := DistanceMeters(52.0, 21.0, 53.0, 21.0)
	assert.InDelta(t, 111200, d, 1000)

	// ~1.1 km for 0.01 degrees of latitude.
	d = DistanceMeters(52.0, 21.0, 52.01, 21.0)
	assert.InDelta(t, 1112, d, 20)
}

func TestUnitValid(t *testing.T) {
	assert.True(t, UnitMeters.Valid())
	assert.True(t, UnitKilometers.Valid())
	assert.False(t, Unit("mi").Valid())
	assert.False(t, Unit("").Valid())
}
