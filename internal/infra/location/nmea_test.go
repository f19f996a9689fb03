package location

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNMEASentence_RMC(t *testing.T) {
	fix, err := parseNMEASentence("$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A")
	require.NoError(t, err)
	require.True(t, fix.Valid)
	assert.InDelta(t, 48.1173, fix.Latitude, 1e-4)
	assert.InDelta(t, 11.5166, fix.Longitude, 1e-4)
}

func TestParseNMEASentence_RMC_VoidFix(t *testing.T) {
	fix, err := parseNMEASentence("$GPRMC,123519,V,,,,,,,230394,,")
	require.NoError(t, err)
	assert.False(t, fix.Valid)
}

func TestParseNMEASentence_GGA(t *testing.T) {
	fix, err := parseNMEASentence("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,")
	require.NoError(t, err)
	require.True(t, fix.Valid)
	assert.InDelta(t, 48.1173, fix.Latitude, 1e-4)
	assert.InDelta(t, 11.5166, fix.Longitude, 1e-4)
}

func TestParseNMEASentence_GGA_NoFix(t *testing.T) {
	fix, err := parseNMEASentence("$GPGGA,123519,,,,,0,00,,,M,,M,,")
	require.NoError(t, err)
	assert.False(t, fix.Valid)
}

func TestParseNMEASentence_SouthWestHemispheres(t *testing.T) {
	fix, err := parseNMEASentence("$GPRMC,123519,A,3352.000,S,15112.000,W,0.0,0.0,230394,,")
	require.NoError(t, err)
	require.True(t, fix.Valid)
	assert.InDelta(t, -33.8667, fix.Latitude, 1e-4)
	assert.InDelta(t, -151.2, fix.Longitude, 1e-4)
}

func TestParseNMEASentence_ChecksumMismatch(t *testing.T) {
	_, err := parseNMEASentence("$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*00")
	require.Error(t, err)
}

func TestParseNMEASentence_UnsupportedType(t *testing.T) {
	_, err := parseNMEASentence("$GPGSV,3,1,11,03,03,111,00,04,15,270,00,06,01,010,00,13,06,292,00")
	assert.ErrorIs(t, err, errUnsupportedSentence)
}

func TestFixFilter_IntervalAndDistance(t *testing.T) {
	filter := newFixFilter(time.Second, 10)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// First fix always passes.
	assert.True(t, filter.accept(52.0, 21.0, start))

	// Too soon, even though far enough.
	assert.False(t, filter.accept(52.01, 21.0, start.Add(500*time.Millisecond)))

	// Late enough but too close (ca. 1 m).
	assert.False(t, filter.accept(52.00001, 21.0, start.Add(2*time.Second)))

	// Late enough and far enough.
	assert.True(t, filter.accept(52.01, 21.0, start.Add(3*time.Second)))
}
