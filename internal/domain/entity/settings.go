package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Setting keys persisted in the key/value settings store. Reads of a key
// that was never written return its default.
const (
	SettingListOrder      = "listorder"
	SettingThemeStyle     = "themestyle"
	SettingPrimaryPalette = "primarypalette"
	SettingAlarmSound     = "alarmsound"
	SettingMapViewport    = "mapstate"
)

// SettingDefaults maps each setting key to the value returned before the
// user ever changes it.
var SettingDefaults = map[string]string{
	SettingListOrder:      string(ListOrderCreated),
	SettingThemeStyle:     "Light",
	SettingPrimaryPalette: "LightGreen",
	SettingAlarmSound:     "alarm_1.mp3",
	SettingMapViewport:    "50.053756 19.940927 10",
}

// MapViewport is the last map center and zoom level, restored on startup.
type MapViewport struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// String encodes the viewport in the stored "lat lon zoom" form.
func (v MapViewport) String() string {
	return fmt.Sprintf("%f %f %d", v.Latitude, v.Longitude, v.Zoom)
}

// ParseMapViewport decodes a stored "lat lon zoom" viewport value.
func ParseMapViewport(s string) (MapViewport, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return MapViewport{}, errors.Errorf("malformed viewport value %q", s)
	}

	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return MapViewport{}, errors.Wrap(err, "parse viewport latitude")
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return MapViewport{}, errors.Wrap(err, "parse viewport longitude")
	}
	zoom, err := strconv.Atoi(fields[2])
	if err != nil {
		return MapViewport{}, errors.Wrap(err, "parse viewport zoom")
	}

	return MapViewport{Latitude: lat, Longitude: lon, Zoom: zoom}, nil
}
