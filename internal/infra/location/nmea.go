// Package location adapts platform position sources to the tracker.
package location

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// nmeaFix is a position fix decoded from a single NMEA sentence.
type nmeaFix struct {
	// Valid reports whether the receiver claims a usable fix. Sentences
	// with a void status still arrive while the receiver searches for
	// satellites.
	Valid     bool
	Latitude  float64
	Longitude float64
}

var errUnsupportedSentence = errors.New("unsupported NMEA sentence")

// parseNMEASentence decodes an RMC or GGA sentence. Other sentence types
// return errUnsupportedSentence; malformed input returns a parse error.
func parseNMEASentence(line string) (*nmeaFix, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "$") {
		return nil, errors.New("missing sentence start")
	}

	body := line[1:]
	if idx := strings.IndexByte(body, '*'); idx >= 0 {
		sum, err := strconv.ParseUint(body[idx+1:], 16, 8)
		if err != nil {
			return nil, errors.Wrap(err, "malformed checksum")
		}
		if computeChecksum(body[:idx]) != byte(sum) {
			return nil, errors.New("checksum mismatch")
		}
		body = body[:idx]
	}

	fields := strings.Split(body, ",")
	talker := fields[0]
	switch {
	case strings.HasSuffix(talker, "RMC"):
		return parseRMC(fields)
	case strings.HasSuffix(talker, "GGA"):
		return parseGGA(fields)
	default:
		return nil, errUnsupportedSentence
	}
}

// parseRMC decodes a recommended-minimum sentence:
// $GPRMC,time,status,lat,N/S,lon,E/W,...
func parseRMC(fields []string) (*nmeaFix, error) {
	if len(fields) < 7 {
		return nil, errors.New("short RMC sentence")
	}

	if fields[2] != "A" {
		return &nmeaFix{Valid: false}, nil
	}

	lat, err := parseCoordinate(fields[3], fields[4])
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate(fields[5], fields[6])
	if err != nil {
		return nil, err
	}

	return &nmeaFix{Valid: true, Latitude: lat, Longitude: lon}, nil
}

// parseGGA decodes a fix-data sentence:
// $GPGGA,time,lat,N/S,lon,E/W,quality,...
func parseGGA(fields []string) (*nmeaFix, error) {
	if len(fields) < 7 {
		return nil, errors.New("short GGA sentence")
	}

	quality, err := strconv.Atoi(fields[6])
	if err != nil || quality == 0 {
		return &nmeaFix{Valid: false}, nil
	}

	lat, err := parseCoordinate(fields[2], fields[3])
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate(fields[4], fields[5])
	if err != nil {
		return nil, err
	}

	return &nmeaFix{Valid: true, Latitude: lat, Longitude: lon}, nil
}

// parseCoordinate converts the NMEA ddmm.mmmm form to decimal degrees.
func parseCoordinate(value, hemisphere string) (float64, error) {
	raw, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed coordinate %q", value)
	}

	degrees := float64(int(raw / 100))
	minutes := raw - degrees*100
	decimal := degrees + minutes/60

	switch hemisphere {
	case "N", "E":
		return decimal, nil
	case "S", "W":
		return -decimal, nil
	default:
		return 0, errors.Errorf("unknown hemisphere %q", hemisphere)
	}
}

func computeChecksum(body string) byte {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}

	return sum
}
