package aprs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// dm2decimal converts degrees + decimal minutes to decimal degrees.
// Ported from original_source/aprs/geo_util.py's use of decimaldegrees.dm2decimal.
func dm2decimal(degrees int, minutes float64) float64 {
	return float64(degrees) + minutes/60.0
}

// decimal2dm splits decimal degrees into (signed whole degrees, decimal minutes).
func decimal2dm(dec float64) (int, float64) {
	sign := 1.0
	if dec < 0 {
		sign = -1.0
	}
	abs := math.Abs(dec)
	deg := int(math.Trunc(abs))
	min := (abs - float64(deg)) * 60.0
	return int(sign) * deg, min
}

// encodeLat renders decimal degrees as an 8-byte APRS latitude field
// DDMM.mmH (without ambiguity masking).
func encodeLat(lat float64) (string, error) {
	if lat < -90 || lat > 90 {
		return "", &PositionError{Reason: "latitude out of range [-90,90]"}
	}
	deg, min := decimal2dm(lat)
	hemi := "N"
	absDeg := deg
	if deg < 0 || (deg == 0 && lat < 0) {
		hemi = "S"
		absDeg = -deg
	}
	return fmt.Sprintf("%02d%05.2f%s", absDeg, min, hemi), nil
}

// encodeLon renders decimal degrees as a 9-byte APRS longitude field
// DDDMM.mmH (without ambiguity masking).
func encodeLon(lon float64) (string, error) {
	if lon < -180 || lon > 180 {
		return "", &PositionError{Reason: "longitude out of range [-180,180]"}
	}
	deg, min := decimal2dm(lon)
	hemi := "E"
	absDeg := deg
	if deg < 0 || (deg == 0 && lon < 0) {
		hemi = "W"
		absDeg = -deg
	}
	return fmt.Sprintf("%03d%05.2f%s", absDeg, min, hemi), nil
}

// ambiguateDM masks the low-order k digits of a DM-encoded position
// string (as produced by encodeLat/encodeLon) with spaces, walking from
// the right and skipping the hemisphere letter and decimal point.
// Ported from original_source/aprs/geo_util.py's ambiguate().
func ambiguateDM(pos string, k int) string {
	b := []byte(pos)
	for i := len(b) - 1; i >= 0 && k > 0; i-- {
		if b[i] >= '0' && b[i] <= '9' {
			b[i] = ' '
			k--
		}
	}
	return string(b)
}

// deambiguateDM returns the count of space characters in a DM-encoded
// position string (the ambiguity count).
func deambiguateDM(pos string) int {
	return strings.Count(pos, " ")
}

// parseAmbiguousFloat parses a numeric field that may contain spaces in
// its low-order digits, replacing them with '5' (the midpoint of the
// masked range) per spec.md §4.1.
func parseAmbiguousFloat(s string) (float64, int, error) {
	amb := strings.Count(s, " ")
	filled := strings.ReplaceAll(s, " ", "5")
	v, err := strconv.ParseFloat(filled, 64)
	if err != nil {
		return 0, 0, err
	}
	return v, amb, nil
}
