package aprs

import (
	"fmt"
	"strings"
)

// GridSquareToLatLon converts a Maidenhead gridsquare locator (e.g.
// "EN91" or "EN91kl") to the longitude and latitude of its center.
//
// Grounded on the teacher's ui/map/gridsquare.go, moved into the codec
// package since a station's gridsquare is APRS-IS login/filter data
// (spec.md §6), not map-rendering logic, and is needed by both the
// APRS-IS transport (to derive a radius filter) and the demo map view.
func GridSquareToLatLon(grid string) (lon, lat float64, err error) {
	grid = strings.ToUpper(grid)
	if len(grid) < 4 {
		return 0, 0, fmt.Errorf("gridsquare too short: %s", grid)
	}

	// Field (e.g., "EN"): 'A' = -180, 'R' = 160 for lon; 'A' = -90 for lat.
	lon = (float64(grid[0]-'A') * 20.0) - 180.0
	lat = (float64(grid[1]-'A') * 10.0) - 90.0

	// Square (e.g., "91")
	lon += float64(grid[2]-'0') * 2.0
	lat += float64(grid[3]-'0') * 1.0

	// Center of the 4-char grid (1deg lon, 0.5deg lat)
	lon += 1.0
	lat += 0.5

	// Subsquare (e.g., "kl")
	if len(grid) >= 6 {
		lon -= 1.0
		lat -= 0.5

		lon += float64(grid[4]-'A') * (2.0 / 24.0) // 5' resolution
		lat += float64(grid[5]-'A') * (1.0 / 24.0) // 2.5' resolution

		lon += 1.0 / 24.0
		lat += 0.5 / 24.0
	}

	if lon < -180.0 || lon > 180.0 || lat < -90.0 || lat > 90.0 {
		return 0, 0, fmt.Errorf("invalid gridsquare calculation for %s", grid)
	}

	return lon, lat, nil
}
