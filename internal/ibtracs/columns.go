package ibtracs

import "fmt"

// Column names from the IBTrACS v04 CSV layout. Columns are resolved by name
// from the header row rather than by position, so the loader keeps working
// when NCEI appends columns.
const (
	colName    = "NAME"
	colSeason  = "SEASON"
	colISOTime = "ISO_TIME"
	colLat     = "LAT"
	colLon     = "LON"
	colWMOWind = "WMO_WIND"
	colWMOPres = "WMO_PRES"
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	colName, colSeason, colISOTime, colLat, colLon, colWMOWind, colWMOPres,
}

// radiiAgencies are tried in order when assembling a wind-radii ring. Only
// regional agencies report radii; there are no WMO radii columns.
var radiiAgencies = []string{"USA", "REUNION", "BOM"}

// windColumn returns the sustained-wind column for an agency, e.g. "USA_WIND".
func windColumn(agency string) string { return agency + "_WIND" }

// presColumn returns the central-pressure column for an agency.
func presColumn(agency string) string { return agency + "_PRES" }

// radiusColumn returns the wind-radius column for an agency, threshold, and
// quadrant, e.g. "USA_R34_NE".
func radiusColumn(agency string, knots int, quadrant string) string {
	return fmt.Sprintf("%s_R%d_%s", agency, knots, quadrant)
}
