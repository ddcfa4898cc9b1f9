package domain

import (
	"sort"
	"time"
)

// Threshold identifies one of the three sustained-wind thresholds for which
// IBTrACS reports quadrant radii.
type Threshold int

const (
	R34 Threshold = iota // 34-kt (gale force)
	R50                  // 50-kt (storm force)
	R64                  // 64-kt (hurricane force)

	NumThresholds = 3
)

// Thresholds lists all wind thresholds in ascending order.
var Thresholds = [NumThresholds]Threshold{R34, R50, R64}

// Knots returns the wind speed the threshold represents.
func (t Threshold) Knots() int {
	switch t {
	case R34:
		return 34
	case R50:
		return 50
	case R64:
		return 64
	}
	return 0
}

func (t Threshold) String() string {
	switch t {
	case R34:
		return "R34"
	case R50:
		return "R50"
	case R64:
		return "R64"
	}
	return "unknown"
}

// Quadrant is one of the four 90-degree sectors around a storm center.
//
// Arc angles throughout the codebase are measured in degrees from due east,
// increasing counter-clockwise: NE spans 0-90, NW 90-180, SW 180-270,
// SE 270-360. This is the single place the convention is defined; everything
// downstream (geometry, rendering, export) derives from ArcRange.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE

	NumQuadrants = 4
)

// Quadrants lists all quadrants in arc-angle order (counter-clockwise from east).
var Quadrants = [NumQuadrants]Quadrant{NE, NW, SW, SE}

// ArcRange returns the quadrant's sector as (start, end) degrees,
// counter-clockwise from due east.
func (q Quadrant) ArcRange() (start, end float64) {
	switch q {
	case NE:
		return 0, 90
	case NW:
		return 90, 180
	case SW:
		return 180, 270
	case SE:
		return 270, 360
	}
	return 0, 0
}

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "unknown"
}

// Optional is a numeric reading that may be absent. IBTrACS leaves many
// fields blank (or a single space), and a blank radius is not the same thing
// as a zero radius, so absence is modeled explicitly rather than with a
// sentinel value.
type Optional struct {
	Value   float64
	Present bool
}

// Some wraps a present value.
func Some(v float64) Optional { return Optional{Value: v, Present: true} }

// None is the absent reading.
func None() Optional { return Optional{} }

// Or returns the receiver when present, otherwise the fallback.
func (o Optional) Or(fallback Optional) Optional {
	if o.Present {
		return o
	}
	return fallback
}

// RadiiSet holds the wind radii for one observation: nautical miles per
// threshold per quadrant, each possibly absent.
type RadiiSet [NumThresholds][NumQuadrants]Optional

// At returns the radius for a threshold/quadrant pair.
func (r RadiiSet) At(t Threshold, q Quadrant) Optional { return r[t][q] }

// TrackPoint is a single six-hourly (or three-hourly) storm observation.
type TrackPoint struct {
	Time time.Time

	Lat    float64 // degrees north, -90..90
	Lon    float64 // degrees east, -180..180 as reported
	Lon360 float64 // longitude normalized to 0..360 for dateline-safe plotting

	// Best available readings, falling back to a regional agency when the
	// primary WMO fields are blank.
	Wind     Optional // sustained wind, kt
	Pressure Optional // central pressure, hPa

	// Primary-agency readings as reported. The completeness filter keys off
	// these, not the fallback values above.
	WMOWind     Optional
	WMOPressure Optional

	Radii RadiiSet
}

// Track is the ordered lifecycle of one named storm in one season.
type Track struct {
	Name   string
	Season int
	Points []TrackPoint
}

// Len returns the number of observations in the track.
func (t Track) Len() int { return len(t.Points) }

// SortByTime orders the points by ascending observation time.
func (t *Track) SortByTime() {
	sort.SliceStable(t.Points, func(i, j int) bool {
		return t.Points[i].Time.Before(t.Points[j].Time)
	})
}

// Bounds returns the track's bounding box in plot coordinates
// (normalized longitude, latitude). The second return is false for an
// empty track.
func (t Track) Bounds() (minLon, minLat, maxLon, maxLat float64, ok bool) {
	if len(t.Points) == 0 {
		return 0, 0, 0, 0, false
	}
	first := t.Points[0]
	minLon, maxLon = first.Lon360, first.Lon360
	minLat, maxLat = first.Lat, first.Lat
	for _, p := range t.Points[1:] {
		minLon = min(minLon, p.Lon360)
		maxLon = max(maxLon, p.Lon360)
		minLat = min(minLat, p.Lat)
		maxLat = max(maxLat, p.Lat)
	}
	return minLon, minLat, maxLon, maxLat, true
}

// Lon360 converts a longitude from -180..180 to 0..360 degrees.
func Lon360(lon float64) float64 {
	l := lon
	for l < 0 {
		l += 360
	}
	for l >= 360 {
		l -= 360
	}
	return l
}
