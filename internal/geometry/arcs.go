// Package geometry lays out wind-radii quadrant arcs in plot coordinates.
//
// Plot coordinates are equirectangular degrees: x is longitude, y is
// latitude. Angles follow the convention fixed in the domain package
// (degrees counter-clockwise from due east). The package computes geometry
// only; rasterization belongs to the renderer.
package geometry

import (
	"fmt"
	"math"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
)

// Arc is one quadrant's 90-degree sector of a wind-radii ring, ready for
// drawing. RX and RY differ because a nautical mile spans more degrees of
// longitude than latitude away from the equator.
type Arc struct {
	Quadrant domain.Quadrant
	CX, CY   float64 // ring center in plot coordinates
	RX, RY   float64 // semi-axes in degrees of longitude / latitude
	StartDeg float64 // counter-clockwise from due east
	EndDeg   float64
}

// Segment is a straight spoke joining two adjacent quadrant arcs along a
// compass axis, closing the ring where neighboring radii differ.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Ring is the drawable geometry for one threshold at one track point.
type Ring struct {
	Arcs   []Arc
	Spokes []Segment
}

// Empty reports whether the ring has nothing to draw.
func (r Ring) Empty() bool { return len(r.Arcs) == 0 }

// nmPerDegLat converts between nautical miles and degrees of latitude:
// one degree of latitude is 60 nautical miles everywhere.
const nmPerDegLat = 60.0

// WindRadiiRing computes the quadrant arcs for one ring. radii is indexed by
// domain.Quadrants order and holds nautical miles; scale is the divisor
// converting nautical miles to plot units. Quadrants with a missing or zero
// radius yield no arc. A non-positive scale is a configuration error.
func WindRadiiRing(centerLon, centerLat float64, radii [domain.NumQuadrants]domain.Optional, scale float64) (Ring, error) {
	if scale <= 0 {
		return Ring{}, fmt.Errorf("radius scale %g must be positive: %w", scale, domain.ErrInvalidConfig)
	}

	// Degrees of longitude per nautical mile grow with 1/cos(lat); clamp
	// near the poles where the correction blows up.
	cosLat := math.Cos(centerLat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}

	var ring Ring
	for qi, q := range domain.Quadrants {
		r := radii[qi]
		if !r.Present || r.Value == 0 {
			continue
		}
		start, end := q.ArcRange()
		ry := r.Value / scale
		ring.Arcs = append(ring.Arcs, Arc{
			Quadrant: q,
			CX:       centerLon,
			CY:       centerLat,
			RX:       ry / cosLat,
			RY:       ry,
			StartDeg: start,
			EndDeg:   end,
		})
	}
	ring.Spokes = spokes(ring.Arcs)
	return ring, nil
}

// axisEndpoints maps each compass axis to the two quadrants whose arcs meet
// there, in domain angle convention: east joins NE's start to SE's end,
// north NE's end to NW's start, west NW's end to SW's start, south SW's end
// to SE's start.
var axisEndpoints = [4]struct {
	a, b domain.Quadrant
	dx   float64 // axis direction in plot x
	dy   float64 // axis direction in plot y
}{
	{a: domain.NE, b: domain.SE, dx: 1, dy: 0},  // east
	{a: domain.NE, b: domain.NW, dx: 0, dy: 1},  // north
	{a: domain.NW, b: domain.SW, dx: -1, dy: 0}, // west
	{a: domain.SW, b: domain.SE, dx: 0, dy: -1}, // south
}

// spokes connects adjacent arc endpoints along the compass axes. A spoke is
// only emitted when both neighboring quadrants have an arc and their radii
// along that axis differ.
func spokes(arcs []Arc) []Segment {
	byQuadrant := make(map[domain.Quadrant]Arc, len(arcs))
	for _, a := range arcs {
		byQuadrant[a.Quadrant] = a
	}

	var out []Segment
	for _, axis := range axisEndpoints {
		a, okA := byQuadrant[axis.a]
		b, okB := byQuadrant[axis.b]
		if !okA || !okB {
			continue
		}
		x1, y1 := axisPoint(a, axis.dx, axis.dy)
		x2, y2 := axisPoint(b, axis.dx, axis.dy)
		if x1 == x2 && y1 == y2 {
			continue
		}
		out = append(out, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
	return out
}

// axisPoint returns where an arc meets a compass axis.
func axisPoint(a Arc, dx, dy float64) (x, y float64) {
	return a.CX + dx*a.RX, a.CY + dy*a.RY
}
