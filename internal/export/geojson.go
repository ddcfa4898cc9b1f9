// Package export serializes tracks to GeoJSON for use in mapping tools.
package export

import (
	"fmt"
	"math"
	"os"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
	"github.com/couchcryptid/tc-track-viz/internal/geometry"
)

// arcSamples is the number of points sampled along each quadrant arc when
// flattening a ring to a polygon.
const arcSamples = 16

// FeatureCollection converts a track into a feature collection: one
// LineString for the path, one Point per observation with time/wind/pressure
// properties, and one Polygon per non-empty wind-radii ring.
func FeatureCollection(track domain.Track, radiusScale float64) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	path := make([][]float64, 0, track.Len())
	for _, p := range track.Points {
		path = append(path, []float64{p.Lon, p.Lat})
	}
	line := geojson.NewLineStringFeature(path)
	line.SetProperty("name", track.Name)
	line.SetProperty("season", track.Season)
	fc.AddFeature(line)

	for _, p := range track.Points {
		point := geojson.NewPointFeature([]float64{p.Lon, p.Lat})
		point.SetProperty("time", p.Time.Format(time.RFC3339))
		if p.Wind.Present {
			point.SetProperty("wind_kt", p.Wind.Value)
		}
		if p.Pressure.Present {
			point.SetProperty("pressure_hpa", p.Pressure.Value)
		}
		fc.AddFeature(point)

		for ti, threshold := range domain.Thresholds {
			ring, err := geometry.WindRadiiRing(p.Lon360, p.Lat, p.Radii[ti], radiusScale)
			if err != nil {
				return nil, err
			}
			if ring.Empty() {
				continue
			}
			poly := geojson.NewPolygonFeature([][][]float64{ringCoordinates(ring)})
			poly.SetProperty("threshold_kt", threshold.Knots())
			poly.SetProperty("time", p.Time.Format(time.RFC3339))
			fc.AddFeature(poly)
		}
	}
	return fc, nil
}

// WriteFile marshals the track and writes it to path.
func WriteFile(path string, track domain.Track, radiusScale float64) error {
	fc, err := FeatureCollection(track, radiusScale)
	if err != nil {
		return err
	}
	raw, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal geojson: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}

// ringCoordinates flattens a ring's arcs into a closed GeoJSON linear ring.
// Longitudes are folded back into -180..180.
func ringCoordinates(ring geometry.Ring) [][]float64 {
	coords := make([][]float64, 0, len(ring.Arcs)*(arcSamples+1)+1)
	for _, arc := range ring.Arcs {
		for i := 0; i <= arcSamples; i++ {
			deg := arc.StartDeg + (arc.EndDeg-arc.StartDeg)*float64(i)/arcSamples
			rad := deg * math.Pi / 180
			lon := arc.CX + arc.RX*math.Cos(rad)
			lat := arc.CY + arc.RY*math.Sin(rad)
			coords = append(coords, []float64{lon180(lon), lat})
		}
	}
	if len(coords) > 0 {
		coords = append(coords, coords[0])
	}
	return coords
}

func lon180(lon float64) float64 {
	if lon > 180 {
		return lon - 360
	}
	return lon
}
