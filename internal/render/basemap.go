package render

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	geojson "github.com/paulmach/go.geojson"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
)

// Basemap is a set of coastline/border polylines in plot coordinates
// (normalized 0..360 longitude, latitude).
type Basemap struct {
	Lines [][][2]float64
}

// LoadBasemap reads a GeoJSON file of coastlines/borders. LineString,
// MultiLineString, Polygon, and MultiPolygon geometries are flattened to
// polylines; other geometry types are ignored.
func LoadBasemap(path string) (Basemap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Basemap{}, fmt.Errorf("read basemap: %v: %w", err, domain.ErrInvalidConfig)
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return Basemap{}, fmt.Errorf("parse basemap %s: %v: %w", path, err, domain.ErrInvalidConfig)
	}

	var bm Basemap
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		bm.appendGeometry(f.Geometry)
	}
	return bm, nil
}

func (b *Basemap) appendGeometry(g *geojson.Geometry) {
	switch {
	case g.IsLineString():
		b.appendLine(g.LineString)
	case g.IsMultiLineString():
		for _, line := range g.MultiLineString {
			b.appendLine(line)
		}
	case g.IsPolygon():
		for _, ring := range g.Polygon {
			b.appendLine(ring)
		}
	case g.IsMultiPolygon():
		for _, poly := range g.MultiPolygon {
			for _, ring := range poly {
				b.appendLine(ring)
			}
		}
	case g.IsCollection():
		for _, sub := range g.Geometries {
			b.appendGeometry(sub)
		}
	}
}

// appendLine converts GeoJSON [lon, lat] positions to plot coordinates.
func (b *Basemap) appendLine(coords [][]float64) {
	line := make([][2]float64, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		line = append(line, [2]float64{domain.Lon360(c[0]), c[1]})
	}
	if len(line) >= 2 {
		b.Lines = append(b.Lines, line)
	}
}

func drawBasemap(dc *gg.Context, proj projection, bm Basemap) {
	dc.SetColor(color.RGBA{0x55, 0x55, 0x55, 0xff})
	dc.SetLineWidth(1.5)
	for _, line := range bm.Lines {
		for i, pt := range line {
			x, y := proj.toPixel(pt[0], pt[1])
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}
}
