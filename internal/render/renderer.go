// Package render rasterizes a storm track onto an equirectangular map image.
package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/couchcryptid/tc-track-viz/internal/config"
	"github.com/couchcryptid/tc-track-viz/internal/domain"
	"github.com/couchcryptid/tc-track-viz/internal/geometry"
)

// Renderer draws one track per call according to an immutable config.
type Renderer struct {
	cfg    config.Render
	logger *slog.Logger
}

// New creates a Renderer. The config is validated on Render, not here.
func New(cfg config.Render, logger *slog.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

// Render draws the track and writes the PNG to the configured output path.
// The file is only created when the whole drawing pass succeeds.
func (r *Renderer) Render(track domain.Track) error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}
	if track.Len() == 0 {
		return fmt.Errorf("track has no points: %w", domain.ErrRender)
	}

	minLon, minLat, maxLon, maxLat, _ := track.Bounds()
	proj := newProjection(
		minLon-r.cfg.MapPadding, maxLon+r.cfg.MapPadding,
		minLat-r.cfg.MapPadding, maxLat+r.cfg.MapPadding,
		r.cfg.Width, r.cfg.Height,
	)

	dc := gg.NewContext(r.cfg.Width, r.cfg.Height)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.White)
	dc.Clear()

	r.drawGraticule(dc, proj)

	if r.cfg.BasemapPath != "" {
		basemap, err := LoadBasemap(r.cfg.BasemapPath)
		if err != nil {
			return err
		}
		drawBasemap(dc, proj, basemap)
	}

	r.drawPath(dc, proj, track)

	sign := 1
	for _, p := range track.Points {
		if err := r.drawWindRadii(dc, proj, p); err != nil {
			return err
		}
		r.drawMarker(dc, proj, p)
		r.drawAnnotation(dc, proj, p, sign)
		sign = -sign
	}

	r.drawTitle(dc, track)
	r.drawFooter(dc)

	if err := dc.SavePNG(r.cfg.OutputPath); err != nil {
		return fmt.Errorf("write %s: %v: %w", r.cfg.OutputPath, err, domain.ErrRender)
	}
	r.logger.Info("plot written", "path", r.cfg.OutputPath, "points", track.Len())
	return nil
}

// drawGraticule strokes dashed meridians and parallels at GridStep spacing
// with edge labels.
func (r *Renderer) drawGraticule(dc *gg.Context, proj projection) {
	step := r.cfg.GridStep
	if step <= 0 {
		return
	}

	dc.SetColor(color.RGBA{0x00, 0x00, 0x00, 0x50})
	dc.SetLineWidth(1)
	dc.SetDash(6, 4)

	for lon := math.Ceil(proj.minLon/step) * step; lon <= proj.maxLon; lon += step {
		x, _ := proj.toPixel(lon, proj.minLat)
		dc.DrawLine(x, 0, x, float64(proj.height))
		dc.Stroke()
	}
	for lat := math.Ceil(proj.minLat/step) * step; lat <= proj.maxLat; lat += step {
		_, y := proj.toPixel(proj.minLon, lat)
		dc.DrawLine(0, y, float64(proj.width), y)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetColor(color.Black)
	for lon := math.Ceil(proj.minLon/step) * step; lon <= proj.maxLon; lon += step {
		x, _ := proj.toPixel(lon, proj.minLat)
		dc.DrawStringAnchored(lonLabel(lon), x, float64(proj.height)-6, 0.5, 0)
	}
	for lat := math.Ceil(proj.minLat/step) * step; lat <= proj.maxLat; lat += step {
		_, y := proj.toPixel(proj.minLon, lat)
		dc.DrawStringAnchored(latLabel(lat), float64(proj.width)-8, y, 1, -0.3)
	}
}

// drawPath connects the observations in order.
func (r *Renderer) drawPath(dc *gg.Context, proj projection, track domain.Track) {
	dc.SetColor(color.RGBA{0x40, 0x40, 0x40, 0xff})
	dc.SetLineWidth(2)
	for i, p := range track.Points {
		x, y := proj.toPixel(p.Lon360, p.Lat)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
}

// drawWindRadii strokes the three threshold rings for one observation.
func (r *Renderer) drawWindRadii(dc *gg.Context, proj projection, p domain.TrackPoint) error {
	dc.SetLineWidth(r.cfg.ArcLineWidth)
	for ti, threshold := range domain.Thresholds {
		ring, err := geometry.WindRadiiRing(p.Lon360, p.Lat, p.Radii[ti], r.cfg.RadiusScale)
		if err != nil {
			return err
		}
		if ring.Empty() {
			continue
		}

		// Colors were validated up front.
		c, _ := config.ParseColor(r.cfg.ThresholdColor(threshold))
		dc.SetColor(c)

		for _, arc := range ring.Arcs {
			cx, cy := proj.toPixel(arc.CX, arc.CY)
			// Plot angles are counter-clockwise from east with latitude
			// increasing upward; the raster's y axis points down, so the
			// angle flips sign.
			dc.NewSubPath()
			dc.DrawEllipticalArc(
				cx, cy,
				arc.RX*proj.pxPerLon, arc.RY*proj.pxPerLat,
				gg.Radians(-arc.EndDeg), gg.Radians(-arc.StartDeg),
			)
			dc.Stroke()
		}
		for _, s := range ring.Spokes {
			x1, y1 := proj.toPixel(s.X1, s.Y1)
			x2, y2 := proj.toPixel(s.X2, s.Y2)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
	}
	return nil
}

func (r *Renderer) drawMarker(dc *gg.Context, proj projection, p domain.TrackPoint) {
	x, y := proj.toPixel(p.Lon360, p.Lat)

	face, _ := config.ParseColor(r.cfg.MarkerColor)
	edge, _ := config.ParseColor(r.cfg.MarkerEdgeColor)

	dc.SetColor(face)
	dc.DrawCircle(x, y, r.cfg.MarkerRadius)
	dc.FillPreserve()
	dc.SetColor(edge)
	dc.SetLineWidth(2)
	dc.Stroke()
}

// drawAnnotation attaches the time/wind/pressure label, alternating left and
// right of consecutive markers to reduce overlap.
func (r *Renderer) drawAnnotation(dc *gg.Context, proj projection, p domain.TrackPoint, sign int) {
	x, y := proj.toPixel(p.Lon360, p.Lat)

	label := fmt.Sprintf("%sZ, %s kt, %s hPa",
		p.Time.Format("02/15"), optionalLabel(p.Wind), optionalLabel(p.Pressure))

	offsetX, anchorX := 40.0, 0.0
	if sign < 0 {
		offsetX, anchorX = -40.0, 1.0
	}

	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawLine(x, y, x+offsetX*0.8, y)
	dc.Stroke()

	w, h := dc.MeasureString(label)
	bx := x + offsetX
	if anchorX == 1 {
		bx -= w
	}
	dc.SetColor(color.White)
	dc.DrawRectangle(bx-2, y-h-2, w+4, h+6)
	dc.Fill()
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(label, x+offsetX, y, anchorX, 0)
}

func (r *Renderer) drawTitle(dc *gg.Context, track domain.Track) {
	dc.SetColor(color.Black)
	title := fmt.Sprintf("%s %d", track.Name, track.Season)
	dc.DrawStringAnchored(title, float64(r.cfg.Width)/2, 18, 0.5, 0.5)
}

func (r *Renderer) drawFooter(dc *gg.Context) {
	dc.SetColor(color.RGBA{0x60, 0x60, 0x60, 0xff})
	stamp := fmt.Sprintf("generated %s", domain.Now().UTC().Format("2006-01-02 15:04:05 UTC"))
	dc.DrawString(stamp, 8, float64(r.cfg.Height)-8)
}

func optionalLabel(o domain.Optional) string {
	if !o.Present {
		return "--"
	}
	return fmt.Sprintf("%g", o.Value)
}

func lonLabel(lon float64) string {
	l := domain.Lon360(lon)
	switch {
	case l == 0 || l == 180:
		return fmt.Sprintf("%g°", l)
	case l > 180:
		return fmt.Sprintf("%g°W", 360-l)
	default:
		return fmt.Sprintf("%g°E", l)
	}
}

func latLabel(lat float64) string {
	switch {
	case lat == 0:
		return "0°"
	case lat < 0:
		return fmt.Sprintf("%g°S", -lat)
	default:
		return fmt.Sprintf("%g°N", lat)
	}
}

// projection maps lon/lat degrees onto the raster. Longitude is expected in
// the 0..360 normalized form.
type projection struct {
	minLon, maxLon float64
	minLat, maxLat float64
	width, height  int

	pxPerLon float64
	pxPerLat float64
}

func newProjection(minLon, maxLon, minLat, maxLat float64, width, height int) projection {
	lonSpan := maxLon - minLon
	latSpan := maxLat - minLat
	if lonSpan <= 0 {
		lonSpan = 1
	}
	if latSpan <= 0 {
		latSpan = 1
	}
	return projection{
		minLon: minLon, maxLon: maxLon,
		minLat: minLat, maxLat: maxLat,
		width: width, height: height,
		pxPerLon: float64(width) / lonSpan,
		pxPerLat: float64(height) / latSpan,
	}
}

func (p projection) toPixel(lon, lat float64) (x, y float64) {
	return (lon - p.minLon) * p.pxPerLon, (p.maxLat - lat) * p.pxPerLat
}
