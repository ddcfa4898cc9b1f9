// Package config holds render settings and their documented defaults.
package config

import (
	"fmt"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
)

// Render-appearance defaults. All are overridable per invocation via the
// Render struct; the CLI exposes the commonly tuned ones as flags.
const (
	// DefaultColorR34 is the arc color for the 34-kt wind radius.
	DefaultColorR34 = "crimson"
	// DefaultColorR50 is the arc color for the 50-kt wind radius.
	DefaultColorR50 = "blue"
	// DefaultColorR64 is the arc color for the 64-kt wind radius.
	DefaultColorR64 = "green"

	// DefaultRadiusScale divides nautical miles into plot units. 70 is the
	// empirically tuned value carried over from the original tooling.
	DefaultRadiusScale = 70.0

	// DefaultMapPadding is the bounding-box margin in degrees.
	DefaultMapPadding = 10.0

	// DefaultGridStep is the graticule spacing in degrees.
	DefaultGridStep = 10.0

	// DefaultWidth and DefaultHeight are the output raster size in pixels.
	DefaultWidth  = 1600
	DefaultHeight = 2000

	// DefaultMarkerRadius is the track-point marker radius in pixels.
	DefaultMarkerRadius = 7.0
	// DefaultMarkerColor and DefaultMarkerEdgeColor style the markers.
	DefaultMarkerColor     = "blue"
	DefaultMarkerEdgeColor = "white"

	// DefaultArcLineWidth is the stroke width for wind-radii arcs in pixels.
	DefaultArcLineWidth = 2.0
)

// Render is the immutable configuration for one render call.
type Render struct {
	StormName  string
	OutputPath string

	ColorR34 string
	ColorR50 string
	ColorR64 string

	RadiusScale float64
	MapPadding  float64
	GridStep    float64

	Width  int
	Height int

	MarkerRadius    float64
	MarkerColor     string
	MarkerEdgeColor string
	ArcLineWidth    float64

	// BasemapPath points at an optional GeoJSON coastline/border file. Empty
	// means no basemap, which leaves the graticule as the only background.
	BasemapPath string

	FilterMissingWMO bool
}

// DefaultRender returns a Render populated with the documented defaults.
func DefaultRender(stormName, outputPath string) Render {
	return Render{
		StormName:       stormName,
		OutputPath:      outputPath,
		ColorR34:        DefaultColorR34,
		ColorR50:        DefaultColorR50,
		ColorR64:        DefaultColorR64,
		RadiusScale:     DefaultRadiusScale,
		MapPadding:      DefaultMapPadding,
		GridStep:        DefaultGridStep,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		MarkerRadius:    DefaultMarkerRadius,
		MarkerColor:     DefaultMarkerColor,
		MarkerEdgeColor: DefaultMarkerEdgeColor,
		ArcLineWidth:    DefaultArcLineWidth,
	}
}

// ThresholdColor returns the configured color name for a wind threshold.
func (r Render) ThresholdColor(t domain.Threshold) string {
	switch t {
	case domain.R34:
		return r.ColorR34
	case domain.R50:
		return r.ColorR50
	case domain.R64:
		return r.ColorR64
	}
	return r.ColorR34
}

// Validate checks the settings, wrapping domain.ErrInvalidConfig on failure.
func (r Render) Validate() error {
	if r.OutputPath == "" {
		return fmt.Errorf("output path is empty: %w", domain.ErrInvalidConfig)
	}
	if r.RadiusScale <= 0 {
		return fmt.Errorf("radius scale %g must be positive: %w", r.RadiusScale, domain.ErrInvalidConfig)
	}
	if r.MapPadding < 0 {
		return fmt.Errorf("map padding %g must not be negative: %w", r.MapPadding, domain.ErrInvalidConfig)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("image size %dx%d must be positive: %w", r.Width, r.Height, domain.ErrInvalidConfig)
	}
	for _, name := range []string{r.ColorR34, r.ColorR50, r.ColorR64, r.MarkerColor, r.MarkerEdgeColor} {
		if _, err := ParseColor(name); err != nil {
			return err
		}
	}
	return nil
}
