// Command tcviz renders a tropical cyclone's track from an IBTrACS CSV
// archive as a static PNG map: path, per-point markers with time/wind/
// pressure labels, and per-quadrant wind-radii arcs for the 34/50/64-kt
// thresholds.
//
// Usage:
//
//	tcviz -name IDA -year 2021 -csv ibtracs.ALL.list.v04r00.csv
//
// The WMO completeness filter drops observations lacking primary-agency wind
// or pressure readings. It defaults off for 2021, whose archive rows shipped
// with blank WMO fields, and on for every other season; -no-filter-wmo
// forces it off.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/couchcryptid/tc-track-viz/internal/config"
	"github.com/couchcryptid/tc-track-viz/internal/domain"
	"github.com/couchcryptid/tc-track-viz/internal/export"
	"github.com/couchcryptid/tc-track-viz/internal/ibtracs"
	"github.com/couchcryptid/tc-track-viz/internal/observability"
	"github.com/couchcryptid/tc-track-viz/internal/pipeline"
	"github.com/couchcryptid/tc-track-viz/internal/render"
)

func main() {
	name := flag.String("name", "", "storm name, e.g. IDA (required)")
	year := flag.Int("year", 0, "storm season year, e.g. 2021 (required)")
	csvPath := flag.String("csv", "ibtracs.ALL.list.v04r00.csv", "path to the IBTrACS CSV archive")
	out := flag.String("out", "", "output PNG path (default <NAME>_<YEAR>_track.png)")
	geoJSON := flag.String("geojson", "", "also write the track as GeoJSON to this path")
	basemap := flag.String("basemap", "", "optional GeoJSON coastline/border file to draw under the track")

	colorR34 := flag.String("color-r34", config.DefaultColorR34, "color for 34-kt wind radii arcs")
	colorR50 := flag.String("color-r50", config.DefaultColorR50, "color for 50-kt wind radii arcs")
	colorR64 := flag.String("color-r64", config.DefaultColorR64, "color for 64-kt wind radii arcs")
	radiusScale := flag.Float64("radius-scale", config.DefaultRadiusScale, "divisor converting nautical miles to plot units")
	mapOffset := flag.Float64("map-offset", config.DefaultMapPadding, "degrees of padding around the track bounding box")
	noFilterWMO := flag.Bool("no-filter-wmo", false, "keep observations with missing WMO wind/pressure")

	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	flag.Parse()

	if *name == "" || *year == 0 {
		flag.Usage()
		os.Exit(1)
	}

	logger := observability.NewLogger(os.Stderr, *logLevel, *logFormat)

	stormName := strings.ToUpper(*name)
	outputPath := *out
	if outputPath == "" {
		outputPath = fmt.Sprintf("%s_%d_track.png", stormName, *year)
	}

	cfg := config.DefaultRender(stormName, outputPath)
	cfg.ColorR34 = *colorR34
	cfg.ColorR50 = *colorR50
	cfg.ColorR64 = *colorR64
	cfg.RadiusScale = *radiusScale
	cfg.MapPadding = *mapOffset
	cfg.BasemapPath = *basemap
	cfg.FilterMissingWMO = !*noFilterWMO && *year != 2021

	p := pipeline.New(
		ibtracs.NewLoader(*csvPath, logger),
		render.New(cfg, logger),
		geoJSONExporter{radiusScale: cfg.RadiusScale},
		logger,
	)

	_, err := p.Run(context.Background(), pipeline.Options{
		Name:             stormName,
		Year:             *year,
		FilterMissingWMO: cfg.FilterMissingWMO,
		GeoJSONPath:      *geoJSON,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			logger.Error("storm not found", "storm", stormName, "season", *year, "error", err)
		case errors.Is(err, domain.ErrEmptyTrack):
			logger.Error("no observations left after filtering; retry with -no-filter-wmo", "error", err)
		case errors.Is(err, domain.ErrInvalidConfig):
			logger.Error("invalid configuration", "error", err)
		default:
			logger.Error("render failed", "error", err)
		}
		os.Exit(1)
	}
}

// geoJSONExporter adapts the export package to the pipeline's interface.
type geoJSONExporter struct {
	radiusScale float64
}

func (e geoJSONExporter) Export(path string, track domain.Track) error {
	return export.WriteFile(path, track, e.radiusScale)
}
