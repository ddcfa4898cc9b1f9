// Package pipeline orchestrates the load-filter-render flow for one
// invocation. It is the programmatic entry point: the CLI is a thin flag
// wrapper around Run.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
)

// TrackLoader loads and filters a single storm's track from the archive.
type TrackLoader interface {
	Load(name string, year int, filterMissingWMO bool) (domain.Track, error)
}

// TrackRenderer draws a track to the configured output image.
type TrackRenderer interface {
	Render(track domain.Track) error
}

// TrackExporter writes a track as GeoJSON.
type TrackExporter interface {
	Export(path string, track domain.Track) error
}

// Options selects the storm and the optional GeoJSON side output.
type Options struct {
	Name             string
	Year             int
	FilterMissingWMO bool

	// GeoJSONPath enables the GeoJSON export when non-empty.
	GeoJSONPath string
}

// Pipeline runs the one-shot load-filter-render flow.
type Pipeline struct {
	loader   TrackLoader
	renderer TrackRenderer
	exporter TrackExporter
	logger   *slog.Logger
}

// New creates a Pipeline. exporter may be nil when GeoJSON export is unused.
func New(loader TrackLoader, renderer TrackRenderer, exporter TrackExporter, logger *slog.Logger) *Pipeline {
	return &Pipeline{loader: loader, renderer: renderer, exporter: exporter, logger: logger}
}

// Run loads the requested track, renders it, and optionally exports GeoJSON.
// Failures are terminal; there are no retries in a one-shot batch run.
func (p *Pipeline) Run(ctx context.Context, opts Options) (domain.Track, error) {
	p.logger.Info("loading track",
		"storm", opts.Name, "season", opts.Year, "filter_missing_wmo", opts.FilterMissingWMO)

	track, err := p.loader.Load(opts.Name, opts.Year, opts.FilterMissingWMO)
	if err != nil {
		return domain.Track{}, err
	}
	p.logger.Info("track loaded", "points", track.Len())

	if err := ctx.Err(); err != nil {
		return domain.Track{}, err
	}

	if err := p.renderer.Render(track); err != nil {
		return domain.Track{}, err
	}

	if opts.GeoJSONPath != "" && p.exporter != nil {
		if err := p.exporter.Export(opts.GeoJSONPath, track); err != nil {
			return domain.Track{}, err
		}
		p.logger.Info("geojson written", "path", opts.GeoJSONPath)
	}

	return track, nil
}
