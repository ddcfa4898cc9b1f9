// Package ibtracs reads storm tracks out of IBTrACS-format CSV archives.
//
// The archive ships two header rows (column names, then units). The units row
// needs no special casing: its NAME cell is blank, so it never matches a
// requested storm and falls out with every other non-matching row.
package ibtracs

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
)

// isoTimeLayouts are accepted ISO_TIME formats. The archive uses the first;
// the second appears in some trimmed extracts.
var isoTimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}

// Loader extracts a single storm's track from an IBTrACS CSV archive.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader creates a Loader for the archive at path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Load scans the archive and returns the track for the named storm
// (case-insensitive) in the given season, sorted by observation time.
// With filterMissingWMO set, observations lacking a primary-agency wind or
// pressure reading are dropped; domain.ErrEmptyTrack is returned if that
// removes everything. domain.ErrNotFound is returned when no rows match.
func (l *Loader) Load(name string, year int, filterMissingWMO bool) (domain.Track, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return domain.Track{}, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	track, err := l.scan(f, name, year)
	if err != nil {
		return domain.Track{}, err
	}
	if track.Len() == 0 {
		return domain.Track{}, fmt.Errorf("no rows for storm %q season %d: %w", name, year, domain.ErrNotFound)
	}

	if filterMissingWMO {
		kept := FilterMissingWMO(track.Points)
		l.logger.Debug("wmo completeness filter applied",
			"before", track.Len(), "after", len(kept))
		if len(kept) == 0 {
			return domain.Track{}, fmt.Errorf("storm %q season %d: %w", name, year, domain.ErrEmptyTrack)
		}
		track.Points = kept
	}

	track.SortByTime()
	return track, nil
}

// FilterMissingWMO keeps only observations with both a primary-agency wind
// and pressure reading. It never returns more points than it was given.
func FilterMissingWMO(points []domain.TrackPoint) []domain.TrackPoint {
	kept := make([]domain.TrackPoint, 0, len(points))
	for _, p := range points {
		if p.WMOWind.Present && p.WMOPressure.Present {
			kept = append(kept, p)
		}
	}
	return kept
}

// scan streams the CSV, keeping rows whose NAME and SEASON match.
func (l *Loader) scan(r io.Reader, name string, year int) (domain.Track, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // the units row is sometimes short in extracts
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return domain.Track{}, fmt.Errorf("read archive header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return domain.Track{}, err
	}

	track := domain.Track{Name: strings.ToUpper(name), Season: year}
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Track{}, fmt.Errorf("read archive row %d: %w", row+1, err)
		}
		row++

		if !strings.EqualFold(strings.TrimSpace(cols.get(rec, colName)), strings.TrimSpace(name)) {
			continue
		}
		season, err := strconv.Atoi(strings.TrimSpace(cols.get(rec, colSeason)))
		if err != nil || season != year {
			continue
		}

		point, err := cols.parsePoint(rec)
		if err != nil {
			return domain.Track{}, fmt.Errorf("archive row %d: %w", row, err)
		}
		track.Points = append(track.Points, point)
	}
	return track, nil
}

// columnIndex maps resolved header names to field positions.
type columnIndex map[string]int

func resolveColumns(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("archive header missing column %s", c)
		}
	}
	return idx, nil
}

// get returns the named field, or "" when the column is absent or the row is
// short.
func (c columnIndex) get(rec []string, col string) string {
	i, ok := c[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// parsePoint converts one matched row into a TrackPoint. Blank numeric fields
// become absent readings; non-blank non-numeric fields are malformed data and
// fail the load.
func (c columnIndex) parsePoint(rec []string) (domain.TrackPoint, error) {
	ts, err := parseISOTime(c.get(rec, colISOTime))
	if err != nil {
		return domain.TrackPoint{}, err
	}

	lat, err := parseCoordinate(c.get(rec, colLat), colLat, -90, 90)
	if err != nil {
		return domain.TrackPoint{}, err
	}
	lon, err := parseCoordinate(c.get(rec, colLon), colLon, -180, 180)
	if err != nil {
		return domain.TrackPoint{}, err
	}

	wmoWind, err := parseOptional(c.get(rec, colWMOWind), colWMOWind)
	if err != nil {
		return domain.TrackPoint{}, err
	}
	wmoPres, err := parseOptional(c.get(rec, colWMOPres), colWMOPres)
	if err != nil {
		return domain.TrackPoint{}, err
	}

	point := domain.TrackPoint{
		Time:        ts,
		Lat:         lat,
		Lon:         lon,
		Lon360:      domain.Lon360(lon),
		WMOWind:     wmoWind,
		WMOPressure: wmoPres,
	}

	// Best available wind/pressure: WMO first, then regional agencies.
	point.Wind = wmoWind
	point.Pressure = wmoPres
	for _, agency := range radiiAgencies {
		w, err := parseOptional(c.get(rec, windColumn(agency)), windColumn(agency))
		if err != nil {
			return domain.TrackPoint{}, err
		}
		p, err := parseOptional(c.get(rec, presColumn(agency)), presColumn(agency))
		if err != nil {
			return domain.TrackPoint{}, err
		}
		point.Wind = point.Wind.Or(w)
		point.Pressure = point.Pressure.Or(p)
	}

	if point.Radii, err = c.parseRadii(rec); err != nil {
		return domain.TrackPoint{}, err
	}
	return point, nil
}

// parseRadii assembles the wind-radii set. For each threshold the first
// agency reporting any quadrant supplies the whole ring, so a single ring
// never mixes agencies.
func (c columnIndex) parseRadii(rec []string) (domain.RadiiSet, error) {
	var radii domain.RadiiSet
	for ti, threshold := range domain.Thresholds {
		for _, agency := range radiiAgencies {
			ring, any, err := c.parseRing(rec, agency, threshold.Knots())
			if err != nil {
				return domain.RadiiSet{}, err
			}
			if any {
				radii[ti] = ring
				break
			}
		}
	}
	return radii, nil
}

func (c columnIndex) parseRing(rec []string, agency string, knots int) ([domain.NumQuadrants]domain.Optional, bool, error) {
	var ring [domain.NumQuadrants]domain.Optional
	any := false
	for qi, q := range domain.Quadrants {
		col := radiusColumn(agency, knots, q.String())
		v, err := parseOptional(c.get(rec, col), col)
		if err != nil {
			return ring, false, err
		}
		if v.Present && v.Value < 0 {
			return ring, false, fmt.Errorf("parse %s: negative radius %g", col, v.Value)
		}
		ring[qi] = v
		any = any || v.Present
	}
	return ring, any, nil
}

func parseISOTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse %s: invalid timestamp %q", colISOTime, s)
}

func parseCoordinate(s, col string, lo, hi float64) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: invalid value %q", col, s)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("parse %s: %g outside %g..%g", col, v, lo, hi)
	}
	return v, nil
}

// parseOptional treats blank (empty or whitespace) as absent per the IBTrACS
// convention; anything else must parse as a number.
func parseOptional(s, col string) (domain.Optional, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.None(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.None(), fmt.Errorf("parse %s: invalid value %q", col, s)
	}
	return domain.Some(v), nil
}
