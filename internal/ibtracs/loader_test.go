package ibtracs_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
	"github.com/couchcryptid/tc-track-viz/internal/ibtracs"
)

const sampleArchive = "testdata/ibtracs_sample.csv"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_IDAUnfiltered(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	track, err := loader.Load("IDA", 2021, false)
	require.NoError(t, err)

	assert.Equal(t, "IDA", track.Name)
	assert.Equal(t, 2021, track.Season)
	require.Len(t, track.Points, 10)

	// Sorted by time even though the fixture rows are shuffled.
	for i := 1; i < len(track.Points); i++ {
		assert.True(t, track.Points[i-1].Time.Before(track.Points[i].Time),
			"points must be in ascending time order")
	}

	// Peak intensity observation.
	peak := track.Points[5]
	assert.Equal(t, time.Date(2021, 8, 29, 12, 0, 0, 0, time.UTC), peak.Time)
	assert.Equal(t, 26.2, peak.Lat)
	assert.Equal(t, -89.6, peak.Lon)
	assert.InDelta(t, 270.4, peak.Lon360, 1e-9)
	assert.Equal(t, domain.Some(130), peak.Wind)
	assert.Equal(t, domain.Some(929), peak.Pressure)
	assert.Equal(t, domain.Some(130), peak.Radii.At(domain.R34, domain.NE))
	assert.Equal(t, domain.Some(80), peak.Radii.At(domain.R34, domain.NW))
	assert.Equal(t, domain.Some(70), peak.Radii.At(domain.R34, domain.SW))
	assert.Equal(t, domain.Some(110), peak.Radii.At(domain.R34, domain.SE))
	assert.Equal(t, domain.Some(30), peak.Radii.At(domain.R64, domain.NE))
}

func TestLoad_IDAFiltered(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	track, err := loader.Load("IDA", 2021, true)
	require.NoError(t, err)
	require.Len(t, track.Points, 7)

	for _, p := range track.Points {
		assert.True(t, p.WMOWind.Present, "filtered track must keep WMO wind")
		assert.True(t, p.WMOPressure.Present, "filtered track must keep WMO pressure")
	}
}

func TestLoad_FilteredNeverLarger(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	unfiltered, err := loader.Load("IDA", 2021, false)
	require.NoError(t, err)
	filtered, err := loader.Load("IDA", 2021, true)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(filtered.Points), len(unfiltered.Points))
}

func TestLoad_NameIsCaseInsensitive(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	track, err := loader.Load("ida", 2021, false)
	require.NoError(t, err)
	assert.Len(t, track.Points, 10)
}

func TestLoad_SeasonSeparatesStorms(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	track, err := loader.Load("IDA", 2009, false)
	require.NoError(t, err)
	assert.Len(t, track.Points, 2)
	assert.Equal(t, 2009, track.Season)
}

func TestLoad_UnknownStorm(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	_, err := loader.Load("KATRINA", 2021, false)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad_WrongYear(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	_, err := loader.Load("IDA", 1998, false)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad_AgencyFallback(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	track, err := loader.Load("IDA", 2021, false)
	require.NoError(t, err)

	// 08-28 00Z: USA radii blank, REUNION reports the 34-kt ring.
	p := track.Points[2]
	require.Equal(t, time.Date(2021, 8, 28, 0, 0, 0, 0, time.UTC), p.Time)
	assert.Equal(t, domain.Some(40), p.Radii.At(domain.R34, domain.NE))
	assert.Equal(t, domain.Some(30), p.Radii.At(domain.R34, domain.NW))

	// 08-30 00Z: WMO wind/pressure blank, USA readings fill in.
	p = track.Points[7]
	require.Equal(t, time.Date(2021, 8, 30, 0, 0, 0, 0, time.UTC), p.Time)
	assert.False(t, p.WMOWind.Present)
	assert.False(t, p.WMOPressure.Present)
	assert.Equal(t, domain.Some(105), p.Wind)
	assert.Equal(t, domain.Some(940), p.Pressure)
}

func TestLoad_ZeroRadiusIsNotMissing(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	track, err := loader.Load("IDA", 2021, false)
	require.NoError(t, err)

	// 08-30 00Z reports an explicit 0 nm in the R64 NW quadrant.
	p := track.Points[7]
	r := p.Radii.At(domain.R64, domain.NW)
	assert.True(t, r.Present)
	assert.Equal(t, 0.0, r.Value)
}

func TestLoad_RadiiNeverNegative(t *testing.T) {
	loader := ibtracs.NewLoader(sampleArchive, testLogger())

	track, err := loader.Load("IDA", 2021, false)
	require.NoError(t, err)

	for _, p := range track.Points {
		for _, th := range domain.Thresholds {
			for _, q := range domain.Quadrants {
				if r := p.Radii.At(th, q); r.Present {
					assert.GreaterOrEqual(t, r.Value, 0.0)
				}
			}
		}
	}
}

func TestLoad_MalformedRow(t *testing.T) {
	path := writeArchive(t, ""+
		"SID,SEASON,NUMBER,BASIN,SUBBASIN,NAME,ISO_TIME,NATURE,LAT,LON,WMO_WIND,WMO_PRES\n"+
		" ,Year, , , , , , ,degrees_north,degrees_east,kts,mb\n"+
		"x,2021,1,NA,CS,TEST,2021-08-27 00:00:00,TS,not-a-number,-79.0,30,1006\n")

	loader := ibtracs.NewLoader(path, testLogger())
	_, err := loader.Load("TEST", 2021, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAT")
}

func TestLoad_LatitudeOutOfRange(t *testing.T) {
	path := writeArchive(t, ""+
		"SID,SEASON,NUMBER,BASIN,SUBBASIN,NAME,ISO_TIME,NATURE,LAT,LON,WMO_WIND,WMO_PRES\n"+
		"x,2021,1,NA,CS,TEST,2021-08-27 00:00:00,TS,95.0,-79.0,30,1006\n")

	loader := ibtracs.NewLoader(path, testLogger())
	_, err := loader.Load("TEST", 2021, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAT")
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	path := writeArchive(t, ""+
		"SID,SEASON,NAME,ISO_TIME,LAT,LON,WMO_WIND\n"+
		"x,2021,TEST,2021-08-27 00:00:00,16.5,-79.0,30\n")

	loader := ibtracs.NewLoader(path, testLogger())
	_, err := loader.Load("TEST", 2021, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WMO_PRES")
}

func TestLoad_AllRowsFilteredOut(t *testing.T) {
	path := writeArchive(t, ""+
		"SID,SEASON,NUMBER,BASIN,SUBBASIN,NAME,ISO_TIME,NATURE,LAT,LON,WMO_WIND,WMO_PRES\n"+
		"x,2021,1,NA,CS,TEST,2021-08-27 00:00:00,TS,16.5,-79.0, , \n"+
		"x,2021,1,NA,CS,TEST,2021-08-27 06:00:00,TS,16.9,-79.4, , \n")

	loader := ibtracs.NewLoader(path, testLogger())
	_, err := loader.Load("TEST", 2021, true)
	require.ErrorIs(t, err, domain.ErrEmptyTrack)
}

func TestLoad_MissingArchive(t *testing.T) {
	loader := ibtracs.NewLoader("testdata/does_not_exist.csv", testLogger())
	_, err := loader.Load("IDA", 2021, false)
	require.Error(t, err)
}

func TestFilterMissingWMO(t *testing.T) {
	points := []domain.TrackPoint{
		{WMOWind: domain.Some(40), WMOPressure: domain.Some(1000)},
		{WMOWind: domain.None(), WMOPressure: domain.Some(1000)},
		{WMOWind: domain.Some(40), WMOPressure: domain.None()},
		{WMOWind: domain.None(), WMOPressure: domain.None()},
	}

	kept := ibtracs.FilterMissingWMO(points)
	assert.Len(t, kept, 1)
}

func writeArchive(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
