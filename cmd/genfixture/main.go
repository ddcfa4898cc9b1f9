// Command genfixture writes a synthetic IBTrACS-format CSV archive for tests
// and demos: two header rows plus one storm lifecycle with intensification,
// wind radii, and a tail of blank-WMO observations mirroring the 2021
// archive gap. The column layout matches what internal/ibtracs reads.
//
// Usage:
//
//	go run ./cmd/genfixture -out demo.csv -name DEMO -year 2021
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"
)

var header = []string{
	"SID", "SEASON", "NUMBER", "BASIN", "SUBBASIN", "NAME", "ISO_TIME", "NATURE",
	"LAT", "LON", "WMO_WIND", "WMO_PRES", "WMO_AGENCY", "USA_WIND", "USA_PRES",
	"USA_R34_NE", "USA_R34_SE", "USA_R34_SW", "USA_R34_NW",
	"USA_R50_NE", "USA_R50_SE", "USA_R50_SW", "USA_R50_NW",
	"USA_R64_NE", "USA_R64_SE", "USA_R64_SW", "USA_R64_NW",
	"REUNION_R34_NE", "REUNION_R34_SE", "REUNION_R34_SW", "REUNION_R34_NW",
}

var units = []string{
	" ", "Year", " ", " ", " ", " ", " ", " ",
	"degrees_north", "degrees_east", "kts", "mb", " ", "kts", "mb",
	"nmile", "nmile", "nmile", "nmile",
	"nmile", "nmile", "nmile", "nmile",
	"nmile", "nmile", "nmile", "nmile",
	"nmile", "nmile", "nmile", "nmile",
}

func main() {
	out := flag.String("out", "", "output CSV path (required)")
	name := flag.String("name", "DEMO", "storm name")
	year := flag.Int("year", 2021, "storm season")
	points := flag.Int("points", 12, "number of six-hourly observations")
	blankWMO := flag.Int("blank-wmo", 3, "trailing observations with blank WMO fields")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *blankWMO > *points {
		log.Fatalf("-blank-wmo %d exceeds -points %d", *blankWMO, *points)
	}

	if err := run(*out, *name, *year, *points, *blankWMO); err != nil {
		log.Fatal(err)
	}
}

func run(out, name string, year, points, blankWMO int) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.Write(units); err != nil {
		return err
	}

	sid := fmt.Sprintf("%d236N12296", year)
	start := time.Date(year, time.August, 26, 0, 0, 0, 0, time.UTC)

	for i := 0; i < points; i++ {
		row := observation(sid, name, year, start, i, points, i >= points-blankWMO)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	log.Printf("%s: %d observations for %s %d", out, points, name, year)
	return nil
}

// observation synthesizes one six-hourly row: a northwest-then-recurving
// path with a sinusoidal intensity peak mid-lifecycle.
func observation(sid, name string, year int, start time.Time, i, total int, blank bool) []string {
	t := start.Add(time.Duration(i) * 6 * time.Hour)
	progress := 0.0
	if total > 1 {
		progress = float64(i) / float64(total-1)
	}

	lat := 15.0 + 18.0*progress
	lon := -78.0 - 14.0*progress + 8.0*progress*progress

	// Intensity ramps up to a mid-track peak, then decays.
	intensity := math.Sin(progress * math.Pi)
	wind := 30 + int(100*intensity)
	pres := 1008 - int(80*intensity)

	row := []string{
		sid, fmt.Sprintf("%d", year), "42", "NA", "CS", name,
		t.Format("2006-01-02 15:04:05"), "TS",
		fmt.Sprintf("%.1f", lat), fmt.Sprintf("%.1f", lon),
	}

	if blank {
		row = append(row, " ", " ", " ")
	} else {
		row = append(row, fmt.Sprintf("%d", wind), fmt.Sprintf("%d", pres), "hurdat_atl")
	}
	row = append(row, fmt.Sprintf("%d", wind), fmt.Sprintf("%d", pres-1))

	row = append(row, radii(wind, 34)...)
	row = append(row, radii(wind, 50)...)
	row = append(row, radii(wind, 64)...)

	// REUNION radii stay blank in the Atlantic.
	row = append(row, " ", " ", " ", " ")
	return row
}

// radii reports NE/SE/SW/NW radii once the wind clears the threshold, with
// the usual asymmetry (larger in the right-front quadrant).
func radii(wind, threshold int) []string {
	if wind < threshold+10 {
		return []string{" ", " ", " ", " "}
	}
	base := (wind - threshold) * 2
	return []string{
		fmt.Sprintf("%d", base),
		fmt.Sprintf("%d", base*8/10),
		fmt.Sprintf("%d", base*5/10),
		fmt.Sprintf("%d", base*6/10),
	}
}
