// Package domain models IBTrACS tropical cyclone track data.
//
// # Data Source
//
// Track observations come from the IBTrACS (International Best Track Archive
// for Climate Stewardship) CSV files published by NOAA NCEI, e.g.
// ibtracs.ALL.list.v04r00.csv. The archive is a fixed-column CSV with two
// leading header rows: the column names, then a units row. Each subsequent
// row is one observation of one storm, typically at six-hour intervals.
//
// # IBTrACS Conventions
//
// Blank fields:
//
//	An empty string or a single space means "not reported". A blank wind
//	radius is NOT a zero radius; the two are distinct, which is why numeric
//	readings are modeled as [Optional] rather than zeroed. A non-blank field
//	that fails to parse as a number is malformed data and is reported as an
//	error, never silently dropped.
//
// Agencies:
//
//	WMO_WIND and WMO_PRES carry the primary reporting agency's sustained
//	wind (kt) and central pressure (hPa). Regional agencies (USA, REUNION,
//	BOM) report their own values and, importantly, the per-quadrant wind
//	radii — the WMO columns never carry radii. The 2021 season shipped with
//	systematically blank WMO fields, which is why the completeness filter
//	is a user-facing toggle rather than always-on.
//
// Wind radii:
//
//	<AGENCY>_R<threshold>_<quadrant> columns give the distance in nautical
//	miles from the storm center at which sustained wind reaches 34, 50, or
//	64 kt, per compass quadrant (NE, SE, SW, NW). Radii are taken from the
//	USA agency first, falling back to REUNION then BOM per threshold.
//
// Coordinates:
//
//	LAT is degrees north in -90..90, LON degrees east in -180..180. Tracks
//	that cross the antimeridian would fold in a naive -180..180 plot, so
//	every point also carries a 0..360 normalized longitude ([Lon360]) used
//	for bounding boxes and plotting.
//
// # Quadrant Angle Convention
//
// Arc angles are degrees from due east, increasing counter-clockwise:
// NE 0-90, NW 90-180, SW 180-270, SE 270-360. The archive documentation does
// not pin this down; the convention is fixed here once, exposed via
// [Quadrant.ArcRange], and tested for consistency.
package domain
