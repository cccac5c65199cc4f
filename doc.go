// Package switrs loads California's Statewide Integrated Traffic Records System
// (SWITRS) exports into a SQLite database.
//
// SWITRS publishes three record files per request: CollisionRecords,
// PartyRecords and VictimRecords. Each file has a header row naming its
// columns; switrs resolves those names case-insensitively, converts every
// field to a typed value, translates coded fields into readable text through
// static lookup tables and inserts the rows into the collisions, parties and
// victims tables.
//
// # Features
//
//   - Comma-delimited .txt as shipped by the portal, plus CSV, TSV, Excel (XLSX) and Parquet
//   - Automatic handling of compressed files (gzip, bzip2, xz, zstandard)
//   - Header columns in any order, extra columns ignored, short rows padded
//   - Chunked transactional inserts with a configurable chunk size
//   - Configurable handling of invalid UTF-8 (strict, ignore, replace)
//   - Optional load manifest and Prometheus counters
//
// # Basic Usage
//
//	loader, err := switrs.NewBuilder().
//	    AddCollisionPath("CollisionRecords.txt").
//	    AddPartyPath("PartyRecords.txt").
//	    AddVictimPath("VictimRecords.txt").
//	    SetOutputFile("switrs.sqlite3").
//	    Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := loader.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.Rows("collisions"))
//
// # Tables
//
// collisions is keyed by case_id and carries three derived ISO-8601 columns,
// collision_date, collision_time and process_date. parties and victims get a
// surrogate id INTEGER PRIMARY KEY and reference collisions through case_id.
// Running a load against a database that already holds one of these tables
// fails with ErrTableExists.
//
// # Null Values
//
// Empty fields and "-" are stored as NULL in every column. Some columns treat
// further sentinel codes as NULL, such as 998 for an unknown age.
// Values that fail to convert to the column type are stored as NULL as well.
// A malformed date or time is an error.
package switrs
