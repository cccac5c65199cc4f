package switrs

import (
	"strconv"
)

// Load defaults
const (
	// DefaultChunkSize is the number of rows inserted per transaction
	DefaultChunkSize = 1000
	// MinChunkSize is the smallest accepted chunk size
	MinChunkSize = 1
	// DefaultOutputFile is the database file written when no output is set
	DefaultOutputFile = "switrs.sqlite3"
)

// Field separators of the delimited formats
const (
	// csvDelimiter separates fields in SWITRS .txt exports and .csv files
	csvDelimiter = ','
	// tsvDelimiter separates fields in .tsv files
	tsvDelimiter = '\t'
)

// ChunkSize is the number of rows parsed and inserted together.
type ChunkSize int

// NewChunkSize returns size as a ChunkSize, or DefaultChunkSize when size is
// below MinChunkSize.
func NewChunkSize(size int) ChunkSize {
	cs := ChunkSize(size)
	if !cs.IsValid() {
		return DefaultChunkSize
	}
	return cs
}

// Int returns the chunk size as an int
func (cs ChunkSize) Int() int {
	return int(cs)
}

// String implements fmt.Stringer
func (cs ChunkSize) String() string {
	return strconv.Itoa(cs.Int())
}

// IsValid reports whether the chunk size is at least MinChunkSize
func (cs ChunkSize) IsValid() bool {
	return cs >= MinChunkSize
}
