// Package model provides domain model for switrs
package model

import (
	"strconv"
	"strings"
)

// Header is the header row of a record file.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Lower returns a copy of the header with every name lower-cased.
func (h Header) Lower() Header {
	lowered := make(Header, len(h))
	for i, v := range h {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}

// Record is one raw data row of a record file.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}

// SQLType represents the declared SQL type of a destination column.
type SQLType int

const (
	// SQLTypeText represents TEXT column type
	SQLTypeText SQLType = iota
	// SQLTypeInteger represents INTEGER column type
	SQLTypeInteger
	// SQLTypeReal represents REAL column type
	SQLTypeReal
	// SQLTypeBlob represents BLOB column type
	SQLTypeBlob
	// SQLTypeNull represents NULL column type. Values of this type are never cast.
	SQLTypeNull
)

const (
	sqlTypeText    = "TEXT"
	sqlTypeInteger = "INTEGER"
	sqlTypeReal    = "REAL"
	sqlTypeBlob    = "BLOB"
	sqlTypeNull    = "NULL"
)

// String returns the SQL column type string
func (t SQLType) String() string {
	switch t {
	case SQLTypeText:
		return sqlTypeText
	case SQLTypeInteger:
		return sqlTypeInteger
	case SQLTypeReal:
		return sqlTypeReal
	case SQLTypeBlob:
		return sqlTypeBlob
	case SQLTypeNull:
		return sqlTypeNull
	default:
		return sqlTypeText
	}
}

// HasTarget reports whether values of this type are cast to a Go value.
// NULL columns carry no target type, so converters pass their input through.
func (t SQLType) HasTarget() bool {
	return t != SQLTypeNull
}

// IsNumeric reports whether the type casts to a number.
func (t SQLType) IsNumeric() bool {
	return t == SQLTypeInteger || t == SQLTypeReal
}

// Cast converts an already trimmed string to the Go value for this type:
// int64 for INTEGER, float64 for REAL and string for TEXT and BLOB.
// The second return value is false when the string does not parse.
func (t SQLType) Cast(s string) (any, bool) {
	switch t {
	case SQLTypeInteger:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case SQLTypeReal:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case SQLTypeText, SQLTypeBlob:
		return s, true
	default:
		return s, true
	}
}
