package model

import "errors"

var (
	// ErrDuplicateColumnName is returned when a header row names the same column twice,
	// ignoring case.
	ErrDuplicateColumnName = errors.New("duplicate column name")

	// ErrMissingColumn is returned when a header row lacks a column the schema needs.
	ErrMissingColumn = errors.New("missing expected column")

	// ErrNotResolved is returned when a row is parsed before the header was resolved.
	ErrNotResolved = errors.New("header must be resolved before parsing rows")

	// ErrInvalidDate is returned when a date field is not in YYYYMMDD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime is returned when a time field is not in HHMM form.
	ErrInvalidTime = errors.New("invalid time")
)
