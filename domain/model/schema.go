package model

import "strings"

// DateKind tells how a derived date field is decoded.
type DateKind int

const (
	// DateKindDate decodes an eight digit YYYYMMDD value into YYYY-MM-DD.
	DateKindDate DateKind = iota
	// DateKindTime decodes an HHMM value into HH:MM:SS. "2500" is null.
	DateKindTime
)

// DateField is a derived ISO-8601 column computed from a raw date or time code.
// Derived columns are always TEXT.
type DateField struct {
	header string
	name   string
	kind   DateKind
}

// NewDateField creates a DateField. The header is lower-cased.
func NewDateField(header, name string, kind DateKind) DateField {
	return DateField{
		header: strings.ToLower(header),
		name:   name,
		kind:   kind,
	}
}

// Header returns the lower-cased source header.
func (d DateField) Header() string {
	return d.header
}

// Name returns the destination column name.
func (d DateField) Name() string {
	return d.name
}

// Kind returns how the field is decoded.
func (d DateField) Kind() DateKind {
	return d.kind
}

// RecordSchema is the ordered column layout of one record type.
type RecordSchema struct {
	// TableName is the destination table.
	TableName string
	// HasPrimaryColumn marks the first column as a natural primary key.
	// When false an "id INTEGER PRIMARY KEY" column is prepended and every
	// parsed row starts with a nil placeholder for it.
	HasPrimaryColumn bool
	// Columns are converted in this order.
	Columns []Column
	// DateFields are appended after Columns. Only collisions have them.
	DateFields []DateField
}

// ColumnNames returns the destination column names in insert order,
// including the surrogate id column when there is one.
func (s *RecordSchema) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns)+len(s.DateFields)+1)
	if !s.HasPrimaryColumn {
		names = append(names, surrogateKeyName)
	}
	for _, c := range s.Columns {
		names = append(names, c.Name())
	}
	for _, d := range s.DateFields {
		names = append(names, d.Name())
	}
	return names
}
