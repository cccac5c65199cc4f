package model

import "strings"

// Mapping translates a converted code into its display value.
type Mapping interface {
	// Lookup returns the display value for code and whether code is known.
	// A known code may display as nil.
	Lookup(code string) (any, bool)
}

// Column describes how one source field becomes one destination column.
// A Column is immutable once created.
type Column struct {
	header    string
	name      string
	sqlType   SQLType
	nulls     NullSet
	converter Converter
	mapping   Mapping
}

// ColumnOption configures a Column at construction time.
type ColumnOption func(*Column)

// WithNulls sets the null sentinels of the column.
func WithNulls(nulls NullSet) ColumnOption {
	return func(c *Column) {
		c.nulls = nulls
	}
}

// WithConverter sets the converter of the column.
func WithConverter(conv Converter) ColumnOption {
	return func(c *Column) {
		c.converter = conv
	}
}

// WithMapping sets the code lookup applied after conversion.
func WithMapping(m Mapping) ColumnOption {
	return func(c *Column) {
		c.mapping = m
	}
}

// NewColumn creates a Column reading the source field header into the
// destination column name. The header is lower-cased. Without options the
// column has no null sentinels, no mapping and the Identity converter.
func NewColumn(header, name string, sqlType SQLType, opts ...ColumnOption) Column {
	c := Column{
		header:    strings.ToLower(header),
		name:      name,
		sqlType:   sqlType,
		converter: Identity,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.converter == nil {
		c.converter = Identity
	}
	return c
}

// Header returns the lower-cased source header.
func (c Column) Header() string {
	return c.header
}

// Name returns the destination column name.
func (c Column) Name() string {
	return c.name
}

// SQLType returns the declared SQL type.
func (c Column) SQLType() SQLType {
	return c.sqlType
}

// Nulls returns the null sentinels. The set must not be modified.
func (c Column) Nulls() NullSet {
	return c.nulls
}

// Mapping returns the code lookup, or nil.
func (c Column) Mapping() Mapping {
	return c.mapping
}

// Value converts raw and applies the mapping. Codes missing from the mapping,
// nil and non-string values pass through unchanged.
func (c Column) Value(raw string) any {
	v := c.converter(raw, c.sqlType, c.nulls)
	if c.mapping == nil {
		return v
	}
	code, ok := v.(string)
	if !ok {
		return v
	}
	if mapped, found := c.mapping.Lookup(code); found {
		return mapped
	}
	return v
}
