package model

import (
	"fmt"
	"time"
)

const (
	dateLayout    = "20060102"
	timeLayout    = "1504"
	isoDateLayout = "2006-01-02"
	isoTimeLayout = "15:04:05"
	nullTime      = "2500"
)

// Parser turns raw rows of one record file into insertable values.
// Call Resolve with the file's header row once, then ParseRow for each data row.
// After Resolve returns the Parser is read-only and safe for concurrent ParseRow calls.
type Parser struct {
	schema *RecordSchema

	resolved    bool
	indices     []int
	dateIndices []int
	maxIndex    int
}

// NewParser creates a Parser for the schema.
func NewParser(schema *RecordSchema) *Parser {
	return &Parser{schema: schema}
}

// Schema returns the schema the Parser reads.
func (p *Parser) Schema() *RecordSchema {
	return p.schema
}

// Resolved reports whether Resolve has succeeded.
func (p *Parser) Resolved() bool {
	return p.resolved
}

// Resolve maps header names to their positions in the file. Names are matched
// case-insensitively. It returns the lower-cased name to position index of the
// whole header row. On error the Parser keeps its previous state.
func (p *Parser) Resolve(header Header) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header.Lower() {
		if prev, ok := positions[name]; ok {
			return nil, fmt.Errorf("duplicate column header '%s' at indices %d and %d: %w",
				header[i], prev, i, ErrDuplicateColumnName)
		}
		positions[name] = i
	}

	maxIndex := -1
	indices := make([]int, len(p.schema.Columns))
	for i, col := range p.schema.Columns {
		idx, ok := positions[col.Header()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col.Header())
		}
		indices[i] = idx
		maxIndex = max(maxIndex, idx)
	}

	dateIndices := make([]int, len(p.schema.DateFields))
	for i, field := range p.schema.DateFields {
		idx, ok := positions[field.Header()]
		if !ok {
			return nil, fmt.Errorf("%w: date column %s", ErrMissingColumn, field.Header())
		}
		dateIndices[i] = idx
		maxIndex = max(maxIndex, idx)
	}

	p.indices = indices
	p.dateIndices = dateIndices
	p.maxIndex = maxIndex
	p.resolved = true
	return positions, nil
}

// ParseRow converts one data row. Rows shorter than the resolved header are
// padded with empty fields. Field conversion never fails; a malformed date or
// time is returned as an error.
func (p *Parser) ParseRow(row Record) ([]any, error) {
	if !p.resolved {
		return nil, ErrNotResolved
	}
	row = p.extend(row)

	values := make([]any, 0, len(p.indices)+len(p.dateIndices)+1)
	if !p.schema.HasPrimaryColumn {
		values = append(values, nil)
	}
	for i, col := range p.schema.Columns {
		values = append(values, col.Value(row[p.indices[i]]))
	}
	for i, field := range p.schema.DateFields {
		v, err := deriveDate(field, row[p.dateIndices[i]])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (p *Parser) extend(row Record) Record {
	if len(row) > p.maxIndex {
		return row
	}
	extended := make(Record, p.maxIndex+1)
	copy(extended, row)
	return extended
}

func deriveDate(field DateField, raw string) (any, error) {
	switch field.Kind() {
	case DateKindTime:
		return ParseCollisionTime(raw)
	default:
		return ParseRecordDate(raw)
	}
}

// ParseRecordDate converts a YYYYMMDD code into an ISO-8601 date.
func ParseRecordDate(raw string) (any, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDate, raw, err)
	}
	return t.Format(isoDateLayout), nil
}

// ParseCollisionTime converts an HHMM code into an ISO-8601 time of day.
// "2500" means no time was recorded and yields nil. Three digit codes are
// missing the leading zero of the hour; two digit codes carry a one digit
// hour and a one digit minute, so "14" is 01:04.
func ParseCollisionTime(raw string) (any, error) {
	if raw == nullTime {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, padTime(raw))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTime, raw, err)
	}
	return t.Format(isoTimeLayout), nil
}

// padTime expands a short time code to four digits
func padTime(raw string) string {
	switch len(raw) {
	case 2:
		return "0" + raw[:1] + "0" + raw[1:]
	case 3:
		return "0" + raw
	default:
		return raw
	}
}
