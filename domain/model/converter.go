package model

import (
	"fmt"
	"strings"
)

// NullSet holds the raw values that a column treats as "no data".
// A nil NullSet matches nothing.
type NullSet map[string]struct{}

// NewNullSet creates a NullSet from the given sentinel values.
func NewNullSet(values ...string) NullSet {
	set := make(NullSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Contains reports whether v is a null sentinel.
func (n NullSet) Contains(v string) bool {
	_, ok := n[v]
	return ok
}

// Union returns a new NullSet holding the sentinels of n and the extra values.
func (n NullSet) Union(values ...string) NullSet {
	set := make(NullSet, len(n)+len(values))
	for v := range n {
		set[v] = struct{}{}
	}
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Converter turns one raw field into its typed value. A nil return is SQL NULL.
// dtype is SQLTypeNull when the column has no target type.
type Converter func(raw string, dtype SQLType, nulls NullSet) any

// Identity returns raw unchanged.
func Identity(raw string, _ SQLType, _ NullSet) any {
	return raw
}

// Convert trims raw and returns nil if the trimmed value is a null sentinel.
// With a target type the trimmed value is cast, and a failed cast is nil.
// Without one the untrimmed raw value is returned.
func Convert(raw string, dtype SQLType, nulls NullSet) any {
	trimmed := strings.TrimSpace(raw)
	if nulls.Contains(trimmed) {
		return nil
	}
	if !dtype.HasTarget() {
		return raw
	}
	v, ok := dtype.Cast(trimmed)
	if !ok {
		return nil
	}
	return v
}

// Negative converts raw with Convert and flips the sign of numeric results.
// Anything that is not a number becomes nil.
func Negative(raw string, dtype SQLType, nulls NullSet) any {
	switch v := Convert(raw, dtype, nulls).(type) {
	case int64:
		return -v
	case float64:
		return -v
	default:
		return nil
	}
}

// StringToBool maps "y" or "Y" to true and anything else to false.
// The untrimmed raw value is compared against nulls first.
func StringToBool(raw string, _ SQLType, nulls NullSet) any {
	if nulls.Contains(raw) {
		return nil
	}
	return strings.ToLower(raw) == "y"
}

// CountyCityLocationToCounty keeps the two leading county digits of a
// four digit county-city location code. The code is converted as text so
// leading zeros survive.
func CountyCityLocationToCounty(raw string, dtype SQLType, nulls NullSet) any {
	v := Convert(raw, dtype, nulls)
	if v == nil {
		return nil
	}
	county := []rune(fmt.Sprint(v))
	if len(county) > 2 {
		county = county[:2]
	}
	return string(county)
}

var cellphoneInUse = map[string]any{
	"B": true,
	"C": false,
	"D": nil,
	"1": true,
	"2": true,
	"3": false,
}

// CellphoneUseToBool reports whether a party was using a cellphone.
// Codes outside the known table are nil.
func CellphoneUseToBool(raw string, _ SQLType, nulls NullSet) any {
	if nulls.Contains(raw) {
		return nil
	}
	return cellphoneInUse[raw]
}

var nonStandardTrue = map[string]any{
	"A": true, // hazardous materials
	"E": true, // school bus related
}

// NonStandardStringToBool maps the special-information codes that mean
// "yes" to true and everything else to nil.
func NonStandardStringToBool(raw string, _ SQLType, nulls NullSet) any {
	if nulls.Contains(raw) {
		return nil
	}
	return nonStandardTrue[raw]
}
