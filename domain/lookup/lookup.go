// Package lookup holds the static code tables that turn SWITRS codes into
// readable values.
package lookup

// Table maps a raw code to its display value. An empty display value means
// the code is known to carry no information and displays as null.
// Tables are read-only after package initialization.
type Table map[string]string

// Lookup returns the display value of code and whether the code is known.
func (t Table) Lookup(code string) (any, bool) {
	display, ok := t[code]
	if !ok {
		return nil, false
	}
	if display == "" {
		return nil, true
	}
	return display, true
}
