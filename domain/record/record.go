// Package record declares the column layouts of the three SWITRS record types.
package record

import (
	"fmt"
	"strings"

	"github.com/nao1215/switrs/domain/model"
)

// Kind identifies a SWITRS record type.
type Kind int

const (
	// KindCollision is the CollisionRecords file.
	KindCollision Kind = iota
	// KindParty is the PartyRecords file.
	KindParty
	// KindVictim is the VictimRecords file.
	KindVictim
)

// Kinds lists the record types in load order.
func Kinds() []Kind {
	return []Kind{KindCollision, KindParty, KindVictim}
}

// String returns the record type name.
func (k Kind) String() string {
	switch k {
	case KindCollision:
		return "collision"
	case KindParty:
		return "party"
	case KindVictim:
		return "victim"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a record type name such as "collision" or "victims".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "collision", "collisions":
		return KindCollision, nil
	case "party", "parties":
		return KindParty, nil
	case "victim", "victims":
		return KindVictim, nil
	default:
		return 0, fmt.Errorf("unknown record kind %q", s)
	}
}

// Schema returns a new schema for the record type.
func (k Kind) Schema() *model.RecordSchema {
	switch k {
	case KindParty:
		return Party()
	case KindVictim:
		return Victim()
	default:
		return Collision()
	}
}

// defaultNulls are the raw values every column reads as "no data".
var defaultNulls = model.NewNullSet("", "-")

// column declares a field that is trimmed, null-checked against the default
// sentinels and cast to t, unless opts say otherwise.
func column(header, name string, t model.SQLType, opts ...model.ColumnOption) model.Column {
	base := []model.ColumnOption{
		model.WithNulls(defaultNulls),
		model.WithConverter(model.Convert),
	}
	return model.NewColumn(header, name, t, append(base, opts...)...)
}

func text(header, name string, opts ...model.ColumnOption) model.Column {
	return column(header, name, model.SQLTypeText, opts...)
}

func integer(header, name string, opts ...model.ColumnOption) model.Column {
	return column(header, name, model.SQLTypeInteger, opts...)
}

func float(header, name string, opts ...model.ColumnOption) model.Column {
	return column(header, name, model.SQLTypeReal, opts...)
}

// flag declares a Y/N field stored as a boolean.
func flag(header, name string) model.Column {
	return integer(header, name, model.WithConverter(model.StringToBool))
}

// coded declares a text field translated through a lookup table.
func coded(header, name string, m model.Mapping, opts ...model.ColumnOption) model.Column {
	return text(header, name, append([]model.ColumnOption{model.WithMapping(m)}, opts...)...)
}

// nullsPlus adds field specific sentinels to the defaults.
func nullsPlus(values ...string) model.ColumnOption {
	return model.WithNulls(defaultNulls.Union(values...))
}
