package schema

import (
	"fmt"
	"time"
)

// ErrMissingField is returned when a column required by a view is absent
// from the underlying table schema.
var ErrMissingField = fmt.Errorf("missing field")

// WorldEntity is the implicit entity of the aggregate table.
const WorldEntity = "World"

// TableKind tells the aggregate (global) table apart from the per-entity
// (country) table.
type TableKind string

const (
	Aggregate TableKind = "global"
	PerEntity TableKind = "country"
)

// Valid reports whether k is a known table kind.
func (k TableKind) Valid() bool {
	return k == Aggregate || k == PerEntity
}

// RawRow is one undecoded row from a dataset source, keyed by column name.
type RawRow map[string]string

// Observation is one (entity, date) sample. A field absent from Values is
// missing in the source row; zero is a reported value.
type Observation struct {
	Entity string             `json:"entity"`
	Date   time.Time          `json:"date"`
	Values map[string]float64 `json:"values"`
}

// Value returns the value of field and whether the source reported it.
func (o Observation) Value(field string) (float64, bool) {
	v, ok := o.Values[field]
	return v, ok
}

// HasAll reports whether every field in fields is present.
func (o Observation) HasAll(fields ...string) bool {
	for _, f := range fields {
		if _, ok := o.Values[f]; !ok {
			return false
		}
	}
	return true
}

// MissingFieldError wraps ErrMissingField with the offending column name.
func MissingFieldError(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
