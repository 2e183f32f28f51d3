// Package predicate implements FieldPredicate and PredicateGroup, the
// atomic and conjunctive building blocks of a learned rule.
package predicate

import (
	"fmt"

	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/errs"
)

// FieldPredicate is an immutable (field-index, value) equality test.
type FieldPredicate struct {
	field int
	value string
}

// New constructs a FieldPredicate. The empty string is a valid value; a
// negative field index is not.
func New(field int, value string) (FieldPredicate, error) {
	if field < 0 {
		return FieldPredicate{}, errs.Input("field index %d is negative", field)
	}
	return FieldPredicate{field: field, value: value}, nil
}

func (p FieldPredicate) Field() int    { return p.field }
func (p FieldPredicate) Value() string { return p.value }

// Passes reports whether record has at least field+1 fields and the value
// at that field equals p's value exactly.
func (p FieldPredicate) Passes(r dataset.Record) bool {
	v, ok := r.Field(p.field)
	return ok && v == p.value
}

// SameField reports predicate equality restricted to the field index.
func (p FieldPredicate) SameField(other FieldPredicate) bool {
	return p.field == other.field
}

// Equal reports whether the two predicates agree on both field and value.
func (p FieldPredicate) Equal(other FieldPredicate) bool {
	return p.field == other.field && p.value == other.value
}

// Less orders predicates primarily by field index ascending, then by value
// lexicographically.
func (p FieldPredicate) Less(other FieldPredicate) bool {
	if p.field != other.field {
		return p.field < other.field
	}
	return p.value < other.value
}

func (p FieldPredicate) String() string {
	return fmt.Sprintf("%d->%s", p.field, p.value)
}
