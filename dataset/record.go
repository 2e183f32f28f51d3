// Package dataset holds the fixed-arity string Record type and the CSV
// boundary that produces and consumes it. This is the one place the wire
// literals "true"/"false" are allowed to appear; everywhere past this
// boundary a record's label is carried as the two-valued Label type.
package dataset

import "github.com/filterdef/filterdef/errs"

// Label is the two-valued verdict a record carries during training or
// after classification. The wire literals are confined to this package.
type Label bool

const (
	Valid   Label = true
	Invalid Label = false
)

func (l Label) String() string {
	if l {
		return "true"
	}
	return "false"
}

// Record is an ordered, fixed-arity sequence of string fields.
type Record []string

// Field returns the value at index i and whether it was present.
func (r Record) Field(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// RecordGroup is a non-empty sequence of records sharing one arity.
type RecordGroup struct {
	records []Record
	arity   int
}

// NewRecordGroup validates that every record has the same, positive arity
// and returns a group over them. The slice is not copied; callers must not
// mutate it afterward.
func NewRecordGroup(records []Record) (*RecordGroup, error) {
	if len(records) == 0 {
		return nil, errs.Input("record group is empty")
	}
	arity := len(records[0])
	if arity == 0 {
		return nil, errs.Input("records have zero arity")
	}
	for i, r := range records {
		if len(r) != arity {
			return nil, errs.Input("record %d has arity %d, expected %d", i, len(r), arity)
		}
	}
	return &RecordGroup{records: records, arity: arity}, nil
}

func (g *RecordGroup) Records() []Record { return g.records }
func (g *RecordGroup) Len() int          { return len(g.records) }
func (g *RecordGroup) Arity() int        { return g.arity }

// AppendField appends value to every record in place, in order, and
// increments the group's arity. Used by the classifier to attach the
// learned label without reordering or dropping records.
func (g *RecordGroup) AppendField(values []string) error {
	if len(values) != len(g.records) {
		return errs.Input("appending %d values to %d records", len(values), len(g.records))
	}
	for i := range g.records {
		g.records[i] = append(g.records[i], values[i])
	}
	g.arity++
	return nil
}

// StripLastField removes the final field of every record in place,
// returning the removed values. Mirrors the `strip` command's per-line
// behavior at the RecordGroup level.
func (g *RecordGroup) StripLastField() ([]string, error) {
	if g.arity == 0 {
		return nil, errs.Input("cannot strip a field from zero-arity records")
	}
	removed := make([]string, len(g.records))
	for i, r := range g.records {
		removed[i] = r[len(r)-1]
		g.records[i] = r[:len(r)-1]
	}
	g.arity--
	return removed, nil
}
