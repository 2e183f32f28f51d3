package predicate

import (
	"sort"
	"strings"

	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/errs"
)

// Group is an immutable, non-empty, sorted conjunction of FieldPredicates
// with no two predicates sharing a field index. It passes a record iff
// every member predicate passes.
type Group struct {
	predicates []FieldPredicate
	key        string
}

// FromPredicate builds a single-predicate Group.
func FromPredicate(p FieldPredicate) Group {
	return Group{predicates: []FieldPredicate{p}, key: p.String()}
}

// FromPredicates builds a Group from a non-empty list of predicates,
// validating the unique-field invariant.
func FromPredicates(ps []FieldPredicate) (Group, error) {
	if len(ps) == 0 {
		return Group{}, errs.Input("predicate group must be non-empty")
	}
	sorted := make([]FieldPredicate, len(ps))
	copy(sorted, ps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].SameField(sorted[i-1]) {
			return Group{}, errs.Input("field %d appears more than once in predicate group", sorted[i].Field())
		}
	}
	return Group{predicates: sorted, key: renderKey(sorted)}, nil
}

// FromRecordFields derives one predicate per requested field index from a
// record and builds a Group from them.
func FromRecordFields(r dataset.Record, fields []int) (Group, error) {
	ps := make([]FieldPredicate, 0, len(fields))
	for _, f := range fields {
		v, ok := r.Field(f)
		if !ok {
			return Group{}, errs.Input("record has no field %d", f)
		}
		p, err := New(f, v)
		if err != nil {
			return Group{}, err
		}
		ps = append(ps, p)
	}
	return FromPredicates(ps)
}

// Extend returns a new Group with one additional predicate, validated to be
// on a field index not already present in g.
func (g Group) Extend(p FieldPredicate) (Group, error) {
	for _, existing := range g.predicates {
		if existing.SameField(p) {
			return Group{}, errs.Input("field %d already present in predicate group", p.Field())
		}
	}
	next := make([]FieldPredicate, len(g.predicates)+1)
	copy(next, g.predicates)
	next[len(g.predicates)] = p
	return FromPredicates(next)
}

// Passes requires every member predicate to pass; a record missing a
// referenced field fails the whole group.
func (g Group) Passes(r dataset.Record) bool {
	for _, p := range g.predicates {
		if !p.Passes(r) {
			return false
		}
	}
	return true
}

// Predicates returns the sorted predicates of the group. The caller must
// not mutate the returned slice.
func (g Group) Predicates() []FieldPredicate { return g.predicates }

// Arity is the predicate count.
func (g Group) Arity() int { return len(g.predicates) }

// LastField is the maximum field index present in the group.
func (g Group) LastField() int {
	return g.predicates[len(g.predicates)-1].Field()
}

// Key is a deterministic string uniquely identifying the group's predicate
// set, suitable for use as a map key. Two groups are Equal iff their Keys
// match.
func (g Group) Key() string { return g.key }

// Equal reports whether two groups contain the same predicates.
func (g Group) Equal(other Group) bool { return g.key == other.key }

// String renders the stable `[f1->v1, f2->v2, ...]` surface in ascending
// field order.
func (g Group) String() string {
	return "[" + renderKey(g.predicates) + "]"
}

func renderKey(ps []FieldPredicate) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
