// Package ruleset implements RuleSet, the disjunction of PredicateGroups
// emitted by induction and consumed by the classifier. Its rendering is the
// one stable surface an operator inspects to tune an exclusion list.
package ruleset

import (
	"strings"

	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/predicate"
	"github.com/filterdef/filterdef/util"
)

// RuleSet is an append-only, ordered collection of predicate.Group values.
// Insertion order is preserved for deterministic reporting.
type RuleSet struct {
	groups []predicate.Group
}

// New returns an empty RuleSet.
func New() *RuleSet { return &RuleSet{} }

// Append adds a PredicateGroup to the end of the set.
func (rs *RuleSet) Append(g predicate.Group) { rs.groups = append(rs.groups, g) }

// Groups returns the groups in insertion order. The caller must not mutate
// the returned slice.
func (rs *RuleSet) Groups() []predicate.Group { return rs.groups }

// Len is the number of groups in the set.
func (rs *RuleSet) Len() int { return len(rs.groups) }

// Passes reports whether any member group passes the record.
func (rs *RuleSet) Passes(r dataset.Record) bool {
	for _, g := range rs.groups {
		if g.Passes(r) {
			return true
		}
	}
	return false
}

// String renders one group per line in insertion order, using
// predicate.Group's `[f1->v1, ...]` rendering.
func (rs *RuleSet) String() string {
	lines := util.TransformSlice(rs.groups, predicate.Group.String)
	return strings.Join(lines, "\n")
}
