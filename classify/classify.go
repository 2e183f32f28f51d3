// Package classify applies a learned RuleSet to unlabelled records,
// appending the literal label field the way the training data carried it.
package classify

import (
	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/ruleset"
)

// Record declares a single record invalid iff rs passes it; a record with
// too few fields for a predicate simply fails that predicate, so missing
// fields are never classified as invalid purely by absence.
func Record(rs *ruleset.RuleSet, r dataset.Record) dataset.Label {
	if rs.Passes(r) {
		return dataset.Invalid
	}
	return dataset.Valid
}

// Group applies rs to every record in g in place, appending "true" or
// "false" as a new trailing field per record. It does not reorder or drop
// records.
func Group(rs *ruleset.RuleSet, g *dataset.RecordGroup) error {
	labels := make([]string, g.Len())
	for i, r := range g.Records() {
		labels[i] = dataset.LabelLiteral(Record(rs, r))
	}
	return g.AppendField(labels)
}
