// Package induce implements the Inducer: it orchestrates the Induction
// Learning Algorithm by splitting training records by label and driving two
// index.Index instances in lock-step until every invalid training record is
// explained or a contradiction is found.
package induce

import (
	"log/slog"

	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/errs"
	"github.com/filterdef/filterdef/index"
	"github.com/filterdef/filterdef/ruleset"
)

// Learn validates a labelled training RecordGroup, partitions it by label,
// and runs ILA to produce a RuleSet representing invalid coverage. exclude
// lists additional field indices (besides the label column) to omit from
// rule induction.
func Learn(training *dataset.RecordGroup, exclude []int) (*ruleset.RuleSet, error) {
	if training.Len() == 0 {
		return nil, errs.Input("training set is empty")
	}
	if training.Arity() < 2 {
		return nil, errs.Input("training records need at least 2 fields, got arity %d", training.Arity())
	}

	labels, err := dataset.Labels(training)
	if err != nil {
		return nil, err
	}

	var validRecords, invalidRecords []dataset.Record
	for i, rec := range training.Records() {
		if labels[i] == dataset.Valid {
			validRecords = append(validRecords, rec)
		} else {
			invalidRecords = append(invalidRecords, rec)
		}
	}
	if len(validRecords) == 0 {
		return nil, errs.Input("training set has no valid (%q) records", "true")
	}
	if len(invalidRecords) == 0 {
		return nil, errs.Input("training set has no invalid (%q) records", "false")
	}

	validIdx, err := index.New(validRecords, exclude)
	if err != nil {
		return nil, err
	}
	invalidIdx, err := index.New(invalidRecords, exclude)
	if err != nil {
		return nil, err
	}

	rs := ruleset.New()
	for !invalidIdx.IsEmpty() && !invalidIdx.OneFiltersAllFields() {
		g, ok := invalidIdx.SelectLargest()
		for ok {
			if !validIdx.HasGroup(g) {
				slog.Debug("induce: emitting rule", "rule", g.String(), "arity", invalidIdx.Arity())
				rs.Append(g)
				g, ok, err = invalidIdx.DeleteLast()
				if err != nil {
					return nil, err
				}
			} else {
				slog.Debug("induce: rule also covers a valid record, skipping", "rule", g.String())
				g, ok = invalidIdx.SelectNextLargest()
			}
		}

		if !invalidIdx.IsEmpty() && !invalidIdx.OneFiltersAllFields() {
			if err := invalidIdx.IncrArity(); err != nil {
				return nil, err
			}
			if err := validIdx.IncrArity(); err != nil {
				return nil, err
			}
			slog.Debug("induce: raised arity", "arity", invalidIdx.Arity())
		}
	}

	if !invalidIdx.IsEmpty() {
		return nil, errs.Contradiction("some invalid training record shares every classify-field value with a valid one")
	}
	return rs, nil
}
