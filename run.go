// Package filterdef is the shared entry point behind the `ila` CLI: it
// wires the dataset, index, induce, classify, and ruleset packages into the
// four documented commands (classify, slice, strip, compare), independent
// of cmd/ila/main.go so it can be exercised directly from tests.
package filterdef

import (
	"fmt"
	"log/slog"

	"github.com/filterdef/filterdef/classify"
	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/errs"
	"github.com/filterdef/filterdef/induce"
)

// ClassifyOptions configures RunClassify.
type ClassifyOptions struct {
	TrainingFile   string
	ToClassifyFile string
	OutputFile     string
	IgnoreFields   []int
	// Explain, when set, is called with the learned RuleSet's stable
	// rendering after induction (the CLI writes it to stderr), so an
	// operator can tune IgnoreFields without a second on-disk artefact.
	Explain func(string)
}

// RunClassify learns a RuleSet from TrainingFile and applies it to
// ToClassifyFile, writing the labelled result to OutputFile.
func RunClassify(opts ClassifyOptions) error {
	training, err := dataset.ReadFile(opts.TrainingFile)
	if err != nil {
		return err
	}
	rs, err := induce.Learn(training, opts.IgnoreFields)
	if err != nil {
		return err
	}
	slog.Info("learned rule set", "rules", rs.Len())
	if opts.Explain != nil {
		opts.Explain(rs.String())
	}

	toClassify, err := dataset.ReadFile(opts.ToClassifyFile)
	if err != nil {
		return err
	}
	if err := classify.Group(rs, toClassify); err != nil {
		return err
	}
	return dataset.WriteFile(opts.OutputFile, toClassify)
}

// RunSlice partitions an input file into a contiguous slice of lineCount
// records starting at the 1-based firstLine, and its complement, failing if
// the input has fewer than firstLine records.
func RunSlice(in, sliceOut, remainderOut string, firstLine, lineCount int) error {
	group, err := dataset.ReadFile(in)
	if err != nil {
		return err
	}
	if firstLine < 1 || firstLine > group.Len() {
		return errs.Input("input has %d records, first-line %d is out of range", group.Len(), firstLine)
	}
	if lineCount < 0 {
		return errs.Input("line-count %d must not be negative", lineCount)
	}

	records := group.Records()
	start := firstLine - 1
	end := start + lineCount
	if end > len(records) {
		end = len(records)
	}

	slicePart := append([]dataset.Record{}, records[start:end]...)
	var remainder []dataset.Record
	remainder = append(remainder, records[:start]...)
	remainder = append(remainder, records[end:]...)

	sliceGroup, err := dataset.NewRecordGroup(slicePart)
	if err != nil {
		return err
	}
	if err := dataset.WriteFile(sliceOut, sliceGroup); err != nil {
		return err
	}
	if len(remainder) == 0 {
		return errs.Input("slice consumes the entire input: remainder would be empty")
	}
	remainderGroup, err := dataset.NewRecordGroup(remainder)
	if err != nil {
		return err
	}
	return dataset.WriteFile(remainderOut, remainderGroup)
}

// RunStrip removes the last field of every record in in and writes the
// result to out.
func RunStrip(in, out string) error {
	group, err := dataset.ReadFile(in)
	if err != nil {
		return err
	}
	if _, err := group.StripLastField(); err != nil {
		return err
	}
	return dataset.WriteFile(out, group)
}

// RunCompare requires baseline and results to agree on every field except
// the last on every record, in the same order. For each record whose last
// field differs it writes one line to mismatchesOut: the zero-based record
// index, the baseline value, and the results value. If no record differs,
// mismatchesOut is not written. Disagreement in record bodies or counts is
// a hard error.
func RunCompare(baseline, results, mismatchesOut string) error {
	base, err := dataset.ReadFile(baseline)
	if err != nil {
		return err
	}
	res, err := dataset.ReadFile(results)
	if err != nil {
		return err
	}
	if base.Len() != res.Len() {
		return errs.Input("baseline has %d records, results has %d", base.Len(), res.Len())
	}

	var mismatches []dataset.Record
	for i, b := range base.Records() {
		r := res.Records()[i]
		if len(b) != len(r) {
			return errs.Input("record %d: baseline arity %d, results arity %d", i, len(b), len(r))
		}
		body := len(b) - 1
		for f := 0; f < body; f++ {
			if b[f] != r[f] {
				return errs.Input("record %d: body differs at field %d (%q vs %q)", i, f, b[f], r[f])
			}
		}
		if b[body] != r[body] {
			mismatches = append(mismatches, dataset.Record{fmt.Sprint(i), b[body], r[body]})
		}
	}
	if len(mismatches) == 0 {
		slog.Info("compare: no mismatches")
		return nil
	}
	mismatchGroup, err := dataset.NewRecordGroup(mismatches)
	if err != nil {
		return err
	}
	return dataset.WriteFile(mismatchesOut, mismatchGroup)
}
