package dataset

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/filterdef/filterdef/errs"
)

// labelTrue and labelFalse are the only literals allowed in the trailing
// label field of training and classified records.
const (
	labelTrue  = "true"
	labelFalse = "false"
)

// ReadFile loads a line-oriented CSV file into a RecordGroup. Fields are
// split on a single comma; there is no quoting or escaping. Blank lines are
// ignored. path of "-" reads from stdin, rejecting an interactive terminal
// so the command doesn't hang waiting on a human to type input.
func ReadFile(path string) (*RecordGroup, error) {
	var r io.Reader
	if path == "-" {
		if f, ok := os.Stdin.Stat(); ok == nil && (f.Mode()&os.ModeCharDevice) != 0 {
			return nil, errs.Input("stdin is not piped")
		}
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errs.InputWrap(err, "opening %s", path)
		}
		defer f.Close()
		r = f
	}
	return decode(r, path)
}

func decode(r io.Reader, name string) (*RecordGroup, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, Record(strings.Split(line, ",")))
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.InputWrap(err, "reading %s", name)
	}
	slog.Debug("dataset decoded", "file", name, "records", len(records))
	group, err := NewRecordGroup(records)
	if err != nil {
		return nil, errs.InputWrap(err, "parsing %s", name)
	}
	return group, nil
}

// WriteFile re-emits a RecordGroup as line-oriented CSV, one record per
// line, no quoting. path of "-" writes to stdout.
func WriteFile(path string, g *RecordGroup) error {
	var w io.Writer
	if path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return errs.Output(err, "creating %s", path)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	for _, rec := range g.Records() {
		if _, err := fmt.Fprintln(bw, strings.Join(rec, ",")); err != nil {
			return errs.Output(err, "writing %s", path)
		}
	}
	if err := bw.Flush(); err != nil {
		return errs.Output(err, "flushing %s", path)
	}
	slog.Debug("dataset encoded", "file", path, "records", g.Len())
	return nil
}

// Labels reads the reserved trailing label field off each training record,
// validating that it is exactly "true" or "false", without modifying the
// records themselves. This is the only place the wire literals are parsed.
func Labels(g *RecordGroup) ([]Label, error) {
	if g.Arity() < 2 {
		return nil, errs.Input("training records need at least 2 fields, got arity %d", g.Arity())
	}
	labelField := g.Arity() - 1
	labels := make([]Label, g.Len())
	for i, rec := range g.Records() {
		switch rec[labelField] {
		case labelTrue:
			labels[i] = Valid
		case labelFalse:
			labels[i] = Invalid
		default:
			return nil, errs.Input("record %d has label %q, want %q or %q", i, rec[labelField], labelTrue, labelFalse)
		}
	}
	return labels, nil
}

// LabelLiteral converts a Label back to its wire literal, for appending to
// classified output.
func LabelLiteral(l Label) string { return l.String() }
