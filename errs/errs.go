// Package errs defines the error taxonomy shared by every command: InputError,
// ContradictoryTraining, InvariantViolation, and OutputError. Callers distinguish
// them with errors.As rather than string matching.
package errs

import "fmt"

// InputError wraps malformed CSV, inconsistent field counts, missing files,
// missing required labels, empty datasets, and an unparseable ignore-fields
// list.
type InputError struct {
	msg string
	err error
}

func Input(format string, args ...any) error {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

func InputWrap(err error, format string, args ...any) error {
	return &InputError{msg: fmt.Sprintf(format, args...), err: err}
}

func (e *InputError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("input error: %s: %s", e.msg, e.err)
	}
	return fmt.Sprintf("input error: %s", e.msg)
}

func (e *InputError) Unwrap() error { return e.err }

// ContradictoryTraining reports that induction could not separate every
// invalid training record from every valid one: some pair of records agrees
// on every classify field yet disagrees on label.
type ContradictoryTraining struct {
	msg string
}

func Contradiction(format string, args ...any) error {
	return &ContradictoryTraining{msg: fmt.Sprintf(format, args...)}
}

func (e *ContradictoryTraining) Error() string {
	return fmt.Sprintf("contradictory training data: %s", e.msg)
}

// InvariantViolation reports that a TrainingIndex's dual-index invariants
// (I1-I5) were found to be broken. This should be unreachable; it indicates a
// bug, and the index that raised it must not be used again.
type InvariantViolation struct {
	msg string
}

func Invariant(format string, args ...any) error {
	return &InvariantViolation{msg: fmt.Sprintf(format, args...)}
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.msg)
}

// OutputError wraps a failure to write a result file.
type OutputError struct {
	msg string
	err error
}

func Output(err error, format string, args ...any) error {
	return &OutputError{msg: fmt.Sprintf(format, args...), err: err}
}

func (e *OutputError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("output error: %s: %s", e.msg, e.err)
	}
	return fmt.Sprintf("output error: %s", e.msg)
}

func (e *OutputError) Unwrap() error { return e.err }
