// Package qerr implements the engine's error taxonomy (spec.md §7):
// construction-level DomainError/PrecisionError values that propagate like
// ordinary errors, and an InvariantViolation panic helper for internal bugs.
// Search-level negative outcomes (NotSummable, NotReachable,
// NotMultiplicative) are *not* modeled here as errors — per §7 they travel
// as plain struct fields on each package's own result record (a
// `Found bool`, or `Holds` for CheckMult; q_gosper's record also carries a
// `Reason string`), so this package only defines shared Reason strings.
package qerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind names one of the fatal, propagating error categories from §7.
type Kind string

const (
	DomainErrorKind    Kind = "DomainError"
	PrecisionErrorKind Kind = "PrecisionError"
)

// QErr is the engine's propagating error type: it always names the
// operation, the offending parameter, and carries a short suggestion when
// one applies, matching the "deterministic exit code and one-line
// diagnostic" contract §7 promises the CLI collaborator.
type QErr struct {
	Kind       Kind
	Op         string // function name, e.g. "make_pow"
	Param      string // offending parameter, e.g. "exponent"
	Message    string
	Suggestion string
}

func (e *QErr) Error() string {
	s := fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Message)
	if e.Param != "" {
		s = fmt.Sprintf("%s: %s: %s (parameter %q)", e.Kind, e.Op, e.Message, e.Param)
	}
	if e.Suggestion != "" {
		s += " — " + e.Suggestion
	}
	return s
}

// Domain builds a DomainError for an invalid construction request.
func Domain(op, param, message string) *QErr {
	return &QErr{Kind: DomainErrorKind, Op: op, Param: param, Message: message}
}

// DomainWithSuggestion is Domain plus a short fix-it hint.
func DomainWithSuggestion(op, param, message, suggestion string) *QErr {
	e := Domain(op, param, message)
	e.Suggestion = suggestion
	return e
}

// Precision builds a PrecisionError: the caller asked for a coefficient at
// or beyond an FPS truncation order.
func Precision(op string, exponent, truncation int) *QErr {
	return &QErr{
		Kind:    PrecisionErrorKind,
		Op:      op,
		Param:   "exponent",
		Message: fmt.Sprintf("requested coefficient at exponent %d but series is only known below truncation %d", exponent, truncation),
	}
}

// Invariant panics with a stack-carrying error for an internal defect —
// hash-consing producing two refs for one structure, a zero entry left in
// an FPS map, and similar bugs that are never the caller's fault. Per §7
// this is "panics in debug, logs in release"; the engine always runs in
// the former mode since it has no release/debug build-tag split of its
// own — a host binary that wants the latter recovers at its own boundary.
func Invariant(where, detail string) {
	panic(errors.Wrap(fmt.Errorf("invariant violation in %s: %s", where, detail), "qerr"))
}

// Reason strings for the search-level "no relation found" outcomes, so
// diagnostics read consistently regardless of which algorithm produced
// them. internal/summation uses ReasonNotGosperSummable and
// ReasonNotReachable.
const (
	ReasonNoCombination     = "no combination found"
	ReasonNotGosperSummable = "not Gosper-summable"
	ReasonNotReachable      = "no transformation chain found within depth bound"
	ReasonNotMultiplicative = "coefficients are not multiplicative"
)
