package qerr

import (
	"strings"
	"testing"
)

func TestDomainErrorMessage(t *testing.T) {
	err := Domain("make_pow", "exponent", "0^x requires an exact integer exponent")
	if err.Kind != DomainErrorKind {
		t.Fatalf("Kind = %v, want DomainErrorKind", err.Kind)
	}
	msg := err.Error()
	if !strings.Contains(msg, "make_pow") || !strings.Contains(msg, "exponent") {
		t.Fatalf("Error() = %q, want it to name the op and parameter", msg)
	}
}

func TestDomainWithSuggestionAppendsHint(t *testing.T) {
	err := DomainWithSuggestion("make_jacobi_theta", "index", "theta index out of range", "use an index in {1,2,3,4}")
	if !strings.Contains(err.Error(), "use an index in {1,2,3,4}") {
		t.Fatalf("Error() = %q, want it to contain the suggestion", err.Error())
	}
}

func TestPrecisionErrorNamesExponentAndTruncation(t *testing.T) {
	err := Precision("fps.coeff", 12, 10)
	if err.Kind != PrecisionErrorKind {
		t.Fatalf("Kind = %v, want PrecisionErrorKind", err.Kind)
	}
	msg := err.Error()
	if !strings.Contains(msg, "12") || !strings.Contains(msg, "10") {
		t.Fatalf("Error() = %q, want it to mention both the exponent and the truncation", msg)
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Invariant to panic")
		}
	}()
	Invariant("arena.intern", "dedup table returned two refs for one structure")
}
