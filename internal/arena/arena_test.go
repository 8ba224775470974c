package arena

import (
	"testing"

	"qseries/internal/bignum"
	"qseries/internal/symbol"
)

// TestMakeIntegerHashConsesEqualValues is spec.md §8 universal invariant
// #1: r == r' iff structure(r) == structure(r'). Two separately built
// Integer atoms with the same value must intern to the same ExprRef.
func TestMakeIntegerHashConsesEqualValues(t *testing.T) {
	a := New(symbol.NewRegistry())
	r1 := a.MakeInteger(bignum.ZFromInt64(42))
	r2 := a.MakeInteger(bignum.ZFromInt64(42))
	if r1 != r2 {
		t.Fatalf("structurally identical integers interned to distinct refs: %v, %v", r1, r2)
	}
	if a.Len() != 1 {
		t.Fatalf("expected exactly one interned node, got %d", a.Len())
	}
}

// TestMakeAddHashConsesAcrossPermutations checks that x+y and y+x intern
// to the same ref — MakeAdd's canonical sort is what makes structural
// equality insensitive to construction order (§8 property 2/1).
func TestMakeAddHashConsesAcrossPermutations(t *testing.T) {
	a := New(symbol.NewRegistry())
	syms := a.Syms
	x := a.MakeSymbol(syms.Intern("x"))
	y := a.MakeSymbol(syms.Intern("y"))

	xy := a.MakeAdd([]ExprRef{x, y})
	yx := a.MakeAdd([]ExprRef{y, x})
	if xy != yx {
		t.Fatalf("x+y and y+x interned to distinct refs: %v, %v", xy, yx)
	}
}

// TestDistinctStructuresGetDistinctRefs is the converse half of the
// hash-consing invariant: structurally different nodes must never share
// a ref.
func TestDistinctStructuresGetDistinctRefs(t *testing.T) {
	a := New(symbol.NewRegistry())
	r1 := a.MakeInteger(bignum.ZFromInt64(1))
	r2 := a.MakeInteger(bignum.ZFromInt64(2))
	if r1 == r2 {
		t.Fatal("distinct integer values interned to the same ref")
	}

	syms := a.Syms
	x := a.MakeSymbol(syms.Intern("x"))
	negX := a.MakeNeg(x)
	if x == negX {
		t.Fatal("x and -x interned to the same ref")
	}
}

func TestMakePowZeroExponentRequiresIntegerWhenBaseZero(t *testing.T) {
	a := New(symbol.NewRegistry())
	zero := a.MakeInteger(bignum.ZZero())
	syms := a.Syms
	x := a.MakeSymbol(syms.Intern("x"))

	if _, err := a.MakePow(zero, x); err == nil {
		t.Fatal("expected a DomainError for 0^x with symbolic exponent")
	}

	one, err := a.MakePow(zero, zero)
	if err != nil {
		t.Fatalf("unexpected error for 0^0: %v", err)
	}
	if got, ok := a.isIntegerAtom(one); !ok || !got.IsOne() {
		t.Fatalf("0^0 = %v, want 1", got)
	}
}

func TestMakeMulAbsorbsZero(t *testing.T) {
	a := New(symbol.NewRegistry())
	syms := a.Syms
	x := a.MakeSymbol(syms.Intern("x"))
	zero := a.MakeInteger(bignum.ZZero())

	out := a.MakeMul([]ExprRef{x, zero})
	if got, ok := a.isIntegerAtom(out); !ok || !got.IsZero() {
		t.Fatalf("x*0 = %v, want 0", got)
	}
}
