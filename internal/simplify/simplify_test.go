package simplify

import (
	"testing"

	"qseries/internal/arena"
	"qseries/internal/bignum"
	"qseries/internal/symbol"
)

func TestSimplifyCollectsLikeTerms(t *testing.T) {
	a := arena.New(symbol.NewRegistry())
	x := a.MakeSymbol(a.Syms.Intern("x"))
	sum := a.MakeAdd([]arena.ExprRef{x, x})

	res := Simplify(a, sum)
	if res.State != Converged {
		t.Fatalf("expected convergence, got state %v", res.State)
	}
	n := a.Get(res.Ref)
	if n.Kind != arena.KindMul || len(n.Factors) != 2 {
		t.Fatalf("expected x+x to collect to 2*x, got node %+v", n)
	}
}

func TestSimplifyCollapsesPowerTower(t *testing.T) {
	a := arena.New(symbol.NewRegistry())
	x := a.MakeSymbol(a.Syms.Intern("x"))
	two := a.MakeInteger(bignum.ZFromInt64(2))
	three := a.MakeInteger(bignum.ZFromInt64(3))

	x2, err := a.MakePow(x, two)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tower, err := a.MakePow(x2, three)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := Simplify(a, tower)
	if res.State != Converged {
		t.Fatalf("expected convergence, got state %v", res.State)
	}
	n := a.Get(res.Ref)
	if n.Kind != arena.KindPow {
		t.Fatalf("expected (x^2)^3 to collapse to a single Pow, got %+v", n)
	}
	expN := a.Get(n.Exp)
	if expN.Kind != arena.KindInteger || expN.Int.Cmp(bignum.ZFromInt64(6)) != 0 {
		t.Fatalf("exponent = %v, want 6", expN.Int)
	}
}

func TestSimplifyWithCapReportsCapReachedOnZeroIterations(t *testing.T) {
	a := arena.New(symbol.NewRegistry())
	x := a.MakeSymbol(a.Syms.Intern("x"))
	sum := a.MakeAdd([]arena.ExprRef{x, x})

	res := SimplifyWithCap(a, sum, 0)
	if res.State != CapReached {
		t.Fatalf("expected CapReached with a zero iteration cap, got %v", res.State)
	}
	if res.Warning == "" {
		t.Fatal("expected a non-empty warning when the cap is reached")
	}
	if res.Ref != sum {
		t.Fatal("expected the unmodified input ref when no sweep could run")
	}
}
