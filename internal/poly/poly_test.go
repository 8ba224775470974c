package poly

import (
	"testing"

	"qseries/internal/bignum"
)

func q(n int64) bignum.Q { return bignum.QFromInt64(n) }

func TestAddSubMul(t *testing.T) {
	// (1+x) and (1-x)
	a := FromCoeffs([]bignum.Q{q(1), q(1)})
	b := FromCoeffs([]bignum.Q{q(1), q(-1)})
	sum := a.Add(b)
	if sum.Degree() != 0 || sum.Coeff(0).Cmp(q(2)) != 0 {
		t.Fatalf("a+b = %s, want 2", sum)
	}
	prod := a.Mul(b)
	// (1+x)(1-x) = 1 - x^2
	if prod.Coeff(0).Cmp(q(1)) != 0 || prod.Coeff(1).Sign() != 0 || prod.Coeff(2).Cmp(q(-1)) != 0 {
		t.Fatalf("a*b = %s, want 1 - x^2", prod)
	}
}

func TestDivMod(t *testing.T) {
	// x^2 - 1 divided by x - 1 = x + 1, remainder 0
	p := FromCoeffs([]bignum.Q{q(-1), q(0), q(1)})
	d := FromCoeffs([]bignum.Q{q(-1), q(1)})
	quo, rem, ok := p.DivMod(d)
	if !ok || !rem.IsZero() {
		t.Fatalf("expected exact division, rem=%s", rem)
	}
	if quo.Degree() != 1 || quo.Coeff(0).Cmp(q(1)) != 0 || quo.Coeff(1).Cmp(q(1)) != 0 {
		t.Fatalf("quo = %s, want x+1", quo)
	}
}

func TestGcd(t *testing.T) {
	// gcd(x^2-1, x-1) = x-1 (monic)
	a := FromCoeffs([]bignum.Q{q(-1), q(0), q(1)})
	b := FromCoeffs([]bignum.Q{q(-1), q(1)})
	g := Gcd(a, b)
	if g.Degree() != 1 || !g.Lead().IsOne() {
		t.Fatalf("gcd = %s, want monic degree 1", g)
	}
}

func TestResultantOfCoprimePolysNonzero(t *testing.T) {
	// x-1 and x-2 are coprime; resultant = 1 - 2 = -1 (up to sign convention)
	a := FromCoeffs([]bignum.Q{q(-1), q(1)})
	b := FromCoeffs([]bignum.Q{q(-2), q(1)})
	r := Resultant(a, b)
	if r.IsZero() {
		t.Fatalf("resultant of coprime linear factors must be nonzero")
	}
}

func TestQShift(t *testing.T) {
	p := FromCoeffs([]bignum.Q{q(1), q(1)}) // 1 + x
	shifted := p.QShift(q(2))               // 1 + 2x
	if shifted.Coeff(1).Cmp(q(2)) != 0 {
		t.Fatalf("QShift coefficient wrong: %s", shifted)
	}
}

func TestEval(t *testing.T) {
	p := FromCoeffs([]bignum.Q{q(1), q(2), q(3)}) // 1 + 2x + 3x^2
	v := p.Eval(q(2))
	if v.Cmp(q(17)) != 0 {
		t.Fatalf("eval = %s, want 17", v)
	}
}

func TestRationalFunctionReduces(t *testing.T) {
	num := FromCoeffs([]bignum.Q{q(-1), q(0), q(1)}) // x^2-1
	den := FromCoeffs([]bignum.Q{q(-1), q(1)})       // x-1
	rf, ok := NewRationalFunction(num, den)
	if !ok {
		t.Fatal("expected success")
	}
	if rf.Den.Degree() != 0 {
		t.Fatalf("expected fully reduced denominator, got %s", rf.Den)
	}
}
