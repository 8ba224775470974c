package analysis

import (
	"testing"

	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/symbol"
)

func eulerSeries(v symbol.Id, T int) fps.Series {
	out := fps.Monomial(v, bignum.QOne(), 0, T)
	for n := 1; n < T; n++ {
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), n: bignum.QOne().Neg()}, T)
		out, _ = out.Mul(factor)
	}
	return out
}

func TestProdmakeRecoversEulerFactors(t *testing.T) {
	v := symbol.Id(2)
	T := 12
	f := eulerSeries(v, T)
	pf, ok := Prodmake(f)
	if !ok {
		t.Fatal("expected prodmake to succeed")
	}
	if !pf.Exact {
		t.Fatalf("expected exact factorization of (q;q)_infty, got %+v", pf.Exponents)
	}
	for n := 1; n < T; n++ {
		got := pf.Exponents[n]
		if got.Cmp(bignum.QOne()) != 0 {
			t.Fatalf("exponent at n=%d: got %s, want 1", n, got)
		}
	}
}

func TestSiftExtractsResidueClass(t *testing.T) {
	v := symbol.Id(2)
	coeffs := map[int]bignum.Q{0: bignum.QFromInt64(1), 1: bignum.QFromInt64(2), 2: bignum.QFromInt64(3), 3: bignum.QFromInt64(4)}
	f := fps.FromCoeffs(v, coeffs, 4)
	s := Sift(f, 2, 1) // picks exponents 1, 3 -> k=0,1
	c0, _ := s.Coeff(0)
	c1, _ := s.Coeff(1)
	if c0.Cmp(bignum.QFromInt64(2)) != 0 || c1.Cmp(bignum.QFromInt64(4)) != 0 {
		t.Fatalf("sift mismatch: c0=%s c1=%s", c0, c1)
	}
}

func TestDegreeQueries(t *testing.T) {
	v := symbol.Id(2)
	f := fps.FromCoeffs(v, map[int]bignum.Q{2: bignum.QOne(), 5: bignum.QOne()}, 10)
	hi, ok := QDegree(f)
	if !ok || hi != 5 {
		t.Fatalf("QDegree = %d, want 5", hi)
	}
	lo, ok := LQDegree(f)
	if !ok || lo != 2 {
		t.Fatalf("LQDegree = %d, want 2", lo)
	}
}

func TestCheckMultOnPartitionGFFails(t *testing.T) {
	v := symbol.Id(2)
	f := eulerSeries(v, 30)
	inv, ok := f.Invert()
	if !ok {
		t.Fatal("expected partition gf to invert")
	}
	res := CheckMult(inv, 20, false)
	if res.Holds {
		t.Fatal("partition counts are not multiplicative; expected Holds=false")
	}
}
