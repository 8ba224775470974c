package generators

import (
	"sort"
	"testing"

	"qseries/internal/bignum"
	"qseries/internal/symbol"
)

// TestEulerProductPentagonalSparsityAndSigns is spec.md §8 scenario S1
// and universal invariant #8: the Euler product's nonzero coefficients
// occur exactly at the generalized pentagonal numbers, with alternating
// sign by the Pentagonal Number Theorem.
func TestEulerProductPentagonalSparsityAndSigns(t *testing.T) {
	v := symbol.Id(0)
	T := 30
	euler := Euler(v, T)

	wantExp := []int{0, 1, 2, 5, 7, 12, 15, 22, 26}
	wantSign := []int{1, -1, -1, 1, 1, -1, -1, 1, 1}

	gotExp := make([]int, 0, len(euler.Coeffs))
	for k := range euler.Coeffs {
		gotExp = append(gotExp, k)
	}
	sort.Ints(gotExp)
	if len(gotExp) != len(wantExp) {
		t.Fatalf("nonzero exponents = %v, want %v", gotExp, wantExp)
	}
	for i, k := range wantExp {
		if gotExp[i] != k {
			t.Fatalf("nonzero exponents = %v, want %v", gotExp, wantExp)
		}
		c := euler.Coeffs[k]
		if c.Sign() != wantSign[i] {
			t.Fatalf("coeff(%d) sign = %d, want %d", k, c.Sign(), wantSign[i])
		}
		if c.Abs().Cmp(bignum.QOne()) != 0 {
			t.Fatalf("coeff(%d) = %s, want +-1", k, c)
		}
	}
}

// TestPartitionGFMatchesLiteralCounts is spec.md §8 scenario S2: the
// partition generating function's coefficients 0..20 must match the
// classical p(n) sequence exactly.
func TestPartitionGFMatchesLiteralCounts(t *testing.T) {
	v := symbol.Id(0)
	want := []int64{1, 1, 2, 3, 5, 7, 11, 15, 22, 30, 42, 56, 77, 101, 135, 176, 231, 297, 385, 490, 627}

	pf, ok := PartitionGF(v, len(want))
	if !ok {
		t.Fatal("expected the partition generating function to invert")
	}
	for n, w := range want {
		c, err := pf.Coeff(n)
		if err != nil {
			t.Fatalf("unexpected error at coeff(%d): %v", n, err)
		}
		if c.Cmp(bignum.QFromInt64(w)) != 0 {
			t.Fatalf("p(%d) = %s, want %d", n, c, w)
		}
	}
}

// TestJacobiTripleProductMatchesTheta3 is spec.md §8 scenario S3: the
// Jacobi triple product built from its factored form must equal
// theta_3(q) to O(q^50).
func TestJacobiTripleProductMatchesTheta3(t *testing.T) {
	v := symbol.Id(0)
	T := 50
	jtp := JacobiTripleProductTheta3(v, T)
	theta3 := Theta3(v, T)

	for k := 0; k < T; k++ {
		a, err := jtp.Coeff(k)
		if err != nil {
			t.Fatalf("unexpected error at coeff(%d): %v", k, err)
		}
		b, err := theta3.Coeff(k)
		if err != nil {
			t.Fatalf("unexpected error at coeff(%d): %v", k, err)
		}
		if a.Cmp(b) != 0 {
			t.Fatalf("coeff(%d): jacobi triple product = %s, theta3 = %s", k, a, b)
		}
	}
}

func TestDistinctPartsMatchesOddParts(t *testing.T) {
	v := symbol.Id(0)
	T := 25
	distinct := DistinctPartsGF(v, T)
	odd := OddPartsGF(v, T)
	for k := 0; k < T; k++ {
		a, _ := distinct.Coeff(k)
		b, _ := odd.Coeff(k)
		if a.Cmp(b) != 0 {
			t.Fatalf("Euler's theorem violated at coeff(%d): distinct=%s, odd=%s", k, a, b)
		}
	}
}

func TestBaileyPairUnitaryBetaIsOne(t *testing.T) {
	v := symbol.Id(0)
	T := 10
	bp := NewBaileyPair(v, bignum.QOne(), T)
	beta0, ok := bp.Beta(0)
	if !ok {
		t.Fatal("expected beta_0 to compute from the unitary pair")
	}
	c0, _ := beta0.Coeff(0)
	if !c0.IsOne() {
		t.Fatalf("beta_0(0) = %s, want 1", c0)
	}
}

// TestAppellLerchSumConstantTermIsGeometric checks the r=0 term, the
// only contributor to the constant term of m(x,q,z): coeff(0) must
// equal 1/(1-x) exactly.
func TestAppellLerchSumConstantTermIsGeometric(t *testing.T) {
	v := symbol.Id(0)
	x, ok := bignum.QFromFrac(bignum.ZFromInt64(1), bignum.ZFromInt64(3))
	if !ok {
		t.Fatal("expected QFromFrac(1,3) to succeed")
	}
	m := AppellLerchSum(v, x, bignum.QFromInt64(2), 6)
	c0, err := m.Coeff(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := bignum.QOne().Sub(x).Inv()
	if c0.Cmp(want) != 0 {
		t.Fatalf("coeff(0) = %s, want %s (1/(1-x))", c0, want)
	}
}

// TestAppellLerchSumAtXZeroIsPartialTheta checks the x=0 degeneration,
// where every (1-x*q^r) factor collapses to 1 and the sum reduces to
// the partial theta sum sum_{r>=0} (-1)^r q^{r(r+1)/2} z^r.
func TestAppellLerchSumAtXZeroIsPartialTheta(t *testing.T) {
	v := symbol.Id(0)
	z := bignum.QFromInt64(2)
	m := AppellLerchSum(v, bignum.QZero(), z, 5)

	c0, _ := m.Coeff(0)
	c1, _ := m.Coeff(1)
	c3, _ := m.Coeff(3)
	if !c0.IsOne() {
		t.Fatalf("coeff(0) = %s, want 1", c0)
	}
	if c1.Cmp(z.Neg()) != 0 {
		t.Fatalf("coeff(1) = %s, want -z = %s", c1, z.Neg())
	}
	zSq, _ := z.Pow(2)
	if c3.Cmp(zSq) != 0 {
		t.Fatalf("coeff(3) = %s, want z^2 = %s", c3, zSq)
	}
}

func TestMockThetaByNameKnownAndUnknown(t *testing.T) {
	v := symbol.Id(0)
	if _, ok := MockThetaByName("f", v, 10); !ok {
		t.Fatal("expected \"f\" to resolve to a mock theta function")
	}
	if _, ok := MockThetaByName("not-a-real-name", v, 10); ok {
		t.Fatal("expected an unknown mock theta name to fail")
	}
}
