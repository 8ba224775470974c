package relations

import (
	"testing"

	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/generators"
	"qseries/internal/symbol"
)

func TestFindLinComboRecoversExactCombination(t *testing.T) {
	v := symbol.Id(2)
	T := 8
	f1 := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QFromInt64(1), 1: bignum.QFromInt64(1)}, T)
	f2 := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QFromInt64(1), 2: bignum.QFromInt64(1)}, T)
	// target = 2*f1 + 3*f2
	target, _ := f1.ScalarMul(bignum.QFromInt64(2)).Add(f2.ScalarMul(bignum.QFromInt64(3)))

	res, err := FindLinCombo(target, []fps.Series{f1, f2}, []string{"F1", "F2"}, T)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a combination to be found")
	}
	if res.Coeffs[0].Cmp(bignum.QFromInt64(2)) != 0 || res.Coeffs[1].Cmp(bignum.QFromInt64(3)) != 0 {
		t.Fatalf("got coeffs %v, want [2,3]", res.Coeffs)
	}
}

func TestFindLinComboDuplicateLabelsFails(t *testing.T) {
	v := symbol.Id(2)
	f := fps.Zero(v, 4)
	_, err := FindLinCombo(f, []fps.Series{f, f}, []string{"X", "X"}, 4)
	if err == nil {
		t.Fatal("expected duplicate-label error")
	}
}

func TestFindMaxIndDropsDependentSeries(t *testing.T) {
	v := symbol.Id(2)
	T := 6
	f1 := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QFromInt64(1), 1: bignum.QFromInt64(1)}, T)
	f2 := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QFromInt64(2), 1: bignum.QFromInt64(2)}, T) // = 2*f1
	f3 := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QFromInt64(1), 2: bignum.QFromInt64(1)}, T)

	idx := FindMaxInd([]fps.Series{f1, f2, f3}, T)
	if len(idx) != 2 {
		t.Fatalf("expected 2 independent series, got %v", idx)
	}
}

// TestFindCongSurfacesRamanujanCongruences is spec.md §8 scenario S5:
// findcong(partition_gf(201), 200) must include the classical
// p(5n+4) === 0 mod 5 congruence among its results.
func TestFindCongSurfacesRamanujanCongruences(t *testing.T) {
	v := symbol.Id(0)
	T := 201
	pf, ok := generators.PartitionGF(v, T)
	if !ok {
		t.Fatal("expected partition generating function to invert")
	}

	got := FindCong(pf, T-1, 0, map[int]bool{})

	want := Congruence{B: 5, A: 5, R: 4}
	found := false
	for _, c := range got {
		if c == want {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected %+v among %v", want, got)
	}
}
