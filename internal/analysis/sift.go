package analysis

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
)

// Sift extracts the subseries sum_k c_{m*k+r} * q^k (§4.9). r is taken
// modulo m and normalized to [0,m), so negative residues are accepted —
// the generalization noted in SPEC_FULL.md §C, since §4.9 only specifies
// nonnegative r but gives no reason to exclude the negative case.
func Sift(f fps.Series, m, r int) fps.Series {
	if m <= 0 {
		return fps.Zero(f.Var, 0)
	}
	r = ((r % m) + m) % m
	outT := 0
	if f.T > r {
		outT = (f.T-r-1)/m + 1
	}
	coeffs := map[int]bignum.Q{}
	for k, c := range f.Coeffs {
		if c.IsZero() || k < r {
			continue
		}
		if (k-r)%m != 0 {
			continue
		}
		coeffs[(k-r)/m] = c
	}
	return fps.FromCoeffs(f.Var, coeffs, outT)
}
