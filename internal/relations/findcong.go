package relations

import (
	"sort"

	"qseries/internal/analysis"
	"qseries/internal/bignum"
	"qseries/internal/fps"
)

// Congruence is one [B,A,R] line of findcong's output: a Ramanujan-style
// congruence QS(A*n+R) = 0 (mod B).
type Congruence struct {
	B, A, R int64
}

// FindCong auto-scans for Ramanujan-style congruences in qs (§4.11): for
// each modulus m in 2..lm and residue r coprime to no particular
// constraint, sift out QS(m*n+r), take the gcd of its nonzero
// coefficients, and report every prime-power divisor of that gcd. lm
// defaults to floor(sqrt(T)) when <= 0; xset names moduli to skip.
func FindCong(qs fps.Series, T int, lm int, xset map[int]bool) []Congruence {
	if lm <= 0 {
		lm = int(bignum.ZFromInt64(int64(T)).ISqrt().BigInt().Int64())
	}
	var out []Congruence
	for m := 2; m <= lm; m++ {
		if xset != nil && xset[m] {
			continue
		}
		for r := 0; r < m; r++ {
			sub := analysis.Sift(qs, m, r)
			g, ok := gcdOfCoeffs(sub)
			if !ok || g <= 1 {
				continue
			}
			for _, pp := range primePowerDivisors(g) {
				out = append(out, Congruence{B: pp, A: int64(m), R: int64(r)})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		if out[i].R != out[j].R {
			return out[i].R < out[j].R
		}
		return out[i].B < out[j].B
	})
	return out
}

// gcdOfCoeffs returns the gcd of all nonzero, integer-valued coefficients
// of f. ok=false when f has no nonzero coefficient (nothing to report)
// or a coefficient is non-integral (findcong only applies to
// integer-coefficient generating functions, e.g. partition counts).
func gcdOfCoeffs(f fps.Series) (int64, bool) {
	g := bignum.ZZero()
	any := false
	for _, c := range f.Coeffs {
		if c.IsZero() {
			continue
		}
		z, integral := c.ToZ()
		if !integral {
			return 0, false
		}
		g = g.Gcd(z)
		any = true
	}
	if !any {
		return 0, false
	}
	v, fits := g.Int64()
	if !fits {
		return 0, false
	}
	return v, true
}

// primePowerDivisors factors n and returns every prime-power divisor
// p^1..p^e for each prime factor p^e || n, ascending.
func primePowerDivisors(n int64) []int64 {
	if n < 0 {
		n = -n
	}
	var out []int64
	m := n
	for p := int64(2); p*p <= m; p++ {
		if m%p != 0 {
			continue
		}
		pk := int64(1)
		for m%p == 0 {
			m /= p
			pk *= p
			out = append(out, pk)
		}
	}
	if m > 1 {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
