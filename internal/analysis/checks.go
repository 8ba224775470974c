package analysis

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
)

// MultCheckResult is checkmult's structured outcome: never an error, per
// §7's classification of search-style classifiers as non-fatal.
type MultCheckResult struct {
	Holds        bool
	FirstFailure [2]int   // (m,n) of the first coprime pair where f(mn) != f(m)*f(n); zero value if Holds
	AllFailures  [][2]int // populated only when checkmult is asked for every failing pair ("'yes'" mode)
}

func gcdInt(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// CheckMult tests whether f's coefficients are multiplicative: f(mn) =
// f(m)*f(n) for every coprime pair 2<=m<=n<=T/2 with m*n<=T (§4.9).
// collectAll mirrors the spec's optional 'yes' argument: when false, the
// scan stops at the first failing pair.
func CheckMult(f fps.Series, T int, collectAll bool) MultCheckResult {
	result := MultCheckResult{Holds: true}
	for m := 2; m <= T/2; m++ {
		for n := m; n <= T/2; n++ {
			if m*n > T {
				break
			}
			if gcdInt(m, n) != 1 {
				continue
			}
			fm, errM := f.Coeff(m)
			fn, errN := f.Coeff(n)
			fmn, errMN := f.Coeff(m * n)
			if errM != nil || errN != nil || errMN != nil {
				continue
			}
			if fmn.Cmp(fm.Mul(fn)) != 0 {
				if result.Holds {
					result.Holds = false
					result.FirstFailure = [2]int{m, n}
				}
				if collectAll {
					result.AllFailures = append(result.AllFailures, [2]int{m, n})
				} else {
					return result
				}
			}
		}
	}
	return result
}

// ProdCheckClassification is checkprod's three-way verdict.
type ProdCheckClassification int

const (
	// NiceProduct: f factors with every |exponent| < M.
	NiceProduct ProdCheckClassification = iota
	// NotNiceProduct: f factors, but some exponent's magnitude reaches M.
	NotNiceProduct
	// NonIntegerLeading: the leading coefficient c in f = q^a*c*prod(...)
	// is not an integer, so there is no sensible "nice product" verdict.
	NonIntegerLeading
)

// ProdCheckResult is checkprod's result record (§4.9): Valuation/Scalar
// are always populated; Classification distinguishes the three outcomes
// and MaxExp is only meaningful for NotNiceProduct.
type ProdCheckResult struct {
	Classification ProdCheckClassification
	Valuation      int
	Scalar         bignum.Q
	MaxExp         int
}

// CheckProd silently classifies f as a "nice" product (§4.9): nice when
// every cyclotomic exponent found by Prodmake has magnitude below M,
// not-nice when some exponent reaches M, or NonIntegerLeading when the
// leading coefficient itself isn't an integer (in which case no exponent
// classification is attempted).
func CheckProd(f fps.Series, M int) (ProdCheckResult, bool) {
	pf, ok := Prodmake(f)
	if !ok {
		return ProdCheckResult{}, false
	}
	if !pf.Scalar.IsInteger() {
		return ProdCheckResult{
			Classification: NonIntegerLeading,
			Valuation:      pf.Valuation,
			Scalar:         pf.Scalar,
		}, true
	}
	maxExp := 0
	for _, e := range pf.Exponents {
		z, integral := e.ToZ()
		if !integral {
			continue
		}
		abs := z.Abs()
		v, fits := abs.Int64()
		if !fits {
			continue
		}
		if int(v) > maxExp {
			maxExp = int(v)
		}
	}
	cls := NiceProduct
	if maxExp >= M {
		cls = NotNiceProduct
	}
	return ProdCheckResult{
		Classification: cls,
		Valuation:      pf.Valuation,
		Scalar:         pf.Scalar,
		MaxExp:         maxExp,
	}, true
}
