// Package relations implements the findX linear-relation-discovery family
// of §4.11: every operation here extracts coefficient rows from input FPS
// values and solves a linear system via internal/linalg, never raising an
// error for a "no relation found" outcome (§7) — that is always reported
// as a structured Found=false result.
package relations

import (
	"fmt"
	"strings"

	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/linalg"
	"qseries/internal/qerr"
)

// LinComboResult is findlincombo's structured outcome.
type LinComboResult struct {
	Found       bool
	Coeffs      []bignum.Q
	Labels      []string
	Combination string // e.g. "2*F1 + 1/3*F2"; empty when !Found
}

// coeffMatrix builds the topshift x k coefficient matrix for fs plus the
// target vector for f, over exponents 0..topshift-1.
func coeffMatrix(f fps.Series, fs []fps.Series, topshift int) (linalg.Matrix, []bignum.Q, error) {
	a := linalg.NewMatrix(topshift, len(fs))
	for j, g := range fs {
		for i := 0; i < topshift; i++ {
			c, err := g.Coeff(i)
			if err != nil {
				return linalg.Matrix{}, nil, err
			}
			a.Data[i][j] = c
		}
	}
	b := make([]bignum.Q, topshift)
	for i := 0; i < topshift; i++ {
		c, err := f.Coeff(i)
		if err != nil {
			return linalg.Matrix{}, nil, err
		}
		b[i] = c
	}
	return a, b, nil
}

func checkDuplicateLabels(labels []string) error {
	seen := map[string]bool{}
	for _, l := range labels {
		if seen[l] {
			return qerr.Domain("findlincombo", "labels", "duplicate label: "+l)
		}
		seen[l] = true
	}
	return nil
}

// FindLinCombo searches for rational c_i with f = sum(c_i * F_i) modulo
// topshift (§4.11). Duplicate labels are a DomainError (a construction
// misuse, not a search outcome); "no combination found" is not.
func FindLinCombo(f fps.Series, fs []fps.Series, labels []string, topshift int) (LinComboResult, error) {
	if len(fs) != len(labels) {
		return LinComboResult{}, qerr.Domain("findlincombo", "labels", "label count must match series count")
	}
	if err := checkDuplicateLabels(labels); err != nil {
		return LinComboResult{}, err
	}
	a, b, err := coeffMatrix(f, fs, topshift)
	if err != nil {
		return LinComboResult{}, err
	}
	sol := linalg.Solve(a, b)
	if !sol.Found {
		return LinComboResult{Found: false}, nil
	}
	return LinComboResult{
		Found:       true,
		Coeffs:      sol.X,
		Labels:      labels,
		Combination: formatCombination(sol.X, labels),
	}, nil
}

func formatCombination(coeffs []bignum.Q, labels []string) string {
	var parts []string
	for i, c := range coeffs {
		if c.IsZero() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s*%s", c.String(), labels[i]))
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " + ")
}

// FindLinComboModP is the *modp variant of FindLinCombo, taking the
// prime p as its last parameter. p is trusted as already-validated prime
// by the caller.
func FindLinComboModP(f fps.Series, fs []fps.Series, labels []string, topshift int, p int64) (LinComboResult, error) {
	if len(fs) != len(labels) {
		return LinComboResult{}, qerr.Domain("findlincombomodp", "labels", "label count must match series count")
	}
	if err := checkDuplicateLabels(labels); err != nil {
		return LinComboResult{}, err
	}
	a := linalg.NewMatrixModP(topshift, len(fs), p)
	for j, g := range fs {
		for i := 0; i < topshift; i++ {
			c, err := g.Coeff(i)
			if err != nil {
				return LinComboResult{}, err
			}
			n, d := c.Num(), c.Denom()
			nv, _ := n.Int64()
			dv, _ := d.Int64()
			a.Data[i][j] = nv * modInverseInt64(dv, p)
		}
	}
	b := make([]int64, topshift)
	for i := 0; i < topshift; i++ {
		c, err := f.Coeff(i)
		if err != nil {
			return LinComboResult{}, err
		}
		n, d := c.Num(), c.Denom()
		nv, _ := n.Int64()
		dv, _ := d.Int64()
		b[i] = nv * modInverseInt64(dv, p)
	}
	sol := linalg.SolveModP(a, b)
	if !sol.Found {
		return LinComboResult{Found: false}, nil
	}
	coeffs := linalg.ToQ(sol.X, p)
	return LinComboResult{
		Found:       true,
		Coeffs:      coeffs,
		Labels:      labels,
		Combination: formatCombination(coeffs, labels),
	}, nil
}

func modInverseInt64(a, p int64) int64 {
	a %= p
	if a < 0 {
		a += p
	}
	result, base, exp := int64(1), a, p-2
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % p
		}
		base = (base * base) % p
		exp >>= 1
	}
	return result
}
