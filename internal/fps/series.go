// Package fps implements the sparse truncated formal power series kernel
// of §4.5. A Series is a map from exponent to nonzero coefficient plus a
// truncation order: coefficients at or beyond the truncation are unknown,
// never guessed.
package fps

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"qseries/internal/bignum"
	"qseries/internal/qerr"
	"qseries/internal/symbol"
)

// Series is f = sum c_k q^k + O(q^T) in the variable Var.
type Series struct {
	Var    symbol.Id
	Coeffs map[int]bignum.Q
	T      int
}

// Zero returns the zero series truncated at T.
func Zero(v symbol.Id, T int) Series {
	return Series{Var: v, Coeffs: map[int]bignum.Q{}, T: T}
}

// Monomial returns c*q^k truncated at T.
func Monomial(v symbol.Id, c bignum.Q, k, T int) Series {
	s := Zero(v, T)
	if !c.IsZero() && k < T {
		s.Coeffs[k] = c
	}
	return s
}

// FromCoeffs builds a series from a caller-supplied coefficient map,
// pruning zero entries so the "no key maps to zero" invariant (§4.5) holds
// regardless of what the caller passed in.
func FromCoeffs(v symbol.Id, coeffs map[int]bignum.Q, T int) Series {
	s := Zero(v, T)
	for k, c := range coeffs {
		if !c.IsZero() && k < T {
			s.Coeffs[k] = c
		}
	}
	return s
}

// sortedKeys returns the exponents with nonzero coefficients in ascending
// order — required by Mul's inner-loop early exit and by Display.
func (s Series) sortedKeys() []int {
	ks := maps.Keys(s.Coeffs)
	sort.Ints(ks)
	return ks
}

// Coeff returns c_k, failing with PrecisionError when k is at or beyond
// the truncation — never a silent guess (§4.5).
func (s Series) Coeff(k int) (bignum.Q, error) {
	if k >= s.T {
		return bignum.Q{}, qerr.Precision("fps.coeff", k, s.T)
	}
	if c, ok := s.Coeffs[k]; ok {
		return c, nil
	}
	return bignum.QZero(), nil
}

func (a Series) checkVar(op string, b Series) error {
	if a.Var != b.Var {
		return qerr.Domain(op, "variable", fmt.Sprintf("mismatched series variables (%d vs %d)", a.Var, b.Var))
	}
	return nil
}

func minT(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Add returns a+b, truncated at min(Ta,Tb). Fails with DomainError if a
// and b are series in different variables (§4.5).
func (a Series) Add(b Series) (Series, error) {
	if err := a.checkVar("fps.add", b); err != nil {
		return Series{}, err
	}
	T := minT(a.T, b.T)
	out := Zero(a.Var, T)
	for k, c := range a.Coeffs {
		if k < T {
			out.setAdd(k, c)
		}
	}
	for k, c := range b.Coeffs {
		if k < T {
			out.setAdd(k, c)
		}
	}
	return out, nil
}

// Sub returns a-b, truncated at min(Ta,Tb).
func (a Series) Sub(b Series) (Series, error) { return a.Add(b.Neg()) }

// Neg returns -a.
func (a Series) Neg() Series {
	out := Zero(a.Var, a.T)
	for k, c := range a.Coeffs {
		out.Coeffs[k] = c.Neg()
	}
	return out
}

// ScalarMul returns c*f, preserving truncation exactly (§4.5).
func (f Series) ScalarMul(c bignum.Q) Series {
	out := Zero(f.Var, f.T)
	if c.IsZero() {
		return out
	}
	for k, coeff := range f.Coeffs {
		out.Coeffs[k] = coeff.Mul(c)
	}
	return out
}

func (s *Series) setAdd(k int, c bignum.Q) {
	if cur, ok := s.Coeffs[k]; ok {
		sum := cur.Add(c)
		if sum.IsZero() {
			delete(s.Coeffs, k)
		} else {
			s.Coeffs[k] = sum
		}
		return
	}
	if !c.IsZero() {
		s.Coeffs[k] = c
	}
}

// Mul computes the truncated product, iterating sorted keys from both
// operands and breaking the inner loop as soon as the running exponent
// sum reaches the result truncation — the early exit §4.5 requires to
// keep the operation O(N) in the number of nonzero output terms.
func (a Series) Mul(b Series) (Series, error) {
	if err := a.checkVar("fps.mul", b); err != nil {
		return Series{}, err
	}
	T := minT(a.T, b.T)
	out := Zero(a.Var, T)
	aKeys := a.sortedKeys()
	bKeys := b.sortedKeys()
	for _, ka := range aKeys {
		if ka >= T {
			break
		}
		ca := a.Coeffs[ka]
		for _, kb := range bKeys {
			k := ka + kb
			if k >= T {
				break
			}
			out.setAdd(k, ca.Mul(b.Coeffs[kb]))
		}
	}
	return out, nil
}

// Invert computes g = 1/f via g0 = 1/c0, gn = -(1/c0) * sum_{k=1..n} c_k
// g_{n-k}, up to T-1, failing when c0 == 0 (§4.5).
func (f Series) Invert() (Series, bool) {
	c0, err := f.Coeff(0)
	if err != nil || c0.IsZero() {
		return Series{}, false
	}
	invC0, _ := c0.Inv()
	g := Zero(f.Var, f.T)
	g.Coeffs[0] = invC0
	fKeys := f.sortedKeys()
	for n := 1; n < f.T; n++ {
		acc := bignum.QZero()
		for _, k := range fKeys {
			if k < 1 || k > n {
				continue
			}
			gk, ok := g.Coeffs[n-k]
			if !ok {
				continue
			}
			acc = acc.Add(f.Coeffs[k].Mul(gk))
		}
		if !acc.IsZero() {
			gn := acc.Mul(invC0).Neg()
			if !gn.IsZero() {
				g.Coeffs[n] = gn
			}
		}
	}
	return g, true
}

// Shift returns f * q^k, i.e. every exponent moved up by k and the
// truncation moved up by k in lock-step (§4.5).
func (f Series) Shift(k int) Series {
	out := Zero(f.Var, f.T+k)
	for exp, c := range f.Coeffs {
		out.Coeffs[exp+k] = c
	}
	return out
}

// Truncate lowers (never raises) the truncation order, dropping any
// coefficients at or beyond the new bound.
func (f Series) Truncate(T int) Series {
	if T >= f.T {
		return f
	}
	out := Zero(f.Var, T)
	for k, c := range f.Coeffs {
		if k < T {
			out.Coeffs[k] = c
		}
	}
	return out
}

// String renders "c0 + c1 q + c2 q^2 + ... + O(q^T)" in ascending order.
func (f Series) String() string {
	keys := f.sortedKeys()
	var sb strings.Builder
	first := true
	for _, k := range keys {
		c := f.Coeffs[k]
		term := termString(c, k)
		if term == "" {
			continue
		}
		if !first {
			if strings.HasPrefix(term, "-") {
				sb.WriteString(" - ")
				term = term[1:]
			} else {
				sb.WriteString(" + ")
			}
		} else if strings.HasPrefix(term, "-") {
			sb.WriteString("-")
			term = term[1:]
		}
		sb.WriteString(term)
		first = false
	}
	if first {
		sb.WriteString("0")
	}
	fmt.Fprintf(&sb, " + O(q^%d)", f.T)
	return sb.String()
}

func termString(c bignum.Q, k int) string {
	if c.IsZero() {
		return ""
	}
	neg := c.Sign() < 0
	abs := c.Abs()
	var coeffPart string
	if k == 0 {
		coeffPart = abs.String()
	} else if abs.IsOne() {
		coeffPart = ""
	} else {
		coeffPart = abs.String()
	}
	var qPart string
	switch {
	case k == 0:
		qPart = ""
	case k == 1:
		qPart = "q"
	default:
		qPart = fmt.Sprintf("q^%d", k)
	}
	body := coeffPart + qPart
	if body == "" {
		body = "1"
	}
	if neg {
		return "-" + body
	}
	return body
}
