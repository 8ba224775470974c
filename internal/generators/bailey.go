package generators

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/symbol"
)

// BaileyPair holds a finite, explicitly-inserted slice of a Bailey pair
// (alpha_n, beta_n)_{n>=0} relative to a base a, where
//
//	beta_n = sum_{r=0}^{n} alpha_r / ( (q;q)_{n-r} * (a*q;q)_{n+r} )
//
// Entries here are truncated FPS rather than scalars: §4.7 calls for the
// Bailey machinery to generalize generators that are themselves q-series,
// and this is the scoped-down reading of that requirement (an Open
// Question, since the pack has no direct Bailey-pair precedent — see
// DESIGN.md). Only explicitly Insert-ed alpha_n are ever read; Beta(n)
// reports ok=false if any alpha_r for r<=n is missing.
type BaileyPair struct {
	v     symbol.Id
	a     bignum.Q
	alpha map[int]fps.Series
	T     int
}

// NewBaileyPair starts an empty pair over base a, truncated at T. The
// unitary pair alpha_0=1 is always present, per the classical convention
// that every Bailey chain starts from it.
func NewBaileyPair(v symbol.Id, a bignum.Q, T int) *BaileyPair {
	bp := &BaileyPair{v: v, a: a, T: T, alpha: map[int]fps.Series{}}
	bp.alpha[0] = fps.Monomial(v, bignum.QOne(), 0, T)
	return bp
}

// Insert records alpha_n for a given index, overwriting any prior value.
func (bp *BaileyPair) Insert(n int, alphaN fps.Series) {
	bp.alpha[n] = alphaN
}

// Alpha returns the stored alpha_n, or ok=false if it was never inserted.
func (bp *BaileyPair) Alpha(n int) (fps.Series, bool) {
	s, ok := bp.alpha[n]
	return s, ok
}

// Beta computes beta_n from the stored alpha_0..alpha_n via the defining
// Bailey-pair sum. Returns ok=false if any required alpha_r is missing or
// a denominator factor fails to invert (e.g. a=1 degenerates (aq;q)_0 at
// n=r=0, which is always invertible, so this only bites on pathological
// a values).
func (bp *BaileyPair) Beta(n int) (fps.Series, bool) {
	out := fps.Zero(bp.v, bp.T)
	aq := bp.a // pochShiftedFinite supplies the extra factor of q in a*q
	for r := 0; r <= n; r++ {
		alphaR, ok := bp.alpha[r]
		if !ok {
			return fps.Series{}, false
		}
		den1 := pochFinite(bp.v, bignum.QOne(), 1, n-r, bp.T) // (q;q)_{n-r}
		den2 := pochShiftedFinite(bp.v, aq, n+r, bp.T)         // (a*q; q)_{n+r}
		den, err := den1.Mul(den2)
		if err != nil {
			return fps.Series{}, false
		}
		inv, ok := den.Invert()
		if !ok {
			return fps.Series{}, false
		}
		term, err := alphaR.Mul(inv)
		if err != nil {
			return fps.Series{}, false
		}
		out, _ = out.Add(term)
	}
	return out, true
}

// pochShiftedFinite computes (a*q; q)_m = prod_{k=0}^{m-1} (1 - a*q^{k+1}),
// the "(a*q;q)" shifted Pochhammer shape needed by the Bailey sum.
func pochShiftedFinite(v symbol.Id, a bignum.Q, m, T int) fps.Series {
	out := fps.Monomial(v, bignum.QOne(), 0, T)
	for k := 0; k < m; k++ {
		exp := k + 1
		if exp >= T {
			break
		}
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), exp: a.Neg()}, T)
		out, _ = out.Mul(factor)
	}
	return out
}

// Iterate applies one step of the classical Bailey chain: the new pair's
// alpha'_n = a^n * q^{n^2} * alpha_n, for every n with a stored alpha_n.
// The returned pair's Beta recomputes from these transformed alpha values
// via the same defining sum, so alpha and beta of the result stay
// consistent by construction rather than needing a separately-derived
// beta-transform formula.
func (bp *BaileyPair) Iterate() *BaileyPair {
	next := &BaileyPair{v: bp.v, a: bp.a, T: bp.T, alpha: map[int]fps.Series{}}
	for n, alphaN := range bp.alpha {
		scalar, ok := bp.a.Pow(int64(n))
		if !ok {
			continue
		}
		weighted := fps.Monomial(bp.v, scalar, n*n, bp.T)
		transformed, err := alphaN.Mul(weighted)
		if err != nil {
			continue
		}
		next.alpha[n] = transformed
	}
	return next
}
