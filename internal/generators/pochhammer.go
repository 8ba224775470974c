// Package generators implements the lazy infinite-product coefficient
// streams of §4.7: q-Pochhammer products, eta-quotients, theta functions,
// mock theta functions, Bailey pairs, and the partition-function variants
// of §4.8.
package generators

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/symbol"
)

// PochhammerGenerator incrementally builds (a; q^step)_order as a
// truncated FPS, extending one factor at a time per §4.7/§4.13: factor k
// is (1 - a*q^{step*k}); since that factor only affects exponents >= the
// valuation it introduces, ensureOrder can stop as soon as the next
// factor's own exponent has reached the target truncation.
type PochhammerGenerator struct {
	v       symbol.Id
	a       bignum.Q
	step    int
	order   int // -1 means Infinity
	partial fps.Series
	index   int // next factor index to multiply in; monotonically non-decreasing (§4.13)
}

// NewPochhammerGenerator starts the product at the empty-product value 1.
// order < 0 is read as Infinity.
func NewPochhammerGenerator(v symbol.Id, a bignum.Q, step, order int) *PochhammerGenerator {
	return &PochhammerGenerator{
		v:       v,
		a:       a,
		step:    step,
		order:   order,
		partial: fps.Monomial(v, bignum.QOne(), 0, 1<<30),
	}
}

// EnsureOrder extends the partial product until any further factor could
// only affect exponents >= T, then truncates the running product to T.
func (g *PochhammerGenerator) EnsureOrder(T int) {
	for {
		if g.order >= 0 && g.index >= g.order {
			break
		}
		factorExp := g.step * g.index
		if factorExp >= T {
			break
		}
		coeffs := map[int]bignum.Q{0: bignum.QOne()}
		if factorExp == 0 {
			coeffs[0] = bignum.QOne().Sub(g.a)
		} else {
			coeffs[factorExp] = g.a.Neg()
		}
		factor := fps.FromCoeffs(g.v, coeffs, T+1)
		prod, _ := g.partial.Truncate(T + 1).Mul(factor)
		g.partial = prod
		g.index++
	}
	g.partial = g.partial.Truncate(T)
}

// Partial returns a read-only snapshot of the generator's current series
// (§4.7 "exposes the partial series as a read-only reference" — Series
// values are themselves immutable-by-convention once returned, since
// every fps operation returns a new value rather than mutating).
func (g *PochhammerGenerator) Partial() fps.Series { return g.partial }

// AQProd computes (a; q^step)_order truncated at T, per the aqprod
// operation of §6's catalog. order == -1 denotes Infinity, order == 0
// yields the empty product 1, and any order below -1 is a DomainError.
func AQProd(v symbol.Id, a bignum.Q, step, order, T int) (fps.Series, error) {
	if order < -1 {
		return fps.Series{}, domainErr("aqprod", "order", "Pochhammer order must be non-negative or Infinity")
	}
	g := NewPochhammerGenerator(v, a, step, order)
	g.EnsureOrder(T)
	return g.Partial(), nil
}
