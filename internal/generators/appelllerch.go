package generators

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/symbol"
)

// AppellLerchSum computes the r>=0 half of the classical Appell-Lerch sum
//
//	m(x,q,z) = sum_{r=-inf}^{inf} (-1)^r q^{r(r+1)/2} z^r / (1 - x*q^r)
//
// truncated at T, with x and z fixed rational parameters (the same
// scalar-parameter scoping §4.7 already uses for BaileyPair's base a).
// The full bilateral Hickerson-Mortenson definition sums over all
// integers r and divides by the theta-like normalizer j(z;q); both are
// out of scope here — summing only r>=0 already produces the
// q-expansion side of the function that every mock theta function in
// this package is itself a specialization of, which is the piece an FPS
// kernel with no Laurent-series support can represent (an Open
// Question; see DESIGN.md).
func AppellLerchSum(v symbol.Id, x, z bignum.Q, T int) fps.Series {
	out := fps.Zero(v, T)
	for r := 0; r*(r+1)/2 < T; r++ {
		factor := linearFactor(v, r, x, T)
		inv, ok := factor.Invert()
		if !ok {
			continue
		}
		zr, ok := z.Pow(int64(r))
		if !ok {
			continue
		}
		sign := bignum.QOne()
		if r%2 == 1 {
			sign = sign.Neg()
		}
		monomial := fps.Monomial(v, sign.Mul(zr), r*(r+1)/2, T)
		term, err := monomial.Mul(inv)
		if err != nil {
			continue
		}
		out, _ = out.Add(term)
	}
	return out
}

// linearFactor builds (1 - x*q^r) as an FPS, collapsing the r=0 case to
// the single constant term 1-x rather than two colliding entries at
// exponent 0.
func linearFactor(v symbol.Id, r int, x bignum.Q, T int) fps.Series {
	if r == 0 {
		return fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne().Sub(x)}, T)
	}
	return fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), r: x.Neg()}, T)
}
