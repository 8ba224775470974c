package generators

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/symbol"
)

// EtaQ computes the eta-quotient building block prod_{k>=1} (1 - q^{b*k})^t
// truncated at T, following Garvan-style qseries usage of "etaq(b,t,...)"
// as an integer-exponent product (the q^{1/24}-weighted classical eta is
// carried separately, symbolically, by internal/arena's DedekindEta node —
// see DESIGN.md). b must be positive; t may be any integer (negative t
// divides, i.e. appears in a denominator product).
func EtaQ(v symbol.Id, b, t, T int) fps.Series {
	if b <= 0 {
		return fps.Monomial(v, bignum.QOne(), 0, T)
	}
	out := fps.Monomial(v, bignum.QOne(), 0, T)
	for k := 1; b*k < T; k++ {
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), b * k: bignum.QOne().Neg()}, T)
		if t >= 0 {
			for i := 0; i < t; i++ {
				out, _ = out.Mul(factor)
			}
		} else {
			inv, ok := factor.Invert()
			if !ok {
				continue
			}
			for i := 0; i < -t; i++ {
				out, _ = out.Mul(inv)
			}
		}
	}
	return out
}

// Euler returns the Euler function (q;q)_infty = EtaQ(1,1,T): its nonzero
// coefficients occur only at generalized pentagonal indices k(3k+-1)/2 by
// the Pentagonal Number Theorem (§4.7/§8 property 8), which falls out
// automatically from multiplying the factors (1-q^k) in order rather than
// being asserted separately.
func Euler(v symbol.Id, T int) fps.Series {
	return EtaQ(v, 1, 1, T)
}

// DistinctPartsGF is the generating function for partitions into distinct
// parts, prod_{n>=1}(1+q^n) = EtaQ(2,1,T) / EtaQ(1,1,T) computed directly
// as a product of (1+q^n) factors rather than via that quotient, so it
// does not depend on Euler's zeros lining up favorably for division.
func DistinctPartsGF(v symbol.Id, T int) fps.Series {
	out := fps.Monomial(v, bignum.QOne(), 0, T)
	for n := 1; n < T; n++ {
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), n: bignum.QOne()}, T)
		out, _ = out.Mul(factor)
	}
	return out
}

// OddPartsGF is the generating function for partitions into odd parts,
// prod_{n>=1} 1/(1-q^{2n-1}). By Euler's theorem this equals
// DistinctPartsGF; computing it via the independent odd-parts product
// (rather than reusing DistinctPartsGF) lets tests cross-check the
// identity instead of assuming it.
func OddPartsGF(v symbol.Id, T int) fps.Series {
	out := fps.Monomial(v, bignum.QOne(), 0, T)
	for k := 1; 2*k-1 < T; k++ {
		exp := 2*k - 1
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), exp: bignum.QOne().Neg()}, T)
		inv, ok := factor.Invert()
		if !ok {
			continue
		}
		out, _ = out.Mul(inv)
	}
	return out
}

// BoundedPartsGF is the generating function for partitions into at most N
// parts each a multiple of b: prod_{k=1}^{N} 1/(1-q^{b*k}), the
// "(q^b;q^b)_N-style" variant named in §4.8.
func BoundedPartsGF(v symbol.Id, b, N, T int) fps.Series {
	out := fps.Monomial(v, bignum.QOne(), 0, T)
	for k := 1; k <= N; k++ {
		exp := b * k
		if exp >= T {
			break
		}
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), exp: bignum.QOne().Neg()}, T)
		inv, ok := factor.Invert()
		if !ok {
			continue
		}
		out, _ = out.Mul(inv)
	}
	return out
}

// PartitionGF is 1/(q;q)_infty, whose coefficients are p(n) (§4.8, S1/S2).
// Per §9's resolved open question, partition counts are Z throughout — no
// int64 narrowing happens anywhere in this path.
func PartitionGF(v symbol.Id, T int) (fps.Series, bool) {
	return Euler(v, T).Invert()
}

// RankGFUnity is Dyson's rank generating function specialized at z=1,
// which coincides with PartitionGF (every partition counted once
// regardless of rank).
func RankGFUnity(v symbol.Id, T int) (fps.Series, bool) {
	return PartitionGF(v, T)
}

// RankGFMinusOne is Dyson's rank generating function specialized at
// z=-1: sum_n q^{n^2} / (-q;q)_n^2, the classical identity making this
// equal to Ramanujan's third-order mock theta function f(q) (reused from
// mocktheta.go rather than re-derived, so the two stay consistent).
func RankGFMinusOne(v symbol.Id, T int) fps.Series {
	return MockThetaF(v, T)
}

// CrankGFMinusOne is the crank generating function specialized at z=-1:
// (q;q)_infty / (-q;q)_infty^2.
func CrankGFMinusOne(v symbol.Id, T int) (fps.Series, bool) {
	euler := Euler(v, T)
	distinct := DistinctPartsGF(v, T)
	distinctSq, err := distinct.Mul(distinct)
	if err != nil {
		return fps.Series{}, false
	}
	invSq, ok := distinctSq.Invert()
	if !ok {
		return fps.Series{}, false
	}
	out, err := euler.Mul(invSq)
	if err != nil {
		return fps.Series{}, false
	}
	return out, true
}
