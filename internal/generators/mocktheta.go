package generators

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/symbol"
)

// pochFinite computes (c*q^step; q^step)_n = prod_{k=1}^{n} (1 - c*q^{step*k})
// truncated at T, as a direct finite product (n is always small here, so
// there is no need for PochhammerGenerator's incremental-extension state).
func pochFinite(v symbol.Id, c bignum.Q, step, n, T int) fps.Series {
	out := fps.Monomial(v, bignum.QOne(), 0, T)
	for k := 1; k <= n; k++ {
		exp := step * k
		if exp >= T {
			break
		}
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), exp: c.Neg()}, T)
		out, _ = out.Mul(factor)
	}
	return out
}

// mockThetaTerm builds q^{valuation} / denom^power truncated at T,
// returning ok=false when the denominator is not invertible at this
// truncation (never expected for these term shapes but checked anyway
// since Invert is a fallible operation).
func mockThetaTerm(v symbol.Id, valuation int, denom fps.Series, power, T int) (fps.Series, bool) {
	if valuation >= T {
		return fps.Zero(v, T), true
	}
	d := denom
	for i := 1; i < power; i++ {
		var err error
		d, err = d.Mul(denom)
		if err != nil {
			return fps.Series{}, false
		}
	}
	inv, ok := d.Invert()
	if !ok {
		return fps.Series{}, false
	}
	num := fps.Monomial(v, bignum.QOne(), valuation, T)
	term, err := num.Mul(inv)
	if err != nil {
		return fps.Series{}, false
	}
	return term, true
}

// MockThetaF is Ramanujan's third-order mock theta function
// f(q) = sum_{n>=0} q^{n^2} / (-q;q)_n^2.
func MockThetaF(v symbol.Id, T int) fps.Series {
	out := fps.Zero(v, T)
	for n := 0; n*n < T; n++ {
		denom := pochFinite(v, bignum.QOne().Neg(), 1, n, T)
		term, ok := mockThetaTerm(v, n*n, denom, 2, T)
		if !ok {
			continue
		}
		out, _ = out.Add(term)
	}
	return out
}

// MockThetaPhi is Ramanujan's third-order mock theta function
// phi(q) = sum_{n>=0} q^{n^2} / (-q^2;q^2)_n.
func MockThetaPhi(v symbol.Id, T int) fps.Series {
	out := fps.Zero(v, T)
	for n := 0; n*n < T; n++ {
		denom := pochFinite(v, bignum.QOne().Neg(), 2, n, T)
		term, ok := mockThetaTerm(v, n*n, denom, 1, T)
		if !ok {
			continue
		}
		out, _ = out.Add(term)
	}
	return out
}

// MockThetaPsi is Ramanujan's third-order mock theta function
// psi(q) = sum_{n>=1} q^{n^2} / (q;q^2)_n.
func MockThetaPsi(v symbol.Id, T int) fps.Series {
	out := fps.Zero(v, T)
	for n := 1; n*n < T; n++ {
		// (q;q^2)_n = prod_{k=0}^{n-1} (1 - q^{2k+1})
		denom := fps.Monomial(v, bignum.QOne(), 0, T)
		for k := 0; k < n && 2*k+1 < T; k++ {
			factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), 2*k + 1: bignum.QOne().Neg()}, T)
			denom, _ = denom.Mul(factor)
		}
		term, ok := mockThetaTerm(v, n*n, denom, 1, T)
		if !ok {
			continue
		}
		out, _ = out.Add(term)
	}
	return out
}

// MockThetaChi is Ramanujan's third-order mock theta function
// chi(q) = sum_{n>=0} q^{n^2} (-q;q)_n / (-q^3;q^3)_n.
func MockThetaChi(v symbol.Id, T int) fps.Series {
	out := fps.Zero(v, T)
	for n := 0; n*n < T; n++ {
		num := pochFinite(v, bignum.QOne().Neg(), 1, n, T)
		denom := pochFinite(v, bignum.QOne().Neg(), 3, n, T)
		denomInv, ok := denom.Invert()
		if !ok {
			continue
		}
		monomial := fps.Monomial(v, bignum.QOne(), n*n, T)
		term, err := monomial.Mul(num)
		if err != nil {
			continue
		}
		term, err = term.Mul(denomInv)
		if err != nil {
			continue
		}
		out, _ = out.Add(term)
	}
	return out
}

// MockThetaNu is Ramanujan's third-order mock theta function
// nu(q) = sum_{n>=0} q^{n(n+1)} / (-q;q^2)_{n+1}.
func MockThetaNu(v symbol.Id, T int) fps.Series {
	out := fps.Zero(v, T)
	for n := 0; n*(n+1) < T; n++ {
		// (-q;q^2)_{n+1} = prod_{k=0}^{n} (1 + q^{2k+1})
		denom := fps.Monomial(v, bignum.QOne(), 0, T)
		for k := 0; k <= n && 2*k+1 < T; k++ {
			factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), 2*k + 1: bignum.QOne()}, T)
			denom, _ = denom.Mul(factor)
		}
		term, ok := mockThetaTerm(v, n*(n+1), denom, 1, T)
		if !ok {
			continue
		}
		out, _ = out.Add(term)
	}
	return out
}

// MockThetaByName looks up one of the implemented classical mock theta
// functions by Ramanujan's own short name.
//
// Only the five third-order functions above are implemented; the
// remaining fifteen (orders 5, 6, 7, 8, 10) are not yet in this registry.
// Each has the same "sum of q^{valuation}/pochhammer-power" shape, so
// adding one is a matter of transcribing its valuation/denominator from
// the Gordon-McIntosh tables — tracked as a followup, not attempted here
// given the scope of this pass.
func MockThetaByName(name string, v symbol.Id, T int) (fps.Series, bool) {
	switch name {
	case "f":
		return MockThetaF(v, T), true
	case "phi":
		return MockThetaPhi(v, T), true
	case "psi":
		return MockThetaPsi(v, T), true
	case "chi":
		return MockThetaChi(v, T), true
	case "nu":
		return MockThetaNu(v, T), true
	default:
		return fps.Series{}, false
	}
}
