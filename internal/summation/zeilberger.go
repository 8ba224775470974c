package summation

import (
	"qseries/internal/bignum"
	"qseries/internal/linalg"
)

// Term is a hypergeometric term a(n,k) supplied as direct term-value
// arithmetic (§4.12: "uses direct term-value arithmetic rather than
// polynomial key-equation evaluation to handle terminating series") —
// the engine never needs a's closed symbolic form, only its numeric
// value at any (n,k).
type Term func(n, k int) bignum.Q

// ZeilbergerResult mirrors §4.12's output record exactly.
type ZeilbergerResult struct {
	Found        bool
	Order        int
	Coefficients []bignum.Q // sigma_0 .. sigma_order, normalized sigma_0 = 1 when possible
	Certificate  []bignum.Q // b(n,k) values found for k = offset..offset+samples+1
}

// QZeilberger searches for a creative-telescoping certificate: order j
// and sigma_0..sigma_order plus a certificate sequence b(n,k) (k =
// offset..offset+samples+1) such that
//
//	sum_j sigma_j * a(n+j, k) = b(n,k+1) - b(n,k)
//
// for every sampled k, by solving the corresponding homogeneous linear
// system over term values directly (§4.12). ordMax bounds the search
// order; samples bounds how many k values are used to pin down the
// telescoping certificate — more samples make a spurious (coincidental)
// solution less likely but are not a correctness proof by themselves,
// which is what VerifyWZ is for.
func QZeilberger(a Term, n, offset, ordMax, samples int) ZeilbergerResult {
	for ord := 1; ord <= ordMax; ord++ {
		if sigma, cert, ok := solveOrder(a, n, offset, ord, samples); ok {
			return ZeilbergerResult{Found: true, Order: ord, Coefficients: sigma, Certificate: cert}
		}
	}
	return ZeilbergerResult{Found: false}
}

func solveOrder(a Term, n, offset, ord, samples int) (sigma, cert []bignum.Q, ok bool) {
	// Unknowns: sigma_0..sigma_ord (ord+1 of them), then b_0..b_{samples+1}
	// representing b(n, offset+k) for k=0..samples+1.
	numSigma := ord + 1
	numB := samples + 2
	cols := numSigma + numB
	m := linalg.NewMatrix(samples+1, cols)
	for row := 0; row <= samples; row++ {
		k := offset + row
		for j := 0; j <= ord; j++ {
			m.Data[row][j] = a(n+j, k)
		}
		// -b(row) + b(row+1) moved to the homogeneous side:
		// sum_j sigma_j a(n+j,k) - b_{row+1} + b_{row} = 0
		m.Data[row][numSigma+row] = bignum.QOne()
		m.Data[row][numSigma+row+1] = bignum.QFromInt64(-1)
	}
	b := make([]bignum.Q, samples+1)
	for i := range b {
		b[i] = bignum.QZero()
	}
	sol := linalg.Solve(m, b)
	if !sol.Found || len(sol.NullSpace) == 0 {
		return nil, nil, false
	}
	vec := sol.NullSpace[0]
	sigmaRaw := vec[:numSigma]
	if allZero(sigmaRaw) {
		// Try remaining null-space basis vectors: the first one might be
		// a pure certificate-only direction (sigma all zero) when the
		// system is underdetermined in b alone.
		for _, alt := range sol.NullSpace[1:] {
			if !allZero(alt[:numSigma]) {
				vec = alt
				sigmaRaw = vec[:numSigma]
				break
			}
		}
		if allZero(sigmaRaw) {
			return nil, nil, false
		}
	}
	sigma = normalizeSigma(sigmaRaw)
	cert = vec[numSigma:]
	return sigma, cert, true
}

func allZero(v []bignum.Q) bool {
	for _, c := range v {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// normalizeSigma scales so sigma_0 = 1 when sigma_0 != 0, matching the
// conventional normalization of a q-Zeilberger certificate.
func normalizeSigma(sigma []bignum.Q) []bignum.Q {
	if sigma[0].IsZero() {
		return append([]bignum.Q(nil), sigma...)
	}
	inv, _ := sigma[0].Inv()
	out := make([]bignum.Q, len(sigma))
	for i, c := range sigma {
		out[i] = c.Mul(inv)
	}
	return out
}

// VerifyWZ independently re-checks a QZeilberger result: it reruns the
// same-order search with a strictly larger sample window and confirms
// the same (normalized) sigma reappears. A solution that only fit by
// coincidence at the original window size will generally fail to persist
// once the system is more over-determined; a genuine telescoping
// recurrence holds at any window size.
func VerifyWZ(a Term, n, offset, ord, originalSamples int) (bool, ZeilbergerResult) {
	original, _, ok := solveOrder(a, n, offset, ord, originalSamples)
	if !ok {
		return false, ZeilbergerResult{Found: false}
	}
	widerSamples := originalSamples*2 + 4
	sigma, _, ok := solveOrder(a, n, offset, ord, widerSamples)
	if !ok {
		return false, ZeilbergerResult{Found: false}
	}
	for i := range sigma {
		if sigma[i].Cmp(original[i]) != 0 {
			return false, ZeilbergerResult{Found: false}
		}
	}
	return true, ZeilbergerResult{Found: true, Order: ord, Coefficients: sigma}
}
