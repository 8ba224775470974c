package engine

import (
	"qseries/internal/analysis"
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/poly"
	"qseries/internal/relations"
	"qseries/internal/summation"
)

// Prodmake / Qfactor expose §4.9's infinite-product reconstruction as
// thin session methods — the analysis package is pure and stateless, so
// a Session adds no behavior here beyond being the catalog's front door.
func (s *Session) Prodmake(f fps.Series) (analysis.ProductForm, bool) { return analysis.Prodmake(f) }
func (s *Session) Qfactor(f fps.Series) (analysis.Factorization, bool) {
	return analysis.Qfactor(f)
}

// Sift extracts a residue-class subseries (§4.9: sift).
func (s *Session) Sift(f fps.Series, m, r int) fps.Series { return analysis.Sift(f, m, r) }

// CheckMult / CheckProd run the §4.9 classifiers.
func (s *Session) CheckMult(f fps.Series, T int, collectAll bool) analysis.MultCheckResult {
	return analysis.CheckMult(f, T, collectAll)
}
func (s *Session) CheckProd(f fps.Series, M int) (analysis.ProdCheckResult, bool) {
	return analysis.CheckProd(f, M)
}

// FindLinCombo / FindMaxInd / FindCong expose part of §4.11's
// relation-discovery catalog; the other findX operations are called on
// internal/relations directly.
func (s *Session) FindLinCombo(f fps.Series, fs []fps.Series, labels []string, topshift int) (relations.LinComboResult, error) {
	return relations.FindLinCombo(f, fs, labels, topshift)
}
func (s *Session) FindMaxInd(l []fps.Series, T int) []int { return relations.FindMaxInd(l, T) }
func (s *Session) FindCong(qs fps.Series, T, lm int, xset map[int]bool) []relations.Congruence {
	return relations.FindCong(qs, T, lm, xset)
}

// QGosper / QZeilberger / VerifyWZ / QPetkovsek expose §4.12's
// creative-telescoping catalog; FindTransformationChain is generic over
// its state type and is called on internal/summation directly.
func (s *Session) QGosper(a, b poly.Poly, q bignum.Q, maxDegree int) (summation.GosperResult, error) {
	return summation.QGosper(a, b, q, maxDegree)
}
func (s *Session) QZeilberger(a summation.Term, n, offset, ordMax, samples int) summation.ZeilbergerResult {
	return summation.QZeilberger(a, n, offset, ordMax, samples)
}
func (s *Session) VerifyWZ(a summation.Term, n, offset, ord, originalSamples int) (bool, summation.ZeilbergerResult) {
	return summation.VerifyWZ(a, n, offset, ord, originalSamples)
}
func (s *Session) QPetkovsek(coeffs []poly.Poly) summation.PetkovsekResult {
	return summation.QPetkovsek(coeffs)
}
