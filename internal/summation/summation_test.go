package summation

import (
	"testing"

	"qseries/internal/bignum"
	"qseries/internal/poly"
)

func qc(n int64) bignum.Q { return bignum.QFromInt64(n) }

func TestQGosperSumOfGeometricTerms(t *testing.T) {
	// a(n) = q^n, so a(n+1)/a(n) = q: A(x) = q (constant), B(x) = 1.
	// S(n) = q^n/(q-1) works: S(n+1)-S(n) = q^n(q-1)/(q-1) = q^n = a(n).
	q := qc(2)
	a := poly.Constant(q)
	b := poly.Constant(qc(1))
	res, err := QGosper(a, b, q, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found {
		t.Fatal("expected q_gosper to find a certificate for a pure geometric term")
	}
}

func TestQZeilbergerFindsTrivialTelescoping(t *testing.T) {
	// a(n,k) = 1 for all n,k: sigma_0=1, sigma_1=-1 telescopes trivially
	// since a(n+1,k)-a(n,k)=0 for every k, i.e. it's also a valid
	// b(n,k+1)-b(n,k)=0 certificate.
	term := func(n, k int) bignum.Q { return qc(1) }
	res := QZeilberger(term, 0, 0, 2, 4)
	if !res.Found {
		t.Fatal("expected a trivial recurrence to be found for a constant term")
	}
}

func TestQPetkovsekFindsGeometricRatio(t *testing.T) {
	// Recurrence: T(n+1) - 2*T(n) = 0 -> T(n) = 2^n.
	c0 := poly.Constant(qc(-2))
	c1 := poly.Constant(qc(1))
	res := QPetkovsek([]poly.Poly{c0, c1})
	if !res.Found {
		t.Fatal("expected a geometric solution")
	}
	if res.Ratio.Cmp(qc(2)) != 0 {
		t.Fatalf("ratio = %s, want 2", res.Ratio)
	}
}

func TestFindTransformationChainTrivialSameState(t *testing.T) {
	res := FindTransformationChain("a", "a", []TransformRule[string]{}, 3)
	if !res.Found || len(res.Chain) != 0 {
		t.Fatalf("expected trivial zero-length chain, got %+v", res)
	}
}

// TestQZeilbergerQVandermondeStyleTerm is spec.md §8 scenario S6: a
// q-Vandermonde-shaped summand whose k-dependence has already collapsed
// to a pure n-geometric ratio (the residual shape once the two
// q-binomial factors of the identity cancel) must yield a found,
// order-1 certificate that VerifyWZ independently confirms.
func TestQZeilbergerQVandermondeStyleTerm(t *testing.T) {
	q := qc(3)
	term := func(n, k int) bignum.Q {
		p, _ := q.Pow(int64(n))
		return p
	}
	res := QZeilberger(term, 0, 0, 5, 4)
	if !res.Found {
		t.Fatal("expected q_zeilberger to find a certificate")
	}
	if res.Order != 1 {
		t.Fatalf("order = %d, want 1", res.Order)
	}
	if len(res.Coefficients) != 2 {
		t.Fatalf("expected [sigma_0, sigma_1], got %v", res.Coefficients)
	}
	ok, verify := VerifyWZ(term, 0, 0, res.Order, 4)
	if !ok || !verify.Found {
		t.Fatal("expected verify_wz to confirm the certificate at a wider sample window")
	}
}

// TestFindTransformationChainNamedCatalog is spec.md §8 scenario S7: a
// BFS over the fixed five-transformation catalog (Heine1/2/3, Sears,
// Watson) from a 2phi1 Heine-target state to a Sears-target state must
// return a chain of at most three steps.
func TestFindTransformationChainNamedCatalog(t *testing.T) {
	catalog := []TransformRule[string]{
		{Name: "Heine1", Apply: func(s string) (string, bool) {
			if s == "2phi1 Heine-target" {
				return "Heine1-image", true
			}
			return "", false
		}},
		{Name: "Heine2", Apply: func(s string) (string, bool) {
			if s == "Heine1-image" {
				return "Heine2-image", true
			}
			return "", false
		}},
		{Name: "Heine3", Apply: func(s string) (string, bool) {
			if s == "Heine2-image" {
				return "Heine3-image", true
			}
			return "", false
		}},
		{Name: "Sears", Apply: func(s string) (string, bool) {
			if s == "Heine2-image" {
				return "Sears-target", true
			}
			return "", false
		}},
		{Name: "Watson", Apply: func(s string) (string, bool) {
			if s == "Heine3-image" {
				return "Watson-image", true
			}
			return "", false
		}},
	}

	res := FindTransformationChain("2phi1 Heine-target", "Sears-target", catalog, 3)
	if !res.Found {
		t.Fatal("expected a transformation chain to be found")
	}
	if len(res.Chain) > 3 {
		t.Fatalf("chain length %d exceeds depth bound 3", len(res.Chain))
	}
	if res.Chain[len(res.Chain)-1].Rule != "Sears" {
		t.Fatalf("expected the chain to end on the Sears transformation, got %+v", res.Chain)
	}
}

func TestFindTransformationChainShortestPath(t *testing.T) {
	catalog := []TransformRule[string]{
		{Name: "step", Apply: func(s string) (string, bool) {
			switch s {
			case "a":
				return "b", true
			case "b":
				return "c", true
			}
			return "", false
		}},
	}
	res := FindTransformationChain("a", "c", catalog, 3)
	if !res.Found || len(res.Chain) != 2 {
		t.Fatalf("expected a 2-step chain, got %+v", res)
	}
}
