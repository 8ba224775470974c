package arena

import (
	"golang.org/x/exp/slices"

	"qseries/internal/bignum"
	"qseries/internal/qerr"
	"qseries/internal/symbol"
)

// MakeInteger interns an Integer atom.
func (a *Arena) MakeInteger(z bignum.Z) ExprRef {
	return a.intern(Node{Kind: KindInteger, Int: z})
}

// MakeRational interns a Rational atom, degenerating to Integer when the
// value turns out to be integral (denominator 1) so the arena never
// carries two representations of the same number.
func (a *Arena) MakeRational(q bignum.Q) ExprRef {
	if q.IsInteger() {
		return a.MakeInteger(q.Num())
	}
	return a.intern(Node{Kind: KindRational, Rat: q})
}

// MakeSymbol interns a Symbol atom for an already-interned SymbolId.
func (a *Arena) MakeSymbol(id symbol.Id) ExprRef {
	return a.intern(Node{Kind: KindSymbol, Sym: id})
}

var infinitySingleton = Node{Kind: KindInfinity}

// MakeInfinity interns the singleton formal-infinity atom.
func (a *Arena) MakeInfinity() ExprRef {
	return a.intern(infinitySingleton)
}

// isIntegerAtom reports whether ref names an Integer node and returns its
// value.
func (a *Arena) isIntegerAtom(ref ExprRef) (bignum.Z, bool) {
	n := a.Get(ref)
	if n.Kind == KindInteger {
		return n.Int, true
	}
	return bignum.Z{}, false
}

func (a *Arena) isZero(ref ExprRef) bool {
	z, ok := a.isIntegerAtom(ref)
	return ok && z.IsZero()
}

func (a *Arena) isOne(ref ExprRef) bool {
	z, ok := a.isIntegerAtom(ref)
	return ok && z.IsOne()
}

// numericValue returns (value, true) when ref is an Integer or Rational
// atom, for constant folding during construction.
func (a *Arena) numericValue(ref ExprRef) (bignum.Q, bool) {
	n := a.Get(ref)
	switch n.Kind {
	case KindInteger:
		return bignum.QFromZ(n.Int), true
	case KindRational:
		return n.Rat, true
	default:
		return bignum.Q{}, false
	}
}

// MakeNeg builds -x, folding numeric atoms and double negation.
func (a *Arena) MakeNeg(x ExprRef) ExprRef {
	if n := a.Get(x); n.Kind == KindNeg {
		return n.X
	}
	if v, ok := a.numericValue(x); ok {
		return a.MakeRational(v.Neg())
	}
	return a.intern(Node{Kind: KindNeg, X: x})
}

// MakeAdd builds a canonical n-ary sum: flatten nested Add children, fold
// all numeric atoms into a single constant, sort the remaining symbolic
// terms by ExprRef (so any permutation of the same multiset of inputs
// yields the same sorted slice and hence the same interned ref — §8
// property 2), and degenerate Add([]) / single-child sums per §3's
// invariants.
//
// Symbolic like-term collection (x+x -> 2x) is deliberately left to the
// simplifier's collect phase (§4.6) rather than duplicated here: folding
// it into construction would mean every Add call pattern-matches its
// whole argument list, and the arena's own invariants (§4.3) only ask
// constructors to flatten/sort/fold-atoms/drop-identities, not to solve
// the general collect problem.
func (a *Arena) MakeAdd(terms []ExprRef) ExprRef {
	flat := make([]ExprRef, 0, len(terms))
	var numeric = bignum.QZero()
	hasNumeric := false
	var flatten func(refs []ExprRef)
	flatten = func(refs []ExprRef) {
		for _, r := range refs {
			if n := a.Get(r); n.Kind == KindAdd {
				flatten(n.Terms)
				continue
			}
			if v, ok := a.numericValue(r); ok {
				numeric = numeric.Add(v)
				hasNumeric = true
				continue
			}
			flat = append(flat, r)
		}
	}
	flatten(terms)

	slices.SortFunc(flat, func(x, y ExprRef) int { return int(x) - int(y) })

	if hasNumeric && !numeric.IsZero() {
		flat = append([]ExprRef{a.MakeRational(numeric)}, flat...)
	}

	switch len(flat) {
	case 0:
		return a.MakeInteger(bignum.ZZero())
	case 1:
		return flat[0]
	default:
		return a.intern(Node{Kind: KindAdd, Terms: flat})
	}
}

// MakeMul builds a canonical n-ary product, with the same flatten/fold/
// sort treatment as MakeAdd, plus the absorber (any factor 0 collapses
// the whole product to 0) and identity (factors equal to 1 are dropped)
// rules §4.3/§4.6 ask constructors to apply eagerly.
func (a *Arena) MakeMul(factors []ExprRef) ExprRef {
	flat := make([]ExprRef, 0, len(factors))
	numeric := bignum.QOne()
	hasNumeric := false
	var flatten func(refs []ExprRef)
	flatten = func(refs []ExprRef) {
		for _, r := range refs {
			if n := a.Get(r); n.Kind == KindMul {
				flatten(n.Factors)
				continue
			}
			if v, ok := a.numericValue(r); ok {
				numeric = numeric.Mul(v)
				hasNumeric = true
				continue
			}
			flat = append(flat, r)
		}
	}
	flatten(factors)

	if hasNumeric && numeric.IsZero() {
		return a.MakeInteger(bignum.ZZero())
	}

	slices.SortFunc(flat, func(x, y ExprRef) int { return int(x) - int(y) })

	if hasNumeric && !numeric.IsOne() {
		flat = append([]ExprRef{a.MakeRational(numeric)}, flat...)
	}

	switch len(flat) {
	case 0:
		return a.MakeInteger(bignum.ZOne())
	case 1:
		return flat[0]
	default:
		return a.intern(Node{Kind: KindMul, Factors: flat})
	}
}

// MakePow builds base^exp, resolving the §9 open question on 0^0 ("1
// only inside a pure-numeric Pow of exact integer base/exponent;
// DomainError if the exponent is symbolic") and folding the cancel-phase
// identities (x^1 -> x, x^0 -> 1 for x != 0, 1^x -> 1) at construction
// time per §4.3.
func (a *Arena) MakePow(base, exp ExprRef) (ExprRef, error) {
	expZ, expIsInt := a.isIntegerAtom(exp)

	if a.isZero(base) {
		if !expIsInt {
			return Invalid, qerr.Domain("make_pow", "exponent", "0^x requires an exact integer exponent")
		}
		switch {
		case expZ.IsZero():
			return a.MakeInteger(bignum.ZOne()), nil // 0^0 == 1 (§9)
		case expZ.Sign() < 0:
			return Invalid, qerr.Domain("make_pow", "exponent", "0^x undefined for x <= 0 other than x == 0")
		default:
			return a.MakeInteger(bignum.ZZero()), nil
		}
	}

	if a.isOne(base) {
		return a.MakeInteger(bignum.ZOne()), nil
	}
	if a.isZero(exp) {
		return a.MakeInteger(bignum.ZOne()), nil
	}
	if a.isOne(exp) {
		return base, nil
	}

	if baseV, ok := a.numericValue(base); ok && expIsInt {
		if e64, fits := expZ.Int64(); fits {
			if r, ok := baseV.Pow(e64); ok {
				return a.MakeRational(r), nil
			}
			return Invalid, qerr.Domain("make_pow", "base", "division by zero raising to a negative power")
		}
	}

	return a.intern(Node{Kind: KindPow, Base: base, Exp: exp}), nil
}

// MakeQPochhammer builds (base;nome)_order. order must be a non-negative
// Integer atom or the Infinity atom; anything else is a DomainError
// (§4.3, negative Pochhammer order).
func (a *Arena) MakeQPochhammer(base, nome, order ExprRef) (ExprRef, error) {
	orderNode := a.Get(order)
	switch orderNode.Kind {
	case KindInfinity:
		// ok
	case KindInteger:
		if orderNode.Int.Sign() < 0 {
			return Invalid, qerr.Domain("make_qpochhammer", "order", "Pochhammer order must be non-negative or Infinity")
		}
	default:
		return Invalid, qerr.Domain("make_qpochhammer", "order", "order must be a non-negative integer or Infinity")
	}
	return a.intern(Node{Kind: KindQPochhammer, PochBase: base, PochNome: nome, PochOrder: order}), nil
}

// MakeJacobiTheta builds theta_index(nome); index must be in {1,2,3,4}.
func (a *Arena) MakeJacobiTheta(index int, nome ExprRef) (ExprRef, error) {
	if index < 1 || index > 4 {
		return Invalid, qerr.DomainWithSuggestion("make_jacobi_theta", "index", "theta index out of range", "use an index in {1,2,3,4}")
	}
	return a.intern(Node{Kind: KindJacobiTheta, ThetaIndex: index, Nome: nome}), nil
}

// MakeDedekindEta builds eta(tau).
func (a *Arena) MakeDedekindEta(tau ExprRef) ExprRef {
	return a.intern(Node{Kind: KindDedekindEta, Tau: tau})
}

// MakeBasicHypergeometric builds a rPHIs node.
func (a *Arena) MakeBasicHypergeometric(upper, lower []ExprRef, nome, argument ExprRef) ExprRef {
	u := append([]ExprRef(nil), upper...)
	l := append([]ExprRef(nil), lower...)
	return a.intern(Node{Kind: KindBasicHypergeometric, Upper: u, Lower: l, Nome: nome, Argument: argument})
}

// MakeJacobiProduct builds a structured Jacobi-product value from a
// canonicalized (sorted, like-factor-merged) multi-set of (b,t) entries.
func (a *Arena) MakeJacobiProduct(factors []JPFactor) ExprRef {
	merged := map[[2]int]bignum.Z{}
	var order [][2]int
	for _, f := range factors {
		key := [2]int{f.B, f.T}
		if cur, ok := merged[key]; ok {
			merged[key] = cur.Add(f.Mult)
		} else {
			merged[key] = f.Mult
			order = append(order, key)
		}
	}
	slices.SortFunc(order, func(x, y [2]int) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})
	out := make([]JPFactor, 0, len(order))
	for _, key := range order {
		m := merged[key]
		if m.IsZero() {
			continue
		}
		out = append(out, JPFactor{B: key[0], T: key[1], Mult: m})
	}
	return a.intern(Node{Kind: KindJacobiProduct, JPFactors: out})
}
