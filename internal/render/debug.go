package render

import (
	"fmt"
	"strings"

	"qseries/internal/arena"
)

// ToDebugSexpr renders ref as an s-expression reflecting node structure
// exactly, independent of display conventions — used in tests and verbose
// diagnostics to assert shape without coupling to the pretty renderers
// (SPEC_FULL.md §C).
func ToDebugSexpr(a *arena.Arena, ref arena.ExprRef) string {
	n := a.Get(ref)
	switch n.Kind {
	case arena.KindInteger:
		return n.Int.String()
	case arena.KindRational:
		return n.Rat.String()
	case arena.KindSymbol:
		return a.Syms.Name(n.Sym)
	case arena.KindInfinity:
		return "inf"
	case arena.KindNeg:
		return fmt.Sprintf("(neg %s)", ToDebugSexpr(a, n.X))
	case arena.KindAdd:
		return fmt.Sprintf("(add %s)", joinSexpr(a, n.Terms))
	case arena.KindMul:
		return fmt.Sprintf("(mul %s)", joinSexpr(a, n.Factors))
	case arena.KindPow:
		return fmt.Sprintf("(pow %s %s)", ToDebugSexpr(a, n.Base), ToDebugSexpr(a, n.Exp))
	case arena.KindQPochhammer:
		return fmt.Sprintf("(qpoch %s %s %s)", ToDebugSexpr(a, n.PochBase), ToDebugSexpr(a, n.PochNome), ToDebugSexpr(a, n.PochOrder))
	case arena.KindJacobiTheta:
		return fmt.Sprintf("(theta%d %s)", n.ThetaIndex, ToDebugSexpr(a, n.Nome))
	case arena.KindDedekindEta:
		return fmt.Sprintf("(eta %s)", ToDebugSexpr(a, n.Tau))
	case arena.KindBasicHypergeometric:
		return fmt.Sprintf("(phi (%s) (%s) %s %s)", joinSexpr(a, n.Upper), joinSexpr(a, n.Lower), ToDebugSexpr(a, n.Nome), ToDebugSexpr(a, n.Argument))
	case arena.KindJacobiProduct:
		parts := make([]string, len(n.JPFactors))
		for i, f := range n.JPFactors {
			parts[i] = fmt.Sprintf("(%d %d %s)", f.B, f.T, f.Mult.String())
		}
		return fmt.Sprintf("(jprod %s)", strings.Join(parts, " "))
	default:
		return fmt.Sprintf("(?kind%d)", n.Kind)
	}
}

func joinSexpr(a *arena.Arena, refs []arena.ExprRef) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = ToDebugSexpr(a, r)
	}
	return strings.Join(parts, " ")
}
