package arena

import (
	"fmt"
	"strings"

	"qseries/internal/symbol"
)

// Arena is the hash-consed, append-only expression DAG of §3/§4.3. A
// Session owns exactly one Arena (and one symbol.Registry) for its
// lifetime (§3 Lifecycle); expressions never outlive their Arena.
type Arena struct {
	nodes  []Node
	dedup  map[string]ExprRef
	Syms   *symbol.Registry
}

// New creates an empty Arena bound to the given symbol registry.
func New(syms *symbol.Registry) *Arena {
	return &Arena{
		dedup: make(map[string]ExprRef),
		Syms:  syms,
	}
}

// Get returns the node at ref. O(1). Panics (InvariantViolation) on a ref
// this Arena never issued — always a caller bug, never a recoverable
// condition, matching §7's treatment of hash-consing defects.
func (a *Arena) Get(ref ExprRef) *Node {
	if int(ref) < 0 || int(ref) >= len(a.nodes) {
		panic(fmt.Sprintf("arena: ExprRef %d not issued by this arena", ref))
	}
	return &a.nodes[ref]
}

// Len returns the number of interned nodes.
func (a *Arena) Len() int { return len(a.nodes) }

// intern is the single sanctioned path to a new ExprRef: it returns the
// existing ref if a structurally identical node was already interned,
// otherwise it appends and returns a fresh one. intern itself is
// infallible (§4.3); all fallible validation happens in the Make*
// constructors before they call intern.
func (a *Arena) intern(n Node) ExprRef {
	key := nodeKey(n)
	if ref, ok := a.dedup[key]; ok {
		return ref
	}
	ref := ExprRef(len(a.nodes))
	a.nodes = append(a.nodes, n)
	a.dedup[key] = ref
	return ref
}

// nodeKey computes the canonical structural key used for hash-consing.
// Two nodes produce the same key iff they are structurally identical —
// this is the dedup table's correctness property underpinning the
// hash-consing invariant (§8 property 1).
func nodeKey(n Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|", n.Kind)
	switch n.Kind {
	case KindInteger:
		sb.WriteString(n.Int.String())
	case KindRational:
		sb.WriteString(n.Rat.String())
	case KindSymbol:
		fmt.Fprintf(&sb, "%d", n.Sym)
	case KindInfinity:
		// singleton, kind alone is the key
	case KindNeg:
		fmt.Fprintf(&sb, "%d", n.X)
	case KindAdd:
		writeRefs(&sb, n.Terms)
	case KindMul:
		writeRefs(&sb, n.Factors)
	case KindPow:
		fmt.Fprintf(&sb, "%d,%d", n.Base, n.Exp)
	case KindQPochhammer:
		fmt.Fprintf(&sb, "%d,%d,%d", n.PochBase, n.PochNome, n.PochOrder)
	case KindJacobiTheta:
		fmt.Fprintf(&sb, "%d,%d", n.ThetaIndex, n.Nome)
	case KindDedekindEta:
		fmt.Fprintf(&sb, "%d", n.Tau)
	case KindBasicHypergeometric:
		writeRefs(&sb, n.Upper)
		sb.WriteByte(';')
		writeRefs(&sb, n.Lower)
		fmt.Fprintf(&sb, ";%d;%d", n.Nome, n.Argument)
	case KindJacobiProduct:
		for _, f := range n.JPFactors {
			fmt.Fprintf(&sb, "(%d,%d,%s)", f.B, f.T, f.Mult.String())
		}
	}
	return sb.String()
}

func writeRefs(sb *strings.Builder, refs []ExprRef) {
	for i, r := range refs {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(sb, "%d", r)
	}
}
