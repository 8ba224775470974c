// Package simplify implements the phased bottom-up rewriter of §4.6: a
// fixed-priority pipeline of rule phases (normalize, cancel, collect,
// simplify-arith) applied to a fixed point or an iteration cap, whichever
// comes first.
package simplify

import (
	"fmt"

	"qseries/internal/arena"
	"qseries/internal/bignum"
)

// State is the simplifier's externally observable state machine (§4.13).
type State int

const (
	Running State = iota
	Converged
	CapReached
)

// DefaultIterationCap bounds the number of full phase-1..P sweeps, per
// §4.6's termination obligation.
const DefaultIterationCap = 100

// Result carries the simplified ref plus the terminal state and, when the
// cap was hit, a warning string — the cap-reached path "emits a warning
// but returns the best partial result" per §4.6/§7.
type Result struct {
	Ref     arena.ExprRef
	State   State
	Warning string
}

// phase is one rewrite stage; it is applied bottom-up with per-pass
// memoization so a DAG node shared by multiple parents is rewritten once.
type phase func(a *arena.Arena, cache map[arena.ExprRef]arena.ExprRef, ref arena.ExprRef) arena.ExprRef

var phases = []phase{normalizePhase, cancelPhase, collectPhase, simplifyArithPhase}

// Simplify runs the fixed-priority phase pipeline to a fixed point (ref
// equality, §4.6's O(1) fixed-point check) or DefaultIterationCap sweeps.
func Simplify(a *arena.Arena, root arena.ExprRef) Result {
	return SimplifyWithCap(a, root, DefaultIterationCap)
}

// SimplifyWithCap is Simplify with an explicit iteration cap (exposed for
// tests that want to exercise the CapReached path cheaply).
func SimplifyWithCap(a *arena.Arena, root arena.ExprRef, cap int) Result {
	cur := root
	for iter := 0; iter < cap; iter++ {
		changedThisSweep := false
		for _, p := range phases {
			cache := map[arena.ExprRef]arena.ExprRef{}
			next := p(a, cache, cur)
			if next != cur {
				cur = next
				changedThisSweep = true
				break // restart from phase 1 on the new root, per §4.6's control contract
			}
		}
		if !changedThisSweep {
			return Result{Ref: cur, State: Converged}
		}
	}
	return Result{
		Ref:     cur,
		State:   CapReached,
		Warning: fmt.Sprintf("simplify: iteration cap (%d) reached before convergence; returning best partial result", cap),
	}
}

// rebuildChildren applies phase p bottom-up to every child ref and returns
// the possibly-new list, memoizing within this pass's cache.
func rebuildChildren(a *arena.Arena, cache map[arena.ExprRef]arena.ExprRef, p phase, refs []arena.ExprRef) []arena.ExprRef {
	out := make([]arena.ExprRef, len(refs))
	for i, r := range refs {
		out[i] = applyPhase(a, cache, p, r)
	}
	return out
}

func applyPhase(a *arena.Arena, cache map[arena.ExprRef]arena.ExprRef, p phase, ref arena.ExprRef) arena.ExprRef {
	if v, ok := cache[ref]; ok {
		return v
	}
	v := p(a, cache, ref)
	cache[ref] = v
	return v
}

// weight is the termination monovariant of §4.6: each rewrite rule's RHS
// must have strictly lower weight than its LHS. Pow is weighted 2 plus
// its subterms so (x^a)^b -> x^(a*b) strictly decreases weight.
func weight(a *arena.Arena, ref arena.ExprRef) int {
	n := a.Get(ref)
	switch n.Kind {
	case arena.KindInteger, arena.KindRational, arena.KindSymbol, arena.KindInfinity:
		return 1
	case arena.KindNeg:
		return 1 + weight(a, n.X)
	case arena.KindAdd:
		w := 1
		for _, t := range n.Terms {
			w += weight(a, t)
		}
		return w
	case arena.KindMul:
		w := 1
		for _, f := range n.Factors {
			w += weight(a, f)
		}
		return w
	case arena.KindPow:
		return 2 + weight(a, n.Base) + weight(a, n.Exp)
	default:
		return 4
	}
}

func asIntExp(a *arena.Arena, ref arena.ExprRef) (bignum.Z, bool) {
	n := a.Get(ref)
	if n.Kind == arena.KindInteger {
		return n.Int, true
	}
	return bignum.Z{}, false
}
