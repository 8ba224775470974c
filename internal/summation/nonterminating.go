package summation

// TerminatingInstance is one specialization of a nonterminating identity
// template, already reduced to a concrete, terminating q_zeilberger
// problem (§4.12's "the engine builds the terminating closures" —
// built by the caller's template function, since only the caller knows
// how its specialization parameter narrows the identity).
type TerminatingInstance struct {
	Label  string
	Term   Term
	N      int
	Offset int
	OrdMax int
	Samples int
}

// NonterminatingProofResult collects one QZeilberger outcome per
// specialization, following the Chen-Hou-Mu approach named in §4.12: a
// nonterminating identity is proved by exhibiting a terminating proof
// for each member of a specialization family; the union of those proofs
// stands in for a single nonterminating proof.
type NonterminatingProofResult struct {
	AllProved bool
	PerCase   map[string]ZeilbergerResult
}

// ProveNonterminating runs QZeilberger over every terminating instance
// the template produces for the given specializations and reports
// whether every case was proved. template is declarative (a pure
// function from a specialization value to a terminating problem
// instance) so no host-language closure ever crosses the engine
// boundary — consistent with §9's "Closures across FFI" design note.
func ProveNonterminating(template func(spec int) TerminatingInstance, specializations []int) NonterminatingProofResult {
	result := NonterminatingProofResult{AllProved: true, PerCase: map[string]ZeilbergerResult{}}
	for _, spec := range specializations {
		inst := template(spec)
		zr := QZeilberger(inst.Term, inst.N, inst.Offset, inst.OrdMax, inst.Samples)
		result.PerCase[inst.Label] = zr
		if !zr.Found {
			result.AllProved = false
		}
	}
	return result
}
