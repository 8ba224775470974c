// Package render implements the engine's two pure display renderers
// (§4.4): LaTeX and Unicode. Both are total post-order walks over an
// Arena — neither ever returns an error, and both must render any given
// ExprRef identically on every call (§8 property 9).
package render

import (
	"fmt"
	"strings"

	"qseries/internal/arena"
	"qseries/internal/symbol"
)

// greekNames is the small set of symbol spellings the renderers treat as
// Greek letters, per §4.4's "detects Greek symbol names" requirement.
var greekNames = map[string]string{
	"alpha": "\\alpha", "beta": "\\beta", "gamma": "\\gamma", "delta": "\\delta",
	"epsilon": "\\epsilon", "zeta": "\\zeta", "eta": "\\eta", "theta": "\\theta",
	"iota": "\\iota", "kappa": "\\kappa", "lambda": "\\lambda", "mu": "\\mu",
	"nu": "\\nu", "xi": "\\xi", "pi": "\\pi", "rho": "\\rho", "sigma": "\\sigma",
	"tau": "\\tau", "phi": "\\phi", "chi": "\\chi", "psi": "\\psi", "omega": "\\omega",
}

var greekUnicode = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ε",
	"zeta": "ζ", "eta": "η", "theta": "θ", "iota": "ι", "kappa": "κ",
	"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ", "pi": "π", "rho": "ρ",
	"sigma": "σ", "tau": "τ", "phi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
}

// ToLaTeX renders ref per DLMF 17.2's q-notation conventions, always
// bracing sub/superscripts.
func ToLaTeX(a *arena.Arena, ref arena.ExprRef) string {
	l := &latexRenderer{a: a}
	return l.render(ref, precLowest)
}

type latexRenderer struct{ a *arena.Arena }

// Precedence levels used to decide when a child needs parenthesization.
const (
	precLowest = iota
	precAdd
	precMul
	precUnary
	precPow
	precAtom
)

func (l *latexRenderer) render(ref arena.ExprRef, parentPrec int) string {
	n := l.a.Get(ref)
	s, myPrec := l.renderNode(n, ref)
	if myPrec < parentPrec {
		return "\\left(" + s + "\\right)"
	}
	return s
}

func (l *latexRenderer) renderNode(n *arena.Node, ref arena.ExprRef) (string, int) {
	switch n.Kind {
	case arena.KindInteger:
		return n.Int.String(), precAtom
	case arena.KindRational:
		return fmt.Sprintf("\\frac{%s}{%s}", n.Rat.Num().String(), n.Rat.Denom().String()), precAtom
	case arena.KindSymbol:
		return l.symbolLatex(n.Sym), precAtom
	case arena.KindInfinity:
		return "\\infty", precAtom

	case arena.KindNeg:
		return "-" + l.render(n.X, precUnary), precUnary

	case arena.KindAdd:
		parts := make([]string, len(n.Terms))
		for i, t := range n.Terms {
			tn := l.a.Get(t)
			if tn.Kind == arena.KindNeg {
				if i == 0 {
					parts[i] = "-" + l.render(tn.X, precUnary)
				} else {
					parts[i] = "- " + l.render(tn.X, precUnary)
				}
				continue
			}
			if i == 0 {
				parts[i] = l.render(t, precAdd)
			} else {
				parts[i] = "+ " + l.render(t, precAdd)
			}
		}
		return strings.Join(parts, " "), precAdd

	case arena.KindMul:
		parts := make([]string, len(n.Factors))
		for i, f := range n.Factors {
			parts[i] = l.render(f, precMul)
		}
		return strings.Join(parts, " "), precMul

	case arena.KindPow:
		base := l.render(n.Base, precPow+1)
		exp := l.render(n.Exp, precLowest)
		return fmt.Sprintf("{%s}^{%s}", base, exp), precPow

	case arena.KindQPochhammer:
		base := l.render(n.PochBase, precLowest)
		nome := l.render(n.PochNome, precLowest)
		order := l.render(n.PochOrder, precLowest)
		return fmt.Sprintf("\\left(%s;%s\\right)_{%s}", base, nome, order), precAtom

	case arena.KindJacobiTheta:
		nome := l.render(n.Nome, precLowest)
		return fmt.Sprintf("\\theta_{%d}\\left(%s\\right)", n.ThetaIndex, nome), precAtom

	case arena.KindDedekindEta:
		tau := l.render(n.Tau, precLowest)
		return fmt.Sprintf("\\eta\\left(%s\\right)", tau), precAtom

	case arena.KindBasicHypergeometric:
		upper := l.renderSeq(n.Upper)
		lower := l.renderSeq(n.Lower)
		nome := l.render(n.Nome, precLowest)
		arg := l.render(n.Argument, precLowest)
		return fmt.Sprintf("{}_{%d}\\phi_{%d}\\!\\left(\\begin{matrix}%s\\\\%s\\end{matrix};%s,%s\\right)",
			len(n.Upper), len(n.Lower), upper, lower, nome, arg), precAtom

	case arena.KindJacobiProduct:
		var sb strings.Builder
		for i, f := range n.JPFactors {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "\\left(1-x^{%d}q^{%d}\\right)^{%s}", f.B, f.T, f.Mult.String())
		}
		return sb.String(), precMul

	default:
		return fmt.Sprintf("\\text{?kind%d}", n.Kind), precAtom
	}
}

func (l *latexRenderer) renderSeq(refs []arena.ExprRef) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = l.render(r, precLowest)
	}
	return strings.Join(parts, ",")
}

func (l *latexRenderer) symbolLatex(id symbol.Id) string {
	name := l.a.Syms.Name(id)
	if tex, ok := greekNames[strings.ToLower(name)]; ok {
		return tex
	}
	return name
}
