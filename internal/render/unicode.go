package render

import (
	"fmt"
	"strings"

	"qseries/internal/arena"
	"qseries/internal/symbol"
)

var superDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

var subDigits = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉', '-': '₋',
}

func toSuperscript(s string) (string, bool) {
	var sb strings.Builder
	for _, r := range s {
		sup, ok := superDigits[r]
		if !ok {
			return "", false
		}
		sb.WriteRune(sup)
	}
	return sb.String(), true
}

func toSubscript(s string) (string, bool) {
	var sb strings.Builder
	for _, r := range s {
		sub, ok := subDigits[r]
		if !ok {
			return "", false
		}
		sb.WriteRune(sub)
	}
	return sb.String(), true
}

// ToUnicode renders ref using Greek letters and superscript/subscript
// digits where representable, falling back to ASCII ^/_ otherwise.
func ToUnicode(a *arena.Arena, ref arena.ExprRef) string {
	u := &unicodeRenderer{a: a}
	return u.render(ref, precLowest)
}

type unicodeRenderer struct{ a *arena.Arena }

func (u *unicodeRenderer) render(ref arena.ExprRef, parentPrec int) string {
	n := u.a.Get(ref)
	s, myPrec := u.renderNode(n, ref)
	if myPrec < parentPrec {
		return "(" + s + ")"
	}
	return s
}

func (u *unicodeRenderer) renderNode(n *arena.Node, ref arena.ExprRef) (string, int) {
	switch n.Kind {
	case arena.KindInteger:
		return n.Int.String(), precAtom
	case arena.KindRational:
		return fmt.Sprintf("%s/%s", n.Rat.Num().String(), n.Rat.Denom().String()), precAtom
	case arena.KindSymbol:
		return u.symbolUnicode(n.Sym), precAtom
	case arena.KindInfinity:
		return "∞", precAtom

	case arena.KindNeg:
		return "-" + u.render(n.X, precUnary), precUnary

	case arena.KindAdd:
		var sb strings.Builder
		for i, t := range n.Terms {
			tn := u.a.Get(t)
			if tn.Kind == arena.KindNeg {
				if i > 0 {
					sb.WriteString(" − ")
				} else {
					sb.WriteString("−")
				}
				sb.WriteString(u.render(tn.X, precUnary))
				continue
			}
			if i > 0 {
				sb.WriteString(" + ")
			}
			sb.WriteString(u.render(t, precAdd))
		}
		return sb.String(), precAdd

	case arena.KindMul:
		parts := make([]string, len(n.Factors))
		for i, f := range n.Factors {
			parts[i] = u.render(f, precMul)
		}
		return strings.Join(parts, "·"), precMul

	case arena.KindPow:
		base := u.render(n.Base, precPow+1)
		expNode := u.a.Get(n.Exp)
		if expNode.Kind == arena.KindInteger {
			if sup, ok := toSuperscript(expNode.Int.String()); ok {
				return base + sup, precPow
			}
		}
		return base + "^" + u.render(n.Exp, precLowest), precPow

	case arena.KindQPochhammer:
		base := u.render(n.PochBase, precLowest)
		nome := u.render(n.PochNome, precLowest)
		order := u.renderSubscript(n.PochOrder)
		return fmt.Sprintf("(%s;%s)%s", base, nome, order), precAtom

	case arena.KindJacobiTheta:
		nome := u.render(n.Nome, precLowest)
		sub, ok := toSubscript(fmt.Sprintf("%d", n.ThetaIndex))
		if !ok {
			sub = "_" + fmt.Sprintf("%d", n.ThetaIndex)
		}
		return fmt.Sprintf("θ%s(%s)", sub, nome), precAtom

	case arena.KindDedekindEta:
		return fmt.Sprintf("η(%s)", u.render(n.Tau, precLowest)), precAtom

	case arena.KindBasicHypergeometric:
		upper := u.renderSeq(n.Upper)
		lower := u.renderSeq(n.Lower)
		nome := u.render(n.Nome, precLowest)
		arg := u.render(n.Argument, precLowest)
		rSub, _ := toSubscript(fmt.Sprintf("%d", len(n.Upper)))
		sSub, _ := toSubscript(fmt.Sprintf("%d", len(n.Lower)))
		return fmt.Sprintf("%sφ%s(%s;%s;%s,%s)", rSub, sSub, upper, lower, nome, arg), precAtom

	case arena.KindJacobiProduct:
		var sb strings.Builder
		for i, f := range n.JPFactors {
			if i > 0 {
				sb.WriteString(" ")
			}
			supB, okB := toSuperscript(fmt.Sprintf("%d", f.B))
			if !okB {
				supB = "^" + fmt.Sprintf("%d", f.B)
			}
			supT, okT := toSuperscript(fmt.Sprintf("%d", f.T))
			if !okT {
				supT = "^" + fmt.Sprintf("%d", f.T)
			}
			fmt.Fprintf(&sb, "(1-x%sq%s)^%s", supB, supT, f.Mult.String())
		}
		return sb.String(), precMul

	default:
		return fmt.Sprintf("?kind%d", n.Kind), precAtom
	}
}

func (u *unicodeRenderer) renderSubscript(ref arena.ExprRef) string {
	n := u.a.Get(ref)
	if n.Kind == arena.KindInfinity {
		return "_∞"
	}
	if n.Kind == arena.KindInteger {
		if sub, ok := toSubscript(n.Int.String()); ok {
			return sub
		}
	}
	return "_" + u.render(ref, precLowest)
}

func (u *unicodeRenderer) renderSeq(refs []arena.ExprRef) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = u.render(r, precLowest)
	}
	return strings.Join(parts, ",")
}

func (u *unicodeRenderer) symbolUnicode(id symbol.Id) string {
	name := u.a.Syms.Name(id)
	if gr, ok := greekUnicode[strings.ToLower(name)]; ok {
		return gr
	}
	return name
}
