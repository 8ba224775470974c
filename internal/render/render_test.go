package render

import (
	"strings"
	"testing"

	"qseries/internal/arena"
	"qseries/internal/bignum"
	"qseries/internal/symbol"
)

func TestToLaTeXGreekSymbolAndPow(t *testing.T) {
	syms := symbol.NewRegistry()
	a := arena.New(syms)
	alpha := a.MakeSymbol(syms.Intern("alpha"))
	two := a.MakeInteger(bignum.ZFromInt64(2))
	pow, err := a.MakePow(alpha, two)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ToLaTeX(a, pow)
	if !strings.Contains(got, "\\alpha") {
		t.Fatalf("ToLaTeX(alpha^2) = %q, want it to contain \\alpha", got)
	}
	if !strings.Contains(got, "^{2}") {
		t.Fatalf("ToLaTeX(alpha^2) = %q, want an exponent block", got)
	}
}

func TestToUnicodeSuperscriptAndGreek(t *testing.T) {
	syms := symbol.NewRegistry()
	a := arena.New(syms)
	theta := a.MakeSymbol(syms.Intern("theta"))
	three := a.MakeInteger(bignum.ZFromInt64(3))
	pow, err := a.MakePow(theta, three)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ToUnicode(a, pow)
	if got != "θ³" {
		t.Fatalf("ToUnicode(theta^3) = %q, want \"θ³\"", got)
	}
}

func TestToUnicodeAddRendersNegativeTermsWithMinus(t *testing.T) {
	syms := symbol.NewRegistry()
	a := arena.New(syms)
	x := a.MakeSymbol(syms.Intern("x"))
	negX := a.MakeNeg(x)
	one := a.MakeInteger(bignum.ZOne())
	sum := a.MakeAdd([]arena.ExprRef{one, negX})

	got := ToUnicode(a, sum)
	if !strings.Contains(got, "−") {
		t.Fatalf("ToUnicode(1-x) = %q, want a unicode minus sign", got)
	}
}

func TestToDebugSexprReflectsStructure(t *testing.T) {
	syms := symbol.NewRegistry()
	a := arena.New(syms)
	x := a.MakeSymbol(syms.Intern("x"))
	y := a.MakeSymbol(syms.Intern("y"))
	sum := a.MakeAdd([]arena.ExprRef{x, y})

	got := ToDebugSexpr(a, sum)
	if got != "(add x y)" && got != "(add y x)" {
		t.Fatalf("ToDebugSexpr(x+y) = %q, want an (add ...) s-expression", got)
	}
}

func TestRenderersAreDeterministicAcrossCalls(t *testing.T) {
	syms := symbol.NewRegistry()
	a := arena.New(syms)
	x := a.MakeSymbol(syms.Intern("x"))
	first := ToLaTeX(a, x)
	second := ToLaTeX(a, x)
	if first != second {
		t.Fatalf("ToLaTeX is not deterministic: %q vs %q", first, second)
	}
}
