package engine

import (
	"strings"
	"testing"

	"qseries/internal/arena"
	"qseries/internal/bignum"
	"qseries/internal/generators"
	"qseries/internal/relations"
	"qseries/internal/simplify"
)

func TestNewSessionHasDistinctIdentityAndDefaults(t *testing.T) {
	s1 := NewSession(DefaultConfig())
	s2 := NewSession(DefaultConfig())
	if s1.ID == s2.ID {
		t.Fatal("expected distinct session identities")
	}
	if s1.Truncation() != DefaultTruncation {
		t.Fatalf("truncation = %d, want %d", s1.Truncation(), DefaultTruncation)
	}
}

func TestSessionArithmeticAndSimplify(t *testing.T) {
	s := NewSession(Config{})
	x := s.InternSymbol("x")
	xr := s.MakeSymbol(x)

	added := s.MakeAdd([]arena.ExprRef{xr, xr})
	res := s.Simplify(added)
	if res.State != simplify.Converged {
		t.Fatalf("expected simplification to converge, got state %v", res.State)
	}

	latex := s.ToLaTeX(res.Ref)
	if !strings.Contains(latex, "x") {
		t.Fatalf("expected latex rendering to mention x, got %q", latex)
	}
}

func TestSessionMakePowZeroToZeroIsOne(t *testing.T) {
	s := NewSession(DefaultConfig())
	zero := s.MakeInteger(bignum.ZFromInt64(0))
	pow, err := s.MakePow(zero, zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Display(pow) != "1" {
		t.Fatalf("0^0 = %q, want 1", s.Display(pow))
	}
}

// TestSessionFindCongSurfacesRamanujanCongruence exercises
// Session.FindCong end-to-end (spec.md §8 scenario S5): p(5n+4) is
// divisible by 5 for every n, so sifting the partition GF's residue
// class 4 mod 5 out of the engine's own catalog entry must surface it.
func TestSessionFindCongSurfacesRamanujanCongruence(t *testing.T) {
	s := NewSession(DefaultConfig())
	q := s.InternSymbol("q")
	T := 201
	pf, ok := generators.PartitionGF(q, T)
	if !ok {
		t.Fatal("expected partition generating function to invert")
	}

	congs := s.FindCong(pf, T-1, 0, map[int]bool{})

	want := relations.Congruence{B: 5, A: 5, R: 4}
	found := false
	for _, c := range congs {
		if c == want {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected %+v among congruences, got %v", want, congs)
	}
}

func TestFormatCountGroupsThousands(t *testing.T) {
	got := FormatCount(bignum.ZFromInt64(1234567))
	if got != "1,234,567" {
		t.Fatalf("FormatCount = %q, want 1,234,567", got)
	}
}
