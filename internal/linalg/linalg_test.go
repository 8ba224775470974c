package linalg

import (
	"testing"

	"qseries/internal/bignum"
)

func TestSolveUniqueSystem(t *testing.T) {
	// x + y = 3, x - y = 1 -> x=2, y=1
	a := NewMatrix(2, 2)
	a.Data[0][0], a.Data[0][1] = bignum.QFromInt64(1), bignum.QFromInt64(1)
	a.Data[1][0], a.Data[1][1] = bignum.QFromInt64(1), bignum.QFromInt64(-1)
	b := []bignum.Q{bignum.QFromInt64(3), bignum.QFromInt64(1)}

	sol := Solve(a, b)
	if !sol.Found {
		t.Fatal("expected a solution")
	}
	if sol.X[0].Cmp(bignum.QFromInt64(2)) != 0 || sol.X[1].Cmp(bignum.QFromInt64(1)) != 0 {
		t.Fatalf("got x=%s y=%s, want x=2 y=1", sol.X[0], sol.X[1])
	}
}

func TestSolveInconsistentSystem(t *testing.T) {
	// x = 1, x = 2: no solution
	a := NewMatrix(2, 1)
	a.Data[0][0] = bignum.QFromInt64(1)
	a.Data[1][0] = bignum.QFromInt64(1)
	b := []bignum.Q{bignum.QFromInt64(1), bignum.QFromInt64(2)}

	sol := Solve(a, b)
	if sol.Found {
		t.Fatal("expected no solution")
	}
}

func TestSolveModP(t *testing.T) {
	// x + y = 3, x - y = 1 mod 7 -> x=2, y=1
	a := NewMatrixModP(2, 2, 7)
	a.Data[0] = []int64{1, 1}
	a.Data[1] = []int64{1, -1}
	sol := SolveModP(a, []int64{3, 1})
	if !sol.Found {
		t.Fatal("expected a solution")
	}
	if mod(sol.X[0], 7) != 2 || mod(sol.X[1], 7) != 1 {
		t.Fatalf("got x=%d y=%d, want x=2 y=1", sol.X[0], sol.X[1])
	}
}
