// Package linalg provides the exact linear-algebra kernels the findX
// relation-discovery family (§4.11) is built on: Gaussian elimination over
// Q, and the same algorithm over Z/p for the *modp variants.
package linalg

import "qseries/internal/bignum"

// Matrix is a dense row-major matrix over Q.
type Matrix struct {
	Rows, Cols int
	Data       [][]bignum.Q
}

// NewMatrix builds an r x c zero matrix.
func NewMatrix(r, c int) Matrix {
	data := make([][]bignum.Q, r)
	for i := range data {
		row := make([]bignum.Q, c)
		for j := range row {
			row[j] = bignum.QZero()
		}
		data[i] = row
	}
	return Matrix{Rows: r, Cols: c, Data: data}
}

// Solution describes the outcome of solving A x = b (or a homogeneous
// system) — not an error type: an inconsistent or underdetermined system
// is an expected, structured outcome per §4.11/§7, never a raised error.
type Solution struct {
	Found bool
	X     []bignum.Q // one particular solution, when Found
	// NullSpace holds a basis for the solution space's homogeneous part —
	// nonempty exactly when the system is consistent but underdetermined.
	NullSpace [][]bignum.Q
}

// Solve runs exact Gauss-Jordan elimination on the augmented system
// [A|b], returning a particular solution plus a null-space basis so
// callers (findlincombo, findhom, ...) can report either "no combination
// found" or the full solution family.
func Solve(a Matrix, b []bignum.Q) Solution {
	rows, cols := a.Rows, a.Cols
	aug := NewMatrix(rows, cols+1)
	for i := 0; i < rows; i++ {
		copy(aug.Data[i], a.Data[i])
		aug.Data[i][cols] = b[i]
	}

	pivotCol := make([]int, 0, cols)
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		pivot := -1
		for r := row; r < rows; r++ {
			if !aug.Data[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		aug.Data[row], aug.Data[pivot] = aug.Data[pivot], aug.Data[row]
		inv, _ := aug.Data[row][col].Inv()
		for c := 0; c <= cols; c++ {
			aug.Data[row][c] = aug.Data[row][c].Mul(inv)
		}
		for r := 0; r < rows; r++ {
			if r == row {
				continue
			}
			factor := aug.Data[r][col]
			if factor.IsZero() {
				continue
			}
			for c := 0; c <= cols; c++ {
				aug.Data[r][c] = aug.Data[r][c].Sub(factor.Mul(aug.Data[row][c]))
			}
		}
		pivotCol = append(pivotCol, col)
		row++
	}

	// Consistency check: any all-zero-coefficient row with a nonzero
	// augmented entry means no solution exists.
	for r := row; r < rows; r++ {
		if !aug.Data[r][cols].IsZero() {
			return Solution{Found: false}
		}
	}

	isPivot := make([]bool, cols)
	pivotRowOf := make([]int, cols)
	for i, c := range pivotCol {
		isPivot[c] = true
		pivotRowOf[c] = i
	}

	x := make([]bignum.Q, cols)
	for c := 0; c < cols; c++ {
		if isPivot[c] {
			x[c] = aug.Data[pivotRowOf[c]][cols]
		} else {
			x[c] = bignum.QZero()
		}
	}

	var nullSpace [][]bignum.Q
	for c := 0; c < cols; c++ {
		if isPivot[c] {
			continue
		}
		vec := make([]bignum.Q, cols)
		vec[c] = bignum.QOne()
		for i, pc := range pivotCol {
			vec[pc] = aug.Data[i][c].Neg()
		}
		nullSpace = append(nullSpace, vec)
	}

	return Solution{Found: true, X: x, NullSpace: nullSpace}
}

// Rank returns the row rank of a, via the same elimination used by Solve.
func Rank(a Matrix) int {
	rows, cols := a.Rows, a.Cols
	m := NewMatrix(rows, cols)
	for i := range a.Data {
		copy(m.Data[i], a.Data[i])
	}
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		pivot := -1
		for r := row; r < rows; r++ {
			if !m.Data[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		m.Data[row], m.Data[pivot] = m.Data[pivot], m.Data[row]
		inv, _ := m.Data[row][col].Inv()
		for c := col; c < cols; c++ {
			m.Data[row][c] = m.Data[row][c].Mul(inv)
		}
		for r := 0; r < rows; r++ {
			if r == row {
				continue
			}
			factor := m.Data[r][col]
			if factor.IsZero() {
				continue
			}
			for c := col; c < cols; c++ {
				m.Data[r][c] = m.Data[r][c].Sub(factor.Mul(m.Data[row][c]))
			}
		}
		row++
	}
	return row
}
