package linalg

import "qseries/internal/bignum"

// MatrixModP is a dense row-major matrix over Z/p, p prime (validated by
// the caller, per §4.11's "p validated prime at dispatch" contract —
// this package trusts that validation rather than re-deriving it).
type MatrixModP struct {
	Rows, Cols int
	P          int64
	Data       [][]int64
}

// NewMatrixModP builds an r x c zero matrix over Z/p.
func NewMatrixModP(r, c int, p int64) MatrixModP {
	data := make([][]int64, r)
	for i := range data {
		data[i] = make([]int64, c)
	}
	return MatrixModP{Rows: r, Cols: c, P: p, Data: data}
}

func mod(a, p int64) int64 {
	a %= p
	if a < 0 {
		a += p
	}
	return a
}

// inverseModP computes the modular inverse of a mod p via Fermat's little
// theorem (p prime): a^(p-2) mod p.
func inverseModP(a, p int64) int64 {
	a = mod(a, p)
	result := int64(1)
	base := a
	exp := p - 2
	for exp > 0 {
		if exp&1 == 1 {
			result = mod(result*base, p)
		}
		base = mod(base*base, p)
		exp >>= 1
	}
	return result
}

// SolutionModP mirrors Solution but over Z/p.
type SolutionModP struct {
	Found     bool
	X         []int64
	NullSpace [][]int64
}

// SolveModP runs Gauss-Jordan elimination over Z/p on [A|b].
func SolveModP(a MatrixModP, b []int64) SolutionModP {
	p := a.P
	rows, cols := a.Rows, a.Cols
	aug := make([][]int64, rows)
	for i := 0; i < rows; i++ {
		aug[i] = make([]int64, cols+1)
		copy(aug[i], a.Data[i])
		aug[i][cols] = mod(b[i], p)
	}

	var pivotCol []int
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		pivot := -1
		for r := row; r < rows; r++ {
			if mod(aug[r][col], p) != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		aug[row], aug[pivot] = aug[pivot], aug[row]
		inv := inverseModP(aug[row][col], p)
		for c := 0; c <= cols; c++ {
			aug[row][c] = mod(aug[row][c]*inv, p)
		}
		for r := 0; r < rows; r++ {
			if r == row {
				continue
			}
			factor := mod(aug[r][col], p)
			if factor == 0 {
				continue
			}
			for c := 0; c <= cols; c++ {
				aug[r][c] = mod(aug[r][c]-factor*aug[row][c], p)
			}
		}
		pivotCol = append(pivotCol, col)
		row++
	}

	for r := row; r < rows; r++ {
		if mod(aug[r][cols], p) != 0 {
			return SolutionModP{Found: false}
		}
	}

	isPivot := make([]bool, cols)
	pivotRowOf := make([]int, cols)
	for i, c := range pivotCol {
		isPivot[c] = true
		pivotRowOf[c] = i
	}

	x := make([]int64, cols)
	for c := 0; c < cols; c++ {
		if isPivot[c] {
			x[c] = aug[pivotRowOf[c]][cols]
		}
	}

	var nullSpace [][]int64
	for c := 0; c < cols; c++ {
		if isPivot[c] {
			continue
		}
		vec := make([]int64, cols)
		vec[c] = 1
		for i, pc := range pivotCol {
			vec[pc] = mod(-aug[i][c], p)
		}
		nullSpace = append(nullSpace, vec)
	}

	return SolutionModP{Found: true, X: x, NullSpace: nullSpace}
}

// ToQ lifts an int64 coefficient vector modulo p back into Q, the
// "balanced residue" convention (representatives in (-p/2, p/2]) used
// when rational reconstruction from a single prime is enough (small
// coefficients, as findcong's scan expects — §4.11).
func ToQ(v []int64, p int64) []bignum.Q {
	out := make([]bignum.Q, len(v))
	half := p / 2
	for i, c := range v {
		c = mod(c, p)
		if c > half {
			c -= p
		}
		out[i] = bignum.QFromInt64(c)
	}
	return out
}
