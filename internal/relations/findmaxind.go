package relations

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/linalg"
)

// FindMaxInd returns a maximal linearly-independent subset of l
// (1-based indices, §4.11), found greedily: scan left to right, keep an
// index whenever adding its coefficient column strictly increases the
// running matrix rank.
func FindMaxInd(l []fps.Series, T int) []int {
	if len(l) == 0 {
		return nil
	}
	var kept []int
	m := linalg.NewMatrix(T, 0)
	for idx, s := range l {
		candidateCols := m.Cols + 1
		candidate := linalg.NewMatrix(T, candidateCols)
		for j := 0; j < m.Cols; j++ {
			for i := 0; i < T; i++ {
				candidate.Data[i][j] = m.Data[i][j]
			}
		}
		for i := 0; i < T; i++ {
			c, err := s.Coeff(i)
			if err != nil {
				c = bignum.QZero()
			}
			candidate.Data[i][m.Cols] = c
		}
		if linalg.Rank(candidate) > linalg.Rank(m) {
			m = candidate
			kept = append(kept, idx+1)
		}
	}
	return kept
}
