package analysis

import "qseries/internal/fps"

// QDegree returns the highest exponent with a nonzero coefficient.
// ok=false if f has no nonzero coefficient below its truncation (the
// zero series up to the known precision).
func QDegree(f fps.Series) (int, bool) {
	best := -1
	found := false
	for k, c := range f.Coeffs {
		if c.IsZero() {
			continue
		}
		if !found || k > best {
			best = k
			found = true
		}
	}
	return best, found
}

// LQDegree returns the lowest exponent with a nonzero coefficient.
func LQDegree(f fps.Series) (int, bool) {
	best := 0
	found := false
	for k, c := range f.Coeffs {
		if c.IsZero() {
			continue
		}
		if !found || k < best {
			best = k
			found = true
		}
	}
	return best, found
}

// LQDegree0 is LQDegree's zero-series-tolerant variant: it returns 0
// instead of failing when f has no nonzero coefficient, matching the
// classical qseries.mpl convention that a structurally-zero series has
// degree 0 rather than being undefined.
func LQDegree0(f fps.Series) int {
	d, ok := LQDegree(f)
	if !ok {
		return 0
	}
	return d
}
