package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"

	"qseries/internal/arena"
	"qseries/internal/bignum"
	"qseries/internal/fps"
)

// Dump renders a verbose, structured diagnostic of ref's node plus its
// immediate children — for interactive debugging and bug reports, never
// for user-facing display (that's ToLaTeX/Display). Uses kr/pretty so
// the dump reflects real Go struct shape rather than a hand-rolled
// format that can drift from the arena's actual fields (§A.2).
func (s *Session) Dump(ref arena.ExprRef) string {
	n := s.Arena.Get(ref)
	return fmt.Sprintf("ref=%d %s", ref, pretty.Sprint(n))
}

// DumpSeries pretty-prints a series' coefficient map for debugging,
// alongside its human-scale count of nonzero terms.
func (s *Session) DumpSeries(f fps.Series) string {
	return fmt.Sprintf("T=%d terms=%s %s", f.T, humanize.Comma(int64(len(f.Coeffs))), pretty.Sprint(f.Coeffs))
}

// FormatCount renders a big integer (a partition count, a coefficient
// magnitude) with thousands separators, for the REPL's `count` output
// (§A.2: large integers the REPL prints are
// thousands-grouped for readability, never the raw digit string).
func FormatCount(v bignum.Z) string { return humanize.BigComma(v.BigInt()) }
