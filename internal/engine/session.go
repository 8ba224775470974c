package engine

import (
	"github.com/google/uuid"

	"qseries/internal/arena"
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/generators"
	"qseries/internal/render"
	"qseries/internal/simplify"
	"qseries/internal/symbol"
)

// Session owns exactly one arena and one symbol registry (§3 Lifecycle):
// expressions interned through it never outlive it, and it is the unit
// of configuration (§A.3). Sessions are not safe for concurrent use —
// per §5, hosts that want parallelism run multiple independent Sessions.
type Session struct {
	ID    uuid.UUID
	cfg   Config
	Arena *arena.Arena
	Syms  *symbol.Registry
}

// NewSession builds a fresh session with its own arena and symbol
// registry, per the documented Config (zero value uses DefaultConfig).
func NewSession(cfg Config) *Session {
	syms := symbol.NewRegistry()
	return &Session{
		ID:    uuid.New(),
		cfg:   cfg.normalized(),
		Arena: arena.New(syms),
		Syms:  syms,
	}
}

// InternSymbol interns name and returns its SymbolId (§6 catalog:
// intern_symbol).
func (s *Session) InternSymbol(name string) symbol.Id { return s.Syms.Intern(name) }

// MakeInteger/MakeRational/MakeSymbol/MakeNeg/MakeAdd/MakeMul/MakePow
// mirror the arena's make_* operation catalog (§6) at the session level,
// so a collaborator never needs to reach into s.Arena directly.
func (s *Session) MakeInteger(v bignum.Z) arena.ExprRef     { return s.Arena.MakeInteger(v) }
func (s *Session) MakeRational(v bignum.Q) arena.ExprRef    { return s.Arena.MakeRational(v) }
func (s *Session) MakeSymbol(id symbol.Id) arena.ExprRef    { return s.Arena.MakeSymbol(id) }
func (s *Session) MakeNeg(e arena.ExprRef) arena.ExprRef    { return s.Arena.MakeNeg(e) }
func (s *Session) MakeAdd(es []arena.ExprRef) arena.ExprRef { return s.Arena.MakeAdd(es) }
func (s *Session) MakeMul(es []arena.ExprRef) arena.ExprRef { return s.Arena.MakeMul(es) }
func (s *Session) MakePow(base, exp arena.ExprRef) (arena.ExprRef, error) {
	return s.Arena.MakePow(base, exp)
}

// ToLaTeX / Display render ref via the pure renderers (§6: to_latex,
// display).
func (s *Session) ToLaTeX(ref arena.ExprRef) string    { return render.ToLaTeX(s.Arena, ref) }
func (s *Session) Display(ref arena.ExprRef) string    { return render.ToUnicode(s.Arena, ref) }
func (s *Session) DebugSexpr(ref arena.ExprRef) string { return render.ToDebugSexpr(s.Arena, ref) }

// Simplify runs the phased simplifier to a fixed point (or the
// session's configured iteration cap), per §4.6/§6.
func (s *Session) Simplify(ref arena.ExprRef) simplify.Result {
	return simplify.SimplifyWithCap(s.Arena, ref, s.cfg.SimplifierCap)
}

// AQProd is the session-level q-Pochhammer catalog entry (§6: aqprod).
func (s *Session) AQProd(v symbol.Id, a bignum.Q, step, order, T int) (fps.Series, error) {
	return generators.AQProd(v, a, step, order, T)
}

// Truncation returns the session's configured default FPS truncation,
// for collaborators that want to honor it without duplicating Config.
func (s *Session) Truncation() int { return s.cfg.DefaultTruncation }
