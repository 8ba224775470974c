// Package repl is a minimal line-oriented demonstration collaborator
// over internal/engine.Session (§6). It is not a language implementation
// — no grammar, no parser, no scripting variables (spec.md §1's
// Non-goals exclude a Maple-style REPL language) — just enough command
// dispatch to prove the operation-catalog contract interactively.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"qseries/internal/arena"
	"qseries/internal/bignum"
	"qseries/internal/engine"
)

// REPL holds one Session plus the I/O streams it reads commands from
// and writes results to, so tests can drive it against an in-memory
// io.Reader/io.Writer pair instead of os.Stdin/os.Stdout.
type REPL struct {
	session *engine.Session
	in      *bufio.Scanner
	out     io.Writer
}

// New builds a REPL around a fresh Session (§3: one Session per REPL
// instance, never shared across them).
func New(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		session: engine.NewSession(engine.DefaultConfig()),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run reads commands line by line until EOF or "exit", writing one
// result line (or one error line, prefixed "error:") per command.
func (r *REPL) Run() {
	fmt.Fprintf(r.out, "qseries REPL [%s] | type 'exit' to quit\n", r.session.ID)
	for {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			return
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		out, err := r.dispatch(line)
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(r.out, out)
	}
}

// dispatch handles one command line. The command set is deliberately
// small (§C): enough to reach the arena build, simplify, render, a
// q-series generator and big-integer formatting without
// growing into a parser for a real expression grammar.
func (r *REPL) dispatch(line string) (string, error) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "session":
		return r.session.ID.String(), nil

	case "symbol":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: symbol <name>")
		}
		id := r.session.InternSymbol(args[0])
		return fmt.Sprintf("%s -> %d", args[0], id), nil

	case "add":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: add <symbol> <symbol>")
		}
		a := r.session.MakeSymbol(r.session.InternSymbol(args[0]))
		b := r.session.MakeSymbol(r.session.InternSymbol(args[1]))
		sum := r.session.MakeAdd([]arena.ExprRef{a, b})
		res := r.session.Simplify(sum)
		return r.session.Display(res.Ref), nil

	case "aqprod":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: aqprod <a-numerator/denominator> <step> <order> <truncation>")
		}
		a, err := parseRational(args[0])
		if err != nil {
			return "", err
		}
		step, err := strconv.Atoi(args[1])
		if err != nil {
			return "", err
		}
		order, err := strconv.Atoi(args[2])
		if err != nil {
			return "", err
		}
		T, err := strconv.Atoi(args[3])
		if err != nil {
			return "", err
		}
		v := r.session.InternSymbol("q")
		series, err := r.session.AQProd(v, a, step, order, T)
		if err != nil {
			return "", err
		}
		return r.session.DumpSeries(series), nil

	case "count":
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return "", err
		}
		return engine.FormatCount(bignum.ZFromInt64(n)), nil

	default:
		return "", fmt.Errorf("unknown command %q", cmd)
	}
}

func parseRational(s string) (bignum.Q, error) {
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return bignum.Q{}, err
	}
	if len(parts) == 1 {
		return bignum.QFromInt64(num), nil
	}
	den, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return bignum.Q{}, err
	}
	q, ok := bignum.QFromInt64(num).Div(bignum.QFromInt64(den))
	if !ok {
		return bignum.Q{}, fmt.Errorf("division by zero")
	}
	return q, nil
}
