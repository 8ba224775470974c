package repl

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain registers the qseries command as an in-process subprocess
// (testscript's documented RunMain pattern), so script tests exercise
// the exact stdin/stdout contract cmd/qseries/main.go wires up, without
// needing a prebuilt binary on PATH.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"qseries": runQseries,
	}))
}

func runQseries() int {
	New(os.Stdin, os.Stdout).Run()
	return 0
}

func TestREPLScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
