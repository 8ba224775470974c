// Command qseries starts the interactive q-series REPL (§6/§C): a
// minimal line-oriented demonstration collaborator over
// internal/engine.Session, not a language implementation.
package main

import (
	"os"

	"qseries/internal/repl"
)

func main() {
	repl.New(os.Stdin, os.Stdout).Run()
}
