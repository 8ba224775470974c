// Package engine ties the whole core together behind one collaborator
// surface: a Session owning exactly one arena and one symbol registry
// (§3 Lifecycle), exposing the operation catalog of §6 as ordinary Go
// methods.
package engine

import "qseries/internal/simplify"

// Config configures a Session. All fields have documented defaults and
// nothing here is ever read from the environment inside the core — a
// host binding maps flags/env to a Config itself (§A.3).
type Config struct {
	// SimplifierCap bounds the simplifier's fixed-point iteration count
	// (§4.6/§4.13). Zero uses DefaultSimplifierCap.
	SimplifierCap int
	// DefaultTruncation is the FPS working truncation new generator
	// calls use when the caller does not specify one explicitly.
	DefaultTruncation int
}

// DefaultSimplifierCap mirrors internal/simplify's own default.
const DefaultSimplifierCap = simplify.DefaultIterationCap

// DefaultTruncation is a reasonable working precision for interactive
// use — generous enough to show several nonzero terms of most
// partition-style series without being wasteful.
const DefaultTruncation = 64

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{SimplifierCap: DefaultSimplifierCap, DefaultTruncation: DefaultTruncation}
}

func (c Config) normalized() Config {
	if c.SimplifierCap <= 0 {
		c.SimplifierCap = DefaultSimplifierCap
	}
	if c.DefaultTruncation <= 0 {
		c.DefaultTruncation = DefaultTruncation
	}
	return c
}
