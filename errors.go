package astarpa

import (
	"errors"
	"fmt"
)

// Sentinel errors: input errors and configuration errors are returned
// to the caller; internal invariant violations are not part of this
// set because they panic via log.Panicf.
var (
	// ErrBadSymbol is returned when a sequence contains a byte outside
	// the fixed DNA alphabet {A, C, G, T} (case-insensitive).
	ErrBadSymbol = errors.New("astarpa: sequence contains a non-ACGT symbol")

	// ErrBadSeedLength is returned when k is outside the valid range
	// 3..=31.
	ErrBadSeedLength = errors.New("astarpa: seed length k must be in 3..=31")

	// ErrBadMatchCost is returned when r is outside {1, 2}.
	ErrBadMatchCost = errors.New("astarpa: match-cost bound r must be 1 or 2")

	// ErrConfig is returned for contradictory configuration combinations,
	// e.g. local doubling with pruning disabled, or heuristic=none with
	// pruning=on.
	ErrConfig = errors.New("astarpa: contradictory configuration")
)

// inputError wraps ErrBadSymbol/ErrBadSeedLength/ErrBadMatchCost with
// positional detail using plain fmt.Errorf wrapping, no error library.
func inputError(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

func configError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// BadSymbolError reports a non-ACGT byte found at pos, for external
// collaborators (like package fasta) that validate input outside this
// package but must surface the same sentinel via errors.Is.
func BadSymbolError(c byte, pos int) error {
	return inputError(ErrBadSymbol, "byte %q at position %d", c, pos)
}
