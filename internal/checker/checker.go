// Package checker runs the decode-then-test pipeline over one input text.
package checker

import (
	"fmt"
	"io"
	"math/big"

	"go.uber.org/zap"

	"hexprime/internal/hexle"
	"hexprime/internal/logging"
	"hexprime/internal/primality"
)

// Result is the outcome of checking one input.
type Result struct {
	Value   *big.Int
	Verdict primality.Verdict
	Rounds  int
}

// Prime reports the collapsed verdict.
func (r Result) Prime() bool {
	return r.Verdict.IsPrime()
}

// Symbol returns "1" for prime and "0" otherwise.
func (r Result) Symbol() string {
	if r.Prime() {
		return "1"
	}
	return "0"
}

// Checker decodes hex text and tests the value for primality.
type Checker struct {
	rounds int
	log    *zap.Logger
}

// New returns a Checker running the given number of rounds.
// rounds below 1 use primality.DefaultRounds; a nil logger discards output.
func New(rounds int, logger *zap.Logger) *Checker {
	if rounds < 1 {
		rounds = primality.DefaultRounds
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{rounds: rounds, log: logger}
}

// Rounds returns the configured round count.
func (c *Checker) Rounds() int {
	return c.rounds
}

// Check decodes text and tests the result. It never fails.
func (c *Checker) Check(text string) Result {
	n := hexle.Decode(text)
	logging.For(c.log, logging.CategoryDecode).Debug("decoded input",
		zap.Int("input_len", len(text)),
		zap.Int("bit_len", n.BitLen()),
	)

	v := primality.Test(n, c.rounds)
	logging.For(c.log, logging.CategoryPrimality).Debug("tested value",
		zap.Int("rounds", c.rounds),
		zap.Stringer("verdict", v),
	)

	return Result{Value: n, Verdict: v, Rounds: c.rounds}
}

// Run reads all of r as text and checks it.
func (c *Checker) Run(r io.Reader) (Result, error) {
	text, err := ReadText(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read input: %w", err)
	}
	return c.Check(text), nil
}
