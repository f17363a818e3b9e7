// Package primality classifies non-negative integers as prime or composite
// with a probabilistic test.
package primality

import (
	"math/big"
)

// DefaultRounds is the number of Miller-Rabin rounds used when the caller
// does not ask for a specific count.
const DefaultRounds = 25

// Verdict is the outcome of a primality test.
type Verdict int

const (
	// Composite means n is certainly not prime.
	Composite Verdict = iota
	// ProbablyPrime means n passed every round; the error bound is 4^-rounds.
	ProbablyPrime
	// Prime means n passed and is small enough for the test to be exact.
	Prime
)

// String returns the verdict name used in logs.
func (v Verdict) String() string {
	switch v {
	case Composite:
		return "composite"
	case ProbablyPrime:
		return "probably-prime"
	case Prime:
		return "prime"
	default:
		return "unknown"
	}
}

// IsPrime collapses the verdict to a boolean.
func (v Verdict) IsPrime() bool {
	return v == ProbablyPrime || v == Prime
}

// Test runs the probabilistic test on n.
//
// Values below 2 (and nil) are Composite without running a test. A rounds
// count below 1 falls back to DefaultRounds. big.Int.ProbablyPrime does trial
// division by small primes, the requested Miller-Rabin rounds and a
// Baillie-PSW test, and is exact for n < 2^64.
func Test(n *big.Int, rounds int) Verdict {
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return Composite
	}
	if rounds < 1 {
		rounds = DefaultRounds
	}
	if !n.ProbablyPrime(rounds) {
		return Composite
	}
	if n.IsUint64() {
		return Prime
	}
	return ProbablyPrime
}

// IsProbablyPrime reports whether n is prime or probably prime.
func IsProbablyPrime(n *big.Int, rounds int) bool {
	return Test(n, rounds).IsPrime()
}
