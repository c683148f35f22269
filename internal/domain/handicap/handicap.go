// Package handicap defines the contract for turning a handicap rating
// into an expected round score, plus the AGB reference model.
//
// The classification engine depends only on the Calculator interface,
// so the numeric model can be swapped for a deterministic stub in
// tests.
package handicap

import (
	"github.com/okian/clicker/internal/domain/rounds"
)

// Calculator computes the score a handicap rating is expected to shoot
// on a round. Implementations must return a non-negative integer that
// is monotone non-increasing in the handicap: a lower handicap never
// yields a lower score.
type Calculator interface {
	ScoreForHandicap(handicap float64, r rounds.Round) int
}

// Func adapts a plain function to the Calculator interface.
type Func func(handicap float64, r rounds.Round) int

// ScoreForHandicap implements Calculator.
func (f Func) ScoreForHandicap(handicap float64, r rounds.Round) int {
	return f(handicap, r)
}
