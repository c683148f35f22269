package handicap

import (
	"math"

	"github.com/okian/clicker/internal/domain/rounds"
)

// AGB model constants. The angular deviation of an archer's group grows
// exponentially with handicap; the datum and growth rate follow the
// Archery GB scheme.
const (
	growthRate      = 1.036
	handicapDatum   = 12.9
	angularScaleRad = 5.0e-4
	arrowRadiusCM   = 0.357
	metresToCM      = 100.0
)

// AGB is the production score model: arrow fall is treated as a
// Rayleigh distribution whose spread comes from the handicap, and the
// expected score integrates the zone probabilities of each face.
type AGB struct{}

// NewAGB creates the reference calculator.
func NewAGB() *AGB {
	return &AGB{}
}

// ScoreForHandicap returns the expected score for the round, truncated
// to an integer as scheme tables require.
func (c *AGB) ScoreForHandicap(handicap float64, r rounds.Round) int {
	total := 0.0
	for _, p := range r.Passes {
		total += float64(p.Arrows) * expectedArrowScore(handicap, p)
	}
	if total < 0 {
		return 0
	}
	return int(total)
}

// expectedArrowScore sums the probability of reaching each scoring
// ring on the pass's face.
func expectedArrowScore(handicap float64, p rounds.Pass) float64 {
	sigma := groupSigmaCM(handicap, p.DistanceM)

	zones := 10
	ringStep := p.FaceCM / 20.0
	if p.Scoring == rounds.FiveZone {
		zones = 5
		ringStep = p.FaceCM / 10.0
	}

	expected := 0.0
	for k := 1; k <= zones; k++ {
		radius := float64(k)*ringStep + arrowRadiusCM
		expected += 1.0 - math.Exp(-(radius*radius)/(2*sigma*sigma))
	}
	return expected
}

// groupSigmaCM is the radial spread of the group at the given distance.
func groupSigmaCM(handicap, distanceM float64) float64 {
	angular := math.Pow(growthRate, handicap+handicapDatum) * angularScaleRad
	return distanceM * metresToCM * angular
}
