package classification_test

import (
	"math"

	"github.com/okian/clicker/internal/domain/rounds"
)

// stubCalculator is a deterministic replacement for the numeric
// handicap model: a table of known (round, handicap) -> score points.
// Handicaps are keyed in tenths to sidestep float representation.
type stubCalculator struct {
	scores map[string]map[int]int
}

func newStubCalculator() *stubCalculator {
	return &stubCalculator{scores: make(map[string]map[int]int)}
}

// add registers the eight tier scores of one ladder on one round,
// starting at the given tenth-handicap and stepping by the scheme's
// class step (7.0).
func (c *stubCalculator) add(round string, startTenths int, tierScores []int) {
	byHC, ok := c.scores[round]
	if !ok {
		byHC = make(map[int]int)
		c.scores[round] = byHC
	}
	for i, s := range tierScores {
		byHC[startTenths+70*i] = s
	}
}

func (c *stubCalculator) ScoreForHandicap(handicap float64, r rounds.Round) int {
	return c.scores[r.Name][int(math.Round(handicap*10))]
}

// fixtureCalculator carries the published indoor threshold anchors for
// the Portsmouth, Worcester, and Vegas families.
func fixtureCalculator() *stubCalculator {
	c := newStubCalculator()

	// Recurve ladders on Portsmouth (datum 11.1, age step 6.0,
	// gender step 2.2).
	c.add("portsmouth", 111, []int{593, 582, 566, 546, 518, 483, 437, 378}) // male adult
	c.add("portsmouth", 171, []int{583, 569, 549, 522, 488, 444, 387, 316}) // male 50+/U21
	c.add("portsmouth", 231, []int{571, 552, 526, 493, 450, 395, 326, 250}) // male U18
	c.add("portsmouth", 291, []int{555, 530, 498, 457, 403, 336, 260, 187}) // male U16
	c.add("portsmouth", 351, []int{534, 503, 463, 411, 346, 271, 196, 134}) // U15 (merged)
	c.add("portsmouth", 411, []int{508, 469, 419, 355, 281, 206, 141, 92})  // U14 (merged)
	c.add("portsmouth", 471, []int{475, 426, 364, 291, 215, 149, 98, 62})   // U12 (merged)
	c.add("portsmouth", 133, []int{586, 572, 553, 528, 496, 454, 399, 331}) // female adult
	c.add("portsmouth", 313, []int{539, 510, 472, 423, 360, 286, 211, 145}) // female U16

	// Compound ladders (datum 5.2, age step 5.0).
	c.add("portsmouth", 52, []int{594, 583, 571, 560, 549, 532, 508, 472})  // male adult
	c.add("portsmouth", 352, []int{544, 523, 490, 449, 398, 340, 281, 227}) // male U12
	c.add("worcester", 52, []int{303, 301, 300, 294, 283, 267, 246, 217})   // male adult
	c.add("vegas_300", 52, []int{300, 297, 290, 281, 269, 252, 230, 201})   // male adult

	// Barebow ladders (datum 16.8, age step 5.0).
	c.add("portsmouth", 168, []int{565, 549, 528, 503, 472, 433, 387, 331}) // male adult
	c.add("portsmouth", 218, []int{553, 535, 512, 485, 451, 410, 362, 305}) // male U21

	// Longbow ladders (datum 24.5, age step 6.0).
	c.add("portsmouth", 245, []int{501, 466, 423, 369, 306, 240, 178, 127}) // male adult
	c.add("portsmouth", 605, []int{262, 211, 164, 122, 76, 37, 22, 13})     // male U12

	return c
}
