package classification

import (
	"github.com/okian/clicker/internal/domain/categories"
	"github.com/okian/clicker/internal/domain/handicap"
	"github.com/okian/clicker/internal/domain/rounds"
)

// Unattainable marks a tier whose minimum score exceeds what the round
// can physically produce. It is reported in place rather than omitted
// so the threshold table keeps a fixed length across rounds.
const Unattainable = -9999

// RoundRef identifies the round of a query either by registry slug or
// as a pre-resolved round value. Both forms yield identical results.
type RoundRef interface {
	isRoundRef()
}

type roundName string

func (roundName) isRoundRef() {}

type roundValue rounds.Round

func (roundValue) isRoundRef() {}

// ByName references a round through the registry.
func ByName(name string) RoundRef { return roundName(name) }

// ByRound references an already-resolved round value.
func ByRound(r rounds.Round) RoundRef { return roundValue(r) }

// indoorRounds is the scheme's allow-list. Registered rounds outside
// this set are rejected the same way unknown names are.
var indoorRounds = map[string]struct{}{
	"portsmouth":         {},
	"portsmouth_triple":  {},
	"worcester":          {},
	"worcester_5_centre": {},
	"vegas_300":          {},
	"vegas_300_triple":   {},
	"wa18":               {},
	"wa18_triple":        {},
	"wa25":               {},
	"bray_i":             {},
	"bray_ii":            {},
	"stafford":           {},
}

// Indoor is the indoor classification engine. It is stateless beyond
// its immutable collaborators and safe for concurrent use; every query
// recomputes its threshold table from the lookup tables.
type Indoor struct {
	reg  *rounds.Registry
	calc handicap.Calculator
}

// Option applies a configuration option to the Indoor engine.
type Option func(*Indoor)

// WithRegistry substitutes the round registry.
func WithRegistry(reg *rounds.Registry) Option {
	return func(in *Indoor) {
		if reg != nil {
			in.reg = reg
		}
	}
}

// WithCalculator substitutes the handicap score model.
func WithCalculator(c handicap.Calculator) Option {
	return func(in *Indoor) {
		if c != nil {
			in.calc = c
		}
	}
}

// NewIndoor creates an engine over the default registry and the AGB
// score model unless options substitute them.
func NewIndoor(opts ...Option) *Indoor {
	in := &Indoor{
		reg:  rounds.Default(),
		calc: handicap.NewAGB(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// EligibleRounds lists the registry rounds the scheme accepts, in
// registry (sorted) order.
func (in *Indoor) EligibleRounds() []string {
	names := make([]string, 0, len(indoorRounds))
	for _, n := range in.reg.Names() {
		if _, ok := indoorRounds[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

// normalizeRound validates the reference against the registry and the
// scheme allow-list, then reduces multi-face rounds to their
// single-face equivalent.
func (in *Indoor) normalizeRound(ref RoundRef) (rounds.Round, error) {
	var r rounds.Round
	switch v := ref.(type) {
	case roundName:
		got, err := in.reg.Get(string(v))
		if err != nil {
			return rounds.Round{}, newUnrecognisedRound()
		}
		r = got
	case roundValue:
		r = rounds.Round(v)
	default:
		return rounds.Round{}, newUnrecognisedRound()
	}

	if _, ok := indoorRounds[r.Name]; !ok {
		return rounds.Round{}, newUnrecognisedRound()
	}
	return in.reg.SingleFace(r), nil
}

// Thresholds computes the tier threshold table for a competitor on a
// round, best tier first. Tier handicaps come from the group ladder;
// each is inverted through the calculator, and scores beyond the
// round's maximum are clamped to Unattainable.
func (in *Indoor) Thresholds(ref RoundRef, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (ThresholdTable, error) {
	r, err := in.normalizeRound(ref)
	if err != nil {
		return nil, err
	}
	grp, err := Resolve(b, g, a)
	if err != nil {
		return nil, err
	}

	maxScore := r.MaxScore()
	hcs := grp.tierHandicaps()
	table := make(ThresholdTable, 0, len(hcs))
	for i, hc := range hcs {
		score := in.calc.ScoreForHandicap(hc, r)
		if score > maxScore {
			score = Unattainable
		}
		table = append(table, Threshold{Tier: Tier(i), Score: score})
	}
	return table, nil
}

// Scores is the list-mode contract: the threshold scores only, best
// tier first. Tier identities are implicit in the position.
func (in *Indoor) Scores(ref RoundRef, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) ([]int, error) {
	table, err := in.Thresholds(ref, b, g, a)
	if err != nil {
		return nil, err
	}
	return table.Scores(), nil
}

// Classify bands a raw score into the tier code it achieves, or
// Unclassified when no attainable tier is reached. A score equal to a
// tier's threshold achieves that tier; when consecutive tiers share a
// threshold the worse tier wins the boundary.
func (in *Indoor) Classify(score int, ref RoundRef, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (string, error) {
	r, err := in.normalizeRound(ref)
	if err != nil {
		return "", err
	}
	if score < 0 || score > r.MaxScore() {
		return "", newInvalidScore(score, r)
	}

	// The round is already normalized; reuse it for the table.
	table, err := in.Thresholds(ByRound(r), b, g, a)
	if err != nil {
		return "", err
	}

	for i := 0; i < len(table); i++ {
		t := table[i]
		if t.Score == Unattainable || score < t.Score {
			continue
		}
		// Duplicate thresholds collapse to the worse tier.
		for i+1 < len(table) && table[i+1].Score == t.Score {
			i++
		}
		return table[i].Tier.String(), nil
	}
	return Unclassified, nil
}
