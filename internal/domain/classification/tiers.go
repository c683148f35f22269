// Package classification implements the AGB indoor classification
// scheme: resolving competitor categories onto a canonical group,
// deriving tier score thresholds from the handicap model, and banding
// raw scores into classification tiers.
package classification

import (
	"encoding/json"
	"fmt"
)

// Tier is one rung of the indoor classification ladder. Lower ordinal
// means a better classification.
type Tier int

// Indoor ladder, best first.
const (
	GrandMasterBowman Tier = iota
	MasterBowman
	Bowman1
	Bowman2
	Bowman3
	Archer1
	Archer2
	Archer3
)

// Unclassified is the sentinel code returned when no tier is reached.
const Unclassified = "UC"

var tierCodes = [...]string{"I-GMB", "I-MB", "I-B1", "I-B2", "I-B3", "I-A1", "I-A2", "I-A3"}

// String returns the short display code for the tier.
func (t Tier) String() string {
	if t >= 0 && int(t) < len(tierCodes) {
		return tierCodes[t]
	}
	return Unclassified
}

// MarshalJSON encodes the tier as its display code.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a display code back into a tier.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	for i, c := range tierCodes {
		if c == code {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tier code: %q", code)
}

// Tiers returns the indoor ladder, best tier first.
func Tiers() []Tier {
	out := make([]Tier, len(tierCodes))
	for i := range out {
		out[i] = Tier(i)
	}
	return out
}

// Threshold pairs a tier with the minimum score required to achieve
// it. A Score of Unattainable marks a tier the round cannot support.
type Threshold struct {
	Tier  Tier `json:"tier"`
	Score int  `json:"score"`
}

// ThresholdTable is the ordered threshold sequence for one
// (group, round) pair, best tier first.
type ThresholdTable []Threshold

// Scores returns just the score column, preserving order.
func (tt ThresholdTable) Scores() []int {
	out := make([]int, len(tt))
	for i, t := range tt {
		out[i] = t.Score
	}
	return out
}
