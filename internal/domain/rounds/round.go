// Package rounds defines archery round descriptions and the registry
// they are resolved through. Rounds are read-only value objects; the
// classification engine consumes them but never mutates or stores them.
package rounds

// Scoring identifies the scoring system of a target face.
type Scoring string

// Recognised scoring systems.
const (
	TenZone  Scoring = "10_zone"
	FiveZone Scoring = "5_zone"
)

// maxArrowScore returns the best single-arrow value under the system.
func (s Scoring) maxArrowScore() int {
	if s == FiveZone {
		return 5
	}
	return 10
}

// Pass is one distance of a round: a number of arrows shot at a single
// face size and distance.
type Pass struct {
	Arrows    int     `koanf:"arrows"`
	DistanceM float64 `koanf:"distance_m"`
	FaceCM    float64 `koanf:"face_cm"`
	Scoring   Scoring `koanf:"scoring"`
}

// MaxScore returns the best achievable score for the pass.
func (p Pass) MaxScore() int {
	return p.Arrows * p.Scoring.maxArrowScore()
}

// Round is a complete shot round. Name is the registry slug;
// DisplayName is the human form used in messages. FamilyOf names the
// single-face equivalent for multi-face variants and is empty for
// rounds that are already single-face.
type Round struct {
	Name        string `koanf:"name"`
	DisplayName string `koanf:"display_name"`
	FamilyOf    string `koanf:"family_of"`
	Passes      []Pass `koanf:"passes"`
}

// MaxScore returns the best achievable score across all passes.
func (r Round) MaxScore() int {
	total := 0
	for _, p := range r.Passes {
		total += p.MaxScore()
	}
	return total
}

// MultiFace reports whether the round is shot on multiple simultaneous
// faces and therefore reduces to a single-face equivalent.
func (r Round) MultiFace() bool {
	return r.FamilyOf != ""
}
