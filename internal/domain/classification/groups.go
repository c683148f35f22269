package classification

import (
	"github.com/okian/clicker/internal/domain/categories"
)

// Group is a canonical (bowstyle, gender, age) cohort with its own
// tier ladder. Groups are produced by Resolve and are immutable.
type Group struct {
	Bowstyle categories.Bowstyle `json:"bowstyle"`
	Gender   categories.Gender   `json:"gender"`
	Age      categories.AgeGroup `json:"age"`
}

// ladderParams are the per-bowstyle handicap parameters of the indoor
// scheme. Tier handicaps read
//
//	datum + ageStep*step(age) + genderStep + classStep*tier
//
// where the gender step applies to female cohorts down to Under 16
// only; the gender groups merge from Under 15.
type ladderParams struct {
	datum      float64
	classStep  float64
	ageStep    float64
	genderStep float64
}

var indoorLadders = map[categories.Bowstyle]ladderParams{
	categories.Compound: {datum: 5.2, classStep: 7, ageStep: 5, genderStep: 1.4},
	categories.Recurve:  {datum: 11.1, classStep: 7, ageStep: 6, genderStep: 2.2},
	categories.Barebow:  {datum: 16.8, classStep: 7, ageStep: 5, genderStep: 2.1},
	categories.Longbow:  {datum: 24.5, classStep: 7, ageStep: 6, genderStep: 1.9},
}

// Age bands with a ladder step of four or more (Under 15 and younger)
// shoot a single merged gender ladder.
const genderMergeStep = 4

// tierHandicaps returns the target handicap for each tier of the
// group's ladder, best tier first. Handicaps are strictly increasing,
// which makes the derived score thresholds strictly decreasing under
// any monotone calculator.
func (g Group) tierHandicaps() []float64 {
	p := indoorLadders[g.Bowstyle]
	delta := p.ageStep * float64(g.Age.Step())
	if g.Gender == categories.Female && g.Age.Step() < genderMergeStep {
		delta += p.genderStep
	}

	hcs := make([]float64, len(tierCodes))
	for i := range hcs {
		hcs[i] = p.datum + delta + p.classStep*float64(i)
	}
	return hcs
}
