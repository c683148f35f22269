package classification

import (
	"github.com/okian/clicker/internal/domain/categories"
)

// indoorCoax maps every recognised bowstyle onto the indoor ladder it
// competes on. Canonical indoor styles map to themselves; styles
// without their own ladder are coaxed onto the structurally closest
// host. Adding a coaxed style is a one-line change here.
var indoorCoax = map[categories.Bowstyle]categories.Bowstyle{
	categories.Compound:        categories.Compound,
	categories.Recurve:         categories.Recurve,
	categories.Barebow:         categories.Barebow,
	categories.Longbow:         categories.Longbow,
	categories.EnglishLongbow:  categories.Longbow,
	categories.Flatbow:         categories.Barebow,
	categories.Traditional:     categories.Barebow,
	categories.CompoundLimited: categories.Compound,
	categories.CompoundBarebow: categories.Compound,
}

// Resolve normalises a (bowstyle, gender, age) triple into its
// canonical indoor classification group. Coaxing applies to bowstyles
// only; gender and age must already be canonical values. Resolving an
// already-canonical triple returns it unchanged, so Resolve is
// idempotent.
func Resolve(b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (Group, error) {
	host, ok := indoorCoax[b]
	if !ok {
		return Group{}, newInvalidBowstyle(b)
	}
	if !g.Valid() {
		return Group{}, newInvalidGender(g)
	}
	if !a.Valid() {
		return Group{}, newInvalidAgeGroup(a)
	}
	return Group{Bowstyle: host, Gender: g, Age: a}, nil
}
