package categories

import (
	"fmt"
	"strings"
)

// AgeGroup identifies the competition age band.
type AgeGroup int

// Recognised age groups, oldest first.
const (
	Adult AgeGroup = iota + 1
	Age50Plus
	Under21
	Under18
	Under16
	Under15
	Under14
	Under12
)

var ageNames = map[AgeGroup]string{
	Adult:     "ADULT",
	Age50Plus: "50+",
	Under21:   "UNDER_21",
	Under18:   "UNDER_18",
	Under16:   "UNDER_16",
	Under15:   "UNDER_15",
	Under14:   "UNDER_14",
	Under12:   "UNDER_12",
}

// ageSteps holds the ladder offset of each age band from the adult
// datum. 50+ and Under 21 share a step; gender groups merge from
// Under 15 downwards.
var ageSteps = map[AgeGroup]int{
	Adult:     0,
	Age50Plus: 1,
	Under21:   1,
	Under18:   2,
	Under16:   3,
	Under15:   4,
	Under14:   5,
	Under12:   6,
}

// String returns the canonical literal for the age group.
func (a AgeGroup) String() string {
	if name, ok := ageNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AgeGroup(%d)", int(a))
}

// Valid reports whether a is one of the recognised age groups.
func (a AgeGroup) Valid() bool {
	_, ok := ageNames[a]
	return ok
}

// Step returns the handicap ladder offset for the age group. Invalid
// values report zero; callers must Valid() first.
func (a AgeGroup) Step() int {
	return ageSteps[a]
}

// ParseAgeGroup resolves a canonical literal to its AgeGroup.
func ParseAgeGroup(s string) (AgeGroup, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for a, name := range ageNames {
		if name == needle {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAgeGroup, s)
}

// AgeGroups returns every recognised age group, oldest first.
func AgeGroups() []AgeGroup {
	return []AgeGroup{Adult, Age50Plus, Under21, Under18, Under16, Under15, Under14, Under12}
}
