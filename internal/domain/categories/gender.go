package categories

import (
	"fmt"
	"strings"
)

// Gender identifies the competition gender group.
type Gender int

// Recognised gender groups.
const (
	Male Gender = iota + 1
	Female
)

var genderNames = map[Gender]string{
	Male:   "MALE",
	Female: "FEMALE",
}

// String returns the canonical literal for the gender group.
func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// Valid reports whether g is one of the recognised gender groups.
func (g Gender) Valid() bool {
	_, ok := genderNames[g]
	return ok
}

// ParseGender resolves a canonical literal to its Gender.
func ParseGender(s string) (Gender, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for g, name := range genderNames {
		if name == needle {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGender, s)
}
