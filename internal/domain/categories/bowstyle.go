// Package categories defines the closed competitor category enumerations
// used by classification schemes: bowstyle, gender, and age group.
//
// Conventions:
// - Enums are int-backed with the zero value reserved as invalid.
// - String() renders the canonical literal; unknown values render as `Type(n)`.
// - Parse helpers accept the canonical literal case-insensitively.
package categories

import (
	"fmt"
	"strings"
)

// Bowstyle identifies an equipment class. Styles beyond the first four
// do not carry their own indoor ladder and are coaxed onto a host style
// by the classification engine.
type Bowstyle int

// Recognised bowstyles.
const (
	Compound Bowstyle = iota + 1
	Recurve
	Barebow
	Longbow
	EnglishLongbow
	Flatbow
	Traditional
	CompoundLimited
	CompoundBarebow
)

var bowstyleNames = map[Bowstyle]string{
	Compound:        "COMPOUND",
	Recurve:         "RECURVE",
	Barebow:         "BAREBOW",
	Longbow:         "LONGBOW",
	EnglishLongbow:  "ENGLISHLONGBOW",
	Flatbow:         "FLATBOW",
	Traditional:     "TRADITIONAL",
	CompoundLimited: "COMPOUNDLIMITED",
	CompoundBarebow: "COMPOUNDBAREBOW",
}

// String returns the canonical literal for the bowstyle.
func (b Bowstyle) String() string {
	if name, ok := bowstyleNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Bowstyle(%d)", int(b))
}

// Valid reports whether b is one of the recognised bowstyles.
func (b Bowstyle) Valid() bool {
	_, ok := bowstyleNames[b]
	return ok
}

// ParseBowstyle resolves a canonical literal to its Bowstyle.
func ParseBowstyle(s string) (Bowstyle, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for b, name := range bowstyleNames {
		if name == needle {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBowstyle, s)
}
