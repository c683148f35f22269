package categories

import "errors"

// Sentinel kinds for parse failures. These allow errors.Is from callers.
var (
	ErrUnknownBowstyle = errors.New("unknown bowstyle")
	ErrUnknownGender   = errors.New("unknown gender group")
	ErrUnknownAgeGroup = errors.New("unknown age group")
)
