package classification

import (
	"errors"
	"fmt"

	"github.com/okian/clicker/internal/domain/categories"
	"github.com/okian/clicker/internal/domain/rounds"
)

// Sentinel kinds for classification failures. Callers match with
// errors.Is; the concrete error text is part of the public contract
// and is produced verbatim by the constructors below.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnrecognisedRound = errors.New("unrecognised round")
	ErrInvalidScore      = errors.New("invalid score")
)

// inputError carries an exact caller-facing message while unwrapping
// to one of the sentinel kinds.
type inputError struct {
	kind error
	msg  string
}

func (e *inputError) Error() string { return e.msg }
func (e *inputError) Unwrap() error { return e.kind }

func newInvalidBowstyle(b categories.Bowstyle) error {
	return &inputError{
		kind: ErrInvalidInput,
		msg: fmt.Sprintf(
			"%s is not a recognised bowstyle for indoor classifications. Please select from `COMPOUND|RECURVE|BAREBOW|LONGBOW`.",
			b,
		),
	}
}

func newInvalidGender(g categories.Gender) error {
	return &inputError{
		kind: ErrInvalidInput,
		msg: fmt.Sprintf(
			"%s is not a recognised gender group for indoor classifications. Please select from `MALE|FEMALE`.",
			g,
		),
	}
}

func newInvalidAgeGroup(a categories.AgeGroup) error {
	return &inputError{
		kind: ErrInvalidInput,
		msg: fmt.Sprintf(
			"%s is not a recognised age group for indoor classifications. Please select from `ADULT|50+|UNDER_21|UNDER_18|UNDER_16|UNDER_15|UNDER_14|UNDER_12`.",
			a,
		),
	}
}

func newUnrecognisedRound() error {
	return &inputError{
		kind: ErrUnrecognisedRound,
		msg: "This round is not recognised for the purposes of indoor classification.\n" +
			"Please select an appropriate option from the rounds registry.",
	}
}

func newInvalidScore(score int, r rounds.Round) error {
	return &inputError{
		kind: ErrInvalidScore,
		msg: fmt.Sprintf(
			"Invalid score of %d for a %s. Should be in range 0-%d.",
			score, r.DisplayName, r.MaxScore(),
		),
	}
}
