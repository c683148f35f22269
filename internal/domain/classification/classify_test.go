package classification_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/okian/clicker/internal/domain/categories"
	"github.com/okian/clicker/internal/domain/classification"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIndoorClassify(t *testing.T) {
	Convey("Given the indoor engine with the fixture score model", t, func() {
		engine := newFixtureEngine()

		Convey("When banding scores for a range of cohorts", func() {
			cases := []struct {
				score    int
				age      categories.AgeGroup
				bowstyle categories.Bowstyle
				expected string
			}{
				{594, categories.Adult, categories.Compound, "I-GMB"},   // exactly on GMB
				{582, categories.Age50Plus, categories.Recurve, "I-MB"}, // 1 below GMB
				{520, categories.Under21, categories.Barebow, "I-B1"},   // midway to MB
				{551, categories.Under18, categories.Recurve, "I-B1"},   // 1 below MB
				{526, categories.Under18, categories.Recurve, "I-B1"},   // boundary value
				{449, categories.Under12, categories.Compound, "I-B2"},  // boundary value
				{40, categories.Under12, categories.Longbow, "I-A1"},
				{12, categories.Under12, categories.Longbow, "UC"}, // just below A3
				{40, categories.Under12, categories.EnglishLongbow, "I-A1"},
				{1, categories.Under12, categories.EnglishLongbow, "UC"},
			}
			for _, tc := range cases {
				got, err := engine.Classify(
					tc.score,
					classification.ByName("portsmouth"),
					tc.bowstyle, categories.Male, tc.age,
				)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, tc.expected)
			}
		})

		Convey("When classifying with a string round name", func() {
			got, err := engine.Classify(
				578,
				classification.ByName("portsmouth"),
				categories.Compound, categories.Male, categories.Adult,
			)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "I-B1")
		})

		Convey("When the top tiers are unattainable on the round", func() {
			// Worcester maxes out at 300, so the best attainable tier
			// is I-B1 even on a perfect score.
			got, err := engine.Classify(
				300,
				classification.ByName("worcester_5_centre"),
				categories.Compound, categories.Male, categories.Adult,
			)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "I-B1")
		})

		Convey("When the round is not recognised", func() {
			_, err := engine.Classify(
				400,
				classification.ByName("invalid_roundname"),
				categories.Recurve, categories.Male, categories.Adult,
			)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, classification.ErrUnrecognisedRound), ShouldBeTrue)
			So(err.Error(), ShouldEqual,
				"This round is not recognised for the purposes of indoor classification.\n"+
					"Please select an appropriate option from the rounds registry.")
		})

		Convey("When the score is out of range for the round", func() {
			for _, score := range []int{1000, 601, -1, -100} {
				_, err := engine.Classify(
					score,
					classification.ByName("portsmouth"),
					categories.Barebow, categories.Male, categories.Adult,
				)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, classification.ErrInvalidScore), ShouldBeTrue)
				So(err.Error(), ShouldEqual, fmt.Sprintf(
					"Invalid score of %d for a Portsmouth. Should be in range 0-600.", score))
			}
		})
	})
}

func TestIndoorClassify_BoundaryLaw(t *testing.T) {
	Convey("Given the indoor engine with the fixture score model", t, func() {
		engine := newFixtureEngine()

		table, err := engine.Thresholds(
			classification.ByName("portsmouth"),
			categories.Recurve, categories.Male, categories.Adult,
		)
		So(err, ShouldBeNil)

		Convey("Then a score equal to a threshold achieves exactly that tier", func() {
			for _, th := range table {
				got, err := engine.Classify(
					th.Score,
					classification.ByName("portsmouth"),
					categories.Recurve, categories.Male, categories.Adult,
				)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, th.Tier.String())
			}
		})

		Convey("Then one point below a threshold falls to the next tier", func() {
			for i, th := range table {
				got, err := engine.Classify(
					th.Score-1,
					classification.ByName("portsmouth"),
					categories.Recurve, categories.Male, categories.Adult,
				)
				So(err, ShouldBeNil)

				expected := classification.Unclassified
				if i+1 < len(table) {
					expected = table[i+1].Tier.String()
				}
				So(got, ShouldEqual, expected)
			}
		})
	})
}
