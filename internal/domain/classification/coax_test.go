package classification_test

import (
	"errors"
	"testing"

	"github.com/okian/clicker/internal/domain/categories"
	"github.com/okian/clicker/internal/domain/classification"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given the indoor coaxing resolver", t, func() {
		Convey("When resolving canonical indoor triples", func() {
			for _, b := range []categories.Bowstyle{
				categories.Compound, categories.Recurve, categories.Barebow, categories.Longbow,
			} {
				grp, err := classification.Resolve(b, categories.Female, categories.Under18)
				So(err, ShouldBeNil)

				Convey("Then "+b.String()+" passes through unchanged", func() {
					So(grp.Bowstyle, ShouldEqual, b)
					So(grp.Gender, ShouldEqual, categories.Female)
					So(grp.Age, ShouldEqual, categories.Under18)
				})
			}
		})

		Convey("When resolving styles without their own ladder", func() {
			cases := map[categories.Bowstyle]categories.Bowstyle{
				categories.EnglishLongbow:  categories.Longbow,
				categories.Flatbow:         categories.Barebow,
				categories.Traditional:     categories.Barebow,
				categories.CompoundLimited: categories.Compound,
				categories.CompoundBarebow: categories.Compound,
			}
			for from, to := range cases {
				grp, err := classification.Resolve(from, categories.Male, categories.Adult)
				So(err, ShouldBeNil)
				So(grp.Bowstyle, ShouldEqual, to)
			}
		})

		Convey("Then resolving is idempotent", func() {
			grp, err := classification.Resolve(
				categories.Traditional, categories.Male, categories.Age50Plus)
			So(err, ShouldBeNil)

			again, err := classification.Resolve(grp.Bowstyle, grp.Gender, grp.Age)
			So(err, ShouldBeNil)
			So(again, ShouldResemble, grp)
		})

		Convey("When any axis carries an unrecognised value", func() {
			_, err := classification.Resolve(
				categories.Bowstyle(0), categories.Male, categories.Adult)
			So(errors.Is(err, classification.ErrInvalidInput), ShouldBeTrue)

			_, err = classification.Resolve(
				categories.Recurve, categories.Gender(0), categories.Adult)
			So(errors.Is(err, classification.ErrInvalidInput), ShouldBeTrue)

			_, err = classification.Resolve(
				categories.Recurve, categories.Male, categories.AgeGroup(0))
			So(errors.Is(err, classification.ErrInvalidInput), ShouldBeTrue)
		})
	})
}
