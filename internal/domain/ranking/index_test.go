package ranking_test

import (
	"errors"
	"testing"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIndex(t *testing.T) {
	Convey("Given an empty index", t, func() {
		ix := ranking.NewIndex()

		Convey("When a list is installed", func() {
			entries := []model.RankingEntry{{Name: "A", Rank: 2}, {Name: "B", Rank: 1}}
			err := ix.Set(model.RB, entries)

			Convey("Then it is returned in source order with the position filled in", func() {
				So(err, ShouldBeNil)
				list, err := ix.List(model.RB)
				So(err, ShouldBeNil)
				So(len(list), ShouldEqual, 2)
				So(list[0].Name, ShouldEqual, "A")
				So(list[0].Position, ShouldEqual, model.RB)
			})

			Convey("Then later changes to the input do not leak in", func() {
				entries[0].Rank = 99
				list, _ := ix.List(model.RB)
				So(list[0].Rank, ShouldEqual, 2)
			})
		})

		Convey("When an empty list is installed", func() {
			So(ix.Set(model.K, nil), ShouldBeNil)

			Convey("Then the position is still supported", func() {
				So(ix.Has(model.K), ShouldBeTrue)
				list, err := ix.List(model.K)
				So(err, ShouldBeNil)
				So(list, ShouldBeEmpty)
			})
		})

		Convey("When a list is missing", func() {
			_, err := ix.List(model.TE)

			Convey("Then lookups fail with ErrUnsupportedPosition", func() {
				So(errors.Is(err, ranking.ErrUnsupportedPosition), ShouldBeTrue)
			})
		})

		Convey("When installing for the unsupported position", func() {
			err := ix.Set(model.Unsupported, nil)

			Convey("Then it is rejected", func() {
				So(errors.Is(err, ranking.ErrUnsupportedPosition), ShouldBeTrue)
			})
		})

		Convey("When an entry belongs to another position", func() {
			err := ix.Set(model.QB, []model.RankingEntry{{Position: model.WR, Name: "X", Rank: 1}})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, ranking.ErrPositionMismatch), ShouldBeTrue)
			})
		})

		Convey("When several positions are present", func() {
			_ = ix.Set(model.DEF, nil)
			_ = ix.Set(model.QB, nil)

			Convey("Then positions come back in lineup order", func() {
				So(ix.Positions(), ShouldResemble, []model.Position{model.QB, model.DEF})
			})
		})
	})
}
