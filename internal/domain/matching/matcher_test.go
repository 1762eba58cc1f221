package matching_test

import (
	"errors"
	"testing"

	"github.com/okian/lineup/internal/domain/matching"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func mustIndex(lists map[model.Position][]model.RankingEntry) *ranking.Index {
	ix := ranking.NewIndex()
	for pos, entries := range lists {
		if err := ix.Set(pos, entries); err != nil {
			panic(err)
		}
	}
	return ix
}

func TestSubstring_Match(t *testing.T) {
	Convey("Given the substring matcher", t, func() {
		m := matching.Substring{}

		Convey("When the ranking name equals the display name", func() {
			ix := mustIndex(map[model.Position][]model.RankingEntry{
				model.QB: {{Name: "Bob Smith", Rank: 1}},
			})
			id := model.PlayerIdentity{ID: "100", DisplayName: "Bob Smith", Team: "NE", Position: model.QB}

			match, ok, err := m.Match(id, ix)

			Convey("Then it returns rank 1 with exact confidence", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Entry.Rank, ShouldEqual, 1)
				So(match.Confidence, ShouldEqual, model.ConfidenceExact)
				So(match.Ambiguous(), ShouldBeFalse)
			})
		})

		Convey("When containment only holds in one direction", func() {
			ix := mustIndex(map[model.Position][]model.RankingEntry{
				model.WR: {{Name: "Marvin Harrison Jr.", Rank: 12}},
				model.RB: {{Name: "Kenneth Walker", Rank: 8}},
			})

			Convey("Then a ranking name containing the display name matches", func() {
				match, ok, err := m.Match(model.PlayerIdentity{ID: "1", DisplayName: "Marvin Harrison", Position: model.WR}, ix)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Entry.Rank, ShouldEqual, 12)
				So(match.Confidence, ShouldEqual, model.ConfidenceContained)
			})

			Convey("Then a display name containing the ranking name matches", func() {
				match, ok, err := m.Match(model.PlayerIdentity{ID: "2", DisplayName: "Kenneth Walker III", Position: model.RB}, ix)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Entry.Rank, ShouldEqual, 8)
			})
		})

		Convey("When several entries match", func() {
			ix := mustIndex(map[model.Position][]model.RankingEntry{
				model.QB: {
					{Name: "Josh Allen", Rank: 2},
					{Name: "Josh Allen Jr.", Rank: 40},
				},
			})

			match, ok, err := m.Match(model.PlayerIdentity{ID: "3", DisplayName: "Josh Allen", Position: model.QB}, ix)

			Convey("Then the first entry in list order wins and the ambiguity is reported", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Entry.Rank, ShouldEqual, 2)
				So(match.Candidates, ShouldEqual, 2)
				So(match.Ambiguous(), ShouldBeTrue)
			})
		})

		Convey("When names differ only by case", func() {
			ix := mustIndex(map[model.Position][]model.RankingEntry{
				model.TE: {{Name: "travis kelce", Rank: 3}},
			})

			_, ok, err := m.Match(model.PlayerIdentity{ID: "4", DisplayName: "Travis Kelce", Position: model.TE}, ix)

			Convey("Then nothing matches", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a ranking entry has an empty name", func() {
			ix := mustIndex(map[model.Position][]model.RankingEntry{
				model.K: {{Name: "", Rank: 1}, {Name: "Justin Tucker", Rank: 5}},
			})

			match, ok, err := m.Match(model.PlayerIdentity{ID: "5", DisplayName: "Justin Tucker", Position: model.K}, ix)

			Convey("Then it is never used for name matching", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Entry.Rank, ShouldEqual, 5)
			})
		})

		Convey("When the player is unranked at a supported position", func() {
			ix := mustIndex(map[model.Position][]model.RankingEntry{
				model.WR: {{Name: "Someone Else", Rank: 1}},
			})

			_, ok, err := m.Match(model.PlayerIdentity{ID: "6", DisplayName: "Nobody Known", Position: model.WR}, ix)

			Convey("Then it reports no match without error", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the position has no ranking list", func() {
			ix := mustIndex(map[model.Position][]model.RankingEntry{
				model.QB: {{Name: "Bob Smith", Rank: 1}},
			})

			_, ok, err := m.Match(model.PlayerIdentity{ID: "7", DisplayName: "Big Lineman", Position: model.Unsupported, RawPosition: "OL"}, ix)

			Convey("Then it fails with an unsupported position error", func() {
				So(ok, ShouldBeFalse)
				So(errors.Is(err, matching.ErrUnsupportedPosition), ShouldBeTrue)
			})
		})
	})
}

func TestSubstring_MatchDefense(t *testing.T) {
	Convey("Given a defense ranking list", t, func() {
		m := matching.Substring{}
		ix := mustIndex(map[model.Position][]model.RankingEntry{
			model.DEF: {
				{TeamCode: "SF", Rank: 1},
				{TeamCode: "DAL", Rank: 2},
				{TeamCode: "SF", Rank: 9},
			},
		})

		Convey("When an unnamed defense's team code is listed", func() {
			match, ok, err := m.Match(model.PlayerIdentity{ID: "SF", Team: "SF", Position: model.DEF}, ix)

			Convey("Then the first entry with that code wins", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Entry.Rank, ShouldEqual, 1)
				So(match.Confidence, ShouldEqual, model.ConfidenceTeam)
				So(match.Candidates, ShouldEqual, 2)
			})
		})

		Convey("When the team code is only a prefix of a listed code", func() {
			_, ok, err := m.Match(model.PlayerIdentity{ID: "DA", Team: "DA", Position: model.DEF}, ix)

			Convey("Then nothing matches", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the defense has no team", func() {
			_, ok, err := m.Match(model.PlayerIdentity{ID: "X", Position: model.DEF}, ix)

			Convey("Then nothing matches", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given an unnamed identity at a named position", t, func() {
		ix := mustIndex(map[model.Position][]model.RankingEntry{
			model.QB: {{Name: "Bob Smith", TeamCode: "NE", Rank: 1}},
		})

		_, ok, err := matching.Substring{}.Match(model.PlayerIdentity{ID: "8", Team: "NE", Position: model.QB}, ix)

		Convey("Then it is neither a defense nor a player and stays unmatched", func() {
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestNormalized_Match(t *testing.T) {
	Convey("Given the normalized matcher", t, func() {
		m := matching.Normalized{}
		ix := mustIndex(map[model.Position][]model.RankingEntry{
			model.WR: {
				{Name: "Josh Allenby", Rank: 30},
				{Name: "Amon-Ra St. Brown", Rank: 4},
				{Name: "Élijah Moore", Rank: 50},
			},
			model.QB: {{Name: "Patrick Mahomes", Rank: 2}},
		})

		Convey("When names differ by suffix and case", func() {
			match, ok, err := m.Match(model.PlayerIdentity{ID: "1", DisplayName: "PATRICK MAHOMES II", Position: model.QB}, ix)

			Convey("Then they match exactly", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Confidence, ShouldEqual, model.ConfidenceExact)
				So(match.Entry.Rank, ShouldEqual, 2)
			})
		})

		Convey("When names differ by punctuation and diacritics", func() {
			ab, ok1, _ := m.Match(model.PlayerIdentity{ID: "2", DisplayName: "Amon Ra St Brown", Position: model.WR}, ix)
			em, ok2, _ := m.Match(model.PlayerIdentity{ID: "3", DisplayName: "Elijah Moore", Position: model.WR}, ix)

			Convey("Then they still match", func() {
				So(ok1, ShouldBeTrue)
				So(ab.Entry.Rank, ShouldEqual, 4)
				So(ok2, ShouldBeTrue)
				So(em.Entry.Rank, ShouldEqual, 50)
			})
		})

		Convey("When one name is only a character prefix of another", func() {
			_, ok, err := m.Match(model.PlayerIdentity{ID: "4", DisplayName: "Josh Allen", Position: model.WR}, ix)

			Convey("Then token boundaries prevent a match", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})

			Convey("And the substring matcher would have matched", func() {
				_, ok, _ := matching.Substring{}.Match(model.PlayerIdentity{ID: "4", DisplayName: "Josh Allen", Position: model.WR}, ix)
				So(ok, ShouldBeTrue)
			})
		})
	})
}

func TestNormalized_MatchInitials(t *testing.T) {
	Convey("Given receivers listed with and without periods in their initials", t, func() {
		m := matching.Normalized{}
		ix := mustIndex(map[model.Position][]model.RankingEntry{
			model.WR: {
				{Name: "DJ Moore", Rank: 12},
				{Name: "A.J. Brown", Rank: 5},
			},
		})

		Convey("When the display name carries the periods", func() {
			match, ok, err := m.Match(model.PlayerIdentity{ID: "1", DisplayName: "D.J. Moore", Position: model.WR}, ix)

			Convey("Then it matches the plain entry exactly", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Confidence, ShouldEqual, model.ConfidenceExact)
				So(match.Entry.Rank, ShouldEqual, 12)
			})
		})

		Convey("When the ranking entry carries the periods", func() {
			match, ok, err := m.Match(model.PlayerIdentity{ID: "2", DisplayName: "AJ Brown", Position: model.WR}, ix)

			Convey("Then the plain display name matches it exactly", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(match.Confidence, ShouldEqual, model.ConfidenceExact)
				So(match.Entry.Rank, ShouldEqual, 5)
			})
		})

		Convey("When the initials are spaced out", func() {
			_, ok, err := m.Match(model.PlayerIdentity{ID: "3", DisplayName: "D. J. Moore", Position: model.WR}, ix)

			Convey("Then the separate tokens do not match", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given strategy names", t, func() {
		Convey("Then known names resolve", func() {
			m, err := matching.New("substring")
			So(err, ShouldBeNil)
			So(m, ShouldHaveSameTypeAs, matching.Substring{})

			m, err = matching.New(" Normalized ")
			So(err, ShouldBeNil)
			So(m, ShouldHaveSameTypeAs, matching.Normalized{})

			m, err = matching.New("")
			So(err, ShouldBeNil)
			So(m, ShouldHaveSameTypeAs, matching.Substring{})
		})

		Convey("Then unknown names fail", func() {
			_, err := matching.New("levenshtein")
			So(errors.Is(err, matching.ErrUnknownStrategy), ShouldBeTrue)
		})
	})
}

func TestEnrich(t *testing.T) {
	Convey("Given an index with a QB list", t, func() {
		ix := mustIndex(map[model.Position][]model.RankingEntry{
			model.QB: {{Name: "Bob Smith", Rank: 1}},
		})

		Convey("When enriching a matched identity", func() {
			p, err := matching.Enrich(matching.Substring{}, model.PlayerIdentity{ID: "100", DisplayName: "Bob Smith", Position: model.QB}, ix)

			Convey("Then the player is ranked", func() {
				So(err, ShouldBeNil)
				rank, ok := p.Rank()
				So(ok, ShouldBeTrue)
				So(rank, ShouldEqual, 1)
			})
		})

		Convey("When enriching an unsupported identity", func() {
			p, err := matching.Enrich(matching.Substring{}, model.PlayerIdentity{ID: "9", DisplayName: "Guard", Position: model.Unsupported}, ix)

			Convey("Then the player comes back unranked with the error", func() {
				So(errors.Is(err, matching.ErrUnsupportedPosition), ShouldBeTrue)
				So(p.Ranked(), ShouldBeFalse)
				So(p.ID, ShouldEqual, "9")
			})
		})
	})
}
