package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/okian/lineup/internal/adapters/repository"
	"github.com/okian/lineup/internal/adapters/sleeper"
	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/domain/advisory"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const playersJSON = `{
	"1":  {"full_name": "Patrick Mahomes", "team": "KC", "position": "QB", "active": true},
	"2":  {"full_name": "Josh Allen", "team": "BUF", "position": "QB", "active": true},
	"3":  {"full_name": "Jalen Hurts", "team": "PHI", "position": "QB", "active": true},
	"10": {"team": "KC", "position": "DEF"},
	"11": {"team": "SF", "position": "DEF"},
	"20": {"full_name": "Some Guard", "team": "DAL", "position": "OL"}
}`

type fakeLeague struct {
	state      sleeper.State
	rosters    []model.LeagueRoster
	stateCalls atomic.Int32
	syncCalls  atomic.Int32
	err        error
}

func (f *fakeLeague) State(context.Context) (sleeper.State, error) {
	f.stateCalls.Add(1)
	return f.state, f.err
}

func (f *fakeLeague) Rosters(context.Context, string) ([]model.LeagueRoster, error) {
	return f.rosters, f.err
}

func (f *fakeLeague) PlayersRaw(context.Context) ([]byte, error) {
	f.syncCalls.Add(1)
	return []byte(playersJSON), f.err
}

type fakeRankings struct {
	lists map[model.Position][]model.RankingEntry
	fail  model.Position
}

func (f *fakeRankings) Rankings(_ context.Context, pos model.Position, _, _ int, _ string) ([]model.RankingEntry, error) {
	if pos == f.fail {
		return nil, errors.New("feed down")
	}
	return f.lists[pos], nil
}

func newFixtures() (*fakeLeague, *fakeRankings) {
	league := &fakeLeague{
		state: sleeper.State{Season: 2024, Week: 5},
		rosters: []model.LeagueRoster{
			{OwnerID: "u1", RosterID: 1, Players: []string{"1", "2", "10", "99"}, Starters: []string{"1", "10"}},
			{OwnerID: "u2", RosterID: 2, Players: []string{"11"}, Starters: []string{"11"}},
		},
	}
	rankings := &fakeRankings{lists: map[model.Position][]model.RankingEntry{
		model.QB: {
			{Position: model.QB, Name: "Josh Allen", TeamCode: "BUF", Rank: 1},
			{Position: model.QB, Name: "Jalen Hurts", TeamCode: "PHI", Rank: 2},
			{Position: model.QB, Name: "Patrick Mahomes", TeamCode: "KC", Rank: 3},
		},
		model.DEF: {
			{Position: model.DEF, TeamCode: "SF", Rank: 1},
			{Position: model.DEF, TeamCode: "KC", Rank: 2},
		},
	}}
	return league, rankings
}

func TestService_New(t *testing.T) {
	Convey("Given missing dependencies", t, func() {
		_, err := service.New(nil, nil, nil)

		Convey("Then construction fails", func() {
			So(err, ShouldEqual, service.ErrMissingDependency)
		})
	})
}

func TestService_Analyze(t *testing.T) {
	Convey("Given a service over fake sources and an empty catalog store", t, func() {
		ctx := context.Background()
		league, rankings := newFixtures()
		store, err := repository.NewFileStore(filepath.Join(t.TempDir(), "players.json"))
		So(err, ShouldBeNil)

		newService := func(opts ...service.Option) *service.Service {
			opts = append([]service.Option{
				service.WithLeague("L1", "u1"),
				service.WithPositions(model.QB, model.DEF),
			}, opts...)
			svc, err := service.New(league, rankings, store, opts...)
			So(err, ShouldBeNil)
			return svc
		}

		Convey("When analysing the current week", func() {
			res, err := newService().Analyze(ctx, service.Request{})

			Convey("Then the period comes from the league state", func() {
				So(err, ShouldBeNil)
				So(res.Season, ShouldEqual, 2024)
				So(res.Week, ShouldEqual, 5)
				So(res.RunID, ShouldNotBeEmpty)
				So(league.stateCalls.Load(), ShouldEqual, 1)
			})

			Convey("Then the catalog is downloaded and stored", func() {
				So(league.syncCalls.Load(), ShouldEqual, 1)
				So(store.Exists(ctx), ShouldBeTrue)
			})

			Convey("Then the bench quarterback outranks the starter", func() {
				So(res.Lineup, ShouldHaveLength, 2)
				So(res.Lineup[0].Position, ShouldEqual, model.QB)
				So(res.Lineup[0].Advisories, ShouldHaveLength, 1)
				a := res.Lineup[0].Advisories[0]
				So(a.Kind, ShouldEqual, advisory.KindBenchOutranksStarter)
				So(a.Player.ID, ShouldEqual, "2")
				So(a.Starter.ID, ShouldEqual, "1")
				So(res.Lineup[1].Advisories, ShouldBeEmpty)
			})

			Convey("Then the free agent outranks the starter only", func() {
				So(res.Available, ShouldHaveLength, 1)
				So(res.Available[0].Player.ID, ShouldEqual, "1")
				So(res.Available[0].Candidates, ShouldHaveLength, 1)
				So(res.Available[0].Candidates[0].ID, ShouldEqual, "3")
			})

			Convey("Then the unknown identifier is skipped", func() {
				So(res.Skipped, ShouldHaveLength, 1)
				So(res.Skipped[0].ID, ShouldEqual, "99")
				So(res.Skipped[0].Reason, ShouldEqual, model.SkipMissingIdentity)
				So(res.Roster.Players, ShouldHaveLength, 3)
			})

			Convey("Then the pool drops unsupported positions", func() {
				So(res.Pool.Size, ShouldEqual, 1)
				So(res.Pool.Unsupported, ShouldEqual, 1)
			})
		})

		Convey("When the period is pinned and the catalog already stored", func() {
			So(store.Save(ctx, []byte(playersJSON)), ShouldBeNil)

			res, err := newService(service.WithPeriod(2023, 11)).Analyze(ctx, service.Request{Week: 12})

			Convey("Then the request overrides the configured week", func() {
				So(err, ShouldBeNil)
				So(res.Season, ShouldEqual, 2023)
				So(res.Week, ShouldEqual, 12)
				So(league.stateCalls.Load(), ShouldEqual, 0)
				So(league.syncCalls.Load(), ShouldEqual, 0)
			})
		})

		Convey("When the owner's roster has nothing to report", func() {
			res, err := newService(service.WithLeague("L1", "u2")).Analyze(ctx, service.Request{})
			So(err, ShouldBeNil)
			data, err := json.Marshal(res)
			So(err, ShouldBeNil)

			Convey("Then empty lists still encode as arrays", func() {
				So(string(data), ShouldContainSubstring, `"available":[]`)
				So(string(data), ShouldContainSubstring, `"skipped":[]`)
				So(string(data), ShouldContainSubstring, `"advisories":[]`)
			})
		})

		Convey("When the owner has no roster", func() {
			_, err := newService(service.WithLeague("L1", "nobody")).Analyze(ctx, service.Request{})

			Convey("Then ErrOwnerNotFound is returned", func() {
				So(errors.Is(err, service.ErrOwnerNotFound), ShouldBeTrue)
			})
		})

		Convey("When a ranking feed fails", func() {
			rankings.fail = model.DEF

			_, err := newService().Analyze(ctx, service.Request{})

			Convey("Then the run fails as an upstream error", func() {
				So(errors.Is(err, service.ErrUpstream), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "DEF rankings")
			})
		})

		Convey("When the request is negative", func() {
			_, err := newService().Analyze(ctx, service.Request{Week: -1})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, service.ErrInvalidRequest), ShouldBeTrue)
			})
		})

		Convey("When syncing players explicitly", func() {
			n, err := newService().SyncPlayers(ctx)

			Convey("Then the snapshot is stored", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 6)
				data, err := store.Load(ctx)
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, playersJSON)
			})
		})

		Convey("When the league service is down", func() {
			league.err = errors.New("boom")

			_, err := newService().SyncPlayers(ctx)

			Convey("Then the sync fails as an upstream error", func() {
				So(errors.Is(err, service.ErrUpstream), ShouldBeTrue)
				So(store.Exists(ctx), ShouldBeFalse)
			})
		})
	})
}
