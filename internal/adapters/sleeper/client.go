// Package sleeper reads league, roster and player data from the Sleeper API.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/okian/lineup/internal/adapters/upstream"
	"github.com/okian/lineup/internal/domain/model"
)

// DefaultBaseURL is the public Sleeper API root.
const DefaultBaseURL = "https://api.sleeper.app/v1"

// Client is a thin Sleeper API wrapper.
type Client struct {
	base string
	http *upstream.Client
}

// NewClient creates a Client rooted at baseURL.
func NewClient(baseURL string, http *upstream.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), http: http}
}

// State returns the current NFL season and week.
func (c *Client) State(ctx context.Context) (State, error) {
	var raw stateResponse
	if err := c.http.GetJSON(ctx, c.base+"/state/nfl", nil, &raw); err != nil {
		return State{}, err
	}
	season, err := strconv.Atoi(raw.Season)
	if err != nil {
		return State{}, fmt.Errorf("%w: %q", ErrBadSeason, raw.Season)
	}
	return State{Season: season, Week: raw.Week, SeasonType: raw.SeasonType}, nil
}

// Rosters returns every roster in the league. Null player lists become
// empty and unfilled starter slots are dropped.
func (c *Client) Rosters(ctx context.Context, leagueID string) ([]model.LeagueRoster, error) {
	if leagueID == "" {
		return nil, ErrEmptyLeagueID
	}
	var raw []rosterResponse
	if err := c.http.GetJSON(ctx, c.base+"/league/"+url.PathEscape(leagueID)+"/rosters", nil, &raw); err != nil {
		return nil, err
	}

	out := make([]model.LeagueRoster, 0, len(raw))
	for _, r := range raw {
		lr := model.LeagueRoster{
			RosterID: r.RosterID,
			Players:  append([]string{}, r.Players...),
			Starters: make([]string, 0, len(r.Starters)),
		}
		if r.OwnerID != nil {
			lr.OwnerID = *r.OwnerID
		}
		for _, id := range r.Starters {
			if id != emptySlot && id != "" {
				lr.Starters = append(lr.Starters, id)
			}
		}
		out = append(out, lr)
	}
	return out, nil
}

// PlayersRaw downloads the full player catalog as raw JSON. The payload is
// large (several MB) and meant to be persisted, not fetched per run.
func (c *Client) PlayersRaw(ctx context.Context) ([]byte, error) {
	return c.http.Get(ctx, c.base+"/players/nfl", nil)
}

// DecodePlayers parses a raw player catalog into identities ordered by id.
// A missing active flag is treated as active.
func DecodePlayers(data []byte) ([]model.PlayerIdentity, error) {
	var raw map[string]playerRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode sleeper players: %w", err)
	}

	out := make([]model.PlayerIdentity, 0, len(raw))
	for id, p := range raw {
		active := true
		if p.Active != nil {
			active = *p.Active
		}
		out = append(out, model.PlayerIdentity{
			ID:          id,
			DisplayName: p.FullName,
			Team:        p.Team,
			Position:    model.ParsePosition(p.Position),
			RawPosition: p.Position,
			Active:      active,
			Status:      p.Status,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
