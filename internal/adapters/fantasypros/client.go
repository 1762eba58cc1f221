// Package fantasypros reads weekly expert-consensus rankings.
package fantasypros

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/lineup/internal/adapters/upstream"
	"github.com/okian/lineup/internal/domain/model"
)

// DefaultBaseURL is the FantasyPros NFL API root.
const DefaultBaseURL = "https://api.fantasypros.com/v2/json/nfl"

// Client fetches consensus rankings.
type Client struct {
	base   string
	apiKey string
	http   *upstream.Client
}

// NewClient creates a Client rooted at baseURL.
func NewClient(baseURL, apiKey string, http *upstream.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), apiKey: apiKey, http: http}
}

type rankingsResponse struct {
	Players []struct {
		PlayerName   string      `json:"player_name"`
		PlayerTeamID string      `json:"player_team_id"`
		RankECR      json.Number `json:"rank_ecr"`
	} `json:"players"`
}

// feedPosition maps a position to the FantasyPros position id.
func feedPosition(p model.Position) (string, error) {
	switch p {
	case model.QB, model.RB, model.WR, model.TE, model.K:
		return string(p), nil
	case model.DEF:
		return "DST", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPosition, p)
	}
}

// Rankings returns the weekly consensus list for one position in feed
// order. Team-based positions carry the team code; others the player name.
// Rows without a rank are dropped.
func (c *Client) Rankings(ctx context.Context, pos model.Position, season, week int, scoring string) ([]model.RankingEntry, error) {
	feedPos, err := feedPosition(pos)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("experts", "available")
	q.Set("position", feedPos)
	q.Set("scoring", scoring)
	q.Set("type", "weekly")
	q.Set("week", strconv.Itoa(week))
	endpoint := fmt.Sprintf("%s/%d/consensus-rankings?%s", c.base, season, q.Encode())

	header := http.Header{}
	header.Set("x-api-key", c.apiKey)

	var raw rankingsResponse
	if err := c.http.GetJSON(ctx, endpoint, header, &raw); err != nil {
		return nil, err
	}

	out := make([]model.RankingEntry, 0, len(raw.Players))
	for _, p := range raw.Players {
		if p.RankECR == "" {
			continue
		}
		rank, err := parseRank(p.RankECR)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q: %w", ErrBadRank, pos, p.PlayerName, err)
		}
		e := model.RankingEntry{Position: pos, Rank: rank, TeamCode: p.PlayerTeamID}
		if !pos.IsTeamBased() {
			e.Name = p.PlayerName
		}
		out = append(out, e)
	}
	return out, nil
}

// parseRank accepts integral ranks sent either as integers or as floats
// ("3" or "3.0"). Fractional ranks are rejected rather than rounded so that
// ties never appear by accident.
func parseRank(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("rank %s is not a whole number", n)
	}
	return int(f), nil
}
