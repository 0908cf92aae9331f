package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://stats.nba.com/stats"

	// The upstream gets very slow under load; better to give up and
	// serve an empty board than to hang a page load.
	requestTimeout = 6 * time.Second
)

// statsPayload mirrors the tabular envelope stats.nba.com returns.
type statsPayload struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// table is one decoded result set with a header lookup.
type table struct {
	index map[string]int
	rows  [][]any
}

func newTable(rs resultSet) *table {
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[h] = i
	}
	return &table{index: idx, rows: rs.RowSet}
}

func (t *table) float(row []any, column string) (float64, bool) {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return 0, false
	}
	v, ok := row[i].(float64)
	return v, ok
}

func (t *table) uint(row []any, column string) (uint, bool) {
	v, ok := t.float(row, column)
	if !ok || v < 0 {
		return 0, false
	}
	return uint(v), true
}

func (t *table) int(row []any, column string) int {
	v, _ := t.float(row, column)
	return int(v)
}

func (t *table) str(row []any, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	v, _ := row[i].(string)
	return v
}

// TeamStat carries the advanced team metrics shown on the tracker board.
type TeamStat struct {
	TeamID       uint    `json:"teamId"`
	Name         string  `json:"name"`
	Games        int     `json:"gp"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinPct       float64 `json:"winPct"`
	OffRating    float64 `json:"offRating"`
	DefRating    float64 `json:"defRating"`
	NetRating    float64 `json:"netRating"`
	Pace         float64 `json:"pace"`
	TrueShooting float64 `json:"tsPct"`
	EffectiveFG  float64 `json:"efgPct"`
}

// PlayerStat carries the per-game player line the award ladders rank on.
type PlayerStat struct {
	PlayerID     uint    `json:"playerId"`
	Name         string  `json:"name"`
	TeamID       uint    `json:"teamId"`
	Team         string  `json:"team"`
	Games        int     `json:"gp"`
	Points       float64 `json:"pts"`
	Assists      float64 `json:"ast"`
	Rebounds     float64 `json:"reb"`
	TrueShooting float64 `json:"tsPct"`
}

// StandingRow is one line of the league standings.
type StandingRow struct {
	TeamID     uint    `json:"teamId"`
	City       string  `json:"city"`
	Name       string  `json:"name"`
	Conference string  `json:"conference"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinPct     float64 `json:"winPct"`
}

// Client talks to the public stats.nba.com endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	season     string
}

// NewClient builds a client for one season. An empty baseURL targets the
// real upstream.
func NewClient(baseURL, season string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		season:     season,
	}
}

// Season returns the season the client queries, in "2025-26" form.
func (c *Client) Season() string {
	return c.season
}

func (c *Client) baseParams() url.Values {
	return url.Values{
		"LeagueID":   {"00"},
		"Season":     {c.season},
		"SeasonType": {"Regular Season"},
	}
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (*table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	// The origin rejects clients that do not look like a browser.
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", endpoint, resp.StatusCode)
	}
	var payload statsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	if len(payload.ResultSets) == 0 {
		return nil, fmt.Errorf("decode %s: no result sets", endpoint)
	}
	return newTable(payload.ResultSets[0]), nil
}

// TeamAdvanced returns the per-game advanced metrics of every team.
func (c *Client) TeamAdvanced(ctx context.Context) ([]TeamStat, error) {
	params := c.baseParams()
	params.Set("MeasureType", "Advanced")
	params.Set("PerMode", "PerGame")
	tbl, err := c.fetch(ctx, "leaguedashteamstats", params)
	if err != nil {
		return nil, err
	}
	stats := make([]TeamStat, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		id, ok := tbl.uint(row, "TEAM_ID")
		if !ok {
			continue
		}
		ts := TeamStat{
			TeamID: id,
			Name:   tbl.str(row, "TEAM_NAME"),
			Games:  tbl.int(row, "GP"),
			Wins:   tbl.int(row, "W"),
			Losses: tbl.int(row, "L"),
		}
		ts.WinPct, _ = tbl.float(row, "W_PCT")
		ts.OffRating, _ = tbl.float(row, "OFF_RATING")
		ts.DefRating, _ = tbl.float(row, "DEF_RATING")
		ts.NetRating, _ = tbl.float(row, "NET_RATING")
		ts.Pace, _ = tbl.float(row, "PACE")
		ts.TrueShooting, _ = tbl.float(row, "TS_PCT")
		ts.EffectiveFG, _ = tbl.float(row, "EFG_PCT")
		stats = append(stats, ts)
	}
	return stats, nil
}

// PlayerStats returns the per-game line of every player, or of the
// rookie class only.
func (c *Client) PlayerStats(ctx context.Context, rookiesOnly bool) ([]PlayerStat, error) {
	params := c.baseParams()
	params.Set("MeasureType", "Advanced")
	params.Set("PerMode", "PerGame")
	if rookiesOnly {
		params.Set("PlayerExperience", "Rookie")
	}
	tbl, err := c.fetch(ctx, "leaguedashplayerstats", params)
	if err != nil {
		return nil, err
	}
	stats := make([]PlayerStat, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		id, ok := tbl.uint(row, "PLAYER_ID")
		if !ok {
			continue
		}
		ps := PlayerStat{
			PlayerID: id,
			Name:     tbl.str(row, "PLAYER_NAME"),
			Team:     tbl.str(row, "TEAM_ABBREVIATION"),
			Games:    tbl.int(row, "GP"),
		}
		ps.TeamID, _ = tbl.uint(row, "TEAM_ID")
		ps.Points, _ = tbl.float(row, "PTS")
		ps.Assists, _ = tbl.float(row, "AST")
		ps.Rebounds, _ = tbl.float(row, "REB")
		ps.TrueShooting, _ = tbl.float(row, "TS_PCT")
		stats = append(stats, ps)
	}
	return stats, nil
}

// Standings returns the league standings.
func (c *Client) Standings(ctx context.Context) ([]StandingRow, error) {
	tbl, err := c.fetch(ctx, "leaguestandingsv3", c.baseParams())
	if err != nil {
		return nil, err
	}
	rows := make([]StandingRow, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		id, ok := tbl.uint(row, "TeamID")
		if !ok {
			continue
		}
		sr := StandingRow{
			TeamID:     id,
			City:       tbl.str(row, "TeamCity"),
			Name:       tbl.str(row, "TeamName"),
			Conference: tbl.str(row, "Conference"),
			Wins:       tbl.int(row, "WINS"),
			Losses:     tbl.int(row, "LOSSES"),
		}
		sr.WinPct, _ = tbl.float(row, "WinPCT")
		rows = append(rows, sr)
	}
	return rows, nil
}
