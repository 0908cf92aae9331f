package nba

import (
	"context"
	"sync"
	"time"

	"github.com/21javi21/corderos-app/logging"
)

// Board cache keys.
const (
	cacheKeyTeams = "team_board"
	cacheKeyMVP   = "mvp_ladder"
	cacheKeyROY   = "roy_ladder"
)

// Service assembles the tracker boards, memoizing each one so a page
// reload does not hammer the upstream. A failed fetch degrades to an
// empty board and is not cached; only successes are remembered.
type Service struct {
	client *Client
	cache  *cache
}

// NewService wraps the client with a board cache of the given TTL.
func NewService(client *Client, ttl time.Duration) *Service {
	return &Service{client: client, cache: newCache(ttl)}
}

// TrackerResponse is the whole NBA page in one payload.
type TrackerResponse struct {
	Season string        `json:"season"`
	Teams  []TeamStat    `json:"teams"`
	MVP    []LadderEntry `json:"mvp"`
	ROY    []LadderEntry `json:"roy"`
}

// Tracker fetches the three boards concurrently, the way the page loads
// them.
func (s *Service) Tracker(ctx context.Context) TrackerResponse {
	resp := TrackerResponse{Season: s.client.Season()}
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); resp.Teams = s.TeamBoard(ctx) }()
	go func() { defer wg.Done(); resp.MVP = s.MVPBoard(ctx) }()
	go func() { defer wg.Done(); resp.ROY = s.ROYBoard(ctx) }()
	wg.Wait()
	return resp
}

// TeamBoard returns the ten best teams by net rating.
func (s *Service) TeamBoard(ctx context.Context) []TeamStat {
	if v, ok := s.cache.get(cacheKeyTeams); ok {
		return v.([]TeamStat)
	}
	teams, err := s.client.TeamAdvanced(ctx)
	if err != nil {
		logging.Log.Warnf("team board unavailable: %v", err)
		return []TeamStat{}
	}
	board := TopTeams(teams)
	s.cache.set(cacheKeyTeams, board)
	return board
}

// MVPBoard returns the MVP ladder. It needs the player dashboard and the
// standings; either one failing empties the board for this round.
func (s *Service) MVPBoard(ctx context.Context) []LadderEntry {
	if v, ok := s.cache.get(cacheKeyMVP); ok {
		return v.([]LadderEntry)
	}
	players, err := s.client.PlayerStats(ctx, false)
	if err != nil {
		logging.Log.Warnf("mvp ladder unavailable: %v", err)
		return []LadderEntry{}
	}
	standings, err := s.client.Standings(ctx)
	if err != nil {
		logging.Log.Warnf("mvp ladder unavailable: %v", err)
		return []LadderEntry{}
	}
	winPct := make(map[uint]float64, len(standings))
	for _, row := range standings {
		winPct[row.TeamID] = row.WinPct
	}
	board := MVPLadder(players, winPct)
	s.cache.set(cacheKeyMVP, board)
	return board
}

// ROYBoard returns the rookie-of-the-year ladder.
func (s *Service) ROYBoard(ctx context.Context) []LadderEntry {
	if v, ok := s.cache.get(cacheKeyROY); ok {
		return v.([]LadderEntry)
	}
	rookies, err := s.client.PlayerStats(ctx, true)
	if err != nil {
		logging.Log.Warnf("roy ladder unavailable: %v", err)
		return []LadderEntry{}
	}
	board := ROYLadder(rookies)
	s.cache.set(cacheKeyROY, board)
	return board
}
