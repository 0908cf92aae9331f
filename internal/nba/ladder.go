package nba

import (
	"math"
	"sort"
)

// Weights of the MVP blend. Tuned by group argument, not by science.
const (
	mvpPointsWeight   = 1.0
	mvpAssistsWeight  = 1.2
	mvpReboundsWeight = 0.8
	mvpShootingWeight = 1.5
	mvpTeamWeight     = 1.8
)

// Weights of the ROY blend: raw production, no team factor.
const (
	royPointsWeight   = 1.0
	royAssistsWeight  = 1.0
	royReboundsWeight = 1.0
	royShootingWeight = 1.2
)

const ladderSize = 10

// neutralWinPct stands in for players whose team has no standings row
// (early-season trades, two-way contracts).
const neutralWinPct = 0.5

// zscores returns the population z-score of every value. A flat series
// (zero standard deviation) maps to all zeros instead of dividing by it.
func zscores(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(n))
	out := make([]float64, n)
	if std == 0 {
		return out
	}
	for i, v := range values {
		out[i] = (v - mean) / std
	}
	return out
}

// LadderEntry is one row of an award ladder.
type LadderEntry struct {
	PlayerID     uint    `json:"playerId"`
	Name         string  `json:"name"`
	Team         string  `json:"team"`
	Points       float64 `json:"pts"`
	Assists      float64 `json:"ast"`
	Rebounds     float64 `json:"reb"`
	TrueShooting float64 `json:"tsPct"`
	TeamWinPct   float64 `json:"teamWinPct,omitempty"`
	Score        float64 `json:"score"`
}

// MVPLadder ranks every player by the weighted z-score blend and keeps
// the top ten. teamWinPct maps team id to the team's current winning
// percentage; teams missing from it count as neutral (0.500).
func MVPLadder(players []PlayerStat, teamWinPct map[uint]float64) []LadderEntry {
	if len(players) == 0 {
		return []LadderEntry{}
	}
	pts := make([]float64, len(players))
	ast := make([]float64, len(players))
	reb := make([]float64, len(players))
	ts := make([]float64, len(players))
	wpct := make([]float64, len(players))
	for i, p := range players {
		pts[i], ast[i], reb[i], ts[i] = p.Points, p.Assists, p.Rebounds, p.TrueShooting
		if w, ok := teamWinPct[p.TeamID]; ok {
			wpct[i] = w
		} else {
			wpct[i] = neutralWinPct
		}
	}
	zp, za, zr := zscores(pts), zscores(ast), zscores(reb)
	zt, zw := zscores(ts), zscores(wpct)

	entries := make([]LadderEntry, len(players))
	for i, p := range players {
		entries[i] = LadderEntry{
			PlayerID:     p.PlayerID,
			Name:         p.Name,
			Team:         p.Team,
			Points:       p.Points,
			Assists:      p.Assists,
			Rebounds:     p.Rebounds,
			TrueShooting: p.TrueShooting,
			TeamWinPct:   wpct[i],
			Score: mvpPointsWeight*zp[i] +
				mvpAssistsWeight*za[i] +
				mvpReboundsWeight*zr[i] +
				mvpShootingWeight*zt[i] +
				mvpTeamWeight*zw[i],
		}
	}
	return top(entries)
}

// ROYLadder ranks the rookie class and keeps the top ten.
func ROYLadder(rookies []PlayerStat) []LadderEntry {
	if len(rookies) == 0 {
		return []LadderEntry{}
	}
	pts := make([]float64, len(rookies))
	ast := make([]float64, len(rookies))
	reb := make([]float64, len(rookies))
	ts := make([]float64, len(rookies))
	for i, p := range rookies {
		pts[i], ast[i], reb[i], ts[i] = p.Points, p.Assists, p.Rebounds, p.TrueShooting
	}
	zp, za, zr, zt := zscores(pts), zscores(ast), zscores(reb), zscores(ts)

	entries := make([]LadderEntry, len(rookies))
	for i, p := range rookies {
		entries[i] = LadderEntry{
			PlayerID:     p.PlayerID,
			Name:         p.Name,
			Team:         p.Team,
			Points:       p.Points,
			Assists:      p.Assists,
			Rebounds:     p.Rebounds,
			TrueShooting: p.TrueShooting,
			Score: royPointsWeight*zp[i] +
				royAssistsWeight*za[i] +
				royReboundsWeight*zr[i] +
				royShootingWeight*zt[i],
		}
	}
	return top(entries)
}

// top sorts best first, name as tiebreak, and trims to the ladder size.
func top(entries []LadderEntry) []LadderEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > ladderSize {
		entries = entries[:ladderSize]
	}
	return entries
}

// TopTeams keeps the ten best teams by net rating.
func TopTeams(teams []TeamStat) []TeamStat {
	sorted := make([]TeamStat, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].NetRating != sorted[j].NetRating {
			return sorted[i].NetRating > sorted[j].NetRating
		}
		return sorted[i].Name < sorted[j].Name
	})
	if len(sorted) > ladderSize {
		sorted = sorted[:ladderSize]
	}
	return sorted
}
