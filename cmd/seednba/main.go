package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/21javi21/corderos-app/internal/nba"
	"github.com/21javi21/corderos-app/internal/platform/config"
	"github.com/21javi21/corderos-app/internal/platform/database"
	"github.com/21javi21/corderos-app/logging"
)

// Refreshes the local NBA directory (teams and players) from the
// upstream stats API. Meant for a cron or a manual run before game
// nights; reruns upsert in place.
func main() {
	_ = godotenv.Load()
	logging.Bootstrap()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Log.Fatalf("failed to load config: %v", err)
	}
	database.InitDB()
	if err := nba.Migrate(database.DB); err != nil {
		logging.Log.Fatalf("migration failed: %v", err)
	}

	client := nba.NewClient(cfg.NBA.BaseURL, cfg.NBA.Season)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	standings, err := client.Standings(ctx)
	if err != nil {
		logging.Log.Fatalf("failed to fetch standings: %v", err)
	}
	teams := make([]nba.Team, 0, len(standings))
	for _, row := range standings {
		teams = append(teams, nba.Team{
			ID:         row.TeamID,
			City:       row.City,
			Name:       row.Name,
			Conference: row.Conference,
			Wins:       row.Wins,
			Losses:     row.Losses,
		})
	}
	if err := nba.UpsertTeams(database.DB, teams); err != nil {
		logging.Log.Fatalf("failed to store teams: %v", err)
	}

	stats, err := client.PlayerStats(ctx, false)
	if err != nil {
		logging.Log.Fatalf("failed to fetch players: %v", err)
	}
	players := make([]nba.Player, 0, len(stats))
	for _, ps := range stats {
		players = append(players, nba.Player{
			ID:     ps.PlayerID,
			Name:   ps.Name,
			TeamID: ps.TeamID,
			Team:   ps.Team,
		})
	}
	if err := nba.UpsertPlayers(database.DB, players); err != nil {
		logging.Log.Fatalf("failed to store players: %v", err)
	}

	logging.Log.Infof("nba directory refreshed: %d teams, %d players (season %s)",
		len(teams), len(players), cfg.NBA.Season)
}
