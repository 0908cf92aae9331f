package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/21javi21/corderos-app/internal/platform/config"
	"github.com/21javi21/corderos-app/internal/platform/database"
	"github.com/21javi21/corderos-app/internal/villain"
	"github.com/21javi21/corderos-app/logging"
)

// Prints the current hall-of-hate standings to stdout. Handy for
// settling arguments without opening the app.
func main() {
	_ = godotenv.Load()
	logging.Bootstrap()

	if _, err := config.LoadConfig(); err != nil {
		logging.Log.Fatalf("failed to load config: %v", err)
	}
	database.InitDB()

	registry := villain.NewRegistry(database.DB)
	standings, err := registry.Standings()
	if err != nil {
		logging.Log.Fatalf("failed to read standings: %v", err)
	}

	var totalRatings int64
	if err := database.DB.Model(&villain.Rating{}).Count(&totalRatings).Error; err != nil {
		logging.Log.Fatalf("failed to count ratings: %v", err)
	}

	fmt.Println("=== Hall of Hate ===")
	fmt.Printf("%-4s %-24s %-8s %-7s %s\n", "#", "VILLAIN", "AVG", "VOTES", "FRAME")
	for i, s := range standings {
		avg := "  -"
		if s.Average.Valid {
			avg = fmt.Sprintf("%5.1f", s.Average.Float64)
		}
		fmt.Printf("%-4d %-24s %-8s %-7d %s\n", i+1, s.Name, avg, s.RatingCount, s.FrameType)
	}
	fmt.Printf("\n%d villains, %d ratings in total\n", len(standings), totalRatings)
}
