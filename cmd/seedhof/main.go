package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/21javi21/corderos-app/internal/platform/config"
	"github.com/21javi21/corderos-app/internal/platform/database"
	"github.com/21javi21/corderos-app/internal/villain"
	"github.com/21javi21/corderos-app/logging"
)

// seedVillain is one starter entry for an empty hall.
type seedVillain struct {
	name      string
	image     string
	frameType string
	raters    int
}

var seedVillains = []seedVillain{
	{"Scar", "scar.png", "gold", 4},
	{"Hans Gruber", "hans-gruber.png", "classic", 3},
	{"Dolores Umbridge", "umbridge.png", "inferno", 5},
	{"Joffrey Baratheon", "joffrey.png", "default", 5},
	{"El Rubius en Ruleta", "rubius.png", "default", 2},
}

// Seeds the hall of hate with a starter cast so a fresh install has
// something to argue about. Safe to rerun: existing names are skipped.
func main() {
	_ = godotenv.Load()
	logging.Bootstrap()

	if _, err := config.LoadConfig(); err != nil {
		logging.Log.Fatalf("failed to load config: %v", err)
	}
	database.InitDB()
	if err := villain.Migrate(database.DB); err != nil {
		logging.Log.Fatalf("migration failed: %v", err)
	}

	registry := villain.NewRegistry(database.DB)
	created, rated := 0, 0
	for _, seed := range seedVillains {
		v, err := registry.Create(seed.name, seed.image, seed.frameType)
		if errors.Is(err, villain.ErrDuplicateName) {
			logging.Log.Infof("skipping %q, already registered", seed.name)
			continue
		}
		if err != nil {
			logging.Log.Fatalf("failed to seed %q: %v", seed.name, err)
		}
		created++

		for i := 0; i < seed.raters; i++ {
			rater := fmt.Sprintf("cordero-%s", uuid.NewString()[:8])
			score := rand.Intn(villain.MaxScore-villain.MinScore+1) + villain.MinScore
			if _, err := registry.Rate(v.ID, rater, score); err != nil {
				logging.Log.Fatalf("failed to rate %q: %v", seed.name, err)
			}
			rated++
		}
	}

	logging.Log.Infof("hall of hate seeded: %d villains, %d ratings", created, rated)
}
