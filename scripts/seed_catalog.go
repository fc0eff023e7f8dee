// scripts/seed_catalog.go
//
// Seeds the read-only catalog tables (games, inventories, guides) so a
// fresh database has something to serve. Safe to re-run: existing rows
// are left alone.
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/config"
	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/models"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	database.Connect(cfg)

	games := []models.Game{
		{
			Title:       "Treasure hunt",
			Subtitle:    "Follow the clues",
			Type:        "active",
			TimeDisplay: "15-30 min",
			Description: "Hide a small toy and leave paper-arrow clues around the room.",
			Ages:        "3-4,5-7",
			Time:        "15-30",
			DoorType:    "indoor",
			EnergyLevel: "medium",
			Stuff:       "yes",
		},
		{
			Title:       "Shadow tag",
			Subtitle:    "Catch me if you can",
			Type:        "active",
			TimeDisplay: "5-15 min",
			Description: "Tag by stepping on each other's shadows instead of touching.",
			Ages:        "5-7,8-10",
			Time:        "5-15",
			DoorType:    "outdoor",
			EnergyLevel: "high",
			Stuff:       "no",
		},
		{
			Title:       "Story cubes",
			Subtitle:    "One story together",
			Type:        "calm",
			TimeDisplay: "15-30 min",
			Description: "Roll picture dice and build one story together, a cube per turn.",
			Ages:        "3-4,5-7,8-10",
			Time:        "15-30",
			DoorType:    "indoor",
			EnergyLevel: "low",
			Stuff:       "yes",
		},
	}

	inventories := map[string][]string{
		"Treasure hunt": {"A small toy", "Paper and a pen for clues"},
		"Story cubes":   {"Picture dice or cards"},
	}

	guides := []models.Guide{
		{
			Name:        "First tooth care",
			Description: "Start brushing as soon as the first tooth shows, twice a day.",
			Category:    "Health",
		},
		{
			Name:        "Bedtime routine",
			Description: "A fixed order of calm steps helps a child fall asleep on their own.",
			Category:    "Sleep",
		},
		{
			Name:        "Picky eating",
			Description: "Offer a new food alongside a familiar one; no pressure to finish.",
			Category:    "Nutrition",
		},
	}

	var seededGames, seededGuides int

	for _, g := range games {
		var existing models.Game
		err := database.DB.Where("title = ?", g.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query games: %v", err)
		}
		if err := database.DB.Create(&g).Error; err != nil {
			log.Fatalf("failed to insert game %q: %v", g.Title, err)
		}
		for _, item := range inventories[g.Title] {
			inv := models.Inventory{GameID: g.ID, Name: item}
			if err := database.DB.Create(&inv).Error; err != nil {
				log.Fatalf("failed to insert inventory for %q: %v", g.Title, err)
			}
		}
		seededGames++
	}

	for _, g := range guides {
		var existing models.Guide
		err := database.DB.Where("name = ?", g.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query guides: %v", err)
		}
		if err := database.DB.Create(&g).Error; err != nil {
			log.Fatalf("failed to insert guide %q: %v", g.Name, err)
		}
		seededGuides++
	}

	fmt.Printf("catalog seeded: %d games, %d guides\n", seededGames, seededGuides)
}
