package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/config"
	"github.com/MriyaDevelopment/pumba-server/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate keeps the schema in sync. Shared with the test setup, which runs it
// against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Child{},
		&models.Memory{},
		&models.Reminder{},
		&models.Tooth{},
		&models.Game{},
		&models.Inventory{},
		&models.SaveGame{},
		&models.Guide{},
		&models.Code{},
	)
}
