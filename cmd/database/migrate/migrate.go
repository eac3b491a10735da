package migration

import (
	"fmt"
	"log"
	"smart-pantry-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedSuggestion{}); err != nil {
		log.Fatalf("Error migrating saved suggestion database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HiddenSuggestion{}); err != nil {
		log.Fatalf("Error migrating hidden suggestion database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
