package migration

import (
	"Packlist-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CategoryItem{}); err != nil {
		log.Fatalf("Error migrating category item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Trip{}); err != nil {
		log.Fatalf("Error migrating trip database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TripCategory{}); err != nil {
		log.Fatalf("Error migrating trip category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.TripItem{}); err != nil {
		log.Fatalf("Error migrating trip item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
