package main

import (
	"log"

	"github.com/Titan0-08/Fitness-Web/internal/config"
	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("Running migrations (just in case)...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Recipe{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupMessage{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	admin, err := seeds.GetOrCreateAdminUser()
	if err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}

	if _, err := seeds.GetOrCreateDemoUser(); err != nil {
		log.Fatalf("Failed to ensure demo user: %v", err)
	}

	if err := seeds.SeedContent(admin); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	if err := seeds.SeedGroups(admin); err != nil {
		log.Fatalf("Failed to seed groups: %v", err)
	}

	log.Println("Seeding complete.")
}
