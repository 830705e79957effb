package seeds

import (
	"log"
	"time"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
)

// GetOrCreateAdminUser ensures one admin account exists. Login requires
// a pre-existing user row, so the seeder has to mint it.
func GetOrCreateAdminUser() (models.User, error) {
	log.Println("Checking admin user...")

	email := "admin@fitness-web.dev"

	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		log.Printf("   Admin user found: %s", user.Email)
		return user, nil
	}

	user = models.User{
		ID:        "seed-admin",
		Email:     email,
		Name:      "Fitness Web Team",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	log.Printf("   Created admin user: %s", user.Email)
	return user, nil
}

// GetOrCreateDemoUser ensures a regular demo account exists.
func GetOrCreateDemoUser() (models.User, error) {
	email := "demo@fitness-web.dev"

	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}

	user = models.User{
		ID:        "seed-demo",
		Email:     email,
		Name:      "Demo Member",
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	log.Printf("   Created demo user: %s", user.Email)
	return user, nil
}
