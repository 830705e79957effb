package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Titan0-08/Fitness-Web/internal/models"
)

// Promotes an existing user to the admin role by email.
// Usage: promote_admin <email>
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: promote_admin <email>")
	}
	email := os.Args[1]

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=fitness_web port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Fatalf("User with email %s not found: %v", email, err)
	}

	user.Role = models.RoleAdmin
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update user role: %v", err)
	}

	fmt.Printf("Successfully promoted %s to admin.\n", user.Email)
}
