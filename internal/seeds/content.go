package seeds

import (
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/pkg/utils"
)

// SeedContent inserts sample blogs and recipes owned by the admin.
// Idempotent: skips seeding when any content already exists.
func SeedContent(admin models.User) error {
	var count int64
	database.DB.Model(&models.Blog{}).Count(&count)
	if count > 0 {
		log.Println("   Content already present, skipping")
		return nil
	}

	now := time.Now()

	blogs := []models.Blog{
		{
			ID:        utils.GenerateID(),
			Title:     "Five Mobility Drills Before Every Session",
			ShortDesc: "A ten minute warm-up routine that actually sticks.",
			Content:   "Start with ankle circles and deep squat holds...",
			Status:    models.StatusPublished,
			Date:      now.Format("2006-01-02"),
			Image:     "https://placehold.co/600x400/3d3d3d/ffffff?text=Blog+Image",
			Author:    admin.Email,
			AuthorID:  admin.ID,
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        utils.GenerateID(),
			Title:     "Progressive Overload, Explained Simply",
			ShortDesc: "Why adding five pounds a week beats maxing out.",
			Content:   "The principle behind every strength program...",
			Status:    models.StatusPublished,
			Date:      now.Format("2006-01-02"),
			Image:     "https://placehold.co/600x400/3d3d3d/ffffff?text=Blog+Image",
			Author:    admin.Email,
			AuthorID:  admin.ID,
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        utils.GenerateID(),
			Title:     "Draft: Training Through a Deload Week",
			ShortDesc: "Work in progress.",
			Content:   "Outline only.",
			Status:    models.StatusDraft,
			Date:      now.Format("2006-01-02"),
			Image:     "https://placehold.co/600x400/3d3d3d/ffffff?text=Blog+Image",
			Author:    admin.Email,
			AuthorID:  admin.ID,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for i := range blogs {
		if err := database.DB.Create(&blogs[i]).Error; err != nil {
			return err
		}
	}

	recipe := models.Recipe{
		ID:           utils.GenerateID(),
		Title:        "Post-Workout Protein Pancakes",
		ShortDesc:    "Four ingredients, one pan, thirty grams of protein.",
		Content:      "Blend everything, rest the batter, cook on medium heat.",
		Status:       models.StatusPublished,
		Date:         now.Format("2006-01-02"),
		Image:        "https://placehold.co/600x400/3d3d3d/ffffff?text=Recipe+Image",
		Author:       admin.Email,
		AuthorID:     admin.ID,
		PrepTime:     "5 min",
		CookTime:     "10 min",
		Servings:     "2",
		Category:     "breakfast",
		Ingredients:  datatypes.NewJSONSlice([]string{"2 eggs", "1 banana", "1 scoop whey", "1/2 cup oats"}),
		Instructions: datatypes.NewJSONSlice([]string{"Blend all ingredients", "Rest batter 5 minutes", "Cook 2-3 minutes per side"}),
		Tags:         datatypes.NewJSONSlice([]string{"high-protein", "breakfast", "quick"}),
		CreatedAt:    now.Add(-12 * time.Hour),
		UpdatedAt:    now.Add(-12 * time.Hour),
	}
	if err := database.DB.Create(&recipe).Error; err != nil {
		return err
	}

	log.Printf("   Seeded %d blogs and 1 recipe", len(blogs))
	return nil
}

// SeedGroups inserts one starter community group with the admin as its
// first member.
func SeedGroups(admin models.User) error {
	var count int64
	database.DB.Model(&models.Group{}).Count(&count)
	if count > 0 {
		return nil
	}

	group := models.Group{
		ID:             utils.GenerateID(),
		Name:           "Morning Lifters",
		Description:    "Early sessions, form checks, accountability.",
		Category:       "strength",
		Image:          "https://placehold.co/400x300/3b82f6/ffffff?text=Fitness+Group",
		CreatedBy:      admin.ID,
		CreatedByEmail: admin.Email,
		CreatedAt:      time.Now(),
	}
	if err := database.DB.Create(&group).Error; err != nil {
		return err
	}

	member := models.GroupMember{
		GroupID:   group.ID,
		UserID:    admin.ID,
		UserEmail: admin.Email,
		JoinedAt:  time.Now(),
	}
	if err := database.DB.Create(&member).Error; err != nil {
		return err
	}

	log.Println("   Seeded starter group")
	return nil
}
