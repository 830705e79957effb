package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
)

func setupViewsTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db
}

func blogView(id, title string) models.ViewRecord {
	return models.ViewRecord{
		Type:  models.ViewTypeBlog,
		ID:    id,
		Title: title,
		URL:   "/blog/" + id,
	}
}

func TestRecordView_CreatesUserOnFirstRecord(t *testing.T) {
	setupViewsTestDB(t)

	err := RecordView("views-new-user", blogView("b1", "First"))
	assert.NoError(t, err)

	var user models.User
	err = database.DB.First(&user, "id = ?", "views-new-user").Error
	assert.NoError(t, err)
	assert.Len(t, []models.ViewRecord(user.RecentViews), 1)
}

func TestRecordView_CreatesSecondUserWithoutEmail(t *testing.T) {
	setupViewsTestDB(t)

	// Tracker-minted rows carry no email; two of them must coexist.
	assert.NoError(t, RecordView("views-first-minted", blogView("b1", "One")))
	assert.NoError(t, RecordView("views-second-minted", blogView("b1", "One")))

	views, err := ListViews("views-second-minted")
	assert.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestRecordView_NewestFirst(t *testing.T) {
	setupViewsTestDB(t)

	RecordView("views-order", blogView("b1", "One"))
	RecordView("views-order", blogView("b2", "Two"))
	RecordView("views-order", blogView("b3", "Three"))

	views, err := ListViews("views-order")
	assert.NoError(t, err)
	if assert.Len(t, views, 3) {
		assert.Equal(t, "b3", views[0].ID)
		assert.Equal(t, "b2", views[1].ID)
		assert.Equal(t, "b1", views[2].ID)
	}
}

func TestRecordView_DedupesAndMovesToFront(t *testing.T) {
	setupViewsTestDB(t)

	RecordView("views-dedupe", blogView("b1", "Old Title"))
	RecordView("views-dedupe", blogView("b2", "Other"))
	RecordView("views-dedupe", blogView("b1", "New Title"))

	views, err := ListViews("views-dedupe")
	assert.NoError(t, err)
	if assert.Len(t, views, 2) {
		assert.Equal(t, "b1", views[0].ID)
		assert.Equal(t, "New Title", views[0].Title)
		assert.Equal(t, "b2", views[1].ID)
	}
}

func TestRecordView_SameIDDifferentTypeKeepsBoth(t *testing.T) {
	setupViewsTestDB(t)

	RecordView("views-types", blogView("shared", "Blog"))
	RecordView("views-types", models.ViewRecord{
		Type:  models.ViewTypeRecipe,
		ID:    "shared",
		Title: "Recipe",
		URL:   "/recipe/shared",
	})

	views, err := ListViews("views-types")
	assert.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestRecordView_EvictsOldestAtCap(t *testing.T) {
	setupViewsTestDB(t)

	for i := 0; i <= MaxRecentViews; i++ {
		id := fmt.Sprintf("b%d", i)
		err := RecordView("views-cap", blogView(id, "Post "+id))
		assert.NoError(t, err)
	}

	views, err := ListViews("views-cap")
	assert.NoError(t, err)
	if assert.Len(t, views, MaxRecentViews) {
		// b0 was the oldest and should be gone.
		assert.Equal(t, fmt.Sprintf("b%d", MaxRecentViews), views[0].ID)
		for _, v := range views {
			assert.NotEqual(t, "b0", v.ID)
		}
	}
}

func TestRecordView_AssignsServerTimestamp(t *testing.T) {
	setupViewsTestDB(t)

	stale := blogView("b1", "Stale")
	stale.ViewedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	RecordView("views-ts", stale)

	views, _ := ListViews("views-ts")
	if assert.Len(t, views, 1) {
		assert.True(t, views[0].ViewedAt.After(time.Now().Add(-time.Minute)))
	}
}

func TestListViews_EmptyForUnknownUser(t *testing.T) {
	setupViewsTestDB(t)

	views, err := ListViews("views-nobody")
	assert.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestRemoveView_NoopWhenAbsent(t *testing.T) {
	setupViewsTestDB(t)

	RecordView("views-remove", blogView("b1", "Keep"))

	err := RemoveView("views-remove", models.ViewTypeBlog, "missing")
	assert.NoError(t, err)

	views, _ := ListViews("views-remove")
	assert.Len(t, views, 1)
}

func TestRemoveView_UnknownUserFails(t *testing.T) {
	setupViewsTestDB(t)

	err := RemoveView("views-remove-nobody", models.ViewTypeBlog, "b1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClearViews(t *testing.T) {
	setupViewsTestDB(t)

	RecordView("views-clear", blogView("b1", "One"))
	RecordView("views-clear", blogView("b2", "Two"))

	err := ClearViews("views-clear")
	assert.NoError(t, err)

	views, _ := ListViews("views-clear")
	assert.Empty(t, views)
}
