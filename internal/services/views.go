package services

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
)

// MaxRecentViews bounds a user's recently-viewed list. The oldest
// entries are evicted once the cap is reached.
const MaxRecentViews = 50

// RecordView inserts a view at the front of the user's list, removing
// any existing entry with the same (type, id) first, and rewrites the
// whole list. The timestamp is assigned here, never taken from the
// client. Creates the user row if it does not exist yet.
//
// This is an unguarded read-modify-write: two concurrent RecordView
// calls for the same user can each read the same prior list and one
// write wins. Callers treat tracking as best-effort and must log,
// never propagate, the returned error.
func RecordView(userID string, view models.ViewRecord) error {
	view.ViewedAt = time.Now().UTC()

	var user models.User
	err := database.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:          userID,
			RecentViews: datatypes.NewJSONSlice([]models.ViewRecord{view}),
		}
		return database.DB.Create(&user).Error
	}
	if err != nil {
		return err
	}

	current := []models.ViewRecord(user.RecentViews)
	updated := make([]models.ViewRecord, 0, len(current)+1)
	updated = append(updated, view)
	for _, v := range current {
		if v.Type == view.Type && v.ID == view.ID {
			continue
		}
		updated = append(updated, v)
	}
	if len(updated) > MaxRecentViews {
		updated = updated[:MaxRecentViews]
	}

	return database.DB.Model(&user).
		Update("recent_views", datatypes.NewJSONSlice(updated)).Error
}

// ListViews returns the stored list verbatim. A missing user row is an
// empty list, not an error.
func ListViews(userID string) ([]models.ViewRecord, error) {
	var user models.User
	err := database.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.ViewRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if user.RecentViews == nil {
		return []models.ViewRecord{}, nil
	}
	return []models.ViewRecord(user.RecentViews), nil
}

// RemoveView filters out the entry matching (type, id) and persists the
// remainder. Removing an absent entry is a no-op.
func RemoveView(userID string, viewType models.ViewType, viewID string) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	current := []models.ViewRecord(user.RecentViews)
	updated := make([]models.ViewRecord, 0, len(current))
	for _, v := range current {
		if v.Type == viewType && v.ID == viewID {
			continue
		}
		updated = append(updated, v)
	}

	return database.DB.Model(&user).
		Update("recent_views", datatypes.NewJSONSlice(updated)).Error
}

// ClearViews replaces the list with empty, unconditionally.
func ClearViews(userID string) error {
	return database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("recent_views", datatypes.NewJSONSlice([]models.ViewRecord{})).Error
}
