package postgres

import (
	"dashboard-service/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Upsert writes the full preferences record for a user, inserting on first
// write and replacing the mutable columns afterwards.
func (r *PreferenceRepository) Upsert(prefs *models.UserPreferences) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"language", "theme", "notifications", "updated_at"}),
	}).Create(prefs).Error
}

func (r *PreferenceRepository) FindByUserID(userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := r.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}
