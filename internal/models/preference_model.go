package models

import (
	"time"

	"gorm.io/gorm"
)

// UserPreferences is the per-user dashboard settings record. One row per
// user, written by upsert.
type UserPreferences struct {
	ID            uint           `gorm:"primaryKey" json:"-"`
	UserID        uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Language      string         `gorm:"type:varchar(8);default:'en'" json:"language"`
	Theme         string         `gorm:"type:varchar(16);default:'light'" json:"theme"`
	Notifications bool           `gorm:"default:true" json:"notifications"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	CreatedAt     time.Time      `json:"-"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// PreferencesRequest is the PUT body. All fields are required so a PUT is a
// full replacement of the record, matching upsert semantics.
type PreferencesRequest struct {
	Language      string `json:"language" binding:"required"`
	Theme         string `json:"theme" binding:"required,oneof=light dark"`
	Notifications bool   `json:"notifications"`
}
