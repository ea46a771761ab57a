package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile stores optional coaching preferences on top of the core
// onboarding fields. All preference fields are pointers so a PUT can
// distinguish "not provided" from a zero value.
type UserProfile struct {
	ID                uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt         time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID            uint           `gorm:"unique" json:"user_id" example:"1"`
	Goal              *string        `json:"goal" example:"lose weight"`
	TargetWeight      *float64       `json:"target_weight" example:"68.5"`
	DietaryPreference *string        `gorm:"column:dietary_preference" json:"dietary_preference" example:"vegetarian"`
	Notes             *string        `json:"notes" example:"prefers morning workouts"`
}
