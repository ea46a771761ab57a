package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an onboarded account. DailyLogs are preloaded in insertion order,
// which matches submission order but is not guaranteed sorted by LoggedAt.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Weight    float64        `json:"weight" example:"72.5"`
	Height    float64        `json:"height" example:"178"`
	Age       int            `json:"age" example:"29"`
	Geography string         `json:"geography" example:"Jakarta"`
	DailyLogs []DailyLog     `gorm:"foreignKey:UserID" json:"daily_logs"`
}
