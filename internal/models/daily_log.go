package models

import "time"

// DailyLog is one day's self-reported calories and activity level. Logs are
// append-only: once stored they are never updated or deleted, and LoggedAt is
// immutable. ActivityLevel semantics are caller-defined; no range validation
// is applied to either value.
type DailyLog struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UserID        uint      `gorm:"index" json:"user_id" example:"1"`
	Calories      int       `json:"calories" example:"2100"`
	ActivityLevel int       `json:"activity_level" example:"3"`
	LoggedAt      time.Time `json:"logged_at" example:"2024-01-01T18:30:00Z"`
}
