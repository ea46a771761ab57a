package models

import (
	"time"

	"gorm.io/gorm"
)

// Recommendation is a single actionable task generated for a user, due within
// a day of the pipeline run that produced it. The pipeline creates these in
// batches and never touches them again; Done stays false until a client marks
// the task complete.
type Recommendation struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Task      string         `json:"task" example:"Jog for 20 minutes before breakfast"`
	DueDate   time.Time      `json:"due_date" example:"2024-01-02T18:30:00Z"`
	Done      bool           `gorm:"default:false" json:"done" example:"false"`
}
