package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

// PlanRepository persists the outcome of one pipeline run: the daily log
// entry that triggered it and the recommendation batch it produced. Both
// land in a single transaction so a rollback cannot leave recommendations
// without the log that explains them.
type PlanRepository interface {
	SaveNextDayPlan(recs []models.Recommendation, entry *models.DailyLog) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db}
}

func (r *planRepository) SaveNextDayPlan(recs []models.Recommendation, entry *models.DailyLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if err := tx.Create(&recs).Error; err != nil {
			return err
		}
		return nil
	})
}
