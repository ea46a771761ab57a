package repository

import (
	"errors"

	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	FindByUserID(userID uint) (*models.UserProfile, error)
	Upsert(profile *models.UserProfile) error
	DeleteByUserID(userID uint) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db}
}

func (r *userProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile on first write and merges on subsequent ones.
// Only non-nil fields overwrite; a nil pointer means "not provided" and
// leaves the stored value alone.
func (r *userProfileRepository) Upsert(profile *models.UserProfile) error {
	var existing models.UserProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	if profile.Goal != nil {
		existing.Goal = profile.Goal
	}
	if profile.TargetWeight != nil {
		existing.TargetWeight = profile.TargetWeight
	}
	if profile.DietaryPreference != nil {
		existing.DietaryPreference = profile.DietaryPreference
	}
	if profile.Notes != nil {
		existing.Notes = profile.Notes
	}

	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*profile = existing
	return nil
}

func (r *userProfileRepository) DeleteByUserID(userID uint) error {
	return r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error
}
