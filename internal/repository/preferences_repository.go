package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// PreferencesRepository manages per-user scheduling preferences.
type PreferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// GetOrCreate returns the user's preferences, creating the default
// 09:00-17:00 working window on first access.
func (r *PreferencesRepository) GetOrCreate(ctx context.Context, userID uint) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ?", userID).First(&prefs).Error
	switch {
	case err == nil:
		return &prefs, nil
	case err == gorm.ErrRecordNotFound:
		prefs = model.DefaultPreferences(userID)
		if err := db.Create(&prefs).Error; err != nil {
			return nil, fmt.Errorf("create preferences: %w", err)
		}
		return &prefs, nil
	default:
		return nil, fmt.Errorf("find preferences: %w", err)
	}
}

func (r *PreferencesRepository) Save(ctx context.Context, prefs *model.UserPreferences) error {
	if prefs.WorkEnd <= prefs.WorkStart {
		return fmt.Errorf("work end must be after work start")
	}
	if err := r.db.WithContext(ctx).Save(prefs).Error; err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
