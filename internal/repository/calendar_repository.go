package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// CalendarTaskRepository stores schedule placements produced by regeneration.
type CalendarTaskRepository struct {
	db *gorm.DB
}

func NewCalendarTaskRepository(db *gorm.DB) *CalendarTaskRepository {
	return &CalendarTaskRepository{db: db}
}

func (r *CalendarTaskRepository) Create(ctx context.Context, placement *model.CalendarTask) error {
	if err := r.db.WithContext(ctx).Create(placement).Error; err != nil {
		return fmt.Errorf("create placement: %w", err)
	}
	return nil
}

// DeleteAllForUser wipes a user's placements ahead of regeneration.
func (r *CalendarTaskRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Delete(&model.CalendarTask{}).Error; err != nil {
		return fmt.Errorf("delete placements: %w", err)
	}
	return nil
}

// ListBetween returns placements with calendar dates in [from, to).
func (r *CalendarTaskRepository) ListBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.CalendarTask, error) {
	var placements []model.CalendarTask
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND calendar_date >= ? AND calendar_date < ?", userID, from, to).
		Order("scheduled_start ASC").
		Find(&placements).Error; err != nil {
		return nil, err
	}
	return placements, nil
}

func (r *CalendarTaskRepository) ListByUser(ctx context.Context, userID uint) ([]model.CalendarTask, error) {
	var placements []model.CalendarTask
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("scheduled_start ASC").
		Find(&placements).Error; err != nil {
		return nil, err
	}
	return placements, nil
}
