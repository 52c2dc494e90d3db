package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// TimeSlotRepository handles CRUD for recurring unavailability slots.
type TimeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) Create(ctx context.Context, slot *model.TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return fmt.Errorf("validate time slot: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		return fmt.Errorf("create time slot: %w", err)
	}
	return nil
}

func (r *TimeSlotRepository) ListByUser(ctx context.Context, userID uint) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_time ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *TimeSlotRepository) ListActiveByUser(ctx context.Context, userID uint) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	if err := r.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true).
		Order("start_time ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *TimeSlotRepository) Delete(ctx context.Context, userID, slotID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, slotID).
		Delete(&model.TimeSlot{}).Error; err != nil {
		return fmt.Errorf("delete time slot: %w", err)
	}
	return nil
}
