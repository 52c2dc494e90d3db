package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// EventRepository handles CRUD for calendar events.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validate event: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) Save(ctx context.Context, event *model.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validate event: %w", err)
	}
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, userID, eventID uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, eventID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByUser returns all events, recurring definitions included. Recurring
// series are expanded in memory, so no date filter is applied here.
func (r *EventRepository) ListByUser(ctx context.Context, userID uint) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_time ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Delete(ctx context.Context, userID, eventID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, eventID).
		Delete(&model.Event{}).Error; err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
