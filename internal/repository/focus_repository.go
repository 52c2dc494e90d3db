package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// FocusSessionRepository stores timed work/break sessions.
type FocusSessionRepository struct {
	db *gorm.DB
}

func NewFocusSessionRepository(db *gorm.DB) *FocusSessionRepository {
	return &FocusSessionRepository{db: db}
}

func (r *FocusSessionRepository) Create(ctx context.Context, session *model.FocusSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create focus session: %w", err)
	}
	return nil
}

// FindOpen returns the user's oldest session without an end time, if any.
func (r *FocusSessionRepository) FindOpen(ctx context.Context, userID uint) (*model.FocusSession, error) {
	var session model.FocusSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time ASC").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *FocusSessionRepository) Save(ctx context.Context, session *model.FocusSession) error {
	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return fmt.Errorf("save focus session: %w", err)
	}
	return nil
}

func (r *FocusSessionRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]model.FocusSession, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var sessions []model.FocusSession
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
