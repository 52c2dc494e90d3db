package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
	"github.com/BranislavCuturilo/todo/internal/repository"
)

// FocusService manages timed work/break sessions.
type FocusService struct {
	focusRepo *repository.FocusSessionRepository
	taskRepo  *repository.TaskRepository
}

func NewFocusService(focusRepo *repository.FocusSessionRepository, taskRepo *repository.TaskRepository) *FocusService {
	return &FocusService{focusRepo: focusRepo, taskRepo: taskRepo}
}

// Start opens a new session, optionally tied to one of the user's tasks.
func (s *FocusService) Start(ctx context.Context, user *model.User, taskID *uint, kind string, now time.Time) (*model.FocusSession, error) {
	if kind == "" {
		kind = model.FocusWork
	}
	if kind != model.FocusWork && kind != model.FocusBreak {
		return nil, fmt.Errorf("unknown session kind %q", kind)
	}
	if taskID != nil {
		if _, err := s.taskRepo.FindByID(ctx, user.ID, *taskID); err != nil {
			return nil, fmt.Errorf("task: %w", err)
		}
	}

	session := model.FocusSession{
		UserID:    user.ID,
		TaskID:    taskID,
		Kind:      kind,
		StartTime: now,
	}
	if err := s.focusRepo.Create(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// History returns the user's most recent sessions.
func (s *FocusService) History(ctx context.Context, user *model.User, limit int) ([]model.FocusSession, error) {
	return s.focusRepo.ListByUser(ctx, user.ID, limit)
}

// End closes the user's open session, if any, and records its duration.
func (s *FocusService) End(ctx context.Context, user *model.User, now time.Time) (*model.FocusSession, error) {
	session, err := s.focusRepo.FindOpen(ctx, user.ID)
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("no open session")
	}
	if err != nil {
		return nil, err
	}
	session.End(now)
	if err := s.focusRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
