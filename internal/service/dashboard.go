package service

import (
	"context"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
	"github.com/BranislavCuturilo/todo/internal/repository"
)

// Dashboard bundles the three buckets the landing page shows.
type Dashboard struct {
	DueToday []model.Task `json:"due_today"`
	Overdue  []model.Task `json:"overdue"`
	Inbox    []model.Task `json:"inbox"`
}

// DashboardService builds the per-user overview of open work.
type DashboardService struct {
	taskRepo *repository.TaskRepository
}

func NewDashboardService(taskRepo *repository.TaskRepository) *DashboardService {
	return &DashboardService{taskRepo: taskRepo}
}

func (s *DashboardService) Overview(ctx context.Context, user *model.User, now time.Time) (*Dashboard, error) {
	dayStart := startOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	dueToday, err := s.taskRepo.ListDueBetween(ctx, user.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	overdue, err := s.taskRepo.ListOverdue(ctx, user.ID, now)
	if err != nil {
		return nil, err
	}
	inbox, err := s.taskRepo.ListInbox(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{DueToday: dueToday, Overdue: overdue, Inbox: inbox}, nil
}
