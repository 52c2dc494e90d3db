package service

import (
	"context"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
	"github.com/BranislavCuturilo/todo/internal/repository"
)

// WeekView bundles everything the calendar page renders for one week.
type WeekView struct {
	WeekStart  time.Time             `json:"week_start"`
	Events     []model.EventInstance `json:"events"`
	Placements []model.CalendarTask  `json:"placements"`
	TimeSlots  []model.TimeSlot      `json:"time_slots"`
}

// CalendarService reads the composed calendar: expanded events, schedule
// placements and recurring time slots.
type CalendarService struct {
	eventRepo    *repository.EventRepository
	slotRepo     *repository.TimeSlotRepository
	calendarRepo *repository.CalendarTaskRepository
}

func NewCalendarService(
	eventRepo *repository.EventRepository,
	slotRepo *repository.TimeSlotRepository,
	calendarRepo *repository.CalendarTaskRepository,
) *CalendarService {
	return &CalendarService{eventRepo: eventRepo, slotRepo: slotRepo, calendarRepo: calendarRepo}
}

// Week returns the seven days starting at weekStart. Recurring events are
// expanded on the fly; one-off events outside the week are filtered here
// since literal instances ignore range bounds.
func (s *CalendarService) Week(ctx context.Context, user *model.User, weekStart time.Time) (*WeekView, error) {
	from := startOfDay(weekStart)
	to := from.AddDate(0, 0, 7)

	events, err := s.eventRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	instances := make([]model.EventInstance, 0)
	for _, inst := range ExpandAll(events, from, from.AddDate(0, 0, 6)) {
		if inst.End.After(from) && inst.Start.Before(to) {
			instances = append(instances, inst)
		}
	}

	placements, err := s.calendarRepo.ListBetween(ctx, user.ID, from, to)
	if err != nil {
		return nil, err
	}
	slots, err := s.slotRepo.ListActiveByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &WeekView{
		WeekStart:  from,
		Events:     instances,
		Placements: placements,
		TimeSlots:  slots,
	}, nil
}
