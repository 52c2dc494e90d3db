package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
	"github.com/BranislavCuturilo/todo/internal/repository"
)

const (
	// stepMinutes is the cursor advancement granularity.
	stepMinutes = 30
	// defaultEstimateMinutes is assumed for tasks without an estimate.
	defaultEstimateMinutes = 60
	// overflowMinutes is the length of a forced placement at end of day.
	overflowMinutes = 60
	// defaultMaxSteps bounds the slot search per task.
	defaultMaxSteps = 30
)

// SkippedTask records a placement that could not be persisted.
type SkippedTask struct {
	TaskID uint   `json:"task_id"`
	Reason string `json:"reason"`
}

// ScheduleReport is the structured result of one calendar regeneration.
type ScheduleReport struct {
	Placed     []model.CalendarTask `json:"placed"`
	Overflowed []model.CalendarTask `json:"overflowed"`
	Skipped    []SkippedTask        `json:"skipped"`
}

// PlannerService rebuilds a user's calendar: it ranks open tasks, walks
// forward from today's work start in 30-minute steps, and drops each task
// into the first free window long enough for its estimate. The rebuild is
// destructive: all prior placements for the user are deleted first.
type PlannerService struct {
	taskRepo     *repository.TaskRepository
	eventRepo    *repository.EventRepository
	slotRepo     *repository.TimeSlotRepository
	prefsRepo    *repository.PreferencesRepository
	calendarRepo *repository.CalendarTaskRepository
	maxSteps     int

	mu        sync.Mutex
	userLocks map[uint]*sync.Mutex
}

func NewPlannerService(
	taskRepo *repository.TaskRepository,
	eventRepo *repository.EventRepository,
	slotRepo *repository.TimeSlotRepository,
	prefsRepo *repository.PreferencesRepository,
	calendarRepo *repository.CalendarTaskRepository,
	maxSteps int,
) *PlannerService {
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	return &PlannerService{
		taskRepo:     taskRepo,
		eventRepo:    eventRepo,
		slotRepo:     slotRepo,
		prefsRepo:    prefsRepo,
		calendarRepo: calendarRepo,
		maxSteps:     maxSteps,
		userLocks:    make(map[uint]*sync.Mutex),
	}
}

// lockFor serializes regeneration per user. Overlapping rebuilds would
// interleave their delete and insert phases and corrupt the calendar.
func (s *PlannerService) lockFor(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// Regenerate discards all of the user's placements and recomputes them in
// one pass. Availability data is snapshot once at the start and not
// re-read mid-run. The returned report lists what was placed normally,
// what overflowed into a forced end-of-day slot, and what could not be
// persisted at all.
func (s *PlannerService) Regenerate(ctx context.Context, user *model.User, now time.Time) (*ScheduleReport, error) {
	lock := s.lockFor(user.ID)
	lock.Lock()
	defer lock.Unlock()

	prefs, err := s.prefsRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// ListPending orders by priority, then ID: the scheduler's visitation
	// order deliberately ignores due dates and estimates.
	tasks, err := s.taskRepo.ListPending(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	slots, err := s.slotRepo.ListActiveByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	today := startOfDay(now)
	availability := BuildAvailability(events, slots, today, today.AddDate(0, 0, s.horizonDays(len(tasks), prefs)))

	if err := s.calendarRepo.DeleteAllForUser(ctx, user.ID); err != nil {
		return nil, err
	}

	report := &ScheduleReport{}
	cursorDate := today
	cursorMin := prefs.WorkStart

	for _, task := range tasks {
		placement, overflowed := s.placeTask(task, prefs, availability, &cursorDate, &cursorMin)
		placement.UserID = user.ID

		if err := s.calendarRepo.Create(ctx, &placement); err != nil {
			// A duplicate (task, date) row would silently shadow an
			// earlier placement if overwritten, so report it instead.
			report.Skipped = append(report.Skipped, SkippedTask{
				TaskID: task.ID,
				Reason: fmt.Sprintf("persist placement: %v", err),
			})
			continue
		}
		if overflowed {
			report.Overflowed = append(report.Overflowed, placement)
		} else {
			report.Placed = append(report.Placed, placement)
		}
	}

	return report, nil
}

// placeTask advances the shared cursor looking for a free in-hours instant.
// The cursor survives across tasks so later tasks start searching where the
// previous one ended.
func (s *PlannerService) placeTask(
	task model.Task,
	prefs *model.UserPreferences,
	availability *Availability,
	cursorDate *time.Time,
	cursorMin *model.MinuteOfDay,
) (model.CalendarTask, bool) {
	estimate := defaultEstimateMinutes
	if task.EstimateMinutes != nil && *task.EstimateMinutes > 0 {
		estimate = *task.EstimateMinutes
	}

	for step := 0; step < s.maxSteps; step++ {
		if *cursorMin >= prefs.WorkEnd {
			*cursorDate = cursorDate.AddDate(0, 0, 1)
			*cursorMin = prefs.WorkStart
		}
		instant := cursorMin.At(*cursorDate)
		if *cursorMin >= prefs.WorkStart && !availability.BusyAt(instant) {
			start := instant
			end := start.Add(time.Duration(estimate) * time.Minute)
			*cursorMin += model.MinuteOfDay(estimate)
			return model.CalendarTask{
				TaskID:         task.ID,
				CalendarDate:   *cursorDate,
				ScheduledStart: start,
				ScheduledEnd:   end,
			}, false
		}
		*cursorMin += stepMinutes
	}

	// Search exhausted: force the task into the last hour of the day the
	// cursor reached. This may overlap other placements; it is a lossy
	// fallback, not an error.
	start := (prefs.WorkEnd - overflowMinutes).At(*cursorDate)
	end := prefs.WorkEnd.At(*cursorDate)
	return model.CalendarTask{
		TaskID:         task.ID,
		CalendarDate:   *cursorDate,
		ScheduledStart: start,
		ScheduledEnd:   end,
	}, true
}

// horizonDays sizes the availability snapshot so the cursor cannot walk
// past it even if every task uses its full search bound.
func (s *PlannerService) horizonDays(taskCount int, prefs *model.UserPreferences) int {
	stepsPerDay := int(prefs.WorkEnd-prefs.WorkStart) / stepMinutes
	if stepsPerDay < 1 {
		stepsPerDay = 1
	}
	totalSteps := s.maxSteps * taskCount
	return totalSteps/stepsPerDay + 2
}
