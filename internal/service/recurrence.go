package service

import (
	"math"
	"sort"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// ExpandEvent materializes the occurrences of an event that fall inside
// [rangeStart, rangeEnd] (both dates inclusive). Non-recurring events come
// back as a single literal instance regardless of the range. Iteration
// starts at the event's own anchor date; occurrences before rangeStart are
// skipped and do not consume the MaxOccurrences budget.
func ExpandEvent(ev model.Event, rangeStart, rangeEnd time.Time) []model.EventInstance {
	if !ev.IsRecurring || ev.RecurrenceType == model.RecurrenceNone || ev.RecurrenceType == "" {
		return []model.EventInstance{literalInstance(ev)}
	}
	// Weekly with an empty weekday set generates nothing.
	if ev.RecurrenceType == model.RecurrenceWeekly && len(ev.Weekdays) == 0 {
		return nil
	}
	// Custom recurrences have no expansion rule and generate nothing.
	if ev.RecurrenceType == model.RecurrenceCustom {
		return nil
	}

	interval := ev.RecurrenceInterval
	if interval < 1 {
		interval = 1
	}

	anchor := startOfDay(ev.StartTime)
	lower := startOfDay(rangeStart)
	limit := startOfDay(rangeEnd)
	if ev.EndDate != nil {
		if end := startOfDay(*ev.EndDate); end.Before(limit) {
			limit = end
		}
	}

	var instances []model.EventInstance
	for step := 0; ; step++ {
		candidate := occurrenceCandidate(ev, anchor, step, interval)
		if candidate.After(limit) {
			break
		}
		if !occurrenceEligible(ev, candidate, anchor, interval) {
			continue
		}
		if candidate.Before(lower) {
			continue
		}
		instances = append(instances, instanceOn(ev, candidate))
		if ev.MaxOccurrences != nil && len(instances) >= *ev.MaxOccurrences {
			break
		}
	}
	return instances
}

// ExpandAll expands every event over the range and returns all instances
// ordered by start time.
func ExpandAll(events []model.Event, rangeStart, rangeEnd time.Time) []model.EventInstance {
	var instances []model.EventInstance
	for _, ev := range events {
		instances = append(instances, ExpandEvent(ev, rangeStart, rangeEnd)...)
	}
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].Start.Before(instances[j].Start)
	})
	return instances
}

// occurrenceCandidate computes the step-th candidate date counted from the
// anchor. Candidates are derived from the anchor rather than the previous
// candidate, so month-length clamping cannot drift over long series.
func occurrenceCandidate(ev model.Event, anchor time.Time, step, interval int) time.Time {
	switch ev.RecurrenceType {
	case model.RecurrenceDaily:
		return anchor.AddDate(0, 0, step*interval)
	case model.RecurrenceWeekly:
		// Weekly series walk day by day; eligibility filters by weekday.
		return anchor.AddDate(0, 0, step)
	case model.RecurrenceMonthly:
		// Advances one month per step regardless of the configured
		// interval, matching the historical behavior.
		return addMonthsClamped(anchor, step)
	case model.RecurrenceYearly:
		return addYearsClamped(anchor, step*interval)
	default:
		return anchor.AddDate(0, 0, step)
	}
}

func occurrenceEligible(ev model.Event, candidate, anchor time.Time, interval int) bool {
	switch ev.RecurrenceType {
	case model.RecurrenceDaily:
		return true
	case model.RecurrenceWeekly:
		if !ev.Weekdays.Contains(model.Weekday(candidate)) {
			return false
		}
		weeks := daysBetween(weekStart(anchor), weekStart(candidate)) / 7
		return weeks%interval == 0
	case model.RecurrenceMonthly:
		return candidate.Day() == ev.StartTime.Day()
	case model.RecurrenceYearly:
		return candidate.Day() == ev.StartTime.Day() && candidate.Month() == ev.StartTime.Month()
	default:
		return false
	}
}

func literalInstance(ev model.Event) model.EventInstance {
	return model.EventInstance{
		EventID:     ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Start:       ev.StartTime,
		End:         ev.EndTime,
		Generated:   false,
	}
}

// instanceOn combines a candidate date with the anchor's time of day.
func instanceOn(ev model.Event, date time.Time) model.EventInstance {
	return model.EventInstance{
		EventID:     ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Start:       model.MinuteWithin(ev.StartTime).At(date),
		End:         model.MinuteWithin(ev.EndTime).At(date),
		Generated:   true,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday of the candidate's week.
func weekStart(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -model.Weekday(t))
}

// daysBetween counts calendar days from a to b, rounding away DST skew.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func addMonthsClamped(base time.Time, months int) time.Time {
	first := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location()).AddDate(0, months, 0)
	day := base.Day()
	if dim := daysInMonth(first.Month(), first.Year()); day > dim {
		day = dim
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, base.Location())
}

func addYearsClamped(base time.Time, years int) time.Time {
	day := base.Day()
	if dim := daysInMonth(base.Month(), base.Year()+years); day > dim {
		day = dim
	}
	return time.Date(base.Year()+years, base.Month(), day, 0, 0, 0, 0, base.Location())
}

func daysInMonth(month time.Month, year int) int {
	// Move to next month, roll back a day.
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)
	lastOfMonth := firstOfNextMonth.AddDate(0, 0, -1)
	return lastOfMonth.Day()
}
