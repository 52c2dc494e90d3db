package service

import (
	"sort"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// Interval is a half-open busy window [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Availability answers whether a user is free at a given instant. It is a
// snapshot: events are expanded once over a fixed horizon when it is built,
// and time slots are evaluated per weekday. Working-hour boundaries are the
// scheduler's concern, not this type's.
type Availability struct {
	eventsByDate map[string][]Interval
	slots        []model.TimeSlot
}

// BuildAvailability expands all events over [horizonStart, horizonEnd] and
// indexes the resulting busy intervals by calendar date.
func BuildAvailability(events []model.Event, slots []model.TimeSlot, horizonStart, horizonEnd time.Time) *Availability {
	a := &Availability{
		eventsByDate: make(map[string][]Interval),
		slots:        slots,
	}
	// Instances spanning midnight are split at day boundaries so each
	// date's index covers its own share of the busy window.
	for _, inst := range ExpandAll(events, horizonStart, horizonEnd) {
		for day := startOfDay(inst.Start); day.Before(inst.End); day = day.AddDate(0, 0, 1) {
			start, end := inst.Start, inst.End
			if start.Before(day) {
				start = day
			}
			if next := day.AddDate(0, 0, 1); end.After(next) {
				end = next
			}
			if !start.Before(end) {
				continue
			}
			key := dateKey(day)
			a.eventsByDate[key] = append(a.eventsByDate[key], Interval{Start: start, End: end})
		}
	}
	for _, intervals := range a.eventsByDate {
		sort.Slice(intervals, func(i, j int) bool { return intervals[i].Start.Before(intervals[j].Start) })
	}
	return a
}

// BusyAt reports whether the instant falls inside any event occurrence or
// any active time slot covering that weekday.
func (a *Availability) BusyAt(t time.Time) bool {
	for _, iv := range a.eventsByDate[dateKey(t)] {
		if !t.Before(iv.Start) && t.Before(iv.End) {
			return true
		}
	}
	for _, slot := range a.slots {
		if slot.CoversInstant(t) {
			return true
		}
	}
	return false
}

// BusyIntervals returns the ordered busy windows on a date, events and
// time slots combined.
func (a *Availability) BusyIntervals(date time.Time) []Interval {
	day := startOfDay(date)
	intervals := append([]Interval(nil), a.eventsByDate[dateKey(day)]...)
	weekday := model.Weekday(day)
	for _, slot := range a.slots {
		if !slot.IsActive || !slot.Weekdays.Contains(weekday) {
			continue
		}
		intervals = append(intervals, Interval{
			Start: slot.StartTime.At(day),
			End:   slot.EndTime.At(day),
		})
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Start.Before(intervals[j].Start) })
	return intervals
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
