package service

import (
	"testing"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
)

func TestAvailabilityEventMarksBusy(t *testing.T) {
	event := model.Event{
		ID:        1,
		Title:     "standup",
		StartTime: dateTime(2024, time.March, 4, 10, 0),
		EndTime:   dateTime(2024, time.March, 4, 11, 0),
	}
	a := BuildAvailability([]model.Event{event}, nil, date(2024, time.March, 4), date(2024, time.March, 10))

	cases := []struct {
		name    string
		instant time.Time
		busy    bool
	}{
		{"inside event", dateTime(2024, time.March, 4, 10, 30), true},
		{"at event start", dateTime(2024, time.March, 4, 10, 0), true},
		{"at event end", dateTime(2024, time.March, 4, 11, 0), false},
		{"before event", dateTime(2024, time.March, 4, 9, 59), false},
		{"next day", dateTime(2024, time.March, 5, 10, 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.BusyAt(tc.instant); got != tc.busy {
				t.Errorf("BusyAt(%v) = %v, want %v", tc.instant, got, tc.busy)
			}
		})
	}
}

func TestAvailabilityTimeSlotMarksBusyOnItsWeekdays(t *testing.T) {
	lunch := model.TimeSlot{
		Name:      "lunch",
		StartTime: model.MinuteOfDay(12 * 60),
		EndTime:   model.MinuteOfDay(13 * 60),
		Weekdays:  model.WeekdaySet{0, 1, 2, 3, 4}, // weekdays only
		IsActive:  true,
	}
	a := BuildAvailability(nil, []model.TimeSlot{lunch}, date(2024, time.March, 4), date(2024, time.March, 10))

	if !a.BusyAt(dateTime(2024, time.March, 4, 12, 30)) {
		t.Error("Monday lunch should be busy")
	}
	if a.BusyAt(dateTime(2024, time.March, 9, 12, 30)) {
		t.Error("Saturday lunch should be free")
	}
	if a.BusyAt(dateTime(2024, time.March, 4, 13, 0)) {
		t.Error("slot end is exclusive")
	}
}

func TestAvailabilityInactiveSlotIgnored(t *testing.T) {
	slot := model.TimeSlot{
		Name:      "old commute",
		StartTime: model.MinuteOfDay(8 * 60),
		EndTime:   model.MinuteOfDay(9 * 60),
		Weekdays:  model.WeekdaySet{0, 1, 2, 3, 4},
		IsActive:  false,
	}
	a := BuildAvailability(nil, []model.TimeSlot{slot}, date(2024, time.March, 4), date(2024, time.March, 10))

	if a.BusyAt(dateTime(2024, time.March, 4, 8, 30)) {
		t.Error("inactive slot must not mark time busy")
	}
}

func TestAvailabilityRecurringEventExpanded(t *testing.T) {
	daily := recurringEvent(model.RecurrenceDaily, dateTime(2024, time.March, 4, 9, 0), dateTime(2024, time.March, 4, 9, 30))
	a := BuildAvailability([]model.Event{daily}, nil, date(2024, time.March, 4), date(2024, time.March, 10))

	for day := 4; day <= 8; day++ {
		if !a.BusyAt(dateTime(2024, time.March, day, 9, 15)) {
			t.Errorf("day %d 09:15 should be busy from daily event", day)
		}
	}
}

func TestBusyIntervalsOrderedAndCombined(t *testing.T) {
	event := model.Event{
		ID:        1,
		Title:     "review",
		StartTime: dateTime(2024, time.March, 4, 15, 0),
		EndTime:   dateTime(2024, time.March, 4, 16, 0),
	}
	lunch := model.TimeSlot{
		Name:      "lunch",
		StartTime: model.MinuteOfDay(12 * 60),
		EndTime:   model.MinuteOfDay(13 * 60),
		Weekdays:  model.WeekdaySet{0},
		IsActive:  true,
	}
	a := BuildAvailability([]model.Event{event}, []model.TimeSlot{lunch}, date(2024, time.March, 4), date(2024, time.March, 10))

	intervals := a.BusyIntervals(date(2024, time.March, 4))
	if len(intervals) != 2 {
		t.Fatalf("got %d intervals, want 2", len(intervals))
	}
	if !intervals[0].Start.Equal(dateTime(2024, time.March, 4, 12, 0)) {
		t.Errorf("first interval starts %v, want 12:00", intervals[0].Start)
	}
	if !intervals[1].Start.Equal(dateTime(2024, time.March, 4, 15, 0)) {
		t.Errorf("second interval starts %v, want 15:00", intervals[1].Start)
	}
}

func TestAvailabilityOvernightEventBlocksBothDays(t *testing.T) {
	event := model.Event{
		ID:        1,
		Title:     "night shift",
		StartTime: dateTime(2024, time.March, 4, 22, 0),
		EndTime:   dateTime(2024, time.March, 5, 2, 0),
	}
	a := BuildAvailability([]model.Event{event}, nil, date(2024, time.March, 4), date(2024, time.March, 10))

	if !a.BusyAt(dateTime(2024, time.March, 4, 23, 0)) {
		t.Error("23:00 on the start date should be busy")
	}
	if !a.BusyAt(dateTime(2024, time.March, 5, 1, 0)) {
		t.Error("01:00 the next morning should be busy")
	}
	if a.BusyAt(dateTime(2024, time.March, 5, 2, 0)) {
		t.Error("the end instant is exclusive")
	}
	if a.BusyAt(dateTime(2024, time.March, 4, 21, 30)) {
		t.Error("before the event should be free")
	}
}
