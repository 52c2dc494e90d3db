package service

import (
	"testing"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateTime(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func recurringEvent(kind string, start, end time.Time) model.Event {
	return model.Event{
		ID:                 1,
		Title:              "test event",
		StartTime:          start,
		EndTime:            end,
		IsRecurring:        true,
		RecurrenceType:     kind,
		RecurrenceInterval: 1,
	}
}

func TestExpandDailyWithMaxOccurrences(t *testing.T) {
	ev := recurringEvent(model.RecurrenceDaily, dateTime(2024, time.January, 1, 9, 0), dateTime(2024, time.January, 1, 9, 30))
	ev.MaxOccurrences = intPtr(5)

	instances := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.January, 31))

	if len(instances) != 5 {
		t.Fatalf("got %d instances, want 5", len(instances))
	}
	for i, inst := range instances {
		wantStart := dateTime(2024, time.January, 1+i, 9, 0)
		wantEnd := dateTime(2024, time.January, 1+i, 9, 30)
		if !inst.Start.Equal(wantStart) || !inst.End.Equal(wantEnd) {
			t.Errorf("instance %d = %v-%v, want %v-%v", i, inst.Start, inst.End, wantStart, wantEnd)
		}
		if !inst.Generated {
			t.Errorf("instance %d not marked generated", i)
		}
	}
}

func TestExpandStaysInsideRange(t *testing.T) {
	ev := recurringEvent(model.RecurrenceDaily, dateTime(2023, time.December, 1, 14, 0), dateTime(2023, time.December, 1, 15, 0))

	rangeStart := date(2024, time.January, 10)
	rangeEnd := date(2024, time.January, 20)
	for _, inst := range ExpandEvent(ev, rangeStart, rangeEnd) {
		if inst.Start.Before(rangeStart) || inst.Start.After(rangeEnd.AddDate(0, 0, 1)) {
			t.Errorf("instance %v outside [%v, %v]", inst.Start, rangeStart, rangeEnd)
		}
	}
}

func TestExpandOccurrenceCapOverLargeRange(t *testing.T) {
	ev := recurringEvent(model.RecurrenceDaily, dateTime(2024, time.January, 1, 9, 0), dateTime(2024, time.January, 1, 10, 0))
	ev.MaxOccurrences = intPtr(3)

	instances := ExpandEvent(ev, date(2024, time.January, 1), date(2034, time.January, 1))
	if len(instances) != 3 {
		t.Fatalf("got %d instances, want at most 3", len(instances))
	}
}

func TestExpandOffRangeCandidatesKeepBudget(t *testing.T) {
	// Occurrences before rangeStart are skipped without consuming the
	// MaxOccurrences budget, so all three land inside the range.
	ev := recurringEvent(model.RecurrenceDaily, dateTime(2024, time.January, 1, 9, 0), dateTime(2024, time.January, 1, 10, 0))
	ev.MaxOccurrences = intPtr(3)

	instances := ExpandEvent(ev, date(2024, time.January, 3), date(2024, time.January, 31))
	if len(instances) != 3 {
		t.Fatalf("got %d instances, want 3", len(instances))
	}
	if want := date(2024, time.January, 3); instances[0].Start.Day() != want.Day() {
		t.Errorf("first instance on day %d, want 3", instances[0].Start.Day())
	}
}

func TestExpandWeeklyFiltersWeekdays(t *testing.T) {
	// Monday 2024-01-01; Mondays and Wednesdays only.
	ev := recurringEvent(model.RecurrenceWeekly, dateTime(2024, time.January, 1, 14, 0), dateTime(2024, time.January, 1, 15, 0))
	ev.Weekdays = model.WeekdaySet{0, 2}

	instances := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.January, 14))

	wantDays := []int{1, 3, 8, 10}
	if len(instances) != len(wantDays) {
		t.Fatalf("got %d instances, want %d", len(instances), len(wantDays))
	}
	for i, inst := range instances {
		if inst.Start.Day() != wantDays[i] {
			t.Errorf("instance %d on day %d, want %d", i, inst.Start.Day(), wantDays[i])
		}
		wd := model.Weekday(inst.Start)
		if wd != 0 && wd != 2 {
			t.Errorf("instance %d on weekday %d, want Monday or Wednesday", i, wd)
		}
	}
}

func TestExpandWeeklyHonorsInterval(t *testing.T) {
	ev := recurringEvent(model.RecurrenceWeekly, dateTime(2024, time.January, 1, 9, 0), dateTime(2024, time.January, 1, 10, 0))
	ev.Weekdays = model.WeekdaySet{0}
	ev.RecurrenceInterval = 2

	instances := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.January, 28))

	wantDays := []int{1, 15}
	if len(instances) != len(wantDays) {
		t.Fatalf("got %d instances, want %d", len(instances), len(wantDays))
	}
	for i, inst := range instances {
		if inst.Start.Day() != wantDays[i] {
			t.Errorf("instance %d on day %d, want %d", i, inst.Start.Day(), wantDays[i])
		}
	}
}

func TestExpandWeeklyEmptyWeekdaySetYieldsNothing(t *testing.T) {
	ev := recurringEvent(model.RecurrenceWeekly, dateTime(2024, time.January, 1, 9, 0), dateTime(2024, time.January, 1, 10, 0))

	if instances := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.December, 31)); len(instances) != 0 {
		t.Fatalf("got %d instances, want none", len(instances))
	}
}

func TestExpandMonthlyIgnoresInterval(t *testing.T) {
	// Monthly series advance one month per step even when the interval
	// says otherwise. This matches the historical behavior on purpose.
	ev := recurringEvent(model.RecurrenceMonthly, dateTime(2024, time.January, 15, 10, 0), dateTime(2024, time.January, 15, 11, 0))
	ev.RecurrenceInterval = 2

	instances := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.April, 30))

	wantMonths := []time.Month{time.January, time.February, time.March, time.April}
	if len(instances) != len(wantMonths) {
		t.Fatalf("got %d instances, want %d", len(instances), len(wantMonths))
	}
	for i, inst := range instances {
		if inst.Start.Month() != wantMonths[i] || inst.Start.Day() != 15 {
			t.Errorf("instance %d on %v, want %v 15", i, inst.Start, wantMonths[i])
		}
	}
}

func TestExpandMonthlySkipsShortMonths(t *testing.T) {
	ev := recurringEvent(model.RecurrenceMonthly, dateTime(2024, time.January, 31, 10, 0), dateTime(2024, time.January, 31, 11, 0))

	instances := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.April, 30))

	// February and April are too short for day 31.
	wantMonths := []time.Month{time.January, time.March}
	if len(instances) != len(wantMonths) {
		t.Fatalf("got %d instances, want %d", len(instances), len(wantMonths))
	}
	for i, inst := range instances {
		if inst.Start.Month() != wantMonths[i] {
			t.Errorf("instance %d in %v, want %v", i, inst.Start.Month(), wantMonths[i])
		}
	}
}

func TestExpandYearlyHonorsInterval(t *testing.T) {
	ev := recurringEvent(model.RecurrenceYearly, dateTime(2020, time.May, 10, 12, 0), dateTime(2020, time.May, 10, 13, 0))
	ev.RecurrenceInterval = 2

	instances := ExpandEvent(ev, date(2020, time.January, 1), date(2026, time.December, 31))

	wantYears := []int{2020, 2022, 2024, 2026}
	if len(instances) != len(wantYears) {
		t.Fatalf("got %d instances, want %d", len(instances), len(wantYears))
	}
	for i, inst := range instances {
		if inst.Start.Year() != wantYears[i] {
			t.Errorf("instance %d in %d, want %d", i, inst.Start.Year(), wantYears[i])
		}
	}
}

func TestExpandRespectsEndDate(t *testing.T) {
	ev := recurringEvent(model.RecurrenceDaily, dateTime(2024, time.January, 1, 9, 0), dateTime(2024, time.January, 1, 10, 0))
	end := date(2024, time.January, 3)
	ev.EndDate = &end

	// End date is inclusive.
	if instances := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.January, 31)); len(instances) != 3 {
		t.Fatalf("got %d instances, want 3", len(instances))
	}
}

func TestExpandNonRecurringReturnsLiteralInstance(t *testing.T) {
	ev := model.Event{
		ID:        7,
		Title:     "dentist",
		StartTime: dateTime(2024, time.June, 10, 15, 0),
		EndTime:   dateTime(2024, time.June, 10, 16, 0),
	}

	// Literal instances ignore range filtering entirely.
	instances := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.January, 2))
	if len(instances) != 1 {
		t.Fatalf("got %d instances, want 1", len(instances))
	}
	inst := instances[0]
	if inst.Generated {
		t.Error("literal instance marked generated")
	}
	if !inst.Start.Equal(ev.StartTime) || !inst.End.Equal(ev.EndTime) {
		t.Errorf("instance %v-%v, want %v-%v", inst.Start, inst.End, ev.StartTime, ev.EndTime)
	}
}

func TestExpandAllSortsByStart(t *testing.T) {
	first := recurringEvent(model.RecurrenceDaily, dateTime(2024, time.January, 2, 9, 0), dateTime(2024, time.January, 2, 10, 0))
	second := recurringEvent(model.RecurrenceDaily, dateTime(2024, time.January, 1, 8, 0), dateTime(2024, time.January, 1, 9, 0))
	second.ID = 2

	instances := ExpandAll([]model.Event{first, second}, date(2024, time.January, 1), date(2024, time.January, 3))
	for i := 1; i < len(instances); i++ {
		if instances[i].Start.Before(instances[i-1].Start) {
			t.Fatalf("instances out of order at %d: %v before %v", i, instances[i].Start, instances[i-1].Start)
		}
	}
}

func TestExpandCustomGeneratesNothing(t *testing.T) {
	ev := recurringEvent(model.RecurrenceCustom, dateTime(2024, time.January, 1, 9, 0), dateTime(2024, time.January, 1, 9, 30))
	if err := ev.Validate(); err != nil {
		t.Fatalf("custom recurrence should be storable: %v", err)
	}
	if got := ExpandEvent(ev, date(2024, time.January, 1), date(2024, time.December, 31)); len(got) != 0 {
		t.Errorf("custom recurrence expanded to %d instances, want none", len(got))
	}
}
