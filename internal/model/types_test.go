package model

import (
	"testing"
	"time"
)

func TestParseMinuteOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    MinuteOfDay
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{" 12:30 ", 750, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMinuteOfDay(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMinuteOfDay(%q) = %v, want error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMinuteOfDay(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMinuteOfDay(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestMinuteOfDayString(t *testing.T) {
	if got := MinuteOfDay(9*60 + 5).String(); got != "09:05" {
		t.Errorf("String() = %q, want %q", got, "09:05")
	}
	if got := MinuteOfDay(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
}

func TestMinuteOfDayAt(t *testing.T) {
	date := time.Date(2024, time.March, 4, 23, 45, 12, 99, time.UTC)
	got := MinuteOfDay(13*60 + 30).At(date)
	want := time.Date(2024, time.March, 4, 13, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}

func TestMinuteOfDayScan(t *testing.T) {
	var m MinuteOfDay
	if err := m.Scan("14:15"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if m != 14*60+15 {
		t.Errorf("Scan(string) = %d, want %d", m, 14*60+15)
	}
	if err := m.Scan([]byte("08:00")); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if m != 480 {
		t.Errorf("Scan([]byte) = %d, want 480", m)
	}
	if err := m.Scan("bogus"); err == nil {
		t.Error("Scan(bogus) succeeded, want error")
	}
	val, err := MinuteOfDay(480).Value()
	if err != nil {
		t.Fatalf("Value(): %v", err)
	}
	if val != "08:00" {
		t.Errorf("Value() = %v, want %q", val, "08:00")
	}
}

func TestWeekday(t *testing.T) {
	// 2024-03-04 is a Monday.
	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	for offset, want := range []int{0, 1, 2, 3, 4, 5, 6} {
		day := monday.AddDate(0, 0, offset)
		if got := Weekday(day); got != want {
			t.Errorf("Weekday(%s) = %d, want %d", day.Weekday(), got, want)
		}
	}
}

func TestWeekdaySetContains(t *testing.T) {
	set := WeekdaySet{0, 2, 4}
	for day := 0; day < 7; day++ {
		want := day == 0 || day == 2 || day == 4
		if got := set.Contains(day); got != want {
			t.Errorf("Contains(%d) = %v, want %v", day, got, want)
		}
	}
	if WeekdaySet(nil).Contains(0) {
		t.Error("nil set should contain nothing")
	}
}

func TestWeekdaySetValidate(t *testing.T) {
	if err := (WeekdaySet{0, 6}).Validate(); err != nil {
		t.Errorf("valid set rejected: %v", err)
	}
	if err := (WeekdaySet{7}).Validate(); err == nil {
		t.Error("out-of-range weekday accepted")
	}
	if err := (WeekdaySet{-1}).Validate(); err == nil {
		t.Error("negative weekday accepted")
	}
}

func TestWeekdaySetScanValue(t *testing.T) {
	val, err := WeekdaySet{4, 0, 2}.Value()
	if err != nil {
		t.Fatalf("Value(): %v", err)
	}
	if val != "[0,2,4]" {
		t.Errorf("Value() = %v, want sorted %q", val, "[0,2,4]")
	}

	var set WeekdaySet
	if err := set.Scan("[1,3]"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(set) != 2 || !set.Contains(1) || !set.Contains(3) {
		t.Errorf("Scan produced %v, want [1 3]", set)
	}

	if err := set.Scan(""); err != nil {
		t.Fatalf("Scan empty string: %v", err)
	}
	if set != nil {
		t.Errorf("empty column should scan to nil, got %v", set)
	}

	nilVal, err := WeekdaySet(nil).Value()
	if err != nil {
		t.Fatalf("nil Value(): %v", err)
	}
	if nilVal != "[]" {
		t.Errorf("nil Value() = %v, want %q", nilVal, "[]")
	}
}
