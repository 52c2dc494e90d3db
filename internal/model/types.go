package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MinuteOfDay is a wall-clock time of day stored as minutes since midnight.
// It serializes to "HH:MM" in the database and in JSON.
type MinuteOfDay int

// ParseMinuteOfDay parses a "HH:MM" string.
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return MinuteOfDay(hour*60 + minute), nil
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// At anchors the time of day on the given calendar date.
func (m MinuteOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(m)/60, int(m)%60, 0, 0, date.Location())
}

func (m MinuteOfDay) Value() (driver.Value, error) {
	return m.String(), nil
}

func (m *MinuteOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = 0
		return nil
	case string:
		parsed, err := ParseMinuteOfDay(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case []byte:
		return m.Scan(string(v))
	case int64:
		*m = MinuteOfDay(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into MinuteOfDay", src)
	}
}

func (m MinuteOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MinuteOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMinuteOfDay(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MinuteWithin reports the minute-of-day of t.
func MinuteWithin(t time.Time) MinuteOfDay {
	return MinuteOfDay(t.Hour()*60 + t.Minute())
}

// WeekdaySet is a set of weekdays with Monday = 0 through Sunday = 6,
// stored as a JSON array in a text column.
type WeekdaySet []int

// Weekday converts time.Time's Sunday-based weekday to the Monday-based
// numbering used throughout the planner.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func (w WeekdaySet) Contains(day int) bool {
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}

// Validate rejects weekday values outside 0..6.
func (w WeekdaySet) Validate() error {
	for _, d := range w {
		if d < 0 || d > 6 {
			return fmt.Errorf("weekday %d out of range 0-6", d)
		}
	}
	return nil
}

func (w WeekdaySet) Value() (driver.Value, error) {
	if w == nil {
		return "[]", nil
	}
	sorted := make([]int, len(w))
	copy(sorted, w)
	sort.Ints(sorted)
	data, err := json.Marshal(sorted)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (w *WeekdaySet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*w = nil
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			*w = nil
			return nil
		}
		return json.Unmarshal([]byte(v), w)
	case []byte:
		return w.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into WeekdaySet", src)
	}
}
