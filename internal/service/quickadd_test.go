package service

import (
	"testing"
	"time"
)

func TestParseQuickAddFullLine(t *testing.T) {
	now := dateTime(2024, time.March, 4, 10, 0) // Monday

	fields, err := parseQuickAdd("fix cache bug @backend #perf p2 due:tom est:45m", now)
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}

	if fields.Title != "fix cache bug" {
		t.Errorf("title = %q, want %q", fields.Title, "fix cache bug")
	}
	if fields.Project != "backend" {
		t.Errorf("project = %q, want backend", fields.Project)
	}
	if len(fields.Tags) != 1 || fields.Tags[0] != "perf" {
		t.Errorf("tags = %v, want [perf]", fields.Tags)
	}
	if fields.Priority != 2 {
		t.Errorf("priority = %d, want 2", fields.Priority)
	}
	if fields.EstimateMinutes == nil || *fields.EstimateMinutes != 45 {
		t.Errorf("estimate = %v, want 45", fields.EstimateMinutes)
	}
	wantDue := dateTime(2024, time.March, 5, 18, 0)
	if fields.DueAt == nil || !fields.DueAt.Equal(wantDue) {
		t.Errorf("due = %v, want %v", fields.DueAt, wantDue)
	}
}

func TestParseQuickAddDueTokens(t *testing.T) {
	now := dateTime(2024, time.March, 6, 10, 0) // Wednesday

	cases := []struct {
		token string
		want  time.Time
	}{
		{"due:today", dateTime(2024, time.March, 6, 18, 0)},
		{"due:tod", dateTime(2024, time.March, 6, 18, 0)},
		{"due:tom", dateTime(2024, time.March, 7, 18, 0)},
		{"due:nextweek", dateTime(2024, time.March, 11, 18, 0)}, // next Monday
		{"due:2024-04-01", dateTime(2024, time.April, 1, 0, 0)},
		{"due:2024/04/01", dateTime(2024, time.April, 1, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			fields, err := parseQuickAdd("task "+tc.token, now)
			if err != nil {
				t.Fatalf("parseQuickAdd: %v", err)
			}
			if fields.DueAt == nil || !fields.DueAt.Equal(tc.want) {
				t.Errorf("due = %v, want %v", fields.DueAt, tc.want)
			}
		})
	}
}

func TestParseQuickAddEstimateHours(t *testing.T) {
	fields, err := parseQuickAdd("write report est:2h", dateTime(2024, time.March, 4, 10, 0))
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if fields.EstimateMinutes == nil || *fields.EstimateMinutes != 120 {
		t.Errorf("estimate = %v, want 120", fields.EstimateMinutes)
	}
}

func TestParseQuickAddDefaults(t *testing.T) {
	fields, err := parseQuickAdd("buy milk", dateTime(2024, time.March, 4, 10, 0))
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if fields.Priority != 3 {
		t.Errorf("priority = %d, want default 3", fields.Priority)
	}
	if fields.DueAt != nil || fields.EstimateMinutes != nil {
		t.Error("due/estimate should be unset by default")
	}
	if fields.Project != "" || len(fields.Tags) != 0 {
		t.Error("project/tags should be unset by default")
	}
}

func TestParseQuickAddAllTokensFallsBackToRawTitle(t *testing.T) {
	raw := "@backend #perf p1"
	fields, err := parseQuickAdd(raw, dateTime(2024, time.March, 4, 10, 0))
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if fields.Title != raw {
		t.Errorf("title = %q, want raw input %q", fields.Title, raw)
	}
}

func TestParseQuickAddEmptyInput(t *testing.T) {
	if _, err := parseQuickAdd("   ", time.Now()); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParseQuickAddBadDueTokenIgnored(t *testing.T) {
	fields, err := parseQuickAdd("task due:whenever", dateTime(2024, time.March, 4, 10, 0))
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if fields.DueAt != nil {
		t.Errorf("due = %v, want nil for unparseable token", fields.DueAt)
	}
	if fields.Title != "task" {
		t.Errorf("title = %q, want %q", fields.Title, "task")
	}
}
