package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// quickAddFields is the parsed form of a quick-add line before any
// database lookups happen.
type quickAddFields struct {
	Title           string
	Project         string
	Tags            []string
	Priority        int
	DueAt           *time.Time
	EstimateMinutes *int
}

var (
	priorityToken = regexp.MustCompile(`^[pP][1-5]$`)
	estimateToken = regexp.MustCompile(`^(\d+)(m|h)$`)
	dateFormats   = []string{"2006-01-02", "2006/01/02"}
)

// parseQuickAdd tokenizes lines like
//
//	fix cache bug @backend #perf p2 due:tom est:45m
//
// @word names a project, #word a tag, pN a priority, due: a relative or
// absolute date, est: a duration. Everything else becomes the title; if
// nothing is left over, the raw input is the title.
func parseQuickAdd(text string, now time.Time) (quickAddFields, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return quickAddFields{}, fmt.Errorf("empty quick-add input")
	}

	fields := quickAddFields{Priority: 3}
	var titleParts []string

	for _, token := range strings.Fields(text) {
		switch {
		case strings.HasPrefix(token, "@") && len(token) > 1:
			fields.Project = token[1:]
		case strings.HasPrefix(token, "#") && len(token) > 1:
			fields.Tags = append(fields.Tags, token[1:])
		case priorityToken.MatchString(token):
			fields.Priority = int(token[1] - '0')
		case strings.HasPrefix(token, "due:"):
			if due := parseRelativeDate(token[4:], now); due != nil {
				fields.DueAt = due
			}
		case strings.HasPrefix(token, "est:"):
			if m := estimateToken.FindStringSubmatch(strings.ToLower(token[4:])); m != nil {
				n, _ := strconv.Atoi(m[1])
				if m[2] == "h" {
					n *= 60
				}
				fields.EstimateMinutes = &n
			}
		default:
			titleParts = append(titleParts, token)
		}
	}

	fields.Title = strings.TrimSpace(strings.Join(titleParts, " "))
	if fields.Title == "" {
		fields.Title = text
	}
	return fields, nil
}

// parseRelativeDate resolves due tokens. Relative dates land at 18:00
// local time.
func parseRelativeDate(token string, now time.Time) *time.Time {
	token = strings.ToLower(strings.TrimSpace(token))
	eveningOf := func(t time.Time) *time.Time {
		d := time.Date(t.Year(), t.Month(), t.Day(), 18, 0, 0, 0, t.Location())
		return &d
	}

	switch token {
	case "today", "tod":
		return eveningOf(now)
	case "tomorrow", "tom":
		return eveningOf(now.AddDate(0, 0, 1))
	case "nextweek", "next-week", "next_wk":
		return eveningOf(now.AddDate(0, 0, 7-model.Weekday(now)))
	}

	for _, format := range dateFormats {
		if d, err := time.ParseInLocation(format, token, now.Location()); err == nil {
			return &d
		}
	}
	return nil
}

// QuickAdd parses a quick-add line and creates the resulting task,
// creating the referenced project and tags on demand.
func (s *TaskService) QuickAdd(ctx context.Context, user *model.User, text string, now time.Time) (*model.Task, error) {
	fields, err := parseQuickAdd(text, now)
	if err != nil {
		return nil, err
	}
	return s.CreateTask(ctx, user, TaskInput{
		Title:           fields.Title,
		Project:         fields.Project,
		Priority:        fields.Priority,
		DueAt:           fields.DueAt,
		EstimateMinutes: fields.EstimateMinutes,
		Tags:            fields.Tags,
	})
}
