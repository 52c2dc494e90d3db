package service

import (
	"math"
	"sort"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// NoProjectGroup is the sentinel map key for tasks without a project.
const NoProjectGroup uint = 0

// TaskScore pairs a task with a computed ordering score. Scores are never
// written back to the task and never persisted; lower means more important.
type TaskScore struct {
	Task  model.Task `json:"task"`
	Score int        `json:"score"`
}

// ScheduleScore ranks a task for the schedule preview views. It ignores due
// dates entirely: priority dominates, the parent project's priority refines
// it, and longer estimates sink a little. Tasks without a project rank below
// any task that has one.
func ScheduleScore(task model.Task, project *model.Project) int {
	score := task.Priority * 10

	if project != nil {
		score += project.Priority * 100
	} else {
		score += 1000
	}

	if task.EstimateMinutes != nil {
		component := *task.EstimateMinutes / 30
		if component > 10 {
			component = 10
		}
		score += component
	} else {
		score += 5
	}

	return score
}

// RankBySchedule orders tasks by ScheduleScore ascending. Ties fall back to
// raw priority, then ID, keeping the order deterministic across runs.
func RankBySchedule(tasks []model.Task, projects map[uint]model.Project) []TaskScore {
	scored := make([]TaskScore, 0, len(tasks))
	for _, task := range tasks {
		var project *model.Project
		if task.ProjectID != nil {
			if p, ok := projects[*task.ProjectID]; ok {
				project = &p
			}
		}
		scored = append(scored, TaskScore{Task: task, Score: ScheduleScore(task, project)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score < scored[j].Score
		}
		if scored[i].Task.Priority != scored[j].Task.Priority {
			return scored[i].Task.Priority < scored[j].Task.Priority
		}
		return scored[i].Task.ID < scored[j].Task.ID
	})
	return scored
}

// OptimalScore is the older, due-date-aware ranking used by the optimal
// order view. It starts from the raw priority and applies signed
// adjustments for urgency and for the task's position in the relationship
// graph. It deliberately orders differently from ScheduleScore; the two
// strategies must stay independent.
func OptimalScore(task model.Task, graph *RelationshipGraph, now time.Time) int {
	score := task.Priority

	if task.DueAt != nil {
		days := int(math.Floor(task.DueAt.Sub(now).Hours() / 24))
		switch {
		case days < 0:
			score -= 10
		case days <= 1:
			score -= 5
		case days <= 3:
			score -= 2
		}
	}

	score -= graph.CountOutgoing(task.ID, model.RelBlocks) * 2
	score += graph.CountOutgoing(task.ID, model.RelDependsOn) * 2

	return score
}

// OptimalOrder ranks tasks by OptimalScore ascending, tie-broken by ID.
func OptimalOrder(tasks []model.Task, graph *RelationshipGraph, now time.Time) []TaskScore {
	scored := make([]TaskScore, 0, len(tasks))
	for _, task := range tasks {
		scored = append(scored, TaskScore{Task: task, Score: OptimalScore(task, graph, now)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score < scored[j].Score
		}
		return scored[i].Task.ID < scored[j].Task.ID
	})
	return scored
}

// GroupByProject buckets scored tasks by project ID, with NoProjectGroup
// collecting tasks that have none. Bucket order follows the input order.
func GroupByProject(scored []TaskScore) map[uint][]TaskScore {
	groups := make(map[uint][]TaskScore)
	for _, ts := range scored {
		key := NoProjectGroup
		if ts.Task.ProjectID != nil {
			key = *ts.Task.ProjectID
		}
		groups[key] = append(groups[key], ts)
	}
	return groups
}
