package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BranislavCuturilo/todo/internal/model"
	"github.com/BranislavCuturilo/todo/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title           string
	Description     string
	Project         string
	Priority        int
	DueAt           *time.Time
	EstimateMinutes *int
	Tags            []string
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo    *repository.TaskRepository
	projectRepo *repository.ProjectRepository
	tagRepo     *repository.TagRepository
	relRepo     *repository.RelationshipRepository
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	projectRepo *repository.ProjectRepository,
	tagRepo *repository.TagRepository,
	relRepo *repository.RelationshipRepository,
) *TaskService {
	return &TaskService{taskRepo: taskRepo, projectRepo: projectRepo, tagRepo: tagRepo, relRepo: relRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, user *model.User, input TaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.Priority == 0 {
		input.Priority = 3
	}
	if input.Priority < 1 || input.Priority > 5 {
		return nil, fmt.Errorf("priority must be between 1 and 5")
	}
	if input.EstimateMinutes != nil && *input.EstimateMinutes < 0 {
		return nil, fmt.Errorf("estimate must not be negative")
	}

	var projectID *uint
	if input.Project != "" {
		project, err := s.projectRepo.GetOrCreate(ctx, user.ID, input.Project)
		if err != nil {
			return nil, err
		}
		if project != nil {
			projectID = &project.ID
		}
	}

	task := model.Task{
		UserID:          user.ID,
		ProjectID:       projectID,
		Title:           input.Title,
		Description:     input.Description,
		Status:          model.StatusTodo,
		Priority:        input.Priority,
		DueAt:           input.DueAt,
		EstimateMinutes: input.EstimateMinutes,
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	if len(input.Tags) > 0 {
		var tags []model.Tag
		for _, name := range input.Tags {
			tag, err := s.tagRepo.GetOrCreate(ctx, name)
			if err != nil {
				return nil, err
			}
			if tag != nil {
				tags = append(tags, *tag)
			}
		}
		if err := s.taskRepo.AttachTags(ctx, &task, tags); err != nil {
			return nil, err
		}
	}

	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, user *model.User, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, user.ID, taskID)
}

func (s *TaskService) CompleteTask(ctx context.Context, user *model.User, taskID uint, completedAt time.Time) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsOpen() {
		return nil, fmt.Errorf("task is already closed")
	}
	if err := s.taskRepo.MarkDone(ctx, task, completedAt); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ReopenTask(ctx context.Context, user *model.User, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.MarkUndone(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SnoozeTask pushes the task's due time N minutes past now.
func (s *TaskService) SnoozeTask(ctx context.Context, user *model.User, taskID uint, minutes int, now time.Time) (*model.Task, error) {
	if minutes <= 0 {
		minutes = 30
	}
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if err != nil {
		return nil, err
	}
	due := now.Add(time.Duration(minutes) * time.Minute)
	task.DueAt = &due
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, user *model.User, taskID uint) error {
	return s.taskRepo.Delete(ctx, user.ID, taskID)
}

// ShiftDueDates moves due times of open tasks by the given offset.
// Scope "today" touches only tasks due today; "all" touches every open
// task due at or after now. Returns the number of tasks updated.
func (s *TaskService) ShiftDueDates(ctx context.Context, user *model.User, minutes int, scope string, now time.Time) (int, error) {
	if minutes == 0 {
		return 0, nil
	}

	var tasks []model.Task
	var err error
	switch scope {
	case "", "today":
		dayStart := startOfDay(now)
		dayEnd := dayStart.AddDate(0, 0, 1)
		tasks, err = s.taskRepo.ListOpenWithDue(ctx, user.ID, &dayStart, &dayEnd, nil)
	case "all":
		tasks, err = s.taskRepo.ListOpenWithDue(ctx, user.ID, nil, nil, &now)
	default:
		return 0, fmt.Errorf("unknown scope %q", scope)
	}
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range tasks {
		shifted := tasks[i].DueAt.Add(time.Duration(minutes) * time.Minute)
		tasks[i].DueAt = &shifted
		if err := s.taskRepo.Save(ctx, &tasks[i]); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// RankForSchedule returns the user's open tasks ordered by the
// scheduler's ranking heuristic.
func (s *TaskService) RankForSchedule(ctx context.Context, user *model.User) ([]TaskScore, error) {
	tasks, err := s.taskRepo.ListPending(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.MapByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return RankBySchedule(tasks, projects), nil
}

// RankOptimal returns open tasks in the due-date-aware optimal order,
// together with the per-project grouping the view renders.
func (s *TaskService) RankOptimal(ctx context.Context, user *model.User, now time.Time) ([]TaskScore, map[uint][]TaskScore, error) {
	tasks, graph, err := s.openTasksWithGraph(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	ordered := OptimalOrder(tasks, graph, now)
	return ordered, GroupByProject(ordered), nil
}

// MindMap returns the user's open tasks and their relationship graph.
func (s *TaskService) MindMap(ctx context.Context, user *model.User) ([]model.Task, *RelationshipGraph, error) {
	return s.openTasksWithGraph(ctx, user)
}

// ListRelationships returns every edge touching one of the user's tasks.
func (s *TaskService) ListRelationships(ctx context.Context, user *model.User, taskID uint) ([]model.TaskRelationship, error) {
	if _, err := s.taskRepo.FindByID(ctx, user.ID, taskID); err != nil {
		return nil, err
	}
	return s.relRepo.ListForTask(ctx, taskID)
}

// RemoveRelationship deletes an edge after checking the user owns its
// source task.
func (s *TaskService) RemoveRelationship(ctx context.Context, user *model.User, relID uint) error {
	rel, err := s.relRepo.FindByID(ctx, relID)
	if err != nil {
		return err
	}
	if _, err := s.taskRepo.FindByID(ctx, user.ID, rel.FromTaskID); err != nil {
		return fmt.Errorf("from task: %w", err)
	}
	return s.relRepo.Delete(ctx, rel.ID)
}

// AddRelationship links two of the user's tasks with a typed edge.
func (s *TaskService) AddRelationship(ctx context.Context, user *model.User, rel *model.TaskRelationship) error {
	if _, err := s.taskRepo.FindByID(ctx, user.ID, rel.FromTaskID); err != nil {
		return fmt.Errorf("from task: %w", err)
	}
	if _, err := s.taskRepo.FindByID(ctx, user.ID, rel.ToTaskID); err != nil {
		return fmt.Errorf("to task: %w", err)
	}
	return s.relRepo.Create(ctx, rel)
}

func (s *TaskService) openTasksWithGraph(ctx context.Context, user *model.User) ([]model.Task, *RelationshipGraph, error) {
	tasks, err := s.taskRepo.ListPending(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	rels, err := s.relRepo.ListAmong(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return tasks, BuildRelationshipGraph(tasks, rels), nil
}
