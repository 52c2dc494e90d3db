package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListPending returns open tasks (todo or in_progress) ordered by priority.
func (r *TaskRepository) ListPending(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{model.StatusTodo, model.StatusInProgress}).
		Order("priority ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListInbox returns open tasks that belong to no project.
func (r *TaskRepository) ListInbox(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND project_id IS NULL AND status IN ?", userID, []string{model.StatusTodo, model.StatusInProgress}).
		Order("priority ASC, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByProject returns open tasks under one project.
func (r *TaskRepository) ListByProject(ctx context.Context, userID, projectID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ? AND status IN ?", userID, projectID, []string{model.StatusTodo, model.StatusInProgress}).
		Order("priority ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListDueBetween returns tasks due within [from, to).
func (r *TaskRepository) ListDueBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_at >= ? AND due_at < ?", userID, from, to).
		Order("due_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListOverdue returns open tasks whose due date has passed.
func (r *TaskRepository) ListOverdue(ctx context.Context, userID uint, now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_at < ? AND status IN ?", userID, now, []string{model.StatusTodo, model.StatusInProgress}).
		Order("due_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListUpcoming returns open tasks due after now.
func (r *TaskRepository) ListUpcoming(ctx context.Context, userID uint, now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_at > ? AND status IN ?", userID, now, []string{model.StatusTodo, model.StatusInProgress}).
		Order("due_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListByStatus(ctx context.Context, userID uint, status string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Order("updated_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListOpenWithDue returns open tasks carrying a due date, optionally
// restricted to those due on a single date or due at/after a cutoff.
func (r *TaskRepository) ListOpenWithDue(ctx context.Context, userID uint, dayStart, dayEnd *time.Time, from *time.Time) ([]model.Task, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND due_at IS NOT NULL AND status IN ?", userID, []string{model.StatusTodo, model.StatusInProgress})
	if dayStart != nil && dayEnd != nil {
		q = q.Where("due_at >= ? AND due_at < ?", *dayStart, *dayEnd)
	}
	if from != nil {
		q = q.Where("due_at >= ?", *from)
	}
	var tasks []model.Task
	if err := q.Order("due_at ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) MarkDone(ctx context.Context, task *model.Task, completedAt time.Time) error {
	task.Status = model.StatusDone
	task.CompletedAt = &completedAt
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

func (r *TaskRepository) MarkUndone(ctx context.Context, task *model.Task) error {
	task.Status = model.StatusTodo
	task.CompletedAt = nil
	if err := r.db.WithContext(ctx).Select("status", "completed_at", "updated_at").Save(task).Error; err != nil {
		return fmt.Errorf("reopen task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// AttachTags links tags to a task.
func (r *TaskRepository) AttachTags(ctx context.Context, task *model.Task, tags []model.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(task).Association("Tags").Append(tags); err != nil {
		return fmt.Errorf("attach tags: %w", err)
	}
	return nil
}
