package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/model"
)

// RelationshipRepository stores directed typed edges between tasks.
type RelationshipRepository struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

func (r *RelationshipRepository) Create(ctx context.Context, rel *model.TaskRelationship) error {
	if rel.FromTaskID == rel.ToTaskID {
		return fmt.Errorf("a task cannot relate to itself")
	}
	if err := r.db.WithContext(ctx).Create(rel).Error; err != nil {
		return fmt.Errorf("create relationship: %w", err)
	}
	return nil
}

// ListAmong returns every edge whose both endpoints are in the given task set.
func (r *RelationshipRepository) ListAmong(ctx context.Context, taskIDs []uint) ([]model.TaskRelationship, error) {
	if len(taskIDs) == 0 {
		return nil, nil
	}
	var rels []model.TaskRelationship
	if err := r.db.WithContext(ctx).
		Where("from_task_id IN ? AND to_task_id IN ?", taskIDs, taskIDs).
		Find(&rels).Error; err != nil {
		return nil, err
	}
	return rels, nil
}

// ListForTask returns edges touching one task, in either direction.
func (r *RelationshipRepository) ListForTask(ctx context.Context, taskID uint) ([]model.TaskRelationship, error) {
	var rels []model.TaskRelationship
	if err := r.db.WithContext(ctx).
		Where("from_task_id = ? OR to_task_id = ?", taskID, taskID).
		Order("created_at DESC").
		Find(&rels).Error; err != nil {
		return nil, err
	}
	return rels, nil
}

func (r *RelationshipRepository) FindByID(ctx context.Context, relID uint) (*model.TaskRelationship, error) {
	var rel model.TaskRelationship
	if err := r.db.WithContext(ctx).First(&rel, relID).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *RelationshipRepository) Delete(ctx context.Context, relID uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.TaskRelationship{}, relID).Error; err != nil {
		return fmt.Errorf("delete relationship: %w", err)
	}
	return nil
}
