package model

import "time"

// RelationshipType enumerates the directed edge kinds between tasks.
type RelationshipType string

const (
	RelBlocks     RelationshipType = "blocks"
	RelDependsOn  RelationshipType = "depends_on"
	RelRelatedTo  RelationshipType = "related_to"
	RelDuplicates RelationshipType = "duplicates"
	RelSubtaskOf  RelationshipType = "subtask_of"
)

// TaskRelationship is a directed, typed edge between two tasks. At most one
// edge of a given type may exist per ordered pair.
type TaskRelationship struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	FromTaskID  uint             `gorm:"index:idx_rel_edge,unique" json:"from_task_id"`
	ToTaskID    uint             `gorm:"index:idx_rel_edge,unique" json:"to_task_id"`
	Type        RelationshipType `gorm:"index:idx_rel_edge,unique;column:relationship_type" json:"type"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}
