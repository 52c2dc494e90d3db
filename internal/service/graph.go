package service

import "github.com/BranislavCuturilo/todo/internal/model"

// GraphEdge is one directed relationship as seen from a node.
type GraphEdge struct {
	Type        model.RelationshipType `json:"type"`
	TaskID      uint                   `json:"task_id"`
	Description string                 `json:"description"`
}

// RelationshipGraph holds task relationships as adjacency maps keyed by
// task ID. It is built once per request and shared by the optimal-order
// ranking and the mind-map view.
type RelationshipGraph struct {
	Outgoing map[uint][]GraphEdge
	Incoming map[uint][]GraphEdge
}

// BuildRelationshipGraph indexes edges for the given tasks. Edges touching
// tasks outside the set are ignored so a view over open tasks stays closed.
func BuildRelationshipGraph(tasks []model.Task, rels []model.TaskRelationship) *RelationshipGraph {
	inSet := make(map[uint]bool, len(tasks))
	for _, t := range tasks {
		inSet[t.ID] = true
	}

	g := &RelationshipGraph{
		Outgoing: make(map[uint][]GraphEdge),
		Incoming: make(map[uint][]GraphEdge),
	}
	for _, rel := range rels {
		if !inSet[rel.FromTaskID] || !inSet[rel.ToTaskID] {
			continue
		}
		g.Outgoing[rel.FromTaskID] = append(g.Outgoing[rel.FromTaskID], GraphEdge{
			Type:        rel.Type,
			TaskID:      rel.ToTaskID,
			Description: rel.Description,
		})
		g.Incoming[rel.ToTaskID] = append(g.Incoming[rel.ToTaskID], GraphEdge{
			Type:        rel.Type,
			TaskID:      rel.FromTaskID,
			Description: rel.Description,
		})
	}
	return g
}

// CountOutgoing counts edges of the given type leaving a task.
func (g *RelationshipGraph) CountOutgoing(taskID uint, kind model.RelationshipType) int {
	n := 0
	for _, e := range g.Outgoing[taskID] {
		if e.Type == kind {
			n++
		}
	}
	return n
}

// CountIncoming counts edges of the given type arriving at a task.
func (g *RelationshipGraph) CountIncoming(taskID uint, kind model.RelationshipType) int {
	n := 0
	for _, e := range g.Incoming[taskID] {
		if e.Type == kind {
			n++
		}
	}
	return n
}
