package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BranislavCuturilo/todo/internal/model"
	"github.com/BranislavCuturilo/todo/internal/repository"
	"github.com/BranislavCuturilo/todo/internal/service"
)

// TaskHandler exposes task CRUD, the two ranking views and the mind map.
type TaskHandler struct {
	tasks     *service.TaskService
	dashboard *service.DashboardService
	taskRepo  *repository.TaskRepository
	tagRepo   *repository.TagRepository
	logger    *zap.Logger
}

func NewTaskHandler(
	tasks *service.TaskService,
	dashboard *service.DashboardService,
	taskRepo *repository.TaskRepository,
	tagRepo *repository.TagRepository,
	logger *zap.Logger,
) *TaskHandler {
	return &TaskHandler{tasks: tasks, dashboard: dashboard, taskRepo: taskRepo, tagRepo: tagRepo, logger: logger}
}

type createTaskRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	Project         string     `json:"project"`
	Priority        int        `json:"priority"`
	DueAt           *time.Time `json:"due_at"`
	EstimateMinutes *int       `json:"estimate_minutes"`
	Tags            []string   `json:"tags"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), currentUser(c), service.TaskInput{
		Title:           req.Title,
		Description:     req.Description,
		Project:         req.Project,
		Priority:        req.Priority,
		DueAt:           req.DueAt,
		EstimateMinutes: req.EstimateMinutes,
		Tags:            req.Tags,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) QuickAdd(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.QuickAdd(c.Request.Context(), currentUser(c), req.Text, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// List serves the named task views the UI renders.
func (h *TaskHandler) List(c *gin.Context) {
	user := currentUser(c)
	ctx := c.Request.Context()
	now := time.Now()

	var (
		tasks []model.Task
		err   error
	)
	switch view := c.DefaultQuery("view", "pending"); view {
	case "pending":
		tasks, err = h.taskRepo.ListPending(ctx, user.ID)
	case "inbox":
		tasks, err = h.taskRepo.ListInbox(ctx, user.ID)
	case "today":
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		tasks, err = h.taskRepo.ListDueBetween(ctx, user.ID, day, day.AddDate(0, 0, 1))
	case "upcoming":
		tasks, err = h.taskRepo.ListUpcoming(ctx, user.ID, now)
	case "overdue":
		tasks, err = h.taskRepo.ListOverdue(ctx, user.ID, now)
	case "done":
		tasks, err = h.taskRepo.ListByStatus(ctx, user.ID, model.StatusDone)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view " + view})
		return
	}
	if err != nil {
		h.logger.Error("list tasks", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *TaskHandler) Dashboard(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context(), currentUser(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *TaskHandler) Get(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.tasks.GetTask(c.Request.Context(), currentUser(c), taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Complete(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.tasks.CompleteTask(c.Request.Context(), currentUser(c), taskID, time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Reopen(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.tasks.ReopenTask(c.Request.Context(), currentUser(c), taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Snooze(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Minutes int `json:"minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.tasks.SnoozeTask(c.Request.Context(), currentUser(c), taskID, req.Minutes, time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.tasks.DeleteTask(c.Request.Context(), currentUser(c), taskID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Ranked returns the schedule-order ranking (due-date-blind).
func (h *TaskHandler) Ranked(c *gin.Context) {
	scored, err := h.tasks.RankForSchedule(c.Request.Context(), currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rank tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": scored})
}

// OptimalOrder returns the due-date-aware ranking with project grouping.
func (h *TaskHandler) OptimalOrder(c *gin.Context) {
	ordered, groups, err := h.tasks.RankOptimal(c.Request.Context(), currentUser(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rank tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": ordered, "by_project": groups})
}

func (h *TaskHandler) MindMap(c *gin.Context) {
	tasks, graph, err := h.tasks.MindMap(c.Request.Context(), currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build mind map"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks":    tasks,
		"outgoing": graph.Outgoing,
		"incoming": graph.Incoming,
	})
}

func (h *TaskHandler) AddRelationship(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		ToTaskID    uint                   `json:"to_task_id" binding:"required"`
		Type        model.RelationshipType `json:"type" binding:"required"`
		Description string                 `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rel := model.TaskRelationship{
		FromTaskID:  taskID,
		ToTaskID:    req.ToTaskID,
		Type:        req.Type,
		Description: req.Description,
	}
	if err := h.tasks.AddRelationship(c.Request.Context(), currentUser(c), &rel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rel)
}

func (h *TaskHandler) ListRelationships(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}
	rels, err := h.tasks.ListRelationships(c.Request.Context(), currentUser(c), taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"relationships": rels})
}

func (h *TaskHandler) DeleteRelationship(c *gin.Context) {
	relID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.tasks.RemoveRelationship(c.Request.Context(), currentUser(c), relID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ShiftSchedule moves open tasks' due times by a signed minute offset.
func (h *TaskHandler) ShiftSchedule(c *gin.Context) {
	var req struct {
		Minutes int    `json:"minutes"`
		Scope   string `json:"scope"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shifted, err := h.tasks.ShiftDueDates(c.Request.Context(), currentUser(c), req.Minutes, req.Scope, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shifted": shifted})
}

func (h *TaskHandler) Tags(c *gin.Context) {
	tags, err := h.tagRepo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tags"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
