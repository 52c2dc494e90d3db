package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BranislavCuturilo/todo/internal/service"
)

// FocusHandler exposes focus session start/end and history.
type FocusHandler struct {
	focus *service.FocusService
}

func NewFocusHandler(focus *service.FocusService) *FocusHandler {
	return &FocusHandler{focus: focus}
}

func (h *FocusHandler) Start(c *gin.Context) {
	var req struct {
		TaskID *uint  `json:"task_id"`
		Kind   string `json:"kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.focus.Start(c.Request.Context(), currentUser(c), req.TaskID, req.Kind, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *FocusHandler) End(c *gin.Context) {
	session, err := h.focus.End(c.Request.Context(), currentUser(c), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// History lists the user's most recent sessions, newest first.
func (h *FocusHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	sessions, err := h.focus.History(c.Request.Context(), currentUser(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
