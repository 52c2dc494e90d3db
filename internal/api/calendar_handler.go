package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BranislavCuturilo/todo/internal/model"
	"github.com/BranislavCuturilo/todo/internal/repository"
	"github.com/BranislavCuturilo/todo/internal/service"
)

// CalendarHandler exposes schedule regeneration, the week view and the
// calendar's supporting records: events, time slots and preferences.
type CalendarHandler struct {
	planner   *service.PlannerService
	calendar  *service.CalendarService
	eventRepo *repository.EventRepository
	slotRepo  *repository.TimeSlotRepository
	prefsRepo *repository.PreferencesRepository
	logger    *zap.Logger
}

func NewCalendarHandler(
	planner *service.PlannerService,
	calendar *service.CalendarService,
	eventRepo *repository.EventRepository,
	slotRepo *repository.TimeSlotRepository,
	prefsRepo *repository.PreferencesRepository,
	logger *zap.Logger,
) *CalendarHandler {
	return &CalendarHandler{
		planner:   planner,
		calendar:  calendar,
		eventRepo: eventRepo,
		slotRepo:  slotRepo,
		prefsRepo: prefsRepo,
		logger:    logger,
	}
}

// Regenerate rebuilds the user's calendar and returns the placement report.
func (h *CalendarHandler) Regenerate(c *gin.Context) {
	user := currentUser(c)
	report, err := h.planner.Regenerate(c.Request.Context(), user, time.Now())
	if err != nil {
		h.logger.Error("regenerate calendar", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to regenerate calendar"})
		return
	}
	h.logger.Info("calendar regenerated",
		zap.Uint("user_id", user.ID),
		zap.Int("placed", len(report.Placed)),
		zap.Int("overflowed", len(report.Overflowed)),
		zap.Int("skipped", len(report.Skipped)),
	)
	c.JSON(http.StatusOK, report)
}

// Week renders one week of events, placements and time slots. The start
// date defaults to the Monday of the current week.
func (h *CalendarHandler) Week(c *gin.Context) {
	now := time.Now()
	weekStart := now.AddDate(0, 0, -model.Weekday(now))
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date, expected YYYY-MM-DD"})
			return
		}
		weekStart = parsed
	}

	view, err := h.calendar.Week(c.Request.Context(), currentUser(c), weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build week view"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event.ID = 0
	event.UserID = currentUser(c).ID
	if err := h.eventRepo.Create(c.Request.Context(), &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *CalendarHandler) ListEvents(c *gin.Context) {
	events, err := h.eventRepo.ListByUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// UpdateEvent replaces an event's mutable fields. Re-validated on save,
// so a recurring series cannot be updated into an invalid state.
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}
	user := currentUser(c)
	event, err := h.eventRepo.FindByID(c.Request.Context(), user.ID, eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	var req model.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = event.ID
	req.UserID = user.ID
	req.CreatedAt = event.CreatedAt
	if err := h.eventRepo.Save(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.eventRepo.Delete(c.Request.Context(), currentUser(c).ID, eventID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CalendarHandler) CreateTimeSlot(c *gin.Context) {
	var slot model.TimeSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slot.ID = 0
	slot.UserID = currentUser(c).ID
	slot.IsActive = true
	if err := h.slotRepo.Create(c.Request.Context(), &slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (h *CalendarHandler) ListTimeSlots(c *gin.Context) {
	slots, err := h.slotRepo.ListByUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch time slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_slots": slots})
}

func (h *CalendarHandler) DeleteTimeSlot(c *gin.Context) {
	slotID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.slotRepo.Delete(c.Request.Context(), currentUser(c).ID, slotID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Preferences returns the user's working-hour settings, creating defaults
// on first access.
func (h *CalendarHandler) Preferences(c *gin.Context) {
	prefs, err := h.prefsRepo.GetOrCreate(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *CalendarHandler) UpdatePreferences(c *gin.Context) {
	user := currentUser(c)
	prefs, err := h.prefsRepo.GetOrCreate(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch preferences"})
		return
	}

	var req struct {
		WorkStart      *model.MinuteOfDay `json:"work_start"`
		WorkEnd        *model.MinuteOfDay `json:"work_end"`
		DailyWorkHours *int               `json:"daily_work_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.WorkStart != nil {
		prefs.WorkStart = *req.WorkStart
	}
	if req.WorkEnd != nil {
		prefs.WorkEnd = *req.WorkEnd
	}
	if req.DailyWorkHours != nil {
		prefs.DailyWorkHours = *req.DailyWorkHours
	}

	if err := h.prefsRepo.Save(c.Request.Context(), prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
