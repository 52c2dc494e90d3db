package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BranislavCuturilo/todo/internal/repository"
)

// NewRouter assembles the REST surface over the planner services.
func NewRouter(
	logger *zap.Logger,
	db *gorm.DB,
	userRepo *repository.UserRepository,
	defaultUser string,
	taskHandler *TaskHandler,
	projectHandler *ProjectHandler,
	calendarHandler *CalendarHandler,
	focusHandler *FocusHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	apiGroup := r.Group("/api", ResolveUser(userRepo, defaultUser))
	{
		apiGroup.GET("/dashboard", taskHandler.Dashboard)

		apiGroup.GET("/tasks", taskHandler.List)
		apiGroup.POST("/tasks", taskHandler.Create)
		apiGroup.GET("/tasks/:id", taskHandler.Get)
		apiGroup.POST("/tasks/quick-add", taskHandler.QuickAdd)
		apiGroup.GET("/tasks/ranked", taskHandler.Ranked)
		apiGroup.GET("/tasks/optimal-order", taskHandler.OptimalOrder)
		apiGroup.GET("/tasks/mind-map", taskHandler.MindMap)
		apiGroup.POST("/tasks/:id/complete", taskHandler.Complete)
		apiGroup.POST("/tasks/:id/reopen", taskHandler.Reopen)
		apiGroup.POST("/tasks/:id/snooze", taskHandler.Snooze)
		apiGroup.GET("/tasks/:id/relationships", taskHandler.ListRelationships)
		apiGroup.POST("/tasks/:id/relationships", taskHandler.AddRelationship)
		apiGroup.DELETE("/relationships/:id", taskHandler.DeleteRelationship)
		apiGroup.DELETE("/tasks/:id", taskHandler.Delete)

		apiGroup.POST("/schedule/shift", taskHandler.ShiftSchedule)

		apiGroup.GET("/tags", taskHandler.Tags)

		apiGroup.GET("/projects", projectHandler.List)
		apiGroup.GET("/projects/:slug/tasks", projectHandler.Tasks)
		apiGroup.DELETE("/projects/:id", projectHandler.Delete)

		apiGroup.POST("/calendar/regenerate", calendarHandler.Regenerate)
		apiGroup.GET("/calendar/week", calendarHandler.Week)

		apiGroup.POST("/events", calendarHandler.CreateEvent)
		apiGroup.GET("/events", calendarHandler.ListEvents)
		apiGroup.PUT("/events/:id", calendarHandler.UpdateEvent)
		apiGroup.DELETE("/events/:id", calendarHandler.DeleteEvent)

		apiGroup.POST("/time-slots", calendarHandler.CreateTimeSlot)
		apiGroup.GET("/time-slots", calendarHandler.ListTimeSlots)
		apiGroup.DELETE("/time-slots/:id", calendarHandler.DeleteTimeSlot)

		apiGroup.GET("/preferences", calendarHandler.Preferences)
		apiGroup.PUT("/preferences", calendarHandler.UpdatePreferences)

		apiGroup.POST("/focus/start", focusHandler.Start)
		apiGroup.POST("/focus/end", focusHandler.End)
		apiGroup.GET("/focus/sessions", focusHandler.History)
	}

	return r
}
