package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BranislavCuturilo/todo/internal/api"
	"github.com/BranislavCuturilo/todo/internal/config"
	"github.com/BranislavCuturilo/todo/internal/repository"
	"github.com/BranislavCuturilo/todo/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	tagRepo := repository.NewTagRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	relRepo := repository.NewRelationshipRepository(db)
	eventRepo := repository.NewEventRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)
	prefsRepo := repository.NewPreferencesRepository(db)
	calendarRepo := repository.NewCalendarTaskRepository(db)
	focusRepo := repository.NewFocusSessionRepository(db)

	taskSvc := service.NewTaskService(taskRepo, projectRepo, tagRepo, relRepo)
	dashboardSvc := service.NewDashboardService(taskRepo)
	plannerSvc := service.NewPlannerService(taskRepo, eventRepo, slotRepo, prefsRepo, calendarRepo, cfg.SchedulerSteps)
	calendarSvc := service.NewCalendarService(eventRepo, slotRepo, calendarRepo)
	focusSvc := service.NewFocusService(focusRepo, taskRepo)

	router := api.NewRouter(
		logger,
		db,
		userRepo,
		cfg.DefaultUser,
		api.NewTaskHandler(taskSvc, dashboardSvc, taskRepo, tagRepo, logger),
		api.NewProjectHandler(projectRepo, taskRepo),
		api.NewCalendarHandler(plannerSvc, calendarSvc, eventRepo, slotRepo, prefsRepo, logger),
		api.NewFocusHandler(focusSvc),
	)

	cron := service.NewCronService(time.Local)
	if cfg.RegenTime != "" {
		if _, err := cron.ScheduleDaily(cfg.RegenTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			regenerateAll(jobCtx, logger, userRepo, plannerSvc)
		}); err != nil {
			logger.Fatal("schedule nightly regeneration", zap.Error(err))
		}
		cron.Start()
		defer cron.Stop()
	}

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		logger.Info("server started", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped with error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

// regenerateAll rebuilds every user's calendar, continuing past per-user
// failures.
func regenerateAll(ctx context.Context, logger *zap.Logger, userRepo *repository.UserRepository, planner *service.PlannerService) {
	users, err := userRepo.ListAll(ctx)
	if err != nil {
		logger.Error("nightly regeneration: list users", zap.Error(err))
		return
	}
	for i := range users {
		report, err := planner.Regenerate(ctx, &users[i], time.Now())
		if err != nil {
			logger.Error("nightly regeneration", zap.Uint("user_id", users[i].ID), zap.Error(err))
			continue
		}
		logger.Info("nightly regeneration",
			zap.Uint("user_id", users[i].ID),
			zap.Int("placed", len(report.Placed)),
			zap.Int("overflowed", len(report.Overflowed)),
			zap.Int("skipped", len(report.Skipped)),
		)
	}
}
