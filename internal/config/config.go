package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config keeps runtime settings for the server.
type Config struct {
	DatabaseURL    string
	HTTPAddr       string
	RegenTime      string // HH:MM local time for the nightly schedule rebuild; empty disables it
	DefaultUser    string // username assumed when a request carries no X-User header
	SchedulerSteps int    // search bound per task, in 30-minute steps
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		HTTPAddr:       strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		RegenTime:      strings.TrimSpace(os.Getenv("REGEN_TIME")),
		DefaultUser:    strings.TrimSpace(os.Getenv("DEFAULT_USER")),
		SchedulerSteps: parsePositiveInt(os.Getenv("SCHEDULER_STEPS")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "solo_todo.db"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.RegenTime == "" {
		cfg.RegenTime = "03:30"
	}
	if cfg.SchedulerSteps == 0 {
		cfg.SchedulerSteps = 30
	}

	if err := validateClock(cfg.RegenTime); err != nil {
		return cfg, fmt.Errorf("REGEN_TIME: %w", err)
	}

	return cfg, nil
}

func parsePositiveInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func validateClock(timeStr string) error {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in %q", timeStr)
	}
	return nil
}
