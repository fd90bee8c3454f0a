// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-recall/internal/config"
	"github.com/mtreilly/arc-recall/internal/schedule"
)

// NewRootCmd creates the root command for arc-recall.
func NewRootCmd(cfg *config.Config, modules []schedule.Module) *cobra.Command {

	root := &cobra.Command{
		Use:   "arc-recall",
		Short: "Build a spaced-repetition study calendar from a module catalog",
		Long: `Compute a personalized spaced-repetition study calendar and export it
to calendar tools.

arc-recall provides tools to:
- Generate a review schedule (each chapter: learn once, review six times)
- See what is due on any given day
- Render a month-view calendar in the terminal
- Export the schedule as an .ics file, Google Calendar links, or an Anki deck`,
	}

	root.AddCommand(newScheduleCmd(cfg, modules))
	root.AddCommand(newDueCmd(cfg, modules))
	root.AddCommand(newCalendarCmd(cfg, modules))
	root.AddCommand(newModulesCmd(cfg, modules))
	root.AddCommand(newExportCmd(cfg, modules))

	return root
}

// resolveStart picks the schedule start date: the --start flag, then the
// configured default, then today.
func resolveStart(cfg *config.Config, flag string) (time.Time, error) {
	raw := flag
	if raw == "" {
		raw = cfg.StartDate
	}
	if raw == "" {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", raw)
	}
	return t, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
