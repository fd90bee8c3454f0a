// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-recall/internal/config"
	"github.com/mtreilly/arc-recall/internal/schedule"
)

var (
	calHeaderStyle  = lipgloss.NewStyle().Bold(true)
	calDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	calLearnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	calReviewStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	calDefaultStyle = lipgloss.NewStyle()
)

func newCalendarCmd(cfg *config.Config, modules []schedule.Module) *cobra.Command {
	var start string
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Render a month of the schedule as a calendar grid",
		Long: `Render a 6-week month view. Days with an initial learning session are
green, days with only reviews are blue, and days outside the requested
month are dimmed.

Examples:
  arc-recall calendar                          # current month
  arc-recall calendar --month 2026-02
  arc-recall calendar --start 2026-01-01 --month 2026-03`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := resolveStart(cfg, start)
			if err != nil {
				return err
			}

			anchor := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
			if month != "" {
				anchor, err = time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM)", month)
				}
			}

			s := schedule.Generate(startDate, modules)
			fmt.Println(renderMonth(s, anchor))
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to render (YYYY-MM, default: start month)")

	return cmd
}

// renderMonth lays the 42-day grid out as 6 rows of 7 cells, 4 columns
// wide each, with a weekday header.
func renderMonth(s *schedule.Schedule, anchor time.Time) string {
	var b strings.Builder

	b.WriteString(calHeaderStyle.Render(anchor.Format("January 2006")))
	b.WriteString("\n Su  Mo  Tu  We  Th  Fr  Sa\n")

	for i, day := range schedule.CalendarGrid(anchor) {
		due := s.ReviewsOn(day)

		style := calDefaultStyle
		switch {
		case day.Month() != anchor.Month():
			style = calDimStyle
		case hasInitialLearning(due):
			style = calLearnStyle
		case len(due) > 0:
			style = calReviewStyle
		}

		b.WriteString(style.Render(fmt.Sprintf("%3d", day.Day())))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n")
	b.WriteString(calLearnStyle.Render("learn"))
	b.WriteString("  ")
	b.WriteString(calReviewStyle.Render("review"))
	return b.String()
}

func hasInitialLearning(reviews []schedule.Review) bool {
	for _, r := range reviews {
		if r.IsInitialLearning {
			return true
		}
	}
	return false
}
