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

func newDueCmd(cfg *config.Config, modules []schedule.Module) *cobra.Command {
	var start string
	var on string

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show the reviews due on a given day",
		Long: `List the study sessions falling on one calendar day.

Examples:
  arc-recall due                           # due today
  arc-recall due --on 2026-01-08           # due on a specific day
  arc-recall due --start 2026-01-01 --on 2026-01-08`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := resolveStart(cfg, start)
			if err != nil {
				return err
			}

			day := time.Now()
			if on != "" {
				day, err = time.Parse("2006-01-02", on)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", on)
				}
			}

			s := schedule.Generate(startDate, modules)
			due := s.ReviewsOn(day)
			if len(due) == 0 {
				fmt.Printf("Nothing due on %s.\n", schedule.FormatLong(day))
				return nil
			}

			fmt.Printf("Due on %s:\n", schedule.FormatLong(day))
			for _, r := range due {
				m, ok := s.ModuleByID(r.ModuleID)
				if !ok {
					continue
				}
				fmt.Printf("  %-9s Chapter %d: %s\n", schedule.Label(r), m.Chapter, m.Title)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVarP(&on, "on", "o", "", "Day to query (YYYY-MM-DD, default: today)")

	return cmd
}
