// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-recall/internal/config"
	"github.com/mtreilly/arc-recall/internal/schedule"
)

func newScheduleCmd(cfg *config.Config, modules []schedule.Module) *cobra.Command {
	var start string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the full review schedule",
		Long: `Generate and print the full spaced-repetition schedule.

Each module is learned on its own day (catalog order) and reviewed at
fixed offsets of 1, 3, 7, 14, 30, and 60 days from its learning day.

Examples:
  arc-recall schedule                     # start today
  arc-recall schedule --start 2026-01-01  # fixed start date
  arc-recall schedule --json              # machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := resolveStart(cfg, start)
			if err != nil {
				return err
			}

			s := schedule.Generate(startDate, modules)

			if asJSON {
				out, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			if len(s.Reviews) == 0 {
				fmt.Println("Catalog is empty; nothing to schedule.")
				return nil
			}

			lo, hi := s.DateRange()
			fmt.Printf("Study schedule: %s through %s (%d sessions)\n\n",
				schedule.FormatLong(lo), schedule.FormatLong(hi), len(s.Reviews))

			var lastDay string
			for _, r := range s.Reviews {
				m, ok := s.ModuleByID(r.ModuleID)
				if !ok {
					continue
				}
				day := schedule.FormatShort(r.Date)
				if day != lastDay {
					fmt.Printf("%s\n", schedule.FormatLong(r.Date))
					lastDay = day
				}
				fmt.Printf("  %-9s %s\n", schedule.Label(r), truncate(m.Title, 60))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the schedule as JSON")

	return cmd
}
