// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-recall/internal/config"
	"github.com/mtreilly/arc-recall/internal/schedule"
)

func newModulesCmd(cfg *config.Config, modules []schedule.Module) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the modules in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(modules) == 0 {
				fmt.Println("Catalog is empty.")
				fmt.Printf("Point the catalog setting at a YAML file (current: %s).\n", cfg.Catalog)
				return nil
			}

			for _, m := range modules {
				fmt.Printf("%2d  %-16s %s\n", m.Chapter, m.ID, truncate(m.Title, 50))
				if !verbose {
					continue
				}
				fmt.Printf("    concepts:  %s\n", strings.Join(m.Concepts, ", "))
				if len(m.ReviewQuestions) > 0 {
					fmt.Printf("    questions: %d\n", len(m.ReviewQuestions))
				}
				if m.TutorialAnchor != "" {
					fmt.Printf("    tutorial:  %s\n", m.TutorialAnchor)
				}
			}
			fmt.Printf("\nTotal: %d module(s)\n", len(modules))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show concepts and questions per module")

	return cmd
}
