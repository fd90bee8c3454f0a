// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-recall/internal/config"
	"github.com/mtreilly/arc-recall/internal/export"
	"github.com/mtreilly/arc-recall/internal/schedule"
)

func newExportCmd(cfg *config.Config, modules []schedule.Module) *cobra.Command {
	var (
		format string // "ics", "gcal", "anki", "json"
		output string // file path or "-" for stdout
		start  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule to calendar tools",
		Long: `Export the generated schedule to other tools.

Formats:
  ics   iCalendar file importable by most calendar clients
  gcal  one Google Calendar link per session
  anki  .apkg deck built from the catalog's review questions
  json  the raw schedule

Examples:
  arc-recall export --format ics --start 2026-01-01
  arc-recall export --format ics -o my-schedule.ics
  arc-recall export --format anki -o deck.apkg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := resolveStart(cfg, start)
			if err != nil {
				return err
			}

			s := schedule.Generate(startDate, modules)

			var outBytes []byte
			switch format {
			case "ics":
				outBytes = []byte(export.EncodeFile(s.Reviews, s.Modules))
			case "gcal":
				outBytes = exportLinks(s)
			case "anki":
				var buf bytes.Buffer
				if err := export.NewAnkiExporter(cfg.CalendarName).ExportModules(s.Modules, &buf); err != nil {
					return fmt.Errorf("export anki: %w", err)
				}
				outBytes = buf.Bytes()
			case "json":
				outBytes, err = json.MarshalIndent(s, "", "  ")
				if err != nil {
					return fmt.Errorf("export json: %w", err)
				}
			default:
				return fmt.Errorf("unsupported format: %s (choose ics, gcal, anki, json)", format)
			}

			dest := output
			if dest == "" {
				dest = cfg.OutputFile
			}
			if dest == "" && format == "ics" {
				dest = export.DefaultFilename
			}
			if dest == "" || dest == "-" {
				fmt.Println(string(outBytes))
				return nil
			}

			if err := os.WriteFile(dest, outBytes, 0644); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
			fmt.Printf("Wrote %s (%d bytes)\n", dest, len(outBytes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "ics", "Export format: ics, gcal, anki, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout, or "+export.DefaultFilename+" for ics)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD, default: today)")

	return cmd
}

// exportLinks emits one Google Calendar deep link per session, prefixed
// with the date and label so the list is usable on its own.
func exportLinks(s *schedule.Schedule) []byte {
	var buf bytes.Buffer
	for _, r := range s.Reviews {
		m, ok := s.ModuleByID(r.ModuleID)
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%s  %s: %s\n  %s\n",
			schedule.FormatShort(r.Date), schedule.Label(r), m.Title, export.EventLink(r, m))
	}
	return buf.Bytes()
}
