// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package export

import (
	"archive/zip"
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/mtreilly/arc-recall/internal/schedule"
)

func TestAnkiExport(t *testing.T) {
	modules := []schedule.Module{
		testModule,
		{
			ID:              "control-flow",
			Title:           "Control Flow",
			Chapter:         2,
			Concepts:        []string{"if", "for"},
			ReviewQuestions: []string{"When does a for loop end?", "What does fallthrough do?"},
			TutorialAnchor:  "#control-flow",
		},
	}

	var buf bytes.Buffer
	if err := NewAnkiExporter("Test Deck").ExportModules(modules, &buf); err != nil {
		t.Fatalf("ExportModules: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("read apkg zip: %v", err)
	}

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names["collection.anki2"] || !names["media"] {
		t.Fatalf("apkg entries = %v, want collection.anki2 and media", names)
	}

	// Pull the collection out and count notes: one per review question.
	dbPath := filepath.Join(t.TempDir(), "collection.anki2")
	extractZipEntry(t, zr, "collection.anki2", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open collection: %v", err)
	}
	defer db.Close()

	var notes int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&notes); err != nil {
		t.Fatalf("count notes: %v", err)
	}
	if notes != 3 {
		t.Errorf("collection has %d notes, want 3", notes)
	}

	var front string
	if err := db.QueryRow("SELECT sfld FROM notes ORDER BY id LIMIT 1").Scan(&front); err != nil {
		t.Fatalf("read first note: %v", err)
	}
	if front != "What does := do?" {
		t.Errorf("first card front = %q", front)
	}
}

func TestAnkiExportNoQuestions(t *testing.T) {
	modules := []schedule.Module{
		{ID: "empty", Title: "No Questions", Chapter: 1, Concepts: []string{"x"}},
	}

	var buf bytes.Buffer
	if err := NewAnkiExporter("").ExportModules(modules, &buf); err != nil {
		t.Fatalf("ExportModules: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("exporter wrote nothing for an empty deck")
	}
}

func extractZipEntry(t *testing.T, zr *zip.Reader, name, dest string) {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		var data bytes.Buffer
		if _, err := data.ReadFrom(rc); err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if err := os.WriteFile(dest, data.Bytes(), 0644); err != nil {
			t.Fatalf("write %s: %v", dest, err)
		}
		return
	}
	t.Fatalf("%s not found in archive", name)
}
