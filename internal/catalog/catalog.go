// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package catalog loads the study module catalog from YAML. The generator
// itself takes the catalog as a plain parameter; this package is the only
// place that knows where modules come from.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mtreilly/arc-recall/internal/schedule"
)

// file is the on-disk shape of a catalog.
type file struct {
	Modules []schedule.Module `yaml:"modules"`
}

// Load reads and validates a catalog file.
func Load(path string) ([]schedule.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) ([]schedule.Module, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(f.Modules); err != nil {
		return nil, err
	}
	return f.Modules, nil
}

// Validate checks the catalog invariants: non-empty unique IDs, titles,
// positive chapter numbers in catalog order, and at least one concept per
// module.
func Validate(modules []schedule.Module) error {
	seen := make(map[string]bool, len(modules))
	prevChapter := 0
	for i, m := range modules {
		if m.ID == "" {
			return fmt.Errorf("module %d: missing id", i)
		}
		if seen[m.ID] {
			return fmt.Errorf("module %d: duplicate id %q", i, m.ID)
		}
		seen[m.ID] = true

		if m.Title == "" {
			return fmt.Errorf("module %q: missing title", m.ID)
		}
		if m.Chapter <= 0 {
			return fmt.Errorf("module %q: chapter must be positive, got %d", m.ID, m.Chapter)
		}
		if m.Chapter <= prevChapter {
			return fmt.Errorf("module %q: chapter %d out of order (previous was %d)", m.ID, m.Chapter, prevChapter)
		}
		prevChapter = m.Chapter

		if len(m.Concepts) == 0 {
			return fmt.Errorf("module %q: no concepts", m.ID)
		}
	}
	return nil
}
