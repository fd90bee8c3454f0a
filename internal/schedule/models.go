// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package schedule

import (
	"time"
)

// Module represents one chapter of the study catalog.
// Modules are immutable input data: the generator reads them and never
// writes them back.
type Module struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Chapter         int      `json:"chapter" yaml:"chapter"`
	Concepts        []string `json:"concepts" yaml:"concepts"`
	ReviewQuestions []string `json:"review_questions,omitempty" yaml:"review_questions,omitempty"`
	TutorialAnchor  string   `json:"tutorial_anchor,omitempty" yaml:"tutorial_anchor,omitempty"`
}

// Review is a single dated study event. ReviewNumber 0 is the first
// exposure to the module; 1..6 are the spaced repeats. A review is
// identified by the (ModuleID, ReviewNumber) pair.
type Review struct {
	ModuleID          string    `json:"module_id"`
	ReviewNumber      int       `json:"review_number"`
	Date              time.Time `json:"date"`
	IsInitialLearning bool      `json:"is_initial_learning"`
}

// Schedule is a fully generated study plan: the start date, the catalog
// slice it was built from, and every review sorted by date ascending.
// Reviews on the same day keep generation order (module order, then
// review number).
type Schedule struct {
	StartDate time.Time `json:"start_date"`
	Modules   []Module  `json:"modules"`
	Reviews   []Review  `json:"reviews"`
}
