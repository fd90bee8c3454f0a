// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Label returns the display label for a review: "Learn" for the initial
// exposure, "Review N" for the spaced repeats.
func Label(r Review) string {
	if r.IsInitialLearning {
		return "Learn"
	}
	return fmt.Sprintf("Review %d", r.ReviewNumber)
}

// EventSummary builds the one-line event title shared by the display layer
// and the calendar encoders.
func EventSummary(r Review, m Module) string {
	return Label(r) + ": " + m.Title
}

// EventDescription builds the multi-line event body: what kind of session
// this is, the module's concepts, its review questions when it has any,
// and a trailing pointer at the tutorial section. Plain text with \n line
// breaks; encoders apply their own escaping.
func EventDescription(r Review, m Module) string {
	var b strings.Builder

	if r.IsInitialLearning {
		fmt.Fprintf(&b, "Initial learning session for Chapter %d: %s\n", m.Chapter, m.Title)
	} else {
		fmt.Fprintf(&b, "Review %d of %d for Chapter %d: %s\n",
			r.ReviewNumber, len(ReviewIntervals), m.Chapter, m.Title)
	}

	b.WriteString("\nConcepts:\n")
	for _, c := range m.Concepts {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	if len(m.ReviewQuestions) > 0 {
		b.WriteString("\nReview questions:\n")
		for i, q := range m.ReviewQuestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
	}

	fmt.Fprintf(&b, "\nTutorial: %s", m.TutorialAnchor)
	return b.String()
}

// FormatShort renders a date as "Jan 2". Fixed English month names keep
// output deterministic regardless of locale.
func FormatShort(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatLong renders a date as "January 2, 2006".
func FormatLong(t time.Time) string {
	return t.Format("January 2, 2006")
}
