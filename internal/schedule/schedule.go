// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package schedule generates spaced-repetition study calendars.
//
// The generator is a pure function over a start date and an ordered module
// catalog: module i is first learned on startDate+i days, and every module
// then follows the same fixed interval ladder relative to its own learning
// day. Nothing here mutates its inputs or touches the clock, so identical
// inputs always produce identical schedules.
//
// Dates are compared at calendar-day granularity; callers are responsible
// for passing valid dates. Time-of-day on the start date carries through
// to every review date but is never inspected.
package schedule

import (
	"sort"
	"time"
)

// ReviewIntervals is the fixed ladder of day offsets for the spaced
// repeats, counted from each module's own learning day. Review number k
// (k >= 1) lands at ReviewIntervals[k-1] days.
var ReviewIntervals = [...]int{1, 3, 7, 14, 30, 60}

// ReviewsPerModule is the number of events generated per module: one
// initial learning event plus one repeat per ladder step.
const ReviewsPerModule = len(ReviewIntervals) + 1

// Generate builds the full schedule for the given catalog. Module i is
// learned on start+i days, so no two modules share a learning day. The
// returned reviews are sorted by date; same-day reviews keep the order
// they were generated in (module order, then review number).
func Generate(start time.Time, modules []Module) *Schedule {
	reviews := make([]Review, 0, len(modules)*ReviewsPerModule)

	for i, m := range modules {
		learnDate := start.AddDate(0, 0, i)
		reviews = append(reviews, Review{
			ModuleID:          m.ID,
			ReviewNumber:      0,
			Date:              learnDate,
			IsInitialLearning: true,
		})
		for k, interval := range ReviewIntervals {
			reviews = append(reviews, Review{
				ModuleID:     m.ID,
				ReviewNumber: k + 1,
				Date:         learnDate.AddDate(0, 0, interval),
			})
		}
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Date.Before(reviews[j].Date)
	})

	return &Schedule{
		StartDate: start,
		Modules:   modules,
		Reviews:   reviews,
	}
}

// ReviewsOn returns the reviews falling on the given calendar day,
// preserving schedule order. A date with no reviews yields an empty slice.
func (s *Schedule) ReviewsOn(date time.Time) []Review {
	var out []Review
	for _, r := range s.Reviews {
		if sameDay(r.Date, date) {
			out = append(out, r)
		}
	}
	return out
}

// ModuleByID looks up a module in the schedule's catalog. A missing ID is
// a normal outcome, reported through the second return value.
func (s *Schedule) ModuleByID(id string) (Module, bool) {
	for _, m := range s.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// DateRange returns the earliest and latest review dates. With no reviews
// both bounds collapse to the start date.
func (s *Schedule) DateRange() (start, end time.Time) {
	if len(s.Reviews) == 0 {
		return s.StartDate, s.StartDate
	}
	start = s.Reviews[0].Date
	end = s.Reviews[0].Date
	for _, r := range s.Reviews[1:] {
		if r.Date.Before(start) {
			start = r.Date
		}
		if r.Date.After(end) {
			end = r.Date
		}
	}
	return start, end
}

// GridDays is the size of the month-view grid: 6 rows of 7 days.
const GridDays = 42

// CalendarGrid returns the 42 consecutive dates of the month-view grid
// anchored at the given date. The first cell is the Sunday on or before
// the anchor (time.Weekday numbers Sunday 0). Independent of any schedule;
// callers decide which cells fall outside the displayed month.
func CalendarGrid(anchor time.Time) []time.Time {
	first := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	days := make([]time.Time, GridDays)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// sameDay reports whether two times fall on the same calendar day,
// ignoring time-of-day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
