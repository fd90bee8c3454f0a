// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package export

import (
	"strings"
	"testing"
	"time"

	"github.com/mtreilly/arc-recall/internal/schedule"
)

var testModule = schedule.Module{
	ID:              "go-basics",
	Title:           "Go Basics",
	Chapter:         1,
	Concepts:        []string{"packages", "variables"},
	ReviewQuestions: []string{"What does := do?"},
	TutorialAnchor:  "#go-basics",
}

func testReview(number int) schedule.Review {
	return schedule.Review{
		ModuleID:          "go-basics",
		ReviewNumber:      number,
		Date:              time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC),
		IsInitialLearning: number == 0,
	}
}

func TestEncodeEventFields(t *testing.T) {
	block := EncodeEvent(testReview(3), testModule)

	for _, want := range []string{
		"BEGIN:VEVENT\r\n",
		"DTSTART:20260108T090000Z\r\n",
		"DTEND:20260108T100000Z\r\n",
		"SUMMARY:Review 3: Go Basics\r\n",
		"END:VEVENT\r\n",
	} {
		if !strings.Contains(block, want) {
			t.Errorf("event block missing %q:\n%s", want, block)
		}
	}
	if !strings.Contains(block, "UID:") || !strings.Contains(block, "@arc-recall\r\n") {
		t.Errorf("event block missing UID:\n%s", block)
	}
}

func TestEncodeEventTimestampRoundTrip(t *testing.T) {
	block := EncodeEvent(testReview(0), testModule)

	start := fieldValue(t, block, "DTSTART")
	end := fieldValue(t, block, "DTEND")

	st, err := time.Parse("20060102T150405Z", start)
	if err != nil {
		t.Fatalf("parse DTSTART %q: %v", start, err)
	}
	et, err := time.Parse("20060102T150405Z", end)
	if err != nil {
		t.Fatalf("parse DTEND %q: %v", end, err)
	}

	if want := time.Date(2026, time.January, 8, 9, 0, 0, 0, time.UTC); !st.Equal(want) {
		t.Errorf("DTSTART = %s, want %s", st, want)
	}
	if want := time.Date(2026, time.January, 8, 10, 0, 0, 0, time.UTC); !et.Equal(want) {
		t.Errorf("DTEND = %s, want %s", et, want)
	}
}

func TestEncodeEventUIDStable(t *testing.T) {
	a := fieldValue(t, EncodeEvent(testReview(2), testModule), "UID")
	b := fieldValue(t, EncodeEvent(testReview(2), testModule), "UID")
	if a != b {
		t.Errorf("UID not stable across encodings: %q vs %q", a, b)
	}

	// Different review number, different UID.
	c := fieldValue(t, EncodeEvent(testReview(3), testModule), "UID")
	if a == c {
		t.Error("distinct reviews share a UID")
	}

	// Time-of-day on the review date must not change the UID.
	noon := testReview(2)
	noon.Date = noon.Date.Add(12 * time.Hour)
	if d := fieldValue(t, EncodeEvent(noon, testModule), "UID"); d != a {
		t.Errorf("UID depends on time-of-day: %q vs %q", d, a)
	}
}

func TestEscaping(t *testing.T) {
	m := testModule
	m.Title = `Maps; Slices, and \Arrays`
	m.Concepts = []string{"line one\nline two"}

	block := EncodeEvent(testReview(0), m)

	if !strings.Contains(block, `SUMMARY:Learn: Maps\; Slices\, and \\Arrays`) {
		t.Errorf("summary not escaped:\n%s", block)
	}
	if !strings.Contains(block, `line one\nline two`) {
		t.Errorf("newline in concept not escaped:\n%s", block)
	}
	// No free-text field may contain a raw newline inside its value; every
	// \n in the block must belong to a CRLF terminator.
	for _, line := range strings.Split(strings.TrimSuffix(block, "\r\n"), "\r\n") {
		if strings.ContainsAny(line, "\r\n") {
			t.Errorf("raw line break survived inside field: %q", line)
		}
	}
}

func TestEncodeFileEnvelope(t *testing.T) {
	s := schedule.Generate(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		[]schedule.Module{testModule})
	payload := EncodeFile(s.Reviews, s.Modules)

	if !strings.HasPrefix(payload, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n") {
		t.Errorf("payload header wrong:\n%.120s", payload)
	}
	if !strings.HasSuffix(payload, "END:VCALENDAR\r\n") {
		t.Errorf("payload footer wrong:\n%s", payload[len(payload)-60:])
	}
	for _, want := range []string{"PRODID:" + prodID, "CALSCALE:GREGORIAN", "METHOD:PUBLISH"} {
		if !strings.Contains(payload, want) {
			t.Errorf("payload missing %q", want)
		}
	}
	if got := strings.Count(payload, "BEGIN:VEVENT"); got != schedule.ReviewsPerModule {
		t.Errorf("payload has %d events, want %d", got, schedule.ReviewsPerModule)
	}
	if strings.Contains(strings.ReplaceAll(payload, "\r\n", ""), "\n") {
		t.Error("payload contains a bare LF")
	}
}

func TestEncodeFileIdempotent(t *testing.T) {
	s := schedule.Generate(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		[]schedule.Module{testModule})

	a := EncodeFile(s.Reviews, s.Modules)
	b := EncodeFile(s.Reviews, s.Modules)
	if a != b {
		t.Error("EncodeFile not byte-for-byte idempotent")
	}
}

func TestEncodeFileSkipsDanglingModule(t *testing.T) {
	reviews := []schedule.Review{
		testReview(0),
		{ModuleID: "deleted-chapter", ReviewNumber: 1, Date: time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC)},
	}

	payload := EncodeFile(reviews, []schedule.Module{testModule})
	if got := strings.Count(payload, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("payload has %d events, want 1 (dangling review skipped)", got)
	}
}

// fieldValue extracts the value of the named property from an event block.
func fieldValue(t *testing.T, block, name string) string {
	t.Helper()
	for _, line := range strings.Split(block, "\r\n") {
		if v, ok := strings.CutPrefix(line, name+":"); ok {
			return v
		}
	}
	t.Fatalf("field %s not found in:\n%s", name, block)
	return ""
}
