// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package export serializes generated schedules into portable calendar
// formats: an RFC 5545 iCalendar file, Google Calendar deep links, an Anki
// deck, and JSON. All encoders are pure string/byte construction; the
// caller owns file delivery.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mtreilly/arc-recall/internal/schedule"
)

// DefaultFilename is the suggested name for a downloaded calendar file.
const DefaultFilename = "study-schedule.ics"

// prodID identifies this tool in the calendar envelope.
const prodID = "-//Arc Engineering//arc-recall//EN"

// crlf is the line terminator RFC 5545 mandates. Platform-default line
// endings produce files some calendar clients reject.
const crlf = "\r\n"

// uidNamespace is the fixed namespace for name-based event UUIDs. Encoding
// the same (module, review number, date) triple always yields the same UID,
// so re-importing a regenerated file de-duplicates cleanly.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("arc-recall.mtreilly.dev"))

// Events run 09:00-10:00 on the review's calendar date, folded straight
// into UTC. The schedule is not timezone-aware; clients see a fixed
// 09:00Z/10:00Z instant regardless of where the user studies.
const (
	eventStartHour = 9
	eventEndHour   = 10
)

// EncodeEvent encodes a single review as a VEVENT block, CRLF-terminated.
func EncodeEvent(r schedule.Review, m schedule.Module) string {
	day := midnightUTC(r.Date)
	var b strings.Builder

	b.WriteString("BEGIN:VEVENT" + crlf)
	fmt.Fprintf(&b, "UID:%s%s", eventUID(r), crlf)
	fmt.Fprintf(&b, "DTSTART:%s%s", icsTimestamp(day, eventStartHour), crlf)
	fmt.Fprintf(&b, "DTEND:%s%s", icsTimestamp(day, eventEndHour), crlf)
	fmt.Fprintf(&b, "SUMMARY:%s%s", escapeText(schedule.EventSummary(r, m)), crlf)
	fmt.Fprintf(&b, "DESCRIPTION:%s%s", escapeText(schedule.EventDescription(r, m)), crlf)
	b.WriteString("END:VEVENT" + crlf)

	return b.String()
}

// EncodeFile encodes the reviews as a complete iCalendar payload. Reviews
// whose module is missing from the catalog slice are skipped; a stale
// module reference should not poison the whole export.
func EncodeFile(reviews []schedule.Review, modules []schedule.Module) string {
	byID := make(map[string]schedule.Module, len(modules))
	for _, m := range modules {
		byID[m.ID] = m
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR" + crlf)
	b.WriteString("VERSION:2.0" + crlf)
	b.WriteString("PRODID:" + prodID + crlf)
	b.WriteString("CALSCALE:GREGORIAN" + crlf)
	b.WriteString("METHOD:PUBLISH" + crlf)

	for _, r := range reviews {
		m, ok := byID[r.ModuleID]
		if !ok {
			continue
		}
		b.WriteString(EncodeEvent(r, m))
	}

	b.WriteString("END:VCALENDAR" + crlf)
	return b.String()
}

// eventUID derives the stable event identifier from the review's identity
// and date.
func eventUID(r schedule.Review) string {
	name := fmt.Sprintf("%s:%d:%d", r.ModuleID, r.ReviewNumber, midnightUTC(r.Date).Unix())
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@arc-recall"
}

// icsTimestamp renders the compact UTC form YYYYMMDDTHHMMSSZ.
func icsTimestamp(day time.Time, hour int) string {
	return fmt.Sprintf("%sT%02d0000Z", day.Format("20060102"), hour)
}

// midnightUTC pins a date to 00:00 UTC on its calendar day, discarding any
// time-of-day the generator carried through.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// escapeText quotes free text per RFC 5545: backslash first, then
// semicolons, commas, and line breaks. An unescaped delimiter truncates
// the field in strict clients.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\n`)
	return s
}
