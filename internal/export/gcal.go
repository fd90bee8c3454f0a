// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package export

import (
	"net/url"

	"github.com/mtreilly/arc-recall/internal/schedule"
)

// gcalBase is Google Calendar's event-template endpoint.
const gcalBase = "https://calendar.google.com/calendar/render"

// EventLink builds a Google Calendar deep link for one review: same title,
// description, and 09:00-10:00 UTC window as the iCalendar encoding. Pure
// string construction, no network.
func EventLink(r schedule.Review, m schedule.Module) string {
	day := midnightUTC(r.Date)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", schedule.EventSummary(r, m))
	q.Set("dates", icsTimestamp(day, eventStartHour)+"/"+icsTimestamp(day, eventEndHour))
	q.Set("details", schedule.EventDescription(r, m))

	return gcalBase + "?" + q.Encode()
}
