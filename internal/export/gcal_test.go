// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package export

import (
	"net/url"
	"strings"
	"testing"
)

func TestEventLink(t *testing.T) {
	link := EventLink(testReview(2), testModule)

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if u.Scheme != "https" || u.Host != "calendar.google.com" || u.Path != "/calendar/render" {
		t.Errorf("endpoint = %s://%s%s", u.Scheme, u.Host, u.Path)
	}

	q := u.Query()
	if got := q.Get("action"); got != "TEMPLATE" {
		t.Errorf("action = %q", got)
	}
	if got := q.Get("text"); got != "Review 2: Go Basics" {
		t.Errorf("text = %q", got)
	}
	if got := q.Get("dates"); got != "20260108T090000Z/20260108T100000Z" {
		t.Errorf("dates = %q", got)
	}
	if details := q.Get("details"); !strings.Contains(details, "Review 2 of 6") {
		t.Errorf("details missing session line: %q", details)
	}
}

func TestEventLinkEncoding(t *testing.T) {
	m := testModule
	m.Title = "Maps & Slices"

	link := EventLink(testReview(0), m)
	if strings.Contains(link, " ") {
		t.Error("link contains unencoded space")
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := u.Query().Get("text"); got != "Learn: Maps & Slices" {
		t.Errorf("title did not round-trip through encoding: %q", got)
	}
}
