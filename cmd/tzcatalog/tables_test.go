// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/cosnicolaou/devicetz/catalog"
	"github.com/cosnicolaou/devicetz/devicetz"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func TestFormatOffset(t *testing.T) {
	for _, tc := range []struct {
		seconds int
		out     string
	}{
		{0, "UTC+00:00"},
		{19800, "UTC+05:30"},
		{20700, "UTC+05:45"},
		{-34200, "UTC-09:30"},
		{-18000, "UTC-05:00"},
		{46800, "UTC+13:00"},
	} {
		if got, want := formatOffset(tc.seconds), tc.out; got != want {
			t.Errorf("%v: got %v, want %v", tc.seconds, got, want)
		}
	}
}

func TestFormatTransition(t *testing.T) {
	if got, want := formatTransition(nil), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	loc := time.FixedZone("EDT", -4*3600)
	tr := &devicetz.DSTTransition{
		Day:       devicetz.DayDescriptor{Month: 3, WeekOfMonth: 2, Weekday: 0, Hour: 3},
		DSTOffset: 3600,
		UTCOffset: -18000,
		At:        time.Date(2024, 3, 10, 3, 0, 0, 0, loc),
	}
	out := formatTransition(tr)
	for _, s := range []string{"2024", "10", "(M3.2.0/03:00:00)"} {
		if !strings.Contains(out, s) {
			t.Errorf("%q: missing from %q", s, out)
		}
	}
}

func containsHeader(t *testing.T, out string, headers ...string) {
	t.Helper()
	upper := cases.Upper(language.English)
	for _, h := range headers {
		if !strings.Contains(out, upper.String(h)) {
			t.Errorf("%v: missing from %v", h, out)
		}
	}
}

func TestCodesTable(t *testing.T) {
	tm := tableManager{}
	out := render(tm.Codes(), false)
	containsHeader(t, out, "Code", "Offset", "Hik Timezone")
	if !strings.Contains(out, "Dahua Timezone Codes") {
		t.Errorf("missing title: %v", out)
	}
	rows := map[string][]string{}
	for _, l := range strings.Split(out, "\n") {
		fields := strings.Split(l, "|")
		if len(fields) < 5 {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows[fields[1]] = fields[2:5]
	}
	for _, row := range []struct {
		code, utc, hik string
	}{
		{"0", "UTC+00:00", "CST 0:00:00"},
		{"8", "UTC+05:30", "CST-5:30:00"},
		{"25", "UTC-05:00", "CST 5:00:00"},
		{"32", "UTC-12:00", "CST 12:00:00"},
	} {
		fields, ok := rows[row.code]
		if !ok {
			t.Errorf("row %v: not found in %v", row.code, out)
			continue
		}
		if got, want := fields[1], row.utc; got != want {
			t.Errorf("%v: got %v, want %v", row.code, got, want)
		}
		if got, want := fields[2], row.hik; got != want {
			t.Errorf("%v: got %v, want %v", row.code, got, want)
		}
	}

	tsv := render(tm.Codes(), true)
	if !strings.Contains(tsv, "8\t19800\tUTC+05:30\tCST-5:30:00") {
		t.Errorf("row not found in %v", tsv)
	}
}

func TestCatalogTable(t *testing.T) {
	in := &devicetz.DSTTransition{
		Day:       devicetz.DayDescriptor{Month: 10, WeekOfMonth: 1, Weekday: 0, Hour: 3},
		DSTOffset: 3600,
		UTCOffset: 36000,
		At:        time.Date(2023, 9, 30, 16, 0, 0, 0, time.UTC),
	}
	out := &devicetz.DSTTransition{
		Day:       devicetz.DayDescriptor{Month: 4, WeekOfMonth: 1, Weekday: 0, Hour: 2},
		DSTOffset: 3600,
		UTCOffset: 36000,
		At:        time.Date(2024, 4, 6, 16, 0, 0, 0, time.UTC),
	}
	cat := catalog.Catalog{
		Records: []devicetz.Record{
			{
				Identifier:    "Australia/Sydney",
				HikString:     devicetz.HikString(36000, 3600, in, out),
				DHCode:        devicetz.DeviceCode(36000),
				DSTOffset:     3600,
				UTCOffset:     36000,
				TransitionIn:  in,
				TransitionOut: out,
			},
			{
				Identifier: "Asia/Kolkata",
				HikString:  devicetz.HikString(19800, 0, nil, nil),
				DHCode:     devicetz.DeviceCode(19800),
				UTCOffset:  19800,
			},
		},
	}
	tm := tableManager{}
	table := render(tm.Catalog(cat), false)
	containsHeader(t, table, "Timezone", "Hik Timezone", "DST From", "DST Until")
	for _, s := range []string{
		"Australia/Sydney",
		"CST-10:00:00DST01:00:00,M10.1.0/03:00:00,M4.1.0/02:00:00",
		"UTC+10:00",
		"(M4.1.0/02:00:00)",
		"Asia/Kolkata",
		"CST-5:30:00",
	} {
		if !strings.Contains(table, s) {
			t.Errorf("%v: missing from %v", s, table)
		}
	}
}
