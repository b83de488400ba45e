// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zones provides devicetz.Zone implementations backed by
// time.Location, resolvers for them and support for enumerating
// the identifiers in a zoneinfo database.
package zones

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/devicetz/devicetz"
)

// LocationZone implements devicetz.Zone using a time.Location.
type LocationZone struct {
	name string
	loc  *time.Location
}

// NewLocationZone returns a LocationZone for the supplied location, name
// is used in preference to loc.String() if not empty.
func NewLocationZone(name string, loc *time.Location) LocationZone {
	if len(name) == 0 {
		name = loc.String()
	}
	return LocationZone{name: name, loc: loc}
}

func (z LocationZone) Name() string {
	return z.name
}

func (z LocationZone) Location() *time.Location {
	return z.loc
}

func (z LocationZone) IsDST(t time.Time) bool {
	return t.In(z.loc).IsDST()
}

// UTCOffset returns the total offset, including any DST offset, at t.
func (z LocationZone) UTCOffset(t time.Time) int {
	_, offset := t.In(z.loc).Zone()
	return offset
}

// StandardOffset returns the offset, excluding DST, in effect at t. If t
// falls within DST the standard offset is taken from the neighbouring
// zone period that is not DST.
func (z LocationZone) StandardOffset(t time.Time) int {
	t = t.In(z.loc)
	if !t.IsDST() {
		return z.UTCOffset(t)
	}
	if std, ok := z.neighbouringStandard(t); ok {
		return z.UTCOffset(std)
	}
	return z.UTCOffset(t)
}

// DSTOffset returns the DST offset in effect at t, or zero if DST is not
// in effect.
func (z LocationZone) DSTOffset(t time.Time) int {
	t = t.In(z.loc)
	if !t.IsDST() {
		return 0
	}
	std, ok := z.neighbouringStandard(t)
	if !ok {
		return 0
	}
	return z.UTCOffset(t) - z.UTCOffset(std)
}

// neighbouringStandard returns an instant, adjacent to the zone period
// containing t, that is not in DST. The preceding period is preferred.
func (z LocationZone) neighbouringStandard(t time.Time) (time.Time, bool) {
	start, end := t.ZoneBounds()
	if !start.IsZero() {
		if before := start.Add(-time.Second); !before.IsDST() {
			return before, true
		}
	}
	if !end.IsZero() {
		if !end.IsDST() {
			return end, true
		}
	}
	return time.Time{}, false
}

// Local decomposes t in the zone's calendar.
func (z LocationZone) Local(t time.Time) devicetz.LocalTime {
	t = t.In(z.loc)
	return devicetz.LocalTime{
		Year:           t.Year(),
		Month:          t.Month(),
		Day:            t.Day(),
		Hour:           t.Hour(),
		Minute:         t.Minute(),
		WeekdayOrdinal: (t.Day()-1)/7 + 1,
		Weekday:        int(t.Weekday()) + 1,
	}
}

// AddDays adds the specified number of calendar days to t, preserving the
// local time of day where possible.
func (z LocationZone) AddDays(t time.Time, days int) time.Time {
	return t.In(z.loc).AddDate(0, 0, days)
}

func (z LocationZone) AddMinutes(t time.Time, minutes int) time.Time {
	return t.In(z.loc).Add(time.Duration(minutes) * time.Minute)
}

// Date returns the instant for the specified local date and time.
func (z LocationZone) Date(year int, month time.Month, day, hour, minute, second int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, false
	}
	cd := datetime.NewCalendarDate(year, datetime.Month(month), day)
	return cd.Time(datetime.NewTimeOfDay(hour, minute, second), z.loc), true
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
