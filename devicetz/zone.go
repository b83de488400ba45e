// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package devicetz converts timezones into the configuration strings and
// codes used by Hikvision and Dahua style surveillance devices. DST
// transitions are located by probing a Zone rather than by interpreting
// the timezone rules directly.
package devicetz

import "time"

// LocalTime is the decomposition of an instant in a zone's own calendar.
// Weekday follows the 1=Sunday..7=Saturday convention and WeekdayOrdinal
// is the occurrence of that weekday within the month, ie. (day-1)/7+1.
type LocalTime struct {
	Year           int
	Month          time.Month
	Day            int
	Hour           int
	Minute         int
	WeekdayOrdinal int
	Weekday        int
}

// Zone is the host calendar capability required to build a Record.
// Offsets are in seconds east of UTC.
type Zone interface {
	Name() string
	Location() *time.Location
	IsDST(t time.Time) bool
	DSTOffset(t time.Time) int
	UTCOffset(t time.Time) int
	StandardOffset(t time.Time) int
	Local(t time.Time) LocalTime
	AddDays(t time.Time, days int) time.Time
	AddMinutes(t time.Time, minutes int) time.Time
	Date(year int, month time.Month, day, hour, minute, second int) (time.Time, bool)
}

// Resolver resolves a timezone identifier to a Zone.
type Resolver interface {
	Resolve(identifier string) (Zone, bool)
}

// TimeSource provides the current time in a specific location and is
// intended for testing purposes.
type TimeSource interface {
	NowIn(in *time.Location) time.Time
}

// SystemTimeSource is the TimeSource used by default, it returns the
// system's current time.
type SystemTimeSource struct{}

// NowIn implements TimeSource.
func (SystemTimeSource) NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}
