// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package devicetz

import (
	"fmt"
	"time"
)

// DayDescriptor identifies a transition as the n'th weekday of a month
// at a given time of day. Weekday uses the POSIX convention of Sunday=0.
type DayDescriptor struct {
	Month       time.Month
	WeekOfMonth int
	Weekday     int
	Hour        int
	Minute      int
}

// NewDayDescriptor creates a DayDescriptor from a LocalTime, converting
// its 1=Sunday weekday to the POSIX convention.
func NewDayDescriptor(lt LocalTime) DayDescriptor {
	return DayDescriptor{
		Month:       lt.Month,
		WeekOfMonth: lt.WeekdayOrdinal,
		Weekday:     PosixWeekday(lt.Weekday),
		Hour:        lt.Hour,
		Minute:      lt.Minute,
	}
}

// PosixWeekday converts a 1=Sunday..7=Saturday weekday to 0=Sunday..6=Saturday.
func PosixWeekday(weekday int) int {
	return weekday - 1
}

// ISOWeekday converts a POSIX weekday to the 1=Monday..7=Sunday convention
// used by the structured transition records.
func ISOWeekday(posix int) int {
	if posix == 0 {
		return 7
	}
	return posix
}

// PosixRule returns the day in the POSIX TZ rule format, eg. M4.1.0/02:00:00.
func PosixRule(day DayDescriptor) string {
	return fmt.Sprintf("M%d.%d.%d/%02d:%02d:00", int(day.Month), day.WeekOfMonth, day.Weekday, day.Hour, day.Minute)
}

func (d DayDescriptor) String() string {
	return PosixRule(d)
}

// TransitionRule is the structured form of a DST transition as it
// appears in the catalog, note that Weekday is Sunday=7.
type TransitionRule struct {
	Month          int `json:"month" yaml:"month"`
	WeekdayOrdinal int `json:"weekday_ordinal" yaml:"weekday_ordinal"`
	Weekday        int `json:"weekday" yaml:"weekday"`
	Hour           int `json:"hour" yaml:"hour"`
	Minute         int `json:"minute" yaml:"minute"`
	Offset         int `json:"offset" yaml:"offset"`
	GMTOffset      int `json:"gmt_offset" yaml:"gmt_offset"`
}

// StructuredRecord returns the TransitionRule for the supplied day and offsets.
func StructuredRecord(day DayDescriptor, dstOffsetSeconds, utcOffsetSeconds int) TransitionRule {
	return TransitionRule{
		Month:          int(day.Month),
		WeekdayOrdinal: day.WeekOfMonth,
		Weekday:        ISOWeekday(day.Weekday),
		Hour:           day.Hour,
		Minute:         day.Minute,
		Offset:         dstOffsetSeconds,
		GMTOffset:      utcOffsetSeconds,
	}
}
