// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package testutil

import (
	"sync/atomic"
	"time"

	"github.com/cosnicolaou/devicetz/devicetz"
)

// StubZone is a devicetz.Zone whose DST status is determined by a
// user supplied function. Days are always 24 hours long and the number
// of calls to IsDST and AddDays are recorded.
type StubZone struct {
	name      string
	std, dst  int
	inDST     func(time.Time) bool
	dstCalls  atomic.Int64
	dayCalls  atomic.Int64
	standard  *time.Location
	daylight  *time.Location
	reference *time.Location
}

// NewStubZone creates a new StubZone with the specified standard and DST
// offsets in seconds.
func NewStubZone(name string, std, dst int, inDST func(time.Time) bool) *StubZone {
	return &StubZone{
		name:      name,
		std:       std,
		dst:       dst,
		inDST:     inDST,
		standard:  time.FixedZone(name+"-STD", std),
		daylight:  time.FixedZone(name+"-DST", std+dst),
		reference: time.FixedZone(name, std),
	}
}

// NeverDST returns a StubZone that never observes DST.
func NeverDST(name string, std int) *StubZone {
	return NewStubZone(name, std, 0, func(time.Time) bool { return false })
}

// Between returns a function that reports DST as being in effect in the
// interval [from, to).
func Between(from, to time.Time) func(time.Time) bool {
	return func(t time.Time) bool {
		return !t.Before(from) && t.Before(to)
	}
}

func (z *StubZone) Name() string {
	return z.name
}

func (z *StubZone) Location() *time.Location {
	return z.reference
}

func (z *StubZone) IsDST(t time.Time) bool {
	z.dstCalls.Add(1)
	return z.inDST(t)
}

func (z *StubZone) DSTOffset(t time.Time) int {
	if z.inDST(t) {
		return z.dst
	}
	return 0
}

func (z *StubZone) UTCOffset(t time.Time) int {
	return z.std + z.DSTOffset(t)
}

func (z *StubZone) StandardOffset(time.Time) int {
	return z.std
}

func (z *StubZone) in(t time.Time) time.Time {
	if z.inDST(t) {
		return t.In(z.daylight)
	}
	return t.In(z.standard)
}

func (z *StubZone) Local(t time.Time) devicetz.LocalTime {
	t = z.in(t)
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

func (z *StubZone) AddDays(t time.Time, days int) time.Time {
	z.dayCalls.Add(1)
	return t.Add(time.Duration(days) * 24 * time.Hour)
}

func (z *StubZone) AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// Date returns the instant for the specified time in standard time.
func (z *StubZone) Date(year int, month time.Month, day, hour, minute, second int) (time.Time, bool) {
	return time.Date(year, month, day, hour, minute, second, 0, z.standard), true
}

// Calls returns the number of calls made to IsDST and AddDays.
func (z *StubZone) Calls() (isDST, addDays int) {
	return int(z.dstCalls.Load()), int(z.dayCalls.Load())
}

// Reset resets the call counters.
func (z *StubZone) Reset() {
	z.dstCalls.Store(0)
	z.dayCalls.Store(0)
}

// Resolver is a devicetz.Resolver for a fixed set of zones.
type Resolver map[string]devicetz.Zone

func (r Resolver) Resolve(identifier string) (devicetz.Zone, bool) {
	z, ok := r[identifier]
	return z, ok
}

// FixedTime is a devicetz.TimeSource that always returns the same time.
type FixedTime time.Time

func (ft FixedTime) NowIn(loc *time.Location) time.Time {
	return time.Time(ft).In(loc)
}
