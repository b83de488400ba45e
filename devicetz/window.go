// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package devicetz

import "time"

// The DST window is located by treating Zone.IsDST as an opaque oracle:
// a coarse scan in whole days overshoots the transition and a fine scan
// in quarter hours then approaches it from the other side. Transitions are
// therefore reported to a 15 minute resolution.

const (
	// NoDSTScanDays is the number of days scanned forward, from outside of
	// DST, before concluding that a zone does not observe DST.
	NoDSTScanDays = 350

	// QuarterHour is the resolution of the fine grained scans in minutes.
	QuarterHour = 15

	maxDayScan         = 2 * 366
	maxQuarterHourScan = 2 * 24 * 60 / QuarterHour
)

type stepFunc func(time.Time) time.Time

func days(z Zone, n int) stepFunc {
	return func(t time.Time) time.Time { return z.AddDays(t, n) }
}

func minutes(z Zone, n int) stepFunc {
	return func(t time.Time) time.Time { return z.AddMinutes(t, n) }
}

// scan applies step to t for as long as cond(t) holds and returns the first
// instant for which it does not. At most limit steps are taken; false is
// returned if the limit is reached first, in which case the last instant
// stepped to is returned and cond has not been evaluated for it.
func scan(t time.Time, step stepFunc, cond func(time.Time) bool, limit int) (time.Time, bool) {
	for n := 0; cond(t); {
		t = step(t)
		n++
		if n >= limit {
			return t, false
		}
	}
	return t, true
}

func dstActive(z Zone) func(time.Time) bool {
	return z.IsDST
}

func dstInactive(z Zone) func(time.Time) bool {
	return func(t time.Time) bool { return !z.IsDST(t) }
}

// WindowStartFromInsideDST returns the start of the DST period that
// includes ref. It scans backwards a day at a time until outside of DST
// and then forwards a quarter hour at a time until DST is in effect again.
// The result is the first quarter hour aligned instant at which DST is
// reported as in effect.
func WindowStartFromInsideDST(z Zone, ref time.Time) (time.Time, bool) {
	t, ok := scan(ref, days(z, -1), dstActive(z), maxDayScan)
	if !ok {
		return time.Time{}, false
	}
	return scan(t, minutes(z, QuarterHour), dstInactive(z), maxQuarterHourScan)
}

// WindowEndFromInsideDST returns the end of the DST period that includes ref.
// It scans forwards a day at a time until outside of DST, then backwards
// a quarter hour at a time until DST is in effect and finally steps forward
// one quarter hour to the first instant past the boundary.
func WindowEndFromInsideDST(z Zone, ref time.Time) (time.Time, bool) {
	t, ok := scan(ref, days(z, 1), dstActive(z), maxDayScan)
	if !ok {
		return time.Time{}, false
	}
	t, ok = scan(t, minutes(z, -QuarterHour), dstInactive(z), maxQuarterHourScan)
	if !ok {
		return time.Time{}, false
	}
	return z.AddMinutes(t, QuarterHour), true
}

// WindowStartFromOutsideDST returns the start of the next DST period
// following ref, which must be outside of DST. At most NoDSTScanDays
// days are scanned and false is returned if DST is not encountered,
// ie. the zone does not observe DST.
func WindowStartFromOutsideDST(z Zone, ref time.Time) (time.Time, bool) {
	t, ok := scan(ref, days(z, 1), dstInactive(z), NoDSTScanDays)
	if !ok {
		return time.Time{}, false
	}
	t, ok = scan(t, minutes(z, -QuarterHour), dstActive(z), maxQuarterHourScan)
	if !ok {
		return time.Time{}, false
	}
	return z.AddMinutes(t, QuarterHour), true
}
