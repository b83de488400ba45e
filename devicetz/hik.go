// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package devicetz

import (
	"fmt"
	"strings"
)

// SecondsToTimeString formats seconds as h:mm:00, zero padding the hour
// when zeroedHour is set, eg. 3600 is 01:00:00 or 1:00:00. Negative values
// are formatted as their magnitude with a leading minus, eg. -00:30:00.
func SecondsToTimeString(seconds int, zeroedHour bool) string {
	sign := ""
	if seconds < 0 {
		sign, seconds = "-", -seconds
	}
	minutes := seconds / 60
	hour, minute := minutes/60, minutes%60
	if zeroedHour {
		return fmt.Sprintf("%s%02d:%02d:00", sign, hour, minute)
	}
	return fmt.Sprintf("%s%d:%02d:00", sign, hour, minute)
}

// cstPrefix returns the base of a hik string. The device expects the sign
// inverted, so that UTC+2 is CST-2:00:00 and UTC-2 is CST 2:00:00.
func cstPrefix(utcOffsetSeconds int) string {
	if utcOffsetSeconds > 0 {
		return "CST-" + SecondsToTimeString(utcOffsetSeconds, false)
	}
	return "CST " + SecondsToTimeString(-utcOffsetSeconds, false)
}

// HikString returns the Hikvision timezone string for the supplied offsets
// and transitions, eg. CST 2:00:00DST01:00:00,M10.1.0/03:00:00,M4.1.0/02:00:00.
// The transitions are only included when the DST offset is non-zero.
func HikString(utcOffsetSeconds, dstOffsetSeconds int, from, until *DSTTransition) string {
	var sb strings.Builder
	sb.WriteString(cstPrefix(utcOffsetSeconds))
	if dstOffsetSeconds == 0 {
		return sb.String()
	}
	sb.WriteString("DST")
	sb.WriteString(SecondsToTimeString(dstOffsetSeconds, true))
	if from != nil && until != nil {
		sb.WriteString(",")
		sb.WriteString(PosixRule(from.Day))
		sb.WriteString(",")
		sb.WriteString(PosixRule(until.Day))
	}
	return sb.String()
}
