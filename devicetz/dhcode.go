// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package devicetz

// deviceCodeMinutes lists the UTC offsets, in minutes, understood by
// Dahua style devices. The index of an offset is its device code and
// hence the order must never change.
var deviceCodeMinutes = [...]int{
	0, 60, 120, 180, 210, 240, 270, 300, 330, 345,
	360, 390, 420, 480, 540, 570, 600, 660, 720, 780,
	-60, -120, -180, -210, -240, -300, -360, -420, -480,
	-540, -600, -660, -720,
}

// DeviceCode returns the device code for the supplied UTC offset in
// seconds, or -1 if the offset is not one of the recognised offsets.
func DeviceCode(utcOffsetSeconds int) int {
	for code, minutes := range deviceCodeMinutes {
		if minutes*60 == utcOffsetSeconds {
			return code
		}
	}
	return -1
}

// DeviceCodes returns the UTC offsets, in seconds, indexed by device code.
func DeviceCodes() []int {
	offsets := make([]int, len(deviceCodeMinutes))
	for i, m := range deviceCodeMinutes {
		offsets[i] = m * 60
	}
	return offsets
}
