// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package logging defines the structured log entries written when building
// device timezone records and catalogs, and the means of parsing them.
package logging

import (
	"log/slog"
	"time"
)

const (
	LogOmitted      = "omitted"
	LogBuilt        = "built"
	LogNoDSTOffset  = "no dst offset"
	LogBuildStarted = "building catalog"
	LogCatalog      = "catalog"
)

// TimeWithTZ is the format used to display logged times.
const TimeWithTZ = "2006-01-02T15:04:05 MST"

// Reasons for omitting a timezone from the catalog.
const (
	ReasonUnknown     = "unknown timezone"
	ReasonNoReference = "no reference instant"
	ReasonScanLimit   = "dst window scan limit"
)

// WriteOmittedLog logs that no record could be built for tz. The reference
// instant is only logged if it is known.
func WriteOmittedLog(l *slog.Logger, tz, reason string, ref time.Time) {
	if ref.IsZero() {
		l.Info(LogOmitted, "tz", tz, "reason", reason)
		return
	}
	l.Info(LogOmitted, "tz", tz, "reason", reason, "ref", ref)
}

// WriteBuiltLog logs the successful creation of the record for tz.
func WriteBuiltLog(l *slog.Logger, tz, hik string, dh int) {
	l.Info(LogBuilt, "tz", tz, "hik", hik, "dh", dh)
}

// WriteNoDSTOffsetLog logs that a DST window was found for tz but that
// the DST offset within it is zero.
func WriteNoDSTOffsetLog(l *slog.Logger, tz string, start, end time.Time) {
	l.Info(LogNoDSTOffset, "tz", tz, "start", start, "end", end)
}

// WriteBuildStartedLog logs the start of a catalog build.
func WriteBuildStartedLog(l *slog.Logger, resolver string, year, timezones int) {
	l.Info(LogBuildStarted, "resolver", resolver, "year", year, "#timezones", timezones)
}

// WriteCatalogLog logs the size of a completed catalog.
func WriteCatalogLog(l *slog.Logger, records, omitted int, elapsed time.Duration) {
	l.Info(LogCatalog, "#records", records, "#omitted", omitted, "elapsed", elapsed)
}
