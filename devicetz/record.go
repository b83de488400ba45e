// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package devicetz

import (
	"io"
	"log/slog"
	"time"

	"github.com/cosnicolaou/devicetz/internal/logging"
)

// DSTTransition represents a transition into, or out of, DST. The offsets
// are shared by both transitions of a zone, UTCOffset being the standard,
// ie. non-DST, offset. At is the instant, to a quarter hour resolution,
// at which the transition was detected for the year scanned.
type DSTTransition struct {
	Day       DayDescriptor
	DSTOffset int
	UTCOffset int
	At        time.Time
}

// Rule returns the structured form of the transition.
func (t DSTTransition) Rule() TransitionRule {
	return StructuredRecord(t.Day, t.DSTOffset, t.UTCOffset)
}

// Record is the device configuration for a single timezone. TransitionIn
// and TransitionOut are either both set, for zones that observe DST, or
// both nil.
type Record struct {
	Identifier    string
	HikString     string
	DHCode        int
	DSTOffset     int
	UTCOffset     int
	TransitionIn  *DSTTransition
	TransitionOut *DSTTransition
}

// ObservesDST returns true if the record has DST transitions.
func (r Record) ObservesDST() bool {
	return r.TransitionIn != nil && r.TransitionOut != nil
}

type Option func(o *options)

type options struct {
	timeSource TimeSource
	logger     *slog.Logger
	year       int
}

// WithTimeSource sets the time source used to determine the current year
// and is primarily intended for testing purposes.
func WithTimeSource(ts TimeSource) Option {
	return func(o *options) {
		o.timeSource = ts
	}
}

// WithYear fixes the year for which DST transitions are computed, a value
// of zero implies the current year.
func WithYear(year int) Option {
	return func(o *options) {
		o.year = year
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Builder builds Records for timezone identifiers.
type Builder struct {
	options
	resolver Resolver
}

// NewBuilder creates a Builder that uses the supplied resolver to obtain
// Zones.
func NewBuilder(resolver Resolver, opts ...Option) *Builder {
	b := &Builder{resolver: resolver}
	for _, opt := range opts {
		opt(&b.options)
	}
	if b.timeSource == nil {
		b.timeSource = SystemTimeSource{}
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	b.logger = b.logger.With("mod", "devicetz")
	return b
}

// ReferenceInstant returns 10:00:00 on January 1st, in the zone's local
// time, of the builder's year.
func (b *Builder) ReferenceInstant(z Zone) (time.Time, bool) {
	year := b.year
	if year == 0 {
		year = b.timeSource.NowIn(z.Location()).Year()
	}
	return z.Date(year, time.January, 1, 10, 0, 0)
}

// Build returns the Record for the specified identifier. It returns false
// if the identifier is unknown or its DST window cannot be determined.
func (b *Builder) Build(identifier string) (Record, bool) {
	z, ok := b.resolver.Resolve(identifier)
	if !ok {
		logging.WriteOmittedLog(b.logger, identifier, logging.ReasonUnknown, time.Time{})
		return Record{}, false
	}
	return b.BuildZone(identifier, z)
}

// BuildZone returns the Record for the supplied zone.
func (b *Builder) BuildZone(identifier string, z Zone) (Record, bool) {
	ref, ok := b.ReferenceInstant(z)
	if !ok {
		logging.WriteOmittedLog(b.logger, identifier, logging.ReasonNoReference, time.Time{})
		return Record{}, false
	}
	start, end, observed, ok := dstWindow(z, ref)
	if !ok {
		logging.WriteOmittedLog(b.logger, identifier, logging.ReasonScanLimit, ref)
		return Record{}, false
	}
	if !observed {
		return b.built(newRecord(identifier, z.StandardOffset(b.timeSource.NowIn(z.Location())), 0, nil, nil)), true
	}
	sample := z.AddDays(start, 1)
	dstOffset := z.DSTOffset(sample)
	utcOffset := z.UTCOffset(sample) - dstOffset
	if dstOffset == 0 {
		logging.WriteNoDSTOffsetLog(b.logger, identifier, start, end)
		return b.built(newRecord(identifier, utcOffset, 0, nil, nil)), true
	}
	if dstOffset < 0 {
		// Negative DST, eg. Europe/Dublin, where the period flagged as DST
		// has the smaller offset. The devices only understand positive
		// DST so the other period is treated as DST instead.
		utcOffset, dstOffset = utcOffset+dstOffset, -dstOffset
		start, end = end, start
	}
	in := &DSTTransition{
		Day:       NewDayDescriptor(z.Local(start)),
		DSTOffset: dstOffset,
		UTCOffset: utcOffset,
		At:        start,
	}
	out := &DSTTransition{
		Day:       NewDayDescriptor(z.Local(end)),
		DSTOffset: dstOffset,
		UTCOffset: utcOffset,
		At:        end,
	}
	return b.built(newRecord(identifier, utcOffset, dstOffset, in, out)), true
}

func (b *Builder) built(r Record) Record {
	logging.WriteBuiltLog(b.logger, r.Identifier, r.HikString, r.DHCode)
	return r
}

// dstWindow returns the DST window relative to ref, observed is false if
// the zone does not observe DST and ok false if the window could not be
// determined.
func dstWindow(z Zone, ref time.Time) (start, end time.Time, observed, ok bool) {
	if z.IsDST(ref) {
		if start, ok = WindowStartFromInsideDST(z, ref); !ok {
			return
		}
		end, ok = WindowEndFromInsideDST(z, ref)
		return start, end, ok, ok
	}
	start, observed = WindowStartFromOutsideDST(z, ref)
	if !observed {
		return time.Time{}, time.Time{}, false, true
	}
	end, ok = WindowEndFromInsideDST(z, start)
	return start, end, ok, ok
}

func newRecord(identifier string, utcOffset, dstOffset int, in, out *DSTTransition) Record {
	return Record{
		Identifier:    identifier,
		HikString:     HikString(utcOffset, dstOffset, in, out),
		DHCode:        DeviceCode(utcOffset),
		DSTOffset:     dstOffset,
		UTCOffset:     utcOffset,
		TransitionIn:  in,
		TransitionOut: out,
	}
}
