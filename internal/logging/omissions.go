// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"iter"
	"sync"
	"time"

	"cloudeng.io/algo/container/list"
)

// Omission represents a timezone for which no record could be built.
type Omission struct {
	TZ     string
	Reason string
	Ref    time.Time // Reference instant used for the DST scans, if known
	Logged time.Time

	listID list.DoubleID[*Omission]
}

// OmissionRecorder tracks omitted timezones across one or more build logs.
// A timezone that is omitted and subsequently built is no longer
// considered to be omitted, a timezone omitted more than once is reported
// with its most recent reason.
type OmissionRecorder struct {
	mu      sync.Mutex
	built   int
	index   map[string]*Omission
	omitted *list.Double[*Omission]
}

func NewOmissionRecorder() *OmissionRecorder {
	return &OmissionRecorder{
		index:   make(map[string]*Omission, 100),
		omitted: list.NewDouble[*Omission](),
	}
}

func (r *OmissionRecorder) remove(tz string) {
	if prev, ok := r.index[tz]; ok {
		r.omitted.RemoveItem(prev.listID)
		delete(r.index, tz)
	}
}

// Record processes a single log entry, only entries written by the
// record builder are considered.
func (r *OmissionRecorder) Record(le Entry) {
	if le.Mod != "devicetz" || len(le.TZ) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	switch le.Msg {
	case LogOmitted:
		r.remove(le.TZ)
		om := &Omission{
			TZ:     le.TZ,
			Reason: le.Reason,
			Ref:    le.Ref,
			Logged: le.Time,
		}
		om.listID = r.omitted.Append(om)
		r.index[le.TZ] = om
	case LogBuilt:
		r.remove(le.TZ)
		r.built++
	}
}

// Omitted returns an iterator over the omitted timezones in the order
// in which they were most recently omitted.
func (r *OmissionRecorder) Omitted() iter.Seq[*Omission] {
	return func(yield func(*Omission) bool) {
		r.mu.Lock()
		defer r.mu.Unlock()
		for om := range r.omitted.Forward() {
			if !yield(om) {
				return
			}
		}
	}
}

// Reasons returns the number of omitted timezones for each reason.
func (r *OmissionRecorder) Reasons() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	reasons := map[string]int{}
	for _, om := range r.index {
		reasons[om.Reason]++
	}
	return reasons
}

// Built returns the number of records logged as built.
func (r *OmissionRecorder) Built() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.built
}
