// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package catalog builds the device timezone catalog, that is, the
// devicetz.Record for every known timezone, and serializes it as JSON.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
	"github.com/cosnicolaou/devicetz/devicetz"
	"github.com/cosnicolaou/devicetz/internal/logging"
)

// Catalog is an ordered list of records together with the identifiers
// for which no record could be built.
type Catalog struct {
	Records []devicetz.Record
	Omitted []string
}

// Lookup returns the record for the specified identifier.
func (c Catalog) Lookup(identifier string) (devicetz.Record, bool) {
	for _, r := range c.Records {
		if r.Identifier == identifier {
			return r, true
		}
	}
	return devicetz.Record{}, false
}

// chunks splits [0, n) into at most nchunks contiguous ranges.
func chunks(n, nchunks int) [][2]int {
	if nchunks < 1 {
		nchunks = 1
	}
	if nchunks > n {
		nchunks = n
	}
	ranges := make([][2]int, 0, nchunks)
	for i := 0; i < nchunks; i++ {
		ranges = append(ranges, [2]int{i * n / nchunks, (i + 1) * n / nchunks})
	}
	return ranges
}

// Build builds the records for the supplied identifiers using up to
// concurrency goroutines. The records are returned in the same order as
// the identifiers. Identifiers for which no record can be built are
// logged and listed in Catalog.Omitted; the only errors returned are
// those due to the context being canceled.
func Build(ctx context.Context, builder *devicetz.Builder, identifiers []string, concurrency int) (Catalog, error) {
	started := time.Now()
	records := make([]devicetz.Record, len(identifiers))
	built := make([]bool, len(identifiers))
	var g errgroup.T
	for _, r := range chunks(len(identifiers), concurrency) {
		g.Go(func() error {
			for i := r[0]; i < r[1]; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				records[i], built[i] = builder.Build(identifiers[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	cat := Catalog{Records: make([]devicetz.Record, 0, len(records))}
	for i, ok := range built {
		if !ok {
			cat.Omitted = append(cat.Omitted, identifiers[i])
			continue
		}
		cat.Records = append(cat.Records, records[i])
	}
	logging.WriteCatalogLog(ctxlog.Logger(ctx).With("mod", "catalog"),
		len(cat.Records), len(cat.Omitted), time.Since(started))
	return cat, nil
}

type recordJSON struct {
	HikTimezone string                   `json:"hik_timezone"`
	DHTimezone  int                      `json:"dh_timezone"`
	DSTOffset   int                      `json:"dst_offset"`
	RawOffset   int                      `json:"raw_offset"`
	DSTFrom     *devicetz.TransitionRule `json:"dst_from"`
	DSTUntil    *devicetz.TransitionRule `json:"dst_until"`
}

func newRecordJSON(r devicetz.Record) recordJSON {
	rj := recordJSON{
		HikTimezone: r.HikString,
		DHTimezone:  r.DHCode,
		DSTOffset:   r.DSTOffset,
		RawOffset:   r.UTCOffset,
	}
	if r.ObservesDST() {
		from, until := r.TransitionIn.Rule(), r.TransitionOut.Rule()
		rj.DSTFrom, rj.DSTUntil = &from, &until
	}
	return rj
}

// MarshalRecord returns the JSON encoding of a single record, without
// its identifier.
func MarshalRecord(r devicetz.Record) ([]byte, error) {
	return json.Marshal(newRecordJSON(r))
}

// MarshalJSON implements json.Marshaler. The catalog is encoded as a
// single object keyed by identifier with the keys in catalog order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range c.Records {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Identifier)
		if err != nil {
			return nil, err
		}
		val, err := MarshalRecord(r)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the catalog to w as indented JSON.
func (c Catalog) WriteJSON(w io.Writer) error {
	data, err := c.MarshalJSON()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "    "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return err
}
