// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/cosnicolaou/devicetz/internal/logging"
	"github.com/jedib0t/go-pretty/v6/table"
)

type OmittedFlags struct {
	Reason string `subcmd:"reason,,only display timezones omitted for this reason"`
	TSV    bool   `subcmd:"tsv,false,print the table as tab separated values"`
}

type Log struct {
	out io.Writer
}

func (l *Log) processLog(rd io.Reader, rec *logging.OmissionRecorder) error {
	sc := logging.NewScanner(rd)
	for le := range sc.Entries(true) {
		rec.Record(le)
	}
	return sc.Err()
}

func (l *Log) Omitted(_ context.Context, flags any, args []string) error {
	fv := flags.(*OmittedFlags)
	rec := logging.NewOmissionRecorder()
	if len(args) == 0 {
		if err := l.processLog(os.Stdin, rec); err != nil {
			return err
		}
	}
	for _, file := range args {
		fi, err := os.OpenFile(file, os.O_RDONLY, 0)
		if err != nil {
			return err
		}
		err = l.processLog(fi, rec)
		fi.Close()
		if err != nil {
			return fmt.Errorf("failed to read log file: %q: %w", file, err)
		}
	}
	tm := tableManager{}
	fmt.Fprintln(l.out, render(tm.Omitted(rec, fv.Reason), fv.TSV))
	reasons := rec.Reasons()
	for _, reason := range slices.Sorted(maps.Keys(reasons)) {
		fmt.Fprintf(l.out, "%v: %v\n", reason, reasons[reason])
	}
	fmt.Fprintf(l.out, "built: %v\n", rec.Built())
	return nil
}

func (tm tableManager) Omitted(rec *logging.OmissionRecorder, reason string) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Omitted Timezones")
	tw.AppendHeader(table.Row{"Timezone", "Reason", "Reference", "Logged"})
	for om := range rec.Omitted() {
		if len(reason) > 0 && om.Reason != reason {
			continue
		}
		ref := ""
		if !om.Ref.IsZero() {
			ref = om.Ref.String()
		}
		tw.AppendRow(table.Row{om.TZ, om.Reason, ref, om.Logged.Format(logging.TimeWithTZ)})
	}
	return tw
}
