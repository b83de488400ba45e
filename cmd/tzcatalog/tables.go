// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
	"github.com/cosnicolaou/devicetz/catalog"
	"github.com/cosnicolaou/devicetz/devicetz"
	"github.com/jedib0t/go-pretty/v6/table"
)

type TableFlags struct {
	CatalogFlags
	TSV bool `subcmd:"tsv,false,print the table as tab separated values"`
}

type CodesFlags struct {
	TSV bool `subcmd:"tsv,false,print the table as tab separated values"`
}

type tableManager struct{}

// formatOffset formats an offset in seconds as UTC+hh:mm.
func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign, seconds = '-', -seconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

func formatTransition(t *devicetz.DSTTransition) string {
	if t == nil {
		return ""
	}
	when := datetime.NewTimeOfDay(t.Day.Hour, t.Day.Minute, 0)
	return fmt.Sprintf("%v %v (%v)", datetime.CalendarDateFromTime(t.At), when, t.Day)
}

func (tm tableManager) Catalog(cat catalog.Catalog) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Timezone", "UTC", "Hik Timezone", "DH", "DST", "DST From", "DST Until"})
	for _, r := range cat.Records {
		tw.AppendRow(table.Row{
			r.Identifier,
			formatOffset(r.UTCOffset),
			r.HikString,
			r.DHCode,
			r.DSTOffset,
			formatTransition(r.TransitionIn),
			formatTransition(r.TransitionOut),
		})
	}
	return tw
}

func (tm tableManager) Codes() table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Dahua Timezone Codes")
	tw.AppendHeader(table.Row{"Code", "Offset", "UTC", "Hik Timezone"})
	for code, offset := range devicetz.DeviceCodes() {
		tw.AppendRow(table.Row{code, offset, formatOffset(offset), devicetz.HikString(offset, 0, nil, nil)})
	}
	return tw
}

func render(tw table.Writer, tsv bool) string {
	if tsv {
		return tw.RenderTSV()
	}
	return tw.Render()
}

func (g *Generate) Table(ctx context.Context, flags any, args []string) error {
	fv := flags.(*TableFlags)
	ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, nil)
	cat, err := fv.build(ctx, args)
	if err != nil {
		return err
	}
	tm := tableManager{}
	fmt.Fprintln(g.out, render(tm.Catalog(cat), fv.TSV))
	return nil
}

func (g *Generate) Codes(_ context.Context, flags any, _ []string) error {
	fv := flags.(*CodesFlags)
	tm := tableManager{}
	fmt.Fprintln(g.out, render(tm.Codes(), fv.TSV))
	return nil
}
