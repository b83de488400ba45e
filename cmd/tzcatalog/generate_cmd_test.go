// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	gen := &Generate{out: &out}
	fv := &LookupFlags{CatalogFlags: CatalogFlags{Resolver: "embedded", Year: 2024}}
	err := gen.Lookup(ctx, fv, []string{"Asia/Kolkata", "America/New_York"})
	if err != nil {
		t.Fatal(err)
	}
	var records map[string]map[string]any
	if err := json.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if got, want := records["Asia/Kolkata"]["hik_timezone"], "CST-5:30:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := records["America/New_York"]["dh_timezone"], float64(25); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if records["Asia/Kolkata"]["dst_from"] != nil {
		t.Errorf("unexpected dst_from: %v", records["Asia/Kolkata"])
	}

	out.Reset()
	err = gen.Lookup(ctx, fv, []string{"Europe/Paris", "Nowhere/Special"})
	if err == nil || !strings.Contains(err.Error(), "Nowhere/Special") {
		t.Errorf("missing or unexpected error: %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "omitted timezone(s)") ||
		strings.Contains(err.Error(), "Europe/Paris") {
		t.Errorf("missing or unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Europe/Paris") {
		t.Errorf("missing Europe/Paris: %v", out.String())
	}
}

func TestGenerate(t *testing.T) {
	zoneinfo := filepath.Join(runtime.GOROOT(), "lib", "time", "zoneinfo.zip")
	if _, err := os.Stat(zoneinfo); err != nil {
		t.Skipf("%v: not available", zoneinfo)
	}
	ctx := context.Background()
	tmpDir := t.TempDir()
	cfgFile := filepath.Join(tmpDir, "tzcatalog.yaml")
	cfg := `zoneinfo: ` + zoneinfo + `
resolver: zoneinfo
year: 2024
include: [Europe/*, Asia/Kolkata]
exclude: [Europe/Lon*]
`
	if err := os.WriteFile(cfgFile, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(tmpDir, "catalog.json")
	fv := &GenerateFlags{
		CatalogFlags: CatalogFlags{
			ConfigFile:  cfgFile,
			Concurrency: 3,
		},
		Output: output,
	}
	gen := &Generate{out: &bytes.Buffer{}}
	if err := gen.Generate(ctx, fv, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var records map[string]map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"Europe/Paris", "Europe/Berlin", "Asia/Kolkata"} {
		if _, ok := records[id]; !ok {
			t.Errorf("%v: missing", id)
		}
	}
	for _, id := range []string{"Europe/London", "Asia/Tokyo"} {
		if _, ok := records[id]; ok {
			t.Errorf("%v: should have been excluded", id)
		}
	}
	if got, want := records["Europe/Berlin"]["hik_timezone"], "CST-1:00:00DST01:00:00,M3.5.0/03:00:00,M10.4.0/02:00:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConfigFlags(t *testing.T) {
	ctx := context.Background()
	fv := CatalogFlags{Resolver: "other"}
	if _, err := fv.config(ctx); err == nil {
		t.Errorf("expected an error")
	}
	fv = CatalogFlags{Year: 2031}
	cfg, err := fv.config(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Year, 2031; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Concurrency, runtime.NumCPU(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
