// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"github.com/cosnicolaou/devicetz/catalog"
	"github.com/cosnicolaou/devicetz/devicetz"
	"github.com/cosnicolaou/devicetz/internal/logging"
)

type CatalogFlags struct {
	ConfigFile  string `subcmd:"config,,path to a YAML file containing the catalog configuration"`
	Zoneinfo    string `subcmd:"zoneinfo,,zoneinfo directory or .zip archive used to enumerate timezones"`
	Resolver    string `subcmd:"resolver,,source of timezone rules: system, embedded or zoneinfo"`
	Year        int    `subcmd:"year,0,year for which DST transitions are computed, 0 for the current year"`
	Concurrency int    `subcmd:"concurrency,0,number of timezones to process concurrently, 0 for the number of CPUs"`
	Verbose     bool   `subcmd:"verbose,false,log every timezone built or omitted, and the reason for omitting it"`
}

type GenerateFlags struct {
	CatalogFlags
	Output string `subcmd:"output,,file to write the catalog to, defaults to stdout"`
}

type LookupFlags struct {
	CatalogFlags
}

type Generate struct {
	out io.Writer
}

// config returns the catalog configuration obtained from the config file,
// if any, overridden by any flags that are set.
func (fv CatalogFlags) config(ctx context.Context) (catalog.Config, error) {
	var cfg catalog.Config
	if len(fv.ConfigFile) > 0 {
		var err error
		cfg, err = catalog.ParseConfigFile(ctx, fv.ConfigFile)
		if err != nil {
			return catalog.Config{}, fmt.Errorf("failed to parse config file: %q: %w", fv.ConfigFile, err)
		}
	}
	if len(fv.Zoneinfo) > 0 {
		cfg.Zoneinfo = fv.Zoneinfo
	}
	if len(fv.Resolver) > 0 {
		if err := cfg.Resolver.Parse(fv.Resolver); err != nil {
			return catalog.Config{}, err
		}
	}
	if fv.Year != 0 {
		cfg.Year = fv.Year
	}
	if fv.Concurrency != 0 {
		cfg.Concurrency = fv.Concurrency
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = runtime.NumCPU()
	}
	return cfg, cfg.Validate()
}

func (fv CatalogFlags) builder(cfg catalog.Config, resolver devicetz.Resolver) *devicetz.Builder {
	opts := cfg.BuilderOptions()
	if fv.Verbose {
		opts = append(opts, devicetz.WithLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil))))
	}
	return devicetz.NewBuilder(resolver, opts...)
}

// build builds the catalog for the supplied identifiers, or for all of
// those selected by the configuration if none are supplied.
func (fv CatalogFlags) build(ctx context.Context, identifiers []string) (catalog.Catalog, error) {
	cfg, err := fv.config(ctx)
	if err != nil {
		return catalog.Catalog{}, err
	}
	fsys, err := cfg.OpenZoneinfo()
	if err != nil && (len(identifiers) == 0 || cfg.Resolver == catalog.ZoneinfoResolver) {
		return catalog.Catalog{}, fmt.Errorf("failed to open zoneinfo database: %w", err)
	}
	if len(identifiers) == 0 {
		identifiers, err = cfg.Identifiers(fsys)
		if err != nil {
			return catalog.Catalog{}, err
		}
	}
	resolver, err := cfg.NewResolver(fsys)
	if err != nil {
		return catalog.Catalog{}, err
	}
	logging.WriteBuildStartedLog(ctxlog.Logger(ctx).With("mod", "catalog"),
		string(cfg.Resolver), cfg.Year, len(identifiers))
	return catalog.Build(ctx, fv.builder(cfg, resolver), identifiers, cfg.Concurrency)
}

func (g *Generate) Generate(ctx context.Context, flags any, _ []string) error {
	fv := flags.(*GenerateFlags)
	ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, nil)
	cat, err := fv.build(ctx, nil)
	if err != nil {
		return err
	}
	if len(fv.Output) == 0 {
		return cat.WriteJSON(g.out)
	}
	f, err := os.Create(fv.Output)
	if err != nil {
		return err
	}
	if err := cat.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write catalog: %q: %w", fv.Output, err)
	}
	return f.Close()
}

func (g *Generate) Lookup(ctx context.Context, flags any, args []string) error {
	fv := flags.(*LookupFlags)
	ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, nil)
	cat, err := fv.build(ctx, args)
	if err != nil {
		return err
	}
	if err := cat.WriteJSON(g.out); err != nil {
		return err
	}
	if len(cat.Omitted) > 0 {
		return fmt.Errorf("omitted timezone(s), run with --verbose for the reasons: %v", strings.Join(cat.Omitted, ", "))
	}
	return nil
}
