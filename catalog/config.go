// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"github.com/cosnicolaou/devicetz/devicetz"
	"github.com/cosnicolaou/devicetz/zones"
	"gopkg.in/yaml.v3"
)

// ResolverKind names the source of timezone data used to build records.
type ResolverKind string

const (
	SystemResolver   ResolverKind = "system"
	EmbeddedResolver ResolverKind = "embedded"
	ZoneinfoResolver ResolverKind = "zoneinfo"
)

func (rk *ResolverKind) Parse(value string) error {
	switch k := ResolverKind(value); k {
	case "":
		*rk = SystemResolver
	case SystemResolver, EmbeddedResolver, ZoneinfoResolver:
		*rk = k
	default:
		return fmt.Errorf("unsupported resolver: %q", value)
	}
	return nil
}

func (rk *ResolverKind) UnmarshalYAML(node *yaml.Node) error {
	return rk.Parse(node.Value)
}

// Config represents the configuration of a catalog build.
type Config struct {
	Zoneinfo    string       `yaml:"zoneinfo" cmd:"zoneinfo directory or .zip archive used to enumerate timezones, defaults to the system database"`
	Resolver    ResolverKind `yaml:"resolver" cmd:"source of timezone rules: system, embedded or zoneinfo"`
	Year        int          `yaml:"year" cmd:"year for which DST transitions are computed, 0 for the current year"`
	Concurrency int          `yaml:"concurrency" cmd:"number of timezones processed concurrently"`
	Include     []string     `yaml:"include,flow" cmd:"only include timezones that match these patterns"`
	Exclude     []string     `yaml:"exclude,flow" cmd:"exclude timezones that match these patterns"`
}

// ParseConfigFile parses the supplied YAML configuration file.
func ParseConfigFile(ctx context.Context, cfgFile string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, cfgFile, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseConfig parses the supplied YAML configuration.
func ParseConfig(cfgData []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate returns all of the errors in the configuration.
func (cfg Config) Validate() error {
	var errs errors.M
	if cfg.Year < 0 {
		errs.Append(fmt.Errorf("invalid year: %v", cfg.Year))
	}
	if cfg.Concurrency < 0 {
		errs.Append(fmt.Errorf("invalid concurrency: %v", cfg.Concurrency))
	}
	for _, p := range append(append([]string{}, cfg.Include...), cfg.Exclude...) {
		if _, err := path.Match(p, ""); err != nil {
			errs.Append(fmt.Errorf("invalid pattern: %q: %w", p, err))
		}
	}
	if cfg.Resolver == ZoneinfoResolver && len(cfg.Zoneinfo) == 0 {
		errs.Append(fmt.Errorf("the zoneinfo resolver requires a zoneinfo database"))
	}
	return errs.Err()
}

// OpenZoneinfo returns the zoneinfo file system configured by cfg, or the
// system default.
func (cfg Config) OpenZoneinfo() (fs.FS, error) {
	if len(cfg.Zoneinfo) > 0 {
		return zones.OpenZoneinfo(cfg.Zoneinfo)
	}
	fsys, _, err := zones.OpenDefaultZoneinfo()
	return fsys, err
}

// Identifiers returns the timezone identifiers, in sorted order, that are
// selected by the configuration's include and exclude patterns from those
// available in fsys.
func (cfg Config) Identifiers(fsys fs.FS) ([]string, error) {
	ids, err := zones.ListIdentifiers(fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to list timezones: %w", err)
	}
	return zones.Filter(ids, cfg.Include, cfg.Exclude)
}

// NewResolver returns the devicetz.Resolver specified by the configuration.
func (cfg Config) NewResolver(fsys fs.FS) (devicetz.Resolver, error) {
	return zones.New(string(cfg.Resolver), fsys)
}

// BuilderOptions returns the devicetz options implied by the configuration.
func (cfg Config) BuilderOptions() []devicetz.Option {
	return []devicetz.Option{devicetz.WithYear(cfg.Year)}
}
