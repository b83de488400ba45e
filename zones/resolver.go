// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zones

import (
	"fmt"
	"io/fs"
	"time"

	"4d63.com/tz"
	"github.com/cosnicolaou/devicetz/devicetz"
)

// LocationLoader loads a time.Location by name.
type LocationLoader func(name string) (*time.Location, error)

// Resolver implements devicetz.Resolver using a LocationLoader.
type Resolver struct {
	load LocationLoader
}

// NewResolver returns a Resolver that uses the supplied loader.
func NewResolver(load LocationLoader) Resolver {
	return Resolver{load: load}
}

// Resolve implements devicetz.Resolver.
func (r Resolver) Resolve(identifier string) (devicetz.Zone, bool) {
	loc, err := r.Load(identifier)
	if err != nil {
		return nil, false
	}
	return NewLocationZone(identifier, loc), true
}

// Load returns the time.Location for identifier. The empty string and
// "Local" are rejected since they do not name an IANA timezone.
func (r Resolver) Load(identifier string) (*time.Location, error) {
	if len(identifier) == 0 || identifier == "Local" {
		return nil, fmt.Errorf("not an IANA timezone identifier: %q", identifier)
	}
	return r.load(identifier)
}

// System returns a Resolver that uses time.LoadLocation and hence the
// host's zoneinfo database, or that embedded via time/tzdata.
func System() Resolver {
	return NewResolver(time.LoadLocation)
}

// Embedded returns a Resolver that uses the zoneinfo database embedded
// in 4d63.com/tz so that results do not depend on the host.
func Embedded() Resolver {
	return NewResolver(tz.LoadLocation)
}

// FromTZData returns a Resolver that reads TZif files from the supplied
// file system, typically one returned by OpenZoneinfo.
func FromTZData(fsys fs.FS) Resolver {
	return NewResolver(func(name string) (*time.Location, error) {
		if !fs.ValidPath(name) {
			return nil, fmt.Errorf("invalid timezone identifier: %q", name)
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		return time.LoadLocationFromTZData(name, data)
	})
}

// New returns the Resolver for the named kind, one of "system",
// "embedded" or "zoneinfo". The zoneinfo kind requires fsys.
func New(kind string, fsys fs.FS) (Resolver, error) {
	switch kind {
	case "", "system":
		return System(), nil
	case "embedded":
		return Embedded(), nil
	case "zoneinfo":
		if fsys == nil {
			return Resolver{}, fmt.Errorf("the zoneinfo resolver requires a zoneinfo database")
		}
		return FromTZData(fsys), nil
	}
	return Resolver{}, fmt.Errorf("unsupported resolver: %q", kind)
}
