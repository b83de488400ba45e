// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zones

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultZoneinfoLocations are the locations searched, in order, by
// OpenDefaultZoneinfo.
var DefaultZoneinfoLocations = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	filepath.Join(runtime.GOROOT(), "lib", "time", "zoneinfo.zip"),
}

// OpenZoneinfo returns a file system for the zoneinfo database at
// filename which may be either a directory or a .zip archive such as
// $GOROOT/lib/time/zoneinfo.zip.
func OpenZoneinfo(filename string) (fs.FS, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return os.DirFS(filename), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	zar, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read zip archive: %v: %w", filename, err)
	}
	return zar, nil
}

// OpenDefaultZoneinfo opens the zoneinfo database named by $ZONEINFO, if
// set, or the first of DefaultZoneinfoLocations that exists.
func OpenDefaultZoneinfo() (fs.FS, string, error) {
	candidates := DefaultZoneinfoLocations
	if env := os.Getenv("ZONEINFO"); len(env) > 0 {
		candidates = append([]string{env}, candidates...)
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err != nil {
			continue
		}
		fsys, err := OpenZoneinfo(c)
		if err != nil {
			return nil, c, err
		}
		return fsys, c, nil
	}
	return nil, "", fmt.Errorf("no zoneinfo database found in: %v", strings.Join(candidates, ", "))
}

var tzifMagic = []byte("TZif")

func isTZif(fsys fs.FS, name string) bool {
	f, err := fsys.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	magic := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return false
	}
	return bytes.Equal(magic, tzifMagic)
}

// capitalized follows the zoneinfo convention that timezone names, and
// the directories containing them, start with an upper case letter. This
// excludes files such as posixrules, localtime and zone.tab as well as
// the posix/ and right/ trees.
func capitalized(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// ListIdentifiers returns the sorted list of the timezone identifiers
// found in the supplied zoneinfo file system.
func ListIdentifiers(fsys fs.FS) ([]string, error) {
	ids := []string{}
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		if !capitalized(path.Base(name)) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isTZif(fsys, name) {
			return nil
		}
		ids = append(ids, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(ids)
	return ids, nil
}

// Filter returns the identifiers that match at least one of the include
// patterns, or all identifiers if there are none, and none of the
// exclude patterns. Patterns are as per path.Match.
func Filter(ids, include, exclude []string) ([]string, error) {
	for _, p := range append(slices.Clone(include), exclude...) {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern: %q: %w", p, err)
		}
	}
	matches := func(id string, patterns []string) bool {
		for _, p := range patterns {
			if ok, _ := path.Match(p, id); ok {
				return true
			}
		}
		return false
	}
	filtered := make([]string, 0, len(ids))
	for _, id := range ids {
		if len(include) > 0 && !matches(id, include) {
			continue
		}
		if matches(id, exclude) {
			continue
		}
		filtered = append(filtered, id)
	}
	return filtered, nil
}
