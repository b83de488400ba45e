// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"bufio"
	"encoding/json"
	"io"
	"iter"
	"time"
)

type logEntry struct {
	Time      time.Time `json:"time"`
	Msg       string    `json:"msg"`
	Mod       string    `json:"mod"`
	TZ        string    `json:"tz"`
	Reason    string    `json:"reason"`
	Ref       time.Time `json:"ref"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Hik       string    `json:"hik"`
	DH        int       `json:"dh"`
	Resolver  string    `json:"resolver"`
	Year      int       `json:"year"`
	Timezones int       `json:"#timezones"`
	Records   int       `json:"#records"`
	Omitted   int       `json:"#omitted"`
	Elapsed   int64     `json:"elapsed"`
}

type Entry struct {
	logEntry

	Elapsed  time.Duration
	LogEntry string // Original log line
}

func ParseLogLine(line string) (Entry, error) {
	var le Entry
	le.LogEntry = line
	if err := json.Unmarshal([]byte(line), &le.logEntry); err != nil {
		return le, err
	}
	le.Elapsed = time.Duration(le.logEntry.Elapsed)
	return le, nil
}

// Omission returns true if the entry records an omitted timezone.
func (le Entry) Omission() bool {
	return le.Msg == LogOmitted && len(le.TZ) > 0
}

type Scanner struct {
	sc  *bufio.Scanner
	err error
}

func NewScanner(rd io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(rd)}
}

// Entries returns an iterator over the Scanner's log entries. If
// skipInvalid is true, lines that are not valid log entries are skipped,
// otherwise the iterator will stop at the first such line; the Scanner's
// Err method should be checked after the iterator has completed.
func (ls *Scanner) Entries(skipInvalid bool) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for {
			if !ls.sc.Scan() {
				ls.err = ls.sc.Err()
				return
			}
			line := ls.sc.Text()
			le, err := ParseLogLine(line)
			if err != nil {
				if skipInvalid {
					continue
				}
				ls.err = err
				return
			}
			if !yield(le) {
				return
			}
		}
	}
}

func (ls *Scanner) Err() error {
	return ls.err
}
