// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: tzcatalog
summary: tzcatalog generates the timezone configuration used by Hikvision and Dahua style devices
commands:
  - name: generate
    summary: generate the JSON catalog of device timezone settings for all known timezones
  - name: lookup
    summary: print the device timezone settings, as JSON, for the specified timezones
    arguments:
      - <timezone> - IANA timezone identifier, eg. America/New_York
      - <timezone>...
  - name: table
    summary: |
      print the device timezone settings for the specified timezones, or all
      timezones if none are specified, as a table
    arguments:
      - <timezone>...
  - name: codes
    summary: print the UTC offsets and their corresponding Dahua device codes
  - name: omitted
    summary: |
      summarize the timezones omitted from a catalog using the log output
      of one or more runs with --verbose set, stdin is read if no log files
      are specified
    arguments:
      - <log-file>...
`

func cli() *subcmd.CommandSetYAML {
	cmd := subcmd.MustFromYAML(cmdSpec)
	gen := &Generate{out: os.Stdout}
	cmd.Set("generate").MustRunner(gen.Generate, &GenerateFlags{})
	cmd.Set("lookup").MustRunner(gen.Lookup, &LookupFlags{})
	cmd.Set("table").MustRunner(gen.Table, &TableFlags{})
	cmd.Set("codes").MustRunner(gen.Codes, &CodesFlags{})
	lg := &Log{out: os.Stdout}
	cmd.Set("omitted").MustRunner(lg.Omitted, &OmittedFlags{})
	return cmd
}

var errInterrupt = errors.New("interrupt")

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancelCause(ctx)
	cmdutil.HandleSignals(func() { cancel(errInterrupt) }, os.Interrupt)
	err := cli().Dispatch(ctx)
	if context.Cause(ctx) == errInterrupt {
		cmdutil.Exit("%v", errInterrupt)
	}
	if err != nil {
		cmdutil.Exit("%v", err)
	}
}
