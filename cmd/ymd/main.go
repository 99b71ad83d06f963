// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command ymd parses dates and computes period boundaries, month
// arithmetic, calendar shifts and date parts.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: ymd
summary: parse dates and compute calendar periods, shifts and date parts
commands:
  - name: parse
    summary: parse dates of the form YYYYMMDD, YYMMDD or delimited year, month and day fields
    arguments:
      - <date>
      - ...
  - name: begin
    summary: print the first date of the period, one of year, semiannual, quarter, month or week, containing each date
    arguments:
      - <period>
      - <date>
      - ...
  - name: end
    summary: print the last date of the period, one of year, semiannual, quarter, month or week, containing each date
    arguments:
      - <period>
      - <date>
      - ...
  - name: add-months
    summary: add a number of months to each date, clamping to the end of the month
    arguments:
      - <date>
      - ...
  - name: part
    summary: print a part, one of year, month, quarter, isoweek, mday, yday, wday or isowday, of each date
    arguments:
      - <part>
      - <date>
      - ...
  - name: shift
    summary: apply an ISO 8601 calendar shift, eg. P1Y2M-3D, to each date
    arguments:
      - <date>
      - ...
  - name: range
    summary: print every date in an inclusive range of the form <from>:<to>
    arguments:
      - <from:to>
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config      string `subcmd:"config,,'yaml configuration file'"`
	Concurrency int    `subcmd:"concurrency,0,'number of goroutines used to process dates, overrides the configuration file'"`
	Output      string `subcmd:"output,iso,'output format: iso for YYYY-MM-DD or rdate for days since 1970-01-01'"`
}

type parseFlags struct {
	CommonFlags
	Strict bool `subcmd:"strict,false,'fail if any of the dates cannot be parsed'"`
}

type periodFlags struct {
	CommonFlags
}

type addMonthsFlags struct {
	CommonFlags
	Months int `subcmd:"months,1,'number of months to add, may be negative'"`
}

type partFlags struct {
	CommonFlags
}

type shiftFlags struct {
	CommonFlags
	By string `subcmd:"by,P1D,'ISO 8601 calendar shift of the form [-]PnYnMnWnD'"`
}

type rangeFlags struct {
	CommonFlags
	Weekdays bool   `subcmd:"weekdays,false,'include weekdays only, unless weekends is also set'"`
	Weekends bool   `subcmd:"weekends,false,'include weekends only, unless weekdays is also set'"`
	Exclude  string `subcmd:"exclude,,'comma separated list of dates to exclude'"`
}

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmd := &command{out: out}
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("parse").MustRunnerAndFlags(cmd.parse,
		subcmd.MustRegisteredFlagSet(&parseFlags{}))
	cmdSet.Set("begin").MustRunnerAndFlags(cmd.begin,
		subcmd.MustRegisteredFlagSet(&periodFlags{}))
	cmdSet.Set("end").MustRunnerAndFlags(cmd.end,
		subcmd.MustRegisteredFlagSet(&periodFlags{}))
	cmdSet.Set("add-months").MustRunnerAndFlags(cmd.addMonths,
		subcmd.MustRegisteredFlagSet(&addMonthsFlags{}))
	cmdSet.Set("part").MustRunnerAndFlags(cmd.part,
		subcmd.MustRegisteredFlagSet(&partFlags{}))
	cmdSet.Set("shift").MustRunnerAndFlags(cmd.shift,
		subcmd.MustRegisteredFlagSet(&shiftFlags{}))
	cmdSet.Set("range").MustRunnerAndFlags(cmd.dateRange,
		subcmd.MustRegisteredFlagSet(&rangeFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
