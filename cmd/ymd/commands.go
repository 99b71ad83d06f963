// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/ymd"
	"cloudeng.io/ymd/rdate"
)

type command struct {
	out io.Writer
}

func (c *command) printVector(format string, v rdate.Vector) error {
	switch format {
	case "iso", "":
		for _, d := range v.Dates() {
			fmt.Fprintln(c.out, d)
		}
	case "rdate":
		for _, x := range v {
			if rdate.IsNA(x) {
				fmt.Fprintln(c.out, "NA")
				continue
			}
			fmt.Fprintln(c.out, strconv.FormatFloat(x, 'f', -1, 64))
		}
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
	return nil
}

func (c *command) parse(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*parseFlags)
	ctx, cv, parser, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if fv.Strict {
		var errs errors.M
		for _, a := range args {
			if _, err := parser.ParseString(a); err != nil {
				errs.Append(err)
			}
		}
		if err := errs.Err(); err != nil {
			return err
		}
	}
	v, err := cv.ParseDates(ctx, args)
	if err != nil {
		return err
	}
	return c.printVector(fv.Output, v)
}

func (c *command) boundary(ctx context.Context, cf *CommonFlags, args []string, begin bool) error {
	ctx, cv, _, cleanup, err := setup(ctx, cf)
	if err != nil {
		return err
	}
	defer cleanup()
	if _, err := ymd.ParsePeriod(args[0]); err != nil {
		return err
	}
	var v rdate.Vector
	if begin {
		v, err = cv.PeriodBegin(ctx, args[1:], args[0])
	} else {
		v, err = cv.PeriodEnd(ctx, args[1:], args[0])
	}
	if err != nil {
		return err
	}
	return c.printVector(cf.Output, v)
}

func (c *command) begin(ctx context.Context, values interface{}, args []string) error {
	return c.boundary(ctx, &values.(*periodFlags).CommonFlags, args, true)
}

func (c *command) end(ctx context.Context, values interface{}, args []string) error {
	return c.boundary(ctx, &values.(*periodFlags).CommonFlags, args, false)
}

func (c *command) addMonths(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*addMonthsFlags)
	ctx, cv, _, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	v, err := cv.AddMonths(ctx, args, fv.Months)
	if err != nil {
		return err
	}
	return c.printVector(fv.Output, v)
}

func (c *command) part(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*partFlags)
	ctx, cv, _, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	parts, err := cv.Part(ctx, args[1:], args[0])
	if err != nil {
		return err
	}
	for _, p := range parts {
		if p == rdate.NAInteger {
			fmt.Fprintln(c.out, "NA")
			continue
		}
		fmt.Fprintln(c.out, p)
	}
	return nil
}

func (c *command) shift(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*shiftFlags)
	ctx, _, parser, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	s, err := ymd.ParseShift(fv.By)
	if err != nil {
		return err
	}
	dl := parser.ParseStrings(args).Map(s.Apply)
	return c.printVector(fv.Output, rdate.EncodeList(dl))
}

func (c *command) dateRange(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*rangeFlags)
	_, _, parser, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	var dr ymd.DateRange
	if err := dr.Parse(parser, args[0]); err != nil {
		return err
	}
	dc := ymd.Constraints{Weekdays: fv.Weekdays, Weekends: fv.Weekends}
	if len(fv.Exclude) > 0 {
		var errs errors.M
		for _, s := range strings.Split(fv.Exclude, ",") {
			cd, err := parser.ParseString(s)
			if err != nil {
				errs.Append(err)
				continue
			}
			dc.Custom = append(dc.Custom, cd)
		}
		if err := errs.Err(); err != nil {
			return err
		}
	}
	var dl ymd.DateList
	for d := range dr.DatesConstrained(dc) {
		dl = append(dl, d)
	}
	return c.printVector(fv.Output, rdate.EncodeList(dl))
}
