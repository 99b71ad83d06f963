// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

import (
	"errors"
	"fmt"
)

// Period represents a calendar period used to compute the first and last
// dates of the period that contains a given date.
type Period int

const (
	Annual     Period = iota + 1 // calendar year, "year"
	Semiannual                   // half year, "semiannual"
	Quarterly                    // calendar quarter, "quarter"
	Monthly                      // calendar month, "month"
	Weekly                       // ISO 8601 week, Monday to Sunday, "week"
)

// ErrUnknownPeriod is returned by ParsePeriod for an unrecognised period name.
var ErrUnknownPeriod = errors.New("unknown period")

var periodNames = map[string]Period{
	"year":       Annual,
	"semiannual": Semiannual,
	"quarter":    Quarterly,
	"month":      Monthly,
	"week":       Weekly,
}

// Periods returns all of the supported periods.
func Periods() []Period {
	return []Period{Annual, Semiannual, Quarterly, Monthly, Weekly}
}

// ParsePeriod returns the Period for one of the names "year", "semiannual",
// "quarter", "month" or "week", or an error wrapping ErrUnknownPeriod.
func ParsePeriod(name string) (Period, error) {
	p, ok := periodNames[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownPeriod)
	}
	return p, nil
}

// Set implements flag.Value.
func (p *Period) Set(name string) error {
	np, err := ParsePeriod(name)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

func (p Period) String() string {
	switch p {
	case Annual:
		return "year"
	case Semiannual:
		return "semiannual"
	case Quarterly:
		return "quarter"
	case Monthly:
		return "month"
	case Weekly:
		return "week"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// quarterStart returns the first month of the quarter containing month.
func quarterStart(month Month) Month {
	switch month {
	case 1, 2, 3:
		return 1
	case 4, 5, 6:
		return 4
	case 7, 8, 9:
		return 7
	case 10, 11, 12:
		return 10
	}
	panic(fmt.Sprintf("month %d is not in the range 1-12", month))
}

// quarterOf returns the quarter, 1-4, containing month.
func quarterOf(month Month) int {
	return (int(quarterStart(month))-1)/3 + 1
}

// Begin returns the first date of the period p that contains cd. It returns
// the missing date if cd is missing.
func (p Period) Begin(cd CalendarDate) CalendarDate {
	if !cd.IsSet() {
		return 0
	}
	year, month, _ := cd.Date()
	switch p {
	case Annual:
		return newCalendarDate(year, 1, 1)
	case Semiannual:
		if month <= 6 {
			return newCalendarDate(year, 1, 1)
		}
		return newCalendarDate(year, 7, 1)
	case Quarterly:
		return newCalendarDate(year, int(quarterStart(month)), 1)
	case Monthly:
		return newCalendarDate(year, int(month), 1)
	case Weekly:
		return cd.AddDays(1 - cd.ISOWeekday())
	}
	panic(fmt.Sprintf("unsupported period: %v", p))
}

// End returns the last date of the period p that contains cd. It returns
// the missing date if cd is missing.
func (p Period) End(cd CalendarDate) CalendarDate {
	if !cd.IsSet() {
		return 0
	}
	year, month, _ := cd.Date()
	switch p {
	case Annual:
		return newCalendarDate(year, 12, 31)
	case Semiannual:
		if month <= 6 {
			return newCalendarDate(year, 6, 30)
		}
		return newCalendarDate(year, 12, 31)
	case Quarterly:
		qe := quarterStart(month) + 2
		return newCalendarDate(year, int(qe), DaysInMonth(year, qe))
	case Monthly:
		return newCalendarDate(year, int(month), DaysInMonth(year, month))
	case Weekly:
		return cd.AddDays(7 - cd.ISOWeekday())
	}
	panic(fmt.Sprintf("unsupported period: %v", p))
}

// Range returns the DateRange spanning the period p that contains cd.
func (p Period) Range(cd CalendarDate) DateRange {
	return DateRange{From: p.Begin(cd), To: p.End(cd)}
}

// Begin is equivalent to p.Begin(cd).
func Begin(cd CalendarDate, p Period) CalendarDate {
	return p.Begin(cd)
}

// End is equivalent to p.End(cd).
func End(cd CalendarDate, p Period) CalendarDate {
	return p.End(cd)
}
