// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

import (
	"errors"
	"fmt"
)

// Part identifies a component of a CalendarDate that can be extracted
// as an integer.
type Part int

const (
	PartYear    Part = iota + 1 // year
	PartMonth                   // month, 1-12
	PartQuarter                 // quarter, 1-4
	PartISOWeek                 // ISO 8601 week number, 1-53
	PartMDay                    // day of the month, 1-31
	PartYDay                    // day of the year, 1-366
	PartWDay                    // day of the week, Sunday=1 to Saturday=7
	PartISOWDay                 // ISO 8601 day of the week, Monday=1 to Sunday=7
)

// ErrUnknownPart is returned by ParsePart for an unrecognised part name.
var ErrUnknownPart = errors.New("unknown date part")

var partNames = []string{
	PartYear:    "year",
	PartMonth:   "month",
	PartQuarter: "quarter",
	PartISOWeek: "isoweek",
	PartMDay:    "mday",
	PartYDay:    "yday",
	PartWDay:    "wday",
	PartISOWDay: "isowday",
}

// Parts returns all of the supported parts.
func Parts() []Part {
	return []Part{PartYear, PartMonth, PartQuarter, PartISOWeek, PartMDay, PartYDay, PartWDay, PartISOWDay}
}

// ParsePart returns the Part for one of the names year, month, quarter,
// isoweek, mday, yday, wday or isowday.
func ParsePart(name string) (Part, error) {
	for i, n := range partNames {
		if i > 0 && n == name {
			return Part(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownPart)
}

func (p Part) String() string {
	if p < PartYear || p > PartISOWDay {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return partNames[p]
}

// Of returns the value of part p for cd. The result for a missing date
// is zero, use DateList.Project to distinguish missing values.
func (p Part) Of(cd CalendarDate) int {
	if !cd.IsSet() {
		return 0
	}
	switch p {
	case PartYear:
		return cd.Year()
	case PartMonth:
		return int(cd.Month())
	case PartQuarter:
		return quarterOf(cd.Month())
	case PartISOWeek:
		_, w := cd.ISOWeek()
		return w
	case PartMDay:
		return cd.Day()
	case PartYDay:
		return cd.YearDay()
	case PartWDay:
		return cd.Weekday()
	case PartISOWDay:
		return cd.ISOWeekday()
	}
	panic(fmt.Sprintf("unsupported part: %v", p))
}

// Ints holds integer values extracted from a DateList with Valid[i]
// false for every missing input.
type Ints struct {
	Values []int
	Valid  []bool
}

// Project extracts part p from every date in dl. Missing dates produce
// an invalid entry, the remaining entries are unaffected.
func (dl DateList) Project(p Part) Ints {
	return ProjectFunc(dl, p.Of)
}

// ProjectFunc is like Project but uses an arbitrary extraction function.
// fn is only called for dates that are set.
func ProjectFunc(dl DateList, fn func(CalendarDate) int) Ints {
	r := Ints{Values: make([]int, len(dl)), Valid: make([]bool, len(dl))}
	for i, d := range dl {
		if !d.IsSet() {
			continue
		}
		r.Values[i], r.Valid[i] = fn(d), true
	}
	return r
}

// Map returns a new DateList with fn applied to every date that is set,
// missing dates remain missing.
func (dl DateList) Map(fn func(CalendarDate) CalendarDate) DateList {
	r := make(DateList, len(dl))
	for i, d := range dl {
		if d.IsSet() {
			r[i] = fn(d)
		}
	}
	return r
}

// Begin returns the first date of period p for every date in dl.
func (dl DateList) Begin(p Period) DateList {
	return dl.Map(p.Begin)
}

// End returns the last date of period p for every date in dl.
func (dl DateList) End(p Period) DateList {
	return dl.Map(p.End)
}

// AddMonths adds n months to every date in dl.
func (dl DateList) AddMonths(n int) DateList {
	return dl.Map(func(cd CalendarDate) CalendarDate { return cd.AddMonths(n) })
}
