// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

const (
	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// daysBeforeYear returns the number of days from 0001-01-01 to Jan 1 of
// the given year.
func daysBeforeYear(year int64) int64 {
	y := year - 1
	return y*365 + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// DayCount returns the number of days since the proleptic epoch with
// 0001-01-01 being day 1. Consecutive dates have consecutive day counts.
// The day count of a missing date is zero.
func (cd CalendarDate) DayCount() int64 {
	if !cd.IsSet() {
		return 0
	}
	year := cd.Year()
	return daysBeforeYear(int64(year)) + int64(cumulativeDays(year)[cd.Month()-1]+cd.Day())
}

// civil returns the year, month, day and zero-based day of the year for
// a day count.
func civil(n int64) (year int, month Month, day int, yday int) {
	d := n - 1
	cycles := floorDiv(d, daysPer400Years)
	d -= cycles * daysPer400Years

	// The last day of a 400 year cycle falls in a fifth century and the
	// last day of a leap year in a fifth year, cap both.
	c := d / daysPer100Years
	if c == 4 {
		c = 3
	}
	d -= c * daysPer100Years
	q := d / daysPer4Years
	d -= q * daysPer4Years
	y := d / 365
	if y == 4 {
		y = 3
	}
	d -= y * 365

	year = int(1 + 400*cycles + 100*c + 4*q + y)
	yday = int(d)
	cumulative := cumulativeDays(year)
	m := yday / 31
	if m < 11 && yday >= cumulative[m+1] {
		m++
	}
	return year, Month(m + 1), yday - cumulative[m] + 1, yday
}

var (
	minDayCount = daysBeforeYear(MinYear) + 1
	maxDayCount = daysBeforeYear(MaxYear+1)
)

// FromDayCount returns the CalendarDate for the specified day count as
// returned by DayCount. It returns the zero, missing, CalendarDate if the
// day count is outside of the range supported by CalendarDate.
func FromDayCount(n int64) CalendarDate {
	if n < minDayCount || n > maxDayCount {
		return 0
	}
	year, month, day, _ := civil(n)
	return newCalendarDate(year, int(month), day)
}

// ISOWeekday returns the ISO 8601 day of the week, Monday=1 to Sunday=7.
// 0001-01-01 was a Monday.
func (cd CalendarDate) ISOWeekday() int {
	return int(floorMod(cd.DayCount()-1, 7)) + 1
}

// Weekday returns the day of the week numbered from Sunday, Sunday=1 to
// Saturday=7.
func (cd CalendarDate) Weekday() int {
	return cd.ISOWeekday()%7 + 1
}

// YearDay returns the day of the year, 1-365 for non-leap years and 1-366
// for leap years.
func (cd CalendarDate) YearDay() int {
	return cumulativeDays(cd.Year())[cd.Month()-1] + cd.Day()
}

// ISOWeek returns the ISO 8601 week-numbering year and week number in which
// cd occurs. Week ranges from 1 to 53. Jan 01 to Jan 03 of year n might
// belong to week 52 or 53 of year n-1, and Dec 29 to Dec 31 might belong to
// week 1 of year n+1.
func (cd CalendarDate) ISOWeek() (year, week int) {
	// The week belongs to the year that contains its Thursday.
	n := cd.DayCount()
	thursday := n + int64(4-cd.ISOWeekday())
	year, _, _, yday := civil(thursday)
	return year, yday/7 + 1
}
