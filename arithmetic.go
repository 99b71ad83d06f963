// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

// AddDays returns the date n days after cd, n may be negative. Month and
// year rollover and leap years are handled by operating on the day count.
// The missing date is returned if cd is missing or the result is out of range.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	if !cd.IsSet() {
		return 0
	}
	return FromDayCount(cd.DayCount() + int64(n))
}

// Tomorrow returns the date of the next day.
func (cd CalendarDate) Tomorrow() CalendarDate {
	return cd.AddDays(1)
}

// Yesterday returns the date of the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	return cd.AddDays(-1)
}

// AddMonths returns the date n months after cd, n may be negative. If the
// day of cd does not exist in the resulting month then the last day of that
// month is used, for example, 2021-01-31 plus one month is 2021-02-28.
// Note that AddMonths is not generally invertible:
// 2021-01-31 +1 month -1 month is 2021-01-28.
// The missing date is returned if cd is missing or the result is out of range.
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	if !cd.IsSet() {
		return 0
	}
	abs := int64(cd.Year())*12 + int64(cd.Month()-1) + int64(n)
	year := floorDiv(abs, 12)
	if year < MinYear || year > MaxYear {
		return 0
	}
	month := Month(abs-year*12) + 1
	day := min(cd.Day(), DaysInMonth(int(year), month))
	return newCalendarDate(int(year), int(month), day)
}

// DaysBetween returns the number of days from a to b, which is negative
// if b is earlier than a.
func DaysBetween(a, b CalendarDate) int64 {
	return b.DayCount() - a.DayCount()
}

// YearFrac returns an approximate distance in years from d0 to d1 computed
// as:
//
//	(year1-year0) + (month1-month0)/12 + (day1-day0)/365
//
// It uses a fixed 365 day year and so is an approximation rather than an
// exact elapsed time fraction.
func YearFrac(d1, d0 CalendarDate) float64 {
	return float64(d1.Year()-d0.Year()) +
		float64(int(d1.Month())-int(d0.Month()))/12 +
		float64(d1.Day()-d0.Day())/365
}
