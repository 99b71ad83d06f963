// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

// Month lengths and cumulative days before each month, indexed first by
// leap (1) or non-leap (0) year.
var (
	monthDays  [2][12]int
	daysBefore [2][12]int // [0, 31, 59, ...] and [0, 31, 60, ...]
)

func init() {
	for leap := range 2 {
		for m := range 12 {
			switch m + 1 {
			case 2:
				monthDays[leap][m] = 28 + leap
			case 4, 6, 9, 11:
				monthDays[leap][m] = 30
			default:
				monthDays[leap][m] = 31
			}
			if m > 0 {
				daysBefore[leap][m] = daysBefore[leap][m-1] + monthDays[leap][m-1]
			}
		}
	}
}

func leapIndex(year int) int {
	if IsLeap(year) {
		return 1
	}
	return 0
}

// DaysInMonth returns the number of days in the given month for the given year.
// The month must be in the range 1-12.
func DaysInMonth(year int, month Month) int {
	return monthDays[leapIndex(year)][month-1]
}

func cumulativeDays(year int) *[12]int {
	return &daysBefore[leapIndex(year)]
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	return monthDays[leapIndex(year)][1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return 365 + leapIndex(year)
}
