// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ymd provides a timezone-less calendar date type, CalendarDate, and
// support for parsing ambiguous numeric and string representations of dates,
// calendar arithmetic with end-of-month clamping, period boundaries (year,
// half year, quarter, month and ISO week) and the extraction of date parts
// over lists of optionally missing dates.
//
// All dates use the proleptic Gregorian calendar. The zero value of
// CalendarDate is not a valid date and is used throughout to represent a
// missing date; operations on a missing date return a missing date.
package ymd

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	// MinYear and MaxYear bound the years that a CalendarDate can represent.
	MinYear = -999999
	MaxYear = 999999
)

// ErrInvalidDate is returned, possibly wrapped, for any year, month and day
// combination that is not a valid calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Month as an int in the range 1-12.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// CalendarDate represents a valid year, month and day. The year is stored in
// the upper bits and the month and day in the lower 16 bits so that
// CalendarDate values can be compared using Go's ordering operators.
// The zero value represents a missing date.
type CalendarDate int64

func newCalendarDate(year, month, day int) CalendarDate {
	return CalendarDate(int64(year)<<16 | int64(month)<<8 | int64(day))
}

// NewCalendarDate returns the CalendarDate for the specified year, month and
// day, or an error wrapping ErrInvalidDate if they do not form a valid
// date.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("year %d out of range: %w", year, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d out of range: %w", month, ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("day %d out of range for %04d-%02d: %w", day, year, int(month), ErrInvalidDate)
	}
	return newCalendarDate(year, int(month), day), nil
}

// MustNewCalendarDate is like NewCalendarDate but panics on an invalid date.
func MustNewCalendarDate(year int, month Month, day int) CalendarDate {
	cd, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return cd
}

// DateOf returns the CalendarDate for the year, month and day of t in t's
// location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	cd, err := NewCalendarDate(y, Month(m), d)
	if err != nil {
		return 0
	}
	return cd
}

// IsSet returns true if cd holds a date, ie. it is not the zero value.
func (cd CalendarDate) IsSet() bool {
	return cd != 0
}

// Year returns the year of cd.
func (cd CalendarDate) Year() int {
	return int(int64(cd) >> 16)
}

// Month returns the month of cd.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month of cd.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// Date returns the year, month and day of cd.
func (cd CalendarDate) Date() (year int, month Month, day int) {
	return cd.Year(), cd.Month(), cd.Day()
}

// Time returns midnight UTC on cd.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC)
}

// String returns cd in ISO 8601 format, YYYY-MM-DD, with a sign for years
// outside of 0-9999. A missing date is returned as "NA".
func (cd CalendarDate) String() string {
	if !cd.IsSet() {
		return "NA"
	}
	return string(cd.appendText(nil))
}

func (cd CalendarDate) appendText(b []byte) []byte {
	y := cd.Year()
	switch {
	case y < 0:
		b = append(b, '-')
		y = -y
	case y > 9999:
		b = append(b, '+')
	}
	b = appendPadded(b, y, 4)
	b = append(b, '-')
	b = appendPadded(b, int(cd.Month()), 2)
	b = append(b, '-')
	return appendPadded(b, cd.Day(), 2)
}

func appendPadded(b []byte, v, width int) []byte {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

// MarshalText implements encoding.TextMarshaler. A missing date is
// marshaled as an empty string.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	if !cd.IsSet() {
		return []byte{}, nil
	}
	return cd.appendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts dates in the
// format produced by MarshalText, ie. [+-]YYYY-MM-DD; an empty value is
// unmarshaled as a missing date.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*cd = 0
		return nil
	}
	s := string(text)
	body := s
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if len(body) < 10 || body[len(body)-3] != '-' || body[len(body)-6] != '-' {
		return fmt.Errorf("%q: expected YYYY-MM-DD: %w", s, ErrInvalidDate)
	}
	ys, ms, ds := body[:len(body)-6], body[len(body)-5:len(body)-3], body[len(body)-2:]
	if !allDigits(ys) || !allDigits(ms) || !allDigits(ds) {
		return fmt.Errorf("%q: expected YYYY-MM-DD: %w", s, ErrInvalidDate)
	}
	year, err := strconv.Atoi(ys)
	if err != nil {
		return fmt.Errorf("%q: %v: %w", s, err, ErrInvalidDate)
	}
	if s[0] == '-' {
		year = -year
	}
	month, _ := strconv.Atoi(ms)
	day, _ := strconv.Atoi(ds)
	d, err := NewCalendarDate(year, Month(month), day)
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

func allDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DateList represents a list of optionally missing dates.
type DateList []CalendarDate

// Missing returns the number of missing dates in dl.
func (dl DateList) Missing() int {
	n := 0
	for _, d := range dl {
		if !d.IsSet() {
			n++
		}
	}
	return n
}

// Contains returns true if dl contains d.
func (dl DateList) Contains(d CalendarDate) bool {
	for _, dd := range dl {
		if dd == d {
			return true
		}
	}
	return false
}
