// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datepb provides conversions between ymd.CalendarDate and
// googleapis/type/date.Date.
package datepb

import (
	"errors"
	"fmt"

	"cloudeng.io/ymd"
	"google.golang.org/genproto/googleapis/type/date"
)

var (
	// ErrPartialDate is returned when a full date is required but
	// the year, month or day is not set.
	ErrPartialDate = errors.New("partial date")
	// ErrOutOfRange is returned for dates whose year cannot be represented
	// by date.Date, which supports years 1-9999.
	ErrOutOfRange = errors.New("year out of range")
)

func extractYMD(d *date.Date) (year int, month ymd.Month, day int) {
	return int(d.GetYear()), ymd.Month(d.GetMonth()), int(d.GetDay())
}

// FromProto converts a full date, with year, month and day all set, to
// a CalendarDate. A nil date is returned as a missing date.
func FromProto(d *date.Date) (ymd.CalendarDate, error) {
	if d == nil {
		return 0, nil
	}
	year, month, day := extractYMD(d)
	if year == 0 || month == 0 || day == 0 {
		return 0, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrPartialDate)
	}
	return ymd.NewCalendarDate(year, month, day)
}

// ToProto converts cd to a date.Date. A missing date is returned as nil.
func ToProto(cd ymd.CalendarDate) (*date.Date, error) {
	if !cd.IsSet() {
		return nil, nil
	}
	year, month, day := cd.Date()
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%v: %w", cd, ErrOutOfRange)
	}
	return &date.Date{
		Year:  int32(year),
		Month: int32(month),
		Day:   int32(day),
	}, nil
}

// Interval returns the range of dates represented by d. The precision
// of the range is determined by the populated fields:
//   - year only: the entire year.
//   - year and month: the entire month.
//   - year, month and day: the single day.
//
// A date without a year, or with a day but no month, is not an interval.
func Interval(d *date.Date) (ymd.DateRange, error) {
	year, month, day := extractYMD(d)
	if year == 0 || (month == 0 && day != 0) {
		return ymd.DateRange{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrPartialDate)
	}
	var p ymd.Period
	switch {
	case month == 0:
		month, day, p = 1, 1, ymd.Annual
	case day == 0:
		day, p = 1, ymd.Monthly
	}
	cd, err := ymd.NewCalendarDate(year, month, day)
	if err != nil {
		return ymd.DateRange{}, err
	}
	if p == 0 {
		return ymd.NewDateRange(cd, cd), nil
	}
	return p.Range(cd), nil
}

// FromProtoList converts a list of dates, partial or invalid dates are
// returned as missing dates.
func FromProtoList(dates []*date.Date) ymd.DateList {
	dl := make(ymd.DateList, len(dates))
	for i, d := range dates {
		dl[i], _ = FromProto(d)
	}
	return dl
}
