// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pgdate provides support for reading and writing ymd.CalendarDate
// values from and to PostgreSQL date columns using pgx.
package pgdate

import (
	"time"

	"cloudeng.io/ymd"
	"github.com/jackc/pgx/v5/pgtype"
)

// Date wraps a ymd.CalendarDate and implements pgtype.DateScanner and
// pgtype.DateValuer. NULL and infinite PostgreSQL dates are scanned as
// a missing date and a missing date is written as NULL.
type Date struct {
	ymd.CalendarDate
}

// ScanDate implements pgtype.DateScanner.
func (d *Date) ScanDate(v pgtype.Date) error {
	d.CalendarDate = FromPG(v)
	return nil
}

// DateValue implements pgtype.DateValuer.
func (d Date) DateValue() (pgtype.Date, error) {
	return ToPG(d.CalendarDate), nil
}

// FromPG converts a pgtype.Date to a CalendarDate, NULL and infinite
// values are returned as a missing date.
func FromPG(v pgtype.Date) ymd.CalendarDate {
	if !v.Valid || v.InfinityModifier != pgtype.Finite {
		return 0
	}
	return ymd.DateOf(v.Time)
}

// ToPG converts a CalendarDate to a pgtype.Date, a missing date is returned
// as NULL.
func ToPG(cd ymd.CalendarDate) pgtype.Date {
	if !cd.IsSet() {
		return pgtype.Date{}
	}
	return pgtype.Date{
		Time:             time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

// List converts dl to a slice of Date.
func List(dl ymd.DateList) []Date {
	r := make([]Date, len(dl))
	for i, d := range dl {
		r[i] = Date{CalendarDate: d}
	}
	return r
}

// Dates returns the CalendarDates held by a slice of Date.
func Dates(dates []Date) ymd.DateList {
	dl := make(ymd.DateList, len(dates))
	for i, d := range dates {
		dl[i] = d.CalendarDate
	}
	return dl
}
