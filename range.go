// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

import (
	"fmt"
	"iter"
	"strings"
)

// DateRange represents a range of dates, inclusive of the From and To dates.
type DateRange struct {
	From, To CalendarDate
}

// NewDateRange returns a DateRange for the from/to dates. If the from date
// is later than the to date then they are swapped.
func NewDateRange(from, to CalendarDate) DateRange {
	if from > to {
		from, to = to, from
	}
	return DateRange{From: from, To: to}
}

// IsSet returns true if both ends of the range are set.
func (dr DateRange) IsSet() bool {
	return dr.From.IsSet() && dr.To.IsSet()
}

// Include returns true if d is within the range.
func (dr DateRange) Include(d CalendarDate) bool {
	return dr.IsSet() && d.IsSet() && dr.From <= d && d <= dr.To
}

// Days returns the number of days in the range, or zero if the range is
// not set.
func (dr DateRange) Days() int {
	if !dr.IsSet() || dr.From > dr.To {
		return 0
	}
	return int(DaysBetween(dr.From, dr.To)) + 1
}

// Dates returns an iterator that yields each CalendarDate in the range.
func (dr DateRange) Dates() iter.Seq[CalendarDate] {
	return dr.DatesConstrained(Constraints{})
}

// DatesConstrained returns an iterator that yields each CalendarDate in the
// range that is included by the given Constraints.
func (dr DateRange) DatesConstrained(dc Constraints) iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		if !dr.IsSet() {
			return
		}
		for td := dr.From; td.IsSet() && td <= dr.To; td = td.Tomorrow() {
			if !dc.Include(td) {
				continue
			}
			if !yield(td) {
				return
			}
		}
	}
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s - %s", dr.From, dr.To)
}

// Parse parses a range in the format '<from>:<to>' where from and to are
// parsed using the supplied Parser.
func (dr *DateRange) Parse(p Parser, val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>': %w", val, ErrInvalidDate)
	}
	from, err := p.ParseString(parts[0])
	if err != nil {
		return fmt.Errorf("invalid from: %w", err)
	}
	to, err := p.ParseString(parts[1])
	if err != nil {
		return fmt.Errorf("invalid to: %w", err)
	}
	*dr = NewDateRange(from, to)
	return nil
}
