// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

import (
	"strings"
)

// Constraints restricts the dates yielded by DateRange.DatesConstrained.
// Dates listed in Exclude are always rejected, the remaining dates are
// then filtered by Weekdays and Weekends; setting neither, or both,
// accepts every day of the week.
type Constraints struct {
	Weekdays bool     // Monday to Friday
	Weekends bool     // Saturday and Sunday
	Custom   DateList // dates to exclude
}

func (dc Constraints) String() string {
	var out strings.Builder
	switch {
	case dc.Weekdays == dc.Weekends:
		out.WriteString("all days")
	case dc.Weekdays:
		out.WriteString("weekdays")
	default:
		out.WriteString("weekends")
	}
	if len(dc.Custom) > 0 {
		out.WriteString(" except ")
		for i, d := range dc.Custom {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(d.String())
		}
	}
	return out.String()
}

// Include reports whether cd satisfies the constraints. The zero value
// of Constraints includes every date.
func (dc Constraints) Include(cd CalendarDate) bool {
	if dc.Custom.Contains(cd) {
		return false
	}
	if dc.Weekdays == dc.Weekends {
		return true
	}
	weekend := cd.ISOWeekday() >= 6
	return weekend == dc.Weekends
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0
}
