// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd_test

import (
	"strings"

	"cloudeng.io/ymd"
)

// date parses a YYYY-MM-DD date, an empty string is a missing date.
func date(s string) ymd.CalendarDate {
	var cd ymd.CalendarDate
	if err := cd.UnmarshalText([]byte(s)); err != nil {
		panic(err)
	}
	return cd
}

func dateList(datelist string) ymd.DateList {
	parts := strings.Split(datelist, ",")
	dl := make(ymd.DateList, 0, len(parts))
	for _, p := range parts {
		dl = append(dl, date(strings.TrimSpace(p)))
	}
	return dl
}

// everyDay returns every date from 'from' to 'to' inclusive.
func everyDay(from, to string) []ymd.CalendarDate {
	var r []ymd.CalendarDate
	for d := range ymd.NewDateRange(date(from), date(to)).Dates() {
		r = append(r, d)
	}
	return r
}
