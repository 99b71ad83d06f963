// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd_test

import (
	"errors"
	"testing"

	"cloudeng.io/ymd"
)

func TestParsePeriod(t *testing.T) {
	for _, p := range ymd.Periods() {
		np, err := ymd.ParsePeriod(p.String())
		if err != nil {
			t.Errorf("%v: %v", p, err)
		}
		if got, want := np, p; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	for _, name := range []string{"", "Year", "years", "day", "bimonth"} {
		if _, err := ymd.ParsePeriod(name); !errors.Is(err, ymd.ErrUnknownPeriod) {
			t.Errorf("%q: expected an error: %v", name, err)
		}
	}
	var p ymd.Period
	if err := p.Set("quarter"); err != nil {
		t.Fatal(err)
	}
	if got, want := p, ymd.Quarterly; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBeginEnd(t *testing.T) {
	for _, tc := range []struct {
		date       string
		period     ymd.Period
		begin, end string
	}{
		{"2021-02-12", ymd.Annual, "2021-01-01", "2021-12-31"},
		{"2021-02-12", ymd.Semiannual, "2021-01-01", "2021-06-30"},
		{"2021-07-01", ymd.Semiannual, "2021-07-01", "2021-12-31"},
		{"2021-06-30", ymd.Semiannual, "2021-01-01", "2021-06-30"},
		{"2021-02-12", ymd.Quarterly, "2021-01-01", "2021-03-31"},
		{"2021-05-12", ymd.Quarterly, "2021-04-01", "2021-06-30"},
		{"2021-09-30", ymd.Quarterly, "2021-07-01", "2021-09-30"},
		{"2021-10-01", ymd.Quarterly, "2021-10-01", "2021-12-31"},
		{"2021-02-12", ymd.Monthly, "2021-02-01", "2021-02-28"},
		{"2020-02-12", ymd.Monthly, "2020-02-01", "2020-02-29"},
		{"2021-04-30", ymd.Monthly, "2021-04-01", "2021-04-30"},
		{"2021-02-12", ymd.Weekly, "2021-02-08", "2021-02-14"},
		{"2022-01-01", ymd.Weekly, "2021-12-27", "2022-01-02"},
		{"2022-01-03", ymd.Weekly, "2022-01-03", "2022-01-09"},
		{"2021-12-31", ymd.Weekly, "2021-12-27", "2022-01-02"},
	} {
		d := date(tc.date)
		if got, want := ymd.Begin(d, tc.period), date(tc.begin); got != want {
			t.Errorf("%v %v: begin: got %v, want %v", tc.date, tc.period, got, want)
		}
		if got, want := ymd.End(d, tc.period), date(tc.end); got != want {
			t.Errorf("%v %v: end: got %v, want %v", tc.date, tc.period, got, want)
		}
		r := tc.period.Range(d)
		if !r.Include(d) {
			t.Errorf("%v: %v does not include %v", tc.period, r, d)
		}
	}
}

func TestBeginEndProperties(t *testing.T) {
	for _, d := range everyDay("2019-12-01", "2021-01-31") {
		for _, p := range ymd.Periods() {
			b, e := p.Begin(d), p.End(d)
			if b > d || d > e {
				t.Fatalf("%v %v: %v <= %v <= %v does not hold", d, p, b, d, e)
			}
			if got, want := p.Begin(b), b; got != want {
				t.Fatalf("%v %v: begin not idempotent: got %v, want %v", d, p, got, want)
			}
			if got, want := p.End(e), e; got != want {
				t.Fatalf("%v %v: end not idempotent: got %v, want %v", d, p, got, want)
			}
			if got, want := p.Begin(e), b; got != want {
				t.Fatalf("%v %v: got %v, want %v", d, p, got, want)
			}
			if got, want := e.Tomorrow(), p.Begin(e.Tomorrow()); got != want {
				t.Fatalf("%v %v: day after end is not the start of a period: got %v, want %v", d, p, got, want)
			}
		}
		if got, want := ymd.Weekly.Begin(d).ISOWeekday(), 1; got != want {
			t.Fatalf("%v: got %v, want %v", d, got, want)
		}
		if got, want := ymd.Weekly.End(d).ISOWeekday(), 7; got != want {
			t.Fatalf("%v: got %v, want %v", d, got, want)
		}
	}
}

func TestBeginEndMissing(t *testing.T) {
	var missing ymd.CalendarDate
	for _, p := range ymd.Periods() {
		if got := p.Begin(missing); got.IsSet() {
			t.Errorf("%v: got %v, want missing", p, got)
		}
		if got := p.End(missing); got.IsSet() {
			t.Errorf("%v: got %v, want missing", p, got)
		}
	}
	dl := dateList("2021-02-12,,2021-11-30")
	if got, want := dl.Begin(ymd.Quarterly), dateList("2021-01-01,,2021-10-01"); !equalDateLists(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dl.End(ymd.Monthly), dateList("2021-02-28,,2021-11-30"); !equalDateLists(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dl.AddMonths(-1), dateList("2021-01-12,,2021-10-30"); !equalDateLists(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
