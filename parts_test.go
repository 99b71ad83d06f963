// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd_test

import (
	"errors"
	"slices"
	"testing"

	"cloudeng.io/ymd"
)

func TestParseParts(t *testing.T) {
	names := []string{}
	for _, p := range ymd.Parts() {
		np, err := ymd.ParsePart(p.String())
		if err != nil {
			t.Errorf("%v: %v", p, err)
		}
		if got, want := np, p; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		names = append(names, p.String())
	}
	slices.Sort(names)
	if got, want := names, []string{"isowday", "isoweek", "mday", "month", "quarter", "wday", "yday", "year"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, name := range []string{"", "week", "day", "Year"} {
		if _, err := ymd.ParsePart(name); !errors.Is(err, ymd.ErrUnknownPart) {
			t.Errorf("%q: expected an error: %v", name, err)
		}
	}
}

func TestPartOf(t *testing.T) {
	for _, tc := range []struct {
		date string
		part ymd.Part
		want int
	}{
		{"2022-01-01", ymd.PartYear, 2022},
		{"2022-01-01", ymd.PartMonth, 1},
		{"2022-01-01", ymd.PartQuarter, 1},
		{"2022-01-01", ymd.PartISOWeek, 52},
		{"2022-01-01", ymd.PartMDay, 1},
		{"2022-01-01", ymd.PartYDay, 1},
		{"2022-01-01", ymd.PartWDay, 7},
		{"2022-01-01", ymd.PartISOWDay, 6},
		{"2022-04-01", ymd.PartQuarter, 2},
		{"2022-09-30", ymd.PartQuarter, 3},
		{"2022-12-31", ymd.PartQuarter, 4},
		{"2020-12-31", ymd.PartYDay, 366},
		{"2021-12-31", ymd.PartYDay, 365},
		{"2022-01-02", ymd.PartWDay, 1},
		{"2022-01-02", ymd.PartISOWDay, 7},
	} {
		if got, want := tc.part.Of(date(tc.date)), tc.want; got != want {
			t.Errorf("%v: %v: got %v, want %v", tc.date, tc.part, got, want)
		}
	}
}

func TestProject(t *testing.T) {
	dl := dateList("2022-01-01,,2021-02-12")
	for _, tc := range []struct {
		part ymd.Part
		want []int
	}{
		{ymd.PartYear, []int{2022, 0, 2021}},
		{ymd.PartMonth, []int{1, 0, 2}},
		{ymd.PartISOWeek, []int{52, 0, 6}},
		{ymd.PartWDay, []int{7, 0, 6}},
	} {
		r := dl.Project(tc.part)
		if got, want := r.Values, tc.want; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", tc.part, got, want)
		}
		if got, want := r.Valid, []bool{true, false, true}; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", tc.part, got, want)
		}
	}

	r := ymd.ProjectFunc(dl, func(cd ymd.CalendarDate) int { return int(cd.DayCount()) })
	if got, want := r.Valid, []bool{true, false, true}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	empty := ymd.DateList{}.Project(ymd.PartYear)
	if len(empty.Values) != 0 || len(empty.Valid) != 0 {
		t.Errorf("got %v, want empty", empty)
	}
}
