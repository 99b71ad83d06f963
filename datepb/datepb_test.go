// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepb_test

import (
	"errors"
	"testing"

	"cloudeng.io/ymd"
	"cloudeng.io/ymd/datepb"
	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/protobuf/proto"
)

func TestFromProto(t *testing.T) {
	tests := []struct {
		name    string
		date    *date.Date
		want    ymd.CalendarDate
		wantErr error
	}{
		{"nil", nil, 0, nil},
		{"day", &date.Date{Year: 1986, Month: 3, Day: 25}, ymd.MustNewCalendarDate(1986, 3, 25), nil},
		{"leap", &date.Date{Year: 2020, Month: 2, Day: 29}, ymd.MustNewCalendarDate(2020, 2, 29), nil},
		{"year", &date.Date{Year: 1986}, 0, datepb.ErrPartialDate},
		{"month", &date.Date{Year: 1986, Month: 3}, 0, datepb.ErrPartialDate},
		{"no year", &date.Date{Month: 3, Day: 25}, 0, datepb.ErrPartialDate},
		{"invalid", &date.Date{Year: 2021, Month: 2, Day: 29}, 0, ymd.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datepb.FromProto(tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromProto() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FromProto() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToProto(t *testing.T) {
	got, err := datepb.ToProto(ymd.MustNewCalendarDate(1986, 3, 25))
	if err != nil {
		t.Fatal(err)
	}
	if want := (&date.Date{Year: 1986, Month: 3, Day: 25}); !proto.Equal(got, want) {
		t.Errorf("ToProto() = %v, want %v", got, want)
	}
	got, err = datepb.ToProto(0)
	if got != nil || err != nil {
		t.Errorf("ToProto() = %v, %v, want nil", got, err)
	}
	for _, cd := range []ymd.CalendarDate{ymd.MustNewCalendarDate(0, 1, 1), ymd.MustNewCalendarDate(10000, 1, 1)} {
		if _, err := datepb.ToProto(cd); !errors.Is(err, datepb.ErrOutOfRange) {
			t.Errorf("%v: expected an error: %v", cd, err)
		}
	}

	for _, d := range []ymd.CalendarDate{ymd.MustNewCalendarDate(1, 1, 1), ymd.MustNewCalendarDate(9999, 12, 31), ymd.MustNewCalendarDate(2022, 1, 1)} {
		pb, err := datepb.ToProto(d)
		if err != nil {
			t.Fatal(err)
		}
		back, err := datepb.FromProto(pb)
		if err != nil {
			t.Fatal(err)
		}
		if back != d {
			t.Errorf("got %v, want %v", back, d)
		}
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		name     string
		date     *date.Date
		from, to ymd.CalendarDate
		wantErr  bool
	}{
		{"year", &date.Date{Year: 1986}, ymd.MustNewCalendarDate(1986, 1, 1), ymd.MustNewCalendarDate(1986, 12, 31), false},
		{"month", &date.Date{Year: 2020, Month: 2}, ymd.MustNewCalendarDate(2020, 2, 1), ymd.MustNewCalendarDate(2020, 2, 29), false},
		{"day", &date.Date{Year: 1986, Month: 3, Day: 25}, ymd.MustNewCalendarDate(1986, 3, 25), ymd.MustNewCalendarDate(1986, 3, 25), false},
		{"empty", &date.Date{}, 0, 0, true},
		{"nil", nil, 0, 0, true},
		{"day without month", &date.Date{Year: 1986, Day: 25}, 0, 0, true},
		{"invalid month", &date.Date{Year: 1986, Month: 13}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datepb.Interval(tt.date)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Interval() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got.From != tt.from || got.To != tt.to {
				t.Errorf("Interval() = %v, want %v - %v", got, tt.from, tt.to)
			}
		})
	}
}

func TestFromProtoList(t *testing.T) {
	dl := datepb.FromProtoList([]*date.Date{{Year: 2022, Month: 1, Day: 1}, nil, {Year: 2022}})
	if got, want := dl.Missing(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dl[0], ymd.MustNewCalendarDate(2022, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
