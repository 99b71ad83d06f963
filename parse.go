// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

import (
	"fmt"
	"math"
	"strconv"
)

// Parser parses integer, floating point and string representations of
// dates of the form YYYYMMDD or YYMMDD, or three delimited fields in year,
// month, day order.
//
// Two digit years are windowed: years 00-69 are mapped to 2000-2069 and
// 70-99 to 1970-1999. Years of three or more digits are used literally
// provided that they are within MinYear and MaxYear inclusive. The zero
// value of Parser is equivalent to DefaultParser.
type Parser struct {
	MinYear int `yaml:"min_year"`
	MaxYear int `yaml:"max_year"`
}

// DefaultParser accepts literal years in the range 1 to 9999.
var DefaultParser = Parser{MinYear: 1, MaxYear: 9999}

func (p Parser) bounds() (int64, int64) {
	if p.MinYear == 0 && p.MaxYear == 0 {
		return int64(DefaultParser.MinYear), int64(DefaultParser.MaxYear)
	}
	return int64(p.MinYear), int64(p.MaxYear)
}

// resolve applies the year windowing and literal year policy and validates
// the resulting date.
func (p Parser) resolve(yearPart, month, day int64, window bool) (CalendarDate, error) {
	var year int64
	if window && yearPart < 100 {
		if yearPart < 70 {
			year = yearPart + 2000
		} else {
			year = yearPart + 1900
		}
	} else {
		lo, hi := p.bounds()
		if yearPart < lo || yearPart > hi {
			return 0, fmt.Errorf("year %d outside of %d..%d: %w", yearPart, lo, hi, ErrInvalidDate)
		}
		year = yearPart
	}
	return NewCalendarDate(int(year), Month(month), int(day))
}

// ParseInt parses an integer of the form YYYYMMDD or YYMMDD.
func (p Parser) ParseInt(v int64) (CalendarDate, error) {
	cd, err := p.resolve(v/10000, v/100%100, v%100, true)
	if err != nil {
		return 0, fmt.Errorf("%d: %w", v, err)
	}
	return cd, nil
}

// ParseFloat parses a floating point value that must be integral and is
// then interpreted as per ParseInt. NaN, infinite and non-integral values
// are rejected.
func (p Parser) ParseFloat(x float64) (CalendarDate, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, fmt.Errorf("%v: not an integral value: %w", x, ErrInvalidDate)
	}
	if x >= float64(math.MaxInt64) || x <= float64(math.MinInt64) {
		return 0, fmt.Errorf("%v: out of range: %w", x, ErrInvalidDate)
	}
	return p.ParseInt(int64(x))
}

// ParseString parses a string that is either an integer as per ParseInt,
// or three integer fields, year, month and day, separated by any of
// '-', '.', '/' or ' '. A year field of at most two characters is windowed
// as a two digit year, for example "98-3-8", "98/03/08", "1998.03.08" are
// all 1998-03-08.
func (p Parser) ParseString(s string) (CalendarDate, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return p.ParseInt(v)
	}
	fields := splitFields(s)
	if len(fields) != 3 {
		return 0, fmt.Errorf("%q: expected an integer or three delimited fields: %w", s, ErrInvalidDate)
	}
	var parts [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: invalid field %q: %w", s, f, ErrInvalidDate)
		}
		// Larger values overflow the composition below and can never
		// yield a supported year.
		if v < -maxField || v > maxField {
			return 0, fmt.Errorf("%q: field %q out of range: %w", s, f, ErrInvalidDate)
		}
		parts[i] = v
	}
	// The fields are composed into the equivalent YYYYMMDD integer, which
	// is then decomposed and validated as for ParseInt.
	v := parts[0]*10000 + parts[1]*100 + parts[2]
	cd, err := p.resolve(v/10000, v/100%100, v%100, len(fields[0]) <= 2)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return cd, nil
}

const maxField = 1_000_000_000_000

func splitFields(s string) []string {
	fields := make([]string, 0, 3)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '-', '.', '/', ' ':
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	return append(fields, s[start:])
}

func parseList[T any](vals []T, fn func(T) (CalendarDate, error)) DateList {
	dl := make(DateList, len(vals))
	for i, v := range vals {
		cd, err := fn(v)
		if err != nil {
			continue
		}
		dl[i] = cd
	}
	return dl
}

// ParseInts parses each of vals as per ParseInt, values that cannot be
// parsed are returned as missing dates.
func (p Parser) ParseInts(vals []int64) DateList {
	return parseList(vals, p.ParseInt)
}

// ParseFloats parses each of vals as per ParseFloat, values that cannot be
// parsed are returned as missing dates.
func (p Parser) ParseFloats(vals []float64) DateList {
	return parseList(vals, p.ParseFloat)
}

// ParseStrings parses each of vals as per ParseString, values that cannot be
// parsed are returned as missing dates.
func (p Parser) ParseStrings(vals []string) DateList {
	return parseList(vals, p.ParseString)
}

// ParseInt calls DefaultParser.ParseInt.
func ParseInt(v int64) (CalendarDate, error) {
	return DefaultParser.ParseInt(v)
}

// ParseFloat calls DefaultParser.ParseFloat.
func ParseFloat(x float64) (CalendarDate, error) {
	return DefaultParser.ParseFloat(x)
}

// ParseString calls DefaultParser.ParseString.
func ParseString(s string) (CalendarDate, error) {
	return DefaultParser.ParseString(s)
}
