// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rdate provides the mapping between ymd.CalendarDate and the
// numeric date representation used by R, namely the signed number of days
// since 1970-01-01 stored as a double or an integer, and a set of
// name-stable, vectorized operations over such values.
package rdate

import (
	"math"

	"cloudeng.io/ymd"
)

// EpochOffset is the day count, as returned by ymd.CalendarDate.DayCount,
// of 1970-01-01.
const EpochOffset = 719163

// NAInteger is the missing value marker for integer vectors.
const NAInteger = math.MinInt32

// NA is the missing value marker for double vectors, it is a NaN with the
// same bit pattern as R's NA_real_.
var NA = math.Float64frombits(0x7FF00000000007A2)

// IsNA returns true for any NaN, including NA.
func IsNA(x float64) bool {
	return math.IsNaN(x)
}

// Encode returns the number of days from 1970-01-01 to cd, or NA if cd
// is missing.
func Encode(cd ymd.CalendarDate) float64 {
	if !cd.IsSet() {
		return NA
	}
	return float64(cd.DayCount() - EpochOffset)
}

// Decode returns the CalendarDate for a number of days since 1970-01-01.
// Fractional values are rounded down to the containing day. NaN, infinite
// values and values outside of the range supported by ymd.CalendarDate are
// returned as a missing date.
func Decode(x float64) ymd.CalendarDate {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	x = math.Floor(x)
	if x > math.MaxInt32*1024 || x < math.MinInt32*1024 {
		return 0
	}
	return ymd.FromDayCount(int64(x) + EpochOffset)
}

// EncodeInt is like Encode but returns an integer, NAInteger for a missing
// date or for a date that cannot be represented as an int32.
func EncodeInt(cd ymd.CalendarDate) int32 {
	if !cd.IsSet() {
		return NAInteger
	}
	n := cd.DayCount() - EpochOffset
	if n <= math.MinInt32 || n > math.MaxInt32 {
		return NAInteger
	}
	return int32(n)
}

// DecodeInt is like Decode for integer values, NAInteger is returned as a
// missing date.
func DecodeInt(n int32) ymd.CalendarDate {
	if n == NAInteger {
		return 0
	}
	return ymd.FromDayCount(int64(n) + EpochOffset)
}

// Vector represents a vector of dates encoded as doubles.
type Vector []float64

// IntVector represents a vector of dates encoded as integers.
type IntVector []int32

// EncodeList encodes every date in dl.
func EncodeList(dl ymd.DateList) Vector {
	v := make(Vector, len(dl))
	for i, d := range dl {
		v[i] = Encode(d)
	}
	return v
}

// EncodeIntList encodes every date in dl as an integer.
func EncodeIntList(dl ymd.DateList) IntVector {
	v := make(IntVector, len(dl))
	for i, d := range dl {
		v[i] = EncodeInt(d)
	}
	return v
}

// Dates decodes every element of v.
func (v Vector) Dates() ymd.DateList {
	dl := make(ymd.DateList, len(v))
	for i, x := range v {
		dl[i] = Decode(x)
	}
	return dl
}

// Dates decodes every element of v.
func (v IntVector) Dates() ymd.DateList {
	dl := make(ymd.DateList, len(v))
	for i, n := range v {
		dl[i] = DecodeInt(n)
	}
	return dl
}

// DecodeList is equivalent to v.Dates().
func DecodeList(v Vector) ymd.DateList {
	return v.Dates()
}
