// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidShift is returned for a malformed calendar shift.
var ErrInvalidShift = errors.New("invalid calendar shift")

// Shift represents a calendar shift of whole months and days. Years are
// stored as twelve months and weeks as seven days.
type Shift struct {
	Months int
	Days   int
}

func consumeN(shift string) (int, byte, int, error) {
	for i := range shift {
		c := shift[i]
		if (c >= '0' && c <= '9') || (i == 0 && c == '-') {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(shift[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", shift[:i], shift, ErrInvalidShift)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or designator: %s: %w", shift, ErrInvalidShift)
}

// ParseShift parses a calendar shift in the ISO 8601 duration format
// restricted to date components, [-]PnYnMnWnD, for example P1Y2M or P-10D.
// Individual components may be negative and each designator may appear at
// most once in Y, M, W, D order. Time components are not supported.
func ParseShift(shift string) (Shift, error) {
	orig := shift
	neg := strings.HasPrefix(shift, "-")
	if neg {
		shift = shift[1:]
	}
	if len(shift) < 2 || shift[0] != 'P' {
		return Shift{}, fmt.Errorf("shift must start with P or -P: %q: %w", orig, ErrInvalidShift)
	}
	shift = shift[1:]
	var result Shift
	const order = "YMWD"
	next := 0
	for len(shift) > 0 {
		if shift[0] == 'T' {
			return Shift{}, fmt.Errorf("time components are not supported: %q: %w", orig, ErrInvalidShift)
		}
		n, designator, idx, err := consumeN(shift)
		if err != nil {
			return Shift{}, err
		}
		shift = shift[idx:]
		pos := strings.IndexByte(order, designator)
		if pos < next {
			return Shift{}, fmt.Errorf("designator %c out of order or repeated: %q: %w", designator, orig, ErrInvalidShift)
		}
		next = pos + 1
		switch designator {
		case 'Y':
			result.Months += n * 12
		case 'M':
			result.Months += n
		case 'W':
			result.Days += n * 7
		case 'D':
			result.Days += n
		}
	}
	if neg {
		result.Months, result.Days = -result.Months, -result.Days
	}
	return result, nil
}

// Apply returns cd shifted by s, the months are applied first, as per
// AddMonths, followed by the days.
func (s Shift) Apply(cd CalendarDate) CalendarDate {
	return cd.AddMonths(s.Months).AddDays(s.Days)
}

// String returns s in the format accepted by ParseShift.
func (s Shift) String() string {
	if s.Months == 0 && s.Days == 0 {
		return "P0D"
	}
	var out strings.Builder
	out.WriteByte('P')
	if y := s.Months / 12; y != 0 {
		fmt.Fprintf(&out, "%dY", y)
	}
	if m := s.Months % 12; m != 0 {
		fmt.Fprintf(&out, "%dM", m)
	}
	if s.Days != 0 {
		fmt.Fprintf(&out, "%dD", s.Days)
	}
	return out.String()
}
