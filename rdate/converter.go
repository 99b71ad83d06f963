// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rdate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
	"cloudeng.io/ymd"
)

// ErrUnsupportedType is returned when a Converter is given values of a
// type that it cannot interpret as dates.
var ErrUnsupportedType = errors.New("unsupported type")

// DefaultChunkSize is the default number of values processed by a single
// goroutine.
const DefaultChunkSize = 4096

type options struct {
	parser      ymd.Parser
	concurrency int
	chunkSize   int
}

// Option represents an option to NewConverter.
type Option func(*options)

// WithParser sets the parser used for integer, double and string values.
func WithParser(p ymd.Parser) Option {
	return func(o *options) {
		o.parser = p
	}
}

// WithConcurrency sets the number of goroutines used to process large
// inputs. Values less than or equal to 1 result in sequential execution.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithChunkSize sets the number of values processed by a single goroutine
// when the concurrency is greater than 1.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// Converter provides vectorized date operations over the value types
// used by R: integers, doubles, strings and vectors that are already
// dates. Inputs that cannot be interpreted as dates are returned as
// missing values rather than failing the entire call.
type Converter struct {
	opts options
}

// NewConverter returns a new Converter configured with the supplied options.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	c.opts.parser = ymd.DefaultParser
	c.opts.concurrency = 1
	c.opts.chunkSize = DefaultChunkSize
	for _, fn := range opts {
		fn(&c.opts)
	}
	if c.opts.chunkSize <= 0 {
		c.opts.chunkSize = DefaultChunkSize
	}
	return c
}

// apply calls fn for every index in [0, n) splitting the range into chunks
// processed concurrently if so configured. Results are written by fn to
// its own index so the output is independent of the scheduling.
func (c *Converter) apply(ctx context.Context, n int, fn func(i int)) error {
	if c.opts.concurrency <= 1 || n <= c.opts.chunkSize {
		for from := 0; from < n; from += c.opts.chunkSize {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := from; i < min(from+c.opts.chunkSize, n); i++ {
				fn(i)
			}
		}
		return ctx.Err()
	}
	g, ctx := errgroup.WithContext(ctx)
	g = errgroup.WithConcurrency(g, c.opts.concurrency)
	for from := 0; from < n; from += c.opts.chunkSize {
		to := min(from+c.opts.chunkSize, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := from; i < to; i++ {
				fn(i)
			}
			return nil
		})
	}
	return g.Wait()
}

// dates converts values to a list of dates.
func (c *Converter) dates(ctx context.Context, values any) (ymd.DateList, error) {
	p := c.opts.parser
	var (
		dl  ymd.DateList
		err error
	)
	switch v := values.(type) {
	case Vector:
		return v.Dates(), nil
	case IntVector:
		return v.Dates(), nil
	case ymd.DateList:
		return v, nil
	case []int32:
		dl = make(ymd.DateList, len(v))
		err = c.apply(ctx, len(v), func(i int) {
			if v[i] != NAInteger {
				dl[i], _ = p.ParseInt(int64(v[i]))
			}
		})
	case []int:
		dl = make(ymd.DateList, len(v))
		err = c.apply(ctx, len(v), func(i int) {
			dl[i], _ = p.ParseInt(int64(v[i]))
		})
	case []int64:
		dl = make(ymd.DateList, len(v))
		err = c.apply(ctx, len(v), func(i int) {
			dl[i], _ = p.ParseInt(v[i])
		})
	case []float64:
		dl = make(ymd.DateList, len(v))
		err = c.apply(ctx, len(v), func(i int) {
			dl[i], _ = p.ParseFloat(v[i])
		})
	case []string:
		dl = make(ymd.DateList, len(v))
		err = c.apply(ctx, len(v), func(i int) {
			dl[i], _ = p.ParseString(v[i])
		})
	case []*string:
		dl = make(ymd.DateList, len(v))
		err = c.apply(ctx, len(v), func(i int) {
			if v[i] != nil {
				dl[i], _ = p.ParseString(*v[i])
			}
		})
	default:
		return nil, fmt.Errorf("%T: %w", values, ErrUnsupportedType)
	}
	if err != nil {
		return nil, err
	}
	if missing := dl.Missing(); missing > 0 {
		ctxlog.Logger(ctx).Debug("rdate: values not converted to dates", "type", fmt.Sprintf("%T", values), "total", len(dl), "missing", missing)
	}
	return dl, nil
}

// ParseDates converts values to a Vector. Values may be any of:
// []int32 where NAInteger is missing, []int, []int64, []float64 where NaN
// is missing, []string, []*string where nil is missing, Vector, IntVector
// or ymd.DateList. Vector and IntVector are assumed to already be dates
// and are not parsed. Any other type results in an error that wraps
// ErrUnsupportedType. Values that cannot be parsed are returned as NA.
func (c *Converter) ParseDates(ctx context.Context, values any) (Vector, error) {
	dl, err := c.dates(ctx, values)
	if err != nil {
		return nil, err
	}
	return c.encode(ctx, dl)
}

func (c *Converter) encode(ctx context.Context, dl ymd.DateList) (Vector, error) {
	out := make(Vector, len(dl))
	if err := c.apply(ctx, len(dl), func(i int) { out[i] = Encode(dl[i]) }); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Converter) mapDates(ctx context.Context, values any, fn func(ymd.CalendarDate) ymd.CalendarDate) (Vector, error) {
	dl, err := c.dates(ctx, values)
	if err != nil {
		return nil, err
	}
	out := make(Vector, len(dl))
	err = c.apply(ctx, len(dl), func(i int) {
		if dl[i].IsSet() {
			out[i] = Encode(fn(dl[i]))
			return
		}
		out[i] = NA
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func naVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = NA
	}
	return v
}

func (c *Converter) boundary(ctx context.Context, values any, name string, begin bool) (Vector, error) {
	p, err := ymd.ParsePeriod(name)
	if err != nil {
		dl, err := c.dates(ctx, values)
		if err != nil {
			return nil, err
		}
		ctxlog.Logger(ctx).Debug("rdate: unknown period", "period", name)
		return naVector(len(dl)), nil
	}
	if begin {
		return c.mapDates(ctx, values, p.Begin)
	}
	return c.mapDates(ctx, values, p.End)
}

// PeriodBegin returns the first date of the named period, as per
// ymd.ParsePeriod, that contains each of values. An unrecognised period
// name results in a vector of NA values of the same length as values.
func (c *Converter) PeriodBegin(ctx context.Context, values any, name string) (Vector, error) {
	return c.boundary(ctx, values, name, true)
}

// PeriodEnd returns the last date of the named period, as per
// ymd.ParsePeriod, that contains each of values. An unrecognised period
// name results in a vector of NA values of the same length as values.
func (c *Converter) PeriodEnd(ctx context.Context, values any, name string) (Vector, error) {
	return c.boundary(ctx, values, name, false)
}

// AddMonths returns each of values shifted by months months as per
// ymd.CalendarDate.AddMonths. This is the same as Excel's EDATE function.
func (c *Converter) AddMonths(ctx context.Context, values any, months int) (Vector, error) {
	return c.mapDates(ctx, values, func(cd ymd.CalendarDate) ymd.CalendarDate {
		return cd.AddMonths(months)
	})
}

// Part returns the named part, as per ymd.ParsePart, of each of values
// with NAInteger for missing values.
func (c *Converter) Part(ctx context.Context, values any, name string) ([]int32, error) {
	p, err := ymd.ParsePart(name)
	if err != nil {
		return nil, err
	}
	return c.part(ctx, values, p)
}

func (c *Converter) part(ctx context.Context, values any, p ymd.Part) ([]int32, error) {
	dl, err := c.dates(ctx, values)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(dl))
	err = c.apply(ctx, len(dl), func(i int) {
		if !dl[i].IsSet() {
			out[i] = NAInteger
			return
		}
		v := p.Of(dl[i])
		if v <= math.MinInt32 || v > math.MaxInt32 {
			out[i] = NAInteger
			return
		}
		out[i] = int32(v)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Year returns the year of each of values.
func (c *Converter) Year(ctx context.Context, values any) ([]int32, error) {
	return c.part(ctx, values, ymd.PartYear)
}

// Month returns the month, 1-12, of each of values.
func (c *Converter) Month(ctx context.Context, values any) ([]int32, error) {
	return c.part(ctx, values, ymd.PartMonth)
}

// Quarter returns the quarter, 1-4, of each of values.
func (c *Converter) Quarter(ctx context.Context, values any) ([]int32, error) {
	return c.part(ctx, values, ymd.PartQuarter)
}

// ISOWeek returns the ISO 8601 week number of each of values.
func (c *Converter) ISOWeek(ctx context.Context, values any) ([]int32, error) {
	return c.part(ctx, values, ymd.PartISOWeek)
}

// MDay returns the day of the month of each of values.
func (c *Converter) MDay(ctx context.Context, values any) ([]int32, error) {
	return c.part(ctx, values, ymd.PartMDay)
}

// YDay returns the day of the year of each of values.
func (c *Converter) YDay(ctx context.Context, values any) ([]int32, error) {
	return c.part(ctx, values, ymd.PartYDay)
}

// WDay returns the day of the week, Sunday=1, of each of values.
func (c *Converter) WDay(ctx context.Context, values any) ([]int32, error) {
	return c.part(ctx, values, ymd.PartWDay)
}

// ISOWDay returns the ISO 8601 day of the week, Monday=1, of each of values.
func (c *Converter) ISOWDay(ctx context.Context, values any) ([]int32, error) {
	return c.part(ctx, values, ymd.PartISOWDay)
}
