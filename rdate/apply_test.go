// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rdate

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"cloudeng.io/sync/synctestutil"
)

func TestApplyConcurrencyLimit(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	for _, concurrency := range []int{2, 3, 5} {
		c := NewConverter(WithConcurrency(concurrency), WithChunkSize(1))
		var active, peak int64
		seen := make([]int64, 40)
		err := c.apply(context.Background(), len(seen), func(i int) {
			n := atomic.AddInt64(&active, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt64(&seen[i], 1)
			atomic.AddInt64(&active, -1)
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := atomic.LoadInt64(&peak); got > int64(concurrency) {
			t.Errorf("concurrency %v: got %v concurrent chunks", concurrency, got)
		}
		for i, n := range seen {
			if n != 1 {
				t.Errorf("concurrency %v: index %v visited %v times", concurrency, i, n)
			}
		}
	}
}
