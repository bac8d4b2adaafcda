// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "wrong value after increment")

	for i := 0; i < 5; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "counter did not return to zero")
}

func TestIncrementBelow(t *testing.T) {
	var c counter.Counter

	var wg sync.WaitGroup
	accepted := make(chan bool, 100)
	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			accepted <- c.IncrementBelow(10)
		}()
	}
	wg.Wait()
	close(accepted)

	n := 0
	for ok := range accepted {
		if ok {
			n += 1
		}
	}
	assert.Equal(t, 10, n, "wrong number of increments accepted")
	assert.Equal(t, uint64(10), c.Uint64(), "counter passed the limit")
}
