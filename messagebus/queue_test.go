// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/messagebus"
)

func TestBroadcast(t *testing.T) {
	q := messagebus.Bus.TestQueue

	a := q.Subscribe("a")
	b := q.Subscribe("b")
	defer q.Release("a")
	defer q.Release("b")

	q.Send("payment", "product-v1", uint64(10))

	for _, c := range []<-chan messagebus.Message{a, b} {
		m := <-c
		assert.Equal(t, "payment", m.Command, "wrong command")
		assert.Equal(t, []interface{}{"product-v1", uint64(10)}, m.Parameters, "wrong parameters")
	}
}

func TestRelease(t *testing.T) {
	q := messagebus.Bus.TestQueue

	c := q.Subscribe("released")
	q.Release("released")

	_, ok := <-c
	assert.False(t, ok, "channel still open")

	q.Send("ignored")
}

func TestFullSubscriber(t *testing.T) {
	q := messagebus.Bus.TestQueue

	q.Subscribe("slow")
	defer q.Release("slow")

	before := q.Dropped()
	for i := 0; i < 1001; i += 1 {
		q.Send("tick")
	}
	assert.Equal(t, before+1, q.Dropped(), "wrong dropped count")
}
