// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{300, []byte{0xac, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: wrong encoding", i)

		suffixed := append(append([]byte{}, item.encoded...), 0xff, 0x97)
		value, count := util.FromVarint64(suffixed)
		assert.Equal(t, item.value, value, "%d: wrong decode", i)
		assert.Equal(t, len(item.encoded), count, "%d: wrong count", i)
	}
}

func TestVarint64Truncated(t *testing.T) {
	truncated := [][]byte{
		{},
		{0x80},
		{0xff, 0xff},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for i, b := range truncated {
		value, count := util.FromVarint64(b)
		assert.Equal(t, uint64(0), value, "%d: value from truncated buffer", i)
		assert.Equal(t, 0, count, "%d: count from truncated buffer", i)
	}
}
