// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// AppendBytes - append a varint length followed by the data
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a length prefixed string
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// AppendVarint64 - append a varint encoded value
func AppendVarint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// SplitBytes - extract a length prefixed byte slice
//
// returns the data and the total number of bytes consumed; count is
// zero if the buffer is truncated
func SplitBytes(buffer []byte) ([]byte, int) {
	length, n := FromVarint64(buffer)
	if 0 == n {
		return nil, 0
	}
	end := uint64(n) + length
	if end < length || end > uint64(len(buffer)) {
		return nil, 0
	}
	return buffer[n:end], int(end)
}

// ToUint64 - big endian eight byte form, which sorts in numeric order
func ToUint64(value uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}

// FromUint64 - decode the first eight bytes as big endian
//
// second value is false if the buffer is too short
func FromUint64(buffer []byte) (uint64, bool) {
	if len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}
