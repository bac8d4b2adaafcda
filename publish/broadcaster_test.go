// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/messagebus"
)

func TestFormatEvent(t *testing.T) {
	from := &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{0x07}, 32),
	}
	entry := event.Entry{
		Product:  "product",
		Sequence: 3,
		Block:    9,
		Event: &event.Payment{
			From:   from,
			Amount: 42,
		},
	}

	parts, err := format(messagebus.Message{Command: "event", Parameters: []interface{}{entry}})
	assert.Nil(t, err, "wrong format")
	assert.Equal(t, 3, len(parts), "wrong part count")
	assert.Equal(t, "product", string(parts[0]), "wrong topic")
	assert.Equal(t, "Payment", string(parts[1]), "wrong kind")

	var body struct {
		Product  string `json:"product"`
		Sequence uint64 `json:"sequence"`
		Block    uint64 `json:"block"`
		Kind     string `json:"kind"`
		Data     struct {
			Amount uint64 `json:"amount"`
		} `json:"data"`
	}
	err = json.Unmarshal(parts[2], &body)
	assert.Nil(t, err, "wrong body")
	assert.Equal(t, uint64(3), body.Sequence, "wrong sequence")
	assert.Equal(t, uint64(9), body.Block, "wrong block")
	assert.Equal(t, "Payment", body.Kind, "wrong body kind")
	assert.Equal(t, uint64(42), body.Data.Amount, "wrong amount")
}

func TestFormatBlock(t *testing.T) {
	parts, err := format(messagebus.Message{Command: "block", Parameters: []interface{}{uint64(12)}})
	assert.Nil(t, err, "wrong format")
	assert.Equal(t, [][]byte{[]byte("node"), []byte("block"), []byte(`{"height":12}`)}, parts, "wrong parts")
}

func TestFormatIgnored(t *testing.T) {
	parts, err := format(messagebus.Message{Command: "other", Parameters: []interface{}{1}})
	assert.Nil(t, err, "error for ignored command")
	assert.Nil(t, parts, "ignored command formatted")

	_, err = format(messagebus.Message{Command: "event", Parameters: []interface{}{"not an entry"}})
	assert.NotNil(t, err, "bad event parameter accepted")
}
