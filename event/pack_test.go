// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/proof"
)

func TestPackIterationProposal(t *testing.T) {
	e := &event.IterationProposal{
		Author:   makeAccount(0x11),
		Proof:    proof.NewDigest([]byte("iteration 7")),
		Location: "ipfs://QmNmL9m3aK1FjTqG2KqH5gUq3jBqQYqNQ8eQ3d1o7ZqXgH",
	}

	packed := e.Pack()
	assert.Equal(t, byte(event.IterationProposalKind), packed[0], "wrong kind tag")

	unpacked, n, err := event.Unpack(packed)
	assert.Nil(t, err, "wrong Unpack")
	assert.Equal(t, len(packed), n, "wrong unpacked length")

	p, ok := unpacked.(*event.IterationProposal)
	assert.True(t, ok, "wrong type")
	assert.True(t, e.Author.Equal(p.Author), "wrong author")
	assert.Equal(t, e.Proof, p.Proof, "wrong proof")
	assert.Equal(t, e.Location, p.Location, "wrong location")
}

func TestPackMigration(t *testing.T) {
	e := &event.Migration{
		Holder: makeAccount(0x22),
		From:   "product-v1",
		To:     "product-v2",
		Shares: 1000,
		Value:  10000000000000000,
	}

	unpacked, _, err := event.Unpack(e.Pack())
	assert.Nil(t, err, "wrong Unpack")
	assert.Equal(t, e.From, unpacked.(*event.Migration).From, "wrong from")
	assert.Equal(t, e.Value, unpacked.(*event.Migration).Value, "wrong value")
	assert.Equal(t, e.Holder, unpacked.Indexed(), "wrong indexed account")
}

func TestUnpackTruncated(t *testing.T) {
	packed := (&event.Payment{From: makeAccount(0x33), Amount: 1 << 40}).Pack()

	for i := 0; i < len(packed); i += 1 {
		_, _, err := event.Unpack(packed[:i])
		assert.NotNil(t, err, "%d: truncated record accepted", i)
	}
}

func TestUnpackInvalidKind(t *testing.T) {
	_, _, err := event.Unpack([]byte{0x7f, 0x00})
	assert.Equal(t, fault.ErrInvalidEventKind, err, "invalid kind accepted")
}

func TestKindNames(t *testing.T) {
	k, ok := event.KindFromString("Payment")
	assert.True(t, ok, "Payment not found")
	assert.Equal(t, event.PaymentKind, k, "wrong kind")

	_, ok = event.KindFromString("payment")
	assert.False(t, ok, "lower case name accepted")
	assert.Equal(t, "AuthorshipClaim", event.AuthorshipClaimKind.String(), "wrong String")
}
