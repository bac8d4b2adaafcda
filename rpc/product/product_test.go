// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/ledger"
	"github.com/bitmark-inc/productd/mode"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/rpc/fixtures"
	"github.com/bitmark-inc/productd/rpc/mocks"
	"github.com/bitmark-inc/productd/rpc/product"
)

func newProduct(t *testing.T) (*product.Product, *mocks.MockProducts, *gomock.Controller) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockProducts(ctl)
	p := product.New(logger.New(fixtures.LogCategory), fixtures.Gate(), m)
	return p, m, ctl
}

func TestTransferOwnership(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p, m, ctl := newProduct(t)
	defer ctl.Finish()

	arg := &instruction.TransferOwnership{
		Product:  "alpha",
		Owner:    fixtures.Owner.Account(),
		NewOwner: fixtures.Holder.Account(),
		Nonce:    1,
	}
	packed, err := instruction.Sign(arg, fixtures.Owner)
	assert.Nil(t, err, "wrong Sign")

	m.EXPECT().TransferOwnership("alpha", arg.Owner, arg.NewOwner).Return(nil).Times(1)

	var reply product.Reply
	err = p.TransferOwnership(arg, &reply)
	assert.Nil(t, err, "wrong TransferOwnership")
	assert.Equal(t, packed.ID(), reply.ID, "wrong id")
}

func TestClaimAndProposeForAnotherAuthor(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p, m, ctl := newProduct(t)
	defer ctl.Finish()

	claim := &instruction.ClaimAuthorship{
		Product: "alpha",
		Caller:  fixtures.Holder.Account(),
		Author:  fixtures.Owner.Account(),
		Proof:   proof.NewDigest([]byte("claim")),
		Nonce:   1,
	}
	packed, err := instruction.Sign(claim, fixtures.Holder)
	assert.Nil(t, err, "wrong Sign")

	m.EXPECT().ClaimAuthorship("alpha", claim.Caller, claim.Author, claim.Proof).Return(nil).Times(1)

	var reply product.Reply
	err = p.ClaimAuthorship(claim, &reply)
	assert.Nil(t, err, "non author could not claim")
	assert.Equal(t, packed.ID(), reply.ID, "wrong id")

	proposal := &instruction.ProposeIteration{
		Product:  "alpha",
		Caller:   fixtures.Holder.Account(),
		Author:   fixtures.Owner.Account(),
		Proof:    proof.NewDigest([]byte("iteration")),
		Location: "https://example.com/iteration",
		Nonce:    2,
	}
	packed, err = instruction.Sign(proposal, fixtures.Holder)
	assert.Nil(t, err, "wrong Sign")

	m.EXPECT().ProposeIteration("alpha", proposal.Caller, proposal.Author, proposal.Proof, proposal.Location).Return(nil).Times(1)

	err = p.ProposeIteration(proposal, &reply)
	assert.Nil(t, err, "non author could not propose")
	assert.Equal(t, packed.ID(), reply.ID, "wrong id")
}

func TestTransferOwnershipUnauthorised(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p, m, ctl := newProduct(t)
	defer ctl.Finish()

	arg := &instruction.TransferOwnership{
		Product:  "alpha",
		Owner:    fixtures.Holder.Account(),
		NewOwner: fixtures.Holder.Account(),
		Nonce:    1,
	}
	_, err := instruction.Sign(arg, fixtures.Holder)
	assert.Nil(t, err, "wrong Sign")

	m.EXPECT().TransferOwnership("alpha", arg.Owner, arg.NewOwner).Return(fault.ErrUnauthorised).Times(1)

	var reply product.Reply
	err = p.TransferOwnership(arg, &reply)
	assert.Equal(t, fault.ErrUnauthorised, err, "wrong error")
}

func TestUnsignedInstructionRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p, _, ctl := newProduct(t)
	defer ctl.Finish()

	arg := &instruction.Payment{
		Product: "alpha",
		From:    fixtures.Holder.Account(),
		Amount:  10,
		Nonce:   1,
	}

	var reply product.Reply
	err := p.Pay(arg, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "unsigned payment accepted")
}

func TestSynchronisingRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p, _, ctl := newProduct(t)
	defer ctl.Finish()
	p.Gate.IsNormalMode = func(mode.Mode) bool { return false }

	arg := &instruction.Payment{
		Product: "alpha",
		From:    fixtures.Holder.Account(),
		Amount:  10,
		Nonce:   1,
	}
	_, err := instruction.Sign(arg, fixtures.Holder)
	assert.Nil(t, err, "wrong Sign")

	var reply product.Reply
	err = p.Pay(arg, &reply)
	assert.Equal(t, fault.ErrNotAvailableDuringSynchronise, err, "payment accepted while read only")
}

func TestAcceptAndRedeem(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p, m, ctl := newProduct(t)
	defer ctl.Finish()

	release := proof.NewDigest([]byte("release 1"))
	accept := &instruction.AcceptProposal{
		Product:     "alpha",
		Owner:       fixtures.Owner.Account(),
		Contributor: fixtures.Holder.Account(),
		Proof:       release,
		Amount:      5,
		Nonce:       1,
	}
	_, err := instruction.Sign(accept, fixtures.Owner)
	assert.Nil(t, err, "wrong Sign")

	redeem := &instruction.Redeem{
		Product: "alpha",
		Holder:  fixtures.Holder.Account(),
		Amount:  2,
		Nonce:   2,
	}
	packed, err := instruction.Sign(redeem, fixtures.Holder)
	assert.Nil(t, err, "wrong Sign")

	gomock.InOrder(
		m.EXPECT().AcceptProposal("alpha", accept.Owner, accept.Contributor, release, uint64(5)).Return(nil),
		m.EXPECT().Redeem("alpha", redeem.Holder, uint64(2)).Return(uint64(40), nil),
	)

	var acceptReply product.Reply
	err = p.AcceptProposal(accept, &acceptReply)
	assert.Nil(t, err, "wrong AcceptProposal")

	var redeemReply product.RedeemReply
	err = p.Redeem(redeem, &redeemReply)
	assert.Nil(t, err, "wrong Redeem")
	assert.Equal(t, packed.ID(), redeemReply.ID, "wrong id")
	assert.Equal(t, uint64(40), redeemReply.Payout, "wrong payout")
}

func TestMigrate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p, m, ctl := newProduct(t)
	defer ctl.Finish()

	arg := &instruction.Migrate{
		Product:  "beta",
		Previous: "alpha",
		Holder:   fixtures.Holder.Account(),
		Nonce:    1,
	}
	_, err := instruction.Sign(arg, fixtures.Holder)
	assert.Nil(t, err, "wrong Sign")

	m.EXPECT().Migrate("beta", arg.Holder, "alpha").Return(uint64(3), uint64(30), nil).Times(1)

	var reply product.MigrateReply
	err = p.Migrate(arg, &reply)
	assert.Nil(t, err, "wrong Migrate")
	assert.Equal(t, uint64(3), reply.Shares, "wrong shares")
	assert.Equal(t, uint64(30), reply.Value, "wrong value")
}

func TestQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p, m, ctl := newProduct(t)
	defer ctl.Finish()

	holder := fixtures.Holder.Account()
	info := &ledger.Info{
		Name:       "alpha",
		Owner:      fixtures.Owner.Account(),
		Supply:     10,
		Pool:       105,
		ShareValue: 10,
	}

	m.EXPECT().Info("alpha").Return(info, nil).Times(1)
	m.EXPECT().Balance("alpha", holder).Return(uint64(4), nil).Times(1)
	m.EXPECT().ShareValue("alpha").Return(uint64(10), nil).Times(1)
	m.EXPECT().ShareValue("empty").Return(uint64(0), fault.ErrDivisionByZero).Times(1)

	var infoReply ledger.Info
	err := p.Info(&product.InfoArguments{Product: "alpha"}, &infoReply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, *info, infoReply, "wrong info")

	var balanceReply product.BalanceReply
	err = p.Balance(&product.BalanceArguments{Product: "alpha", Holder: holder}, &balanceReply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(4), balanceReply.Balance, "wrong balance")

	var valueReply product.ShareValueReply
	err = p.ShareValue(&product.ShareValueArguments{Product: "alpha"}, &valueReply)
	assert.Nil(t, err, "wrong ShareValue")
	assert.Equal(t, uint64(10), valueReply.Value, "wrong share value")

	err = p.ShareValue(&product.ShareValueArguments{Product: "empty"}, &valueReply)
	assert.Equal(t, fault.ErrDivisionByZero, err, "wrong error")

	err = p.Info(&product.InfoArguments{}, &infoReply)
	assert.Equal(t, fault.ErrMissingParameters, err, "empty product accepted")
}
