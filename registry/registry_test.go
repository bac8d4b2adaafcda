// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/registry"
	"github.com/bitmark-inc/productd/storage"
	"github.com/bitmark-inc/productd/upgrade"
	"github.com/bitmark-inc/productd/wallet"
)

const testingDirName = "testing"

var (
	owner = makeAccount(0x01)
	alice = makeAccount(0x02)
)

func setup(t *testing.T) (*registry.Registry, *wallet.Wallet) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err := storage.Initialise(filepath.Join(testingDirName, "test"), storage.ReadWrite)
	assert.Nil(t, err, "wrong storage Initialise")

	err = blockheader.Initialise()
	assert.Nil(t, err, "wrong blockheader Initialise")

	w := wallet.New()
	return registry.New(w), w
}

func teardown() {
	_ = blockheader.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func makeAccount(b byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{b}, 32),
	}
}

func TestAdd(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	p, err := r.Add("beta", owner)
	assert.Nil(t, err, "wrong Add")
	assert.True(t, p.Ledger.IsDeployed(), "not deployed")

	_, err = r.Add("alpha", nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "deployed without owner")
	_, err = r.Add("alpha", owner)
	assert.Nil(t, err, "wrong Add")
	_, err = r.Add("beta", alice)
	assert.Equal(t, fault.ErrAlreadyDeployed, err, "added twice")

	assert.Equal(t, []string{"alpha", "beta"}, r.Names(), "wrong names")

	_, err = r.Get("gamma")
	assert.Equal(t, fault.ErrProductNotFound, err, "found missing product")
	_, err = r.Info("gamma")
	assert.Equal(t, fault.ErrProductNotFound, err, "info of missing product")
}

func TestAddKeepsStoredOwner(t *testing.T) {
	_, w := setup(t)
	defer teardown()

	first := registry.New(w)
	_, err := first.Add("product", owner)
	assert.Nil(t, err, "wrong Add")

	// as after a restart with a different configured owner
	second := registry.New(w)
	p, err := second.Add("product", alice)
	assert.Nil(t, err, "wrong Add on restart")

	o, err := p.Ledger.Owner()
	assert.Nil(t, err, "wrong Owner")
	assert.True(t, owner.Equal(o), "owner replaced on restart")
}

func TestPayAndRedeem(t *testing.T) {
	r, w := setup(t)
	defer teardown()

	_, err := r.Add("product", owner)
	assert.Nil(t, err, "wrong Add")

	assert.Nil(t, w.Deposit(alice, 100), "wrong Deposit")
	assert.Nil(t, r.AcceptProposal("product", owner, alice, proof.Digest{}, 10), "wrong AcceptProposal")

	assert.Equal(t, fault.ErrInsufficientFunds, r.Pay("product", alice, 101), "overspent wallet")
	assert.Nil(t, r.Pay("product", alice, 50), "wrong Pay")
	assert.Equal(t, uint64(50), w.Balance(alice), "wrong wallet after pay")

	value, err := r.ShareValue("product")
	assert.Nil(t, err, "wrong ShareValue")
	assert.Equal(t, uint64(5), value, "wrong share value")

	payout, err := r.Redeem("product", alice, 4)
	assert.Nil(t, err, "wrong Redeem")
	assert.Equal(t, uint64(20), payout, "wrong payout")
	assert.Equal(t, uint64(70), w.Balance(alice), "payout not credited")

	balance, err := r.Balance("product", alice)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(6), balance, "wrong share balance")
}

func TestRedeemToRejectingAccount(t *testing.T) {
	r, w := setup(t)
	defer teardown()

	_, err := r.Add("product", owner)
	assert.Nil(t, err, "wrong Add")

	assert.Nil(t, w.Deposit(owner, 30), "wrong Deposit")
	assert.Nil(t, r.AcceptProposal("product", owner, alice, proof.Digest{}, 3), "wrong AcceptProposal")
	assert.Nil(t, r.Pay("product", owner, 30), "wrong Pay")

	w.SetRejecting(alice, true)

	_, err = r.Redeem("product", alice, 3)
	assert.Equal(t, fault.ErrPayoutFailed, err, "payout to rejecting account")

	info, err := r.Info("product")
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, uint64(3), info.Supply, "supply changed")
	assert.Equal(t, uint64(30), info.Pool, "pool changed")
	assert.Equal(t, uint64(0), w.Balance(alice), "rejecting account credited")

	w.SetRejecting(alice, false)
	payout, err := r.Redeem("product", alice, 3)
	assert.Nil(t, err, "wrong Redeem after accepting funds")
	assert.Equal(t, uint64(30), payout, "wrong payout")
}

func TestPayRefundedOnOverflow(t *testing.T) {
	r, w := setup(t)
	defer teardown()

	_, err := r.Add("product", owner)
	assert.Nil(t, err, "wrong Add")

	assert.Nil(t, w.Deposit(alice, math.MaxUint64), "wrong Deposit")
	assert.Nil(t, r.Pay("product", alice, 10), "wrong Pay")

	err = r.Pay("product", alice, math.MaxUint64-10)
	assert.Equal(t, fault.ErrArithmeticOverflow, err, "pool overflow accepted")
	assert.Equal(t, uint64(math.MaxUint64-10), w.Balance(alice), "withdrawal not refunded")

	p, err := r.Get("product")
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(10), p.Ledger.Pool(), "pool changed by refused payment")
}

func TestPayMissingProductKeepsFunds(t *testing.T) {
	r, w := setup(t)
	defer teardown()

	assert.Nil(t, w.Deposit(alice, 100), "wrong Deposit")
	assert.Equal(t, fault.ErrProductNotFound, r.Pay("nowhere", alice, 40), "paid missing product")
	assert.Equal(t, uint64(100), w.Balance(alice), "funds withdrawn for missing product")
}

func TestMigrate(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	_, err := r.Add("v1", owner)
	assert.Nil(t, err, "wrong Add")
	_, err = r.Add("v2", owner)
	assert.Nil(t, err, "wrong Add")

	assert.Nil(t, r.AcceptProposal("v1", owner, alice, proof.Digest{}, 7), "wrong AcceptProposal")
	assert.Nil(t, r.PrepareUpgrade("v1", owner, "v2"), "wrong PrepareUpgrade")
	assert.Nil(t, r.ActivateUpgrade("v2", owner, "v1"), "wrong ActivateUpgrade")
	assert.Equal(t, fault.ErrProductNotFound, r.ActivateUpgrade("v2", owner, "v0"), "activated from missing product")

	shares, value, err := r.Migrate("v2", alice, "v1")
	assert.Nil(t, err, "wrong Migrate")
	assert.Equal(t, uint64(7), shares, "wrong shares")
	assert.Equal(t, uint64(0), value, "wrong value from empty pool")

	balance, _ := r.Balance("v2", alice)
	assert.Equal(t, uint64(7), balance, "shares not moved")
}

func TestUpgradeSchedule(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	_, err := r.Add("product", owner)
	assert.Nil(t, err, "wrong Add")

	status, err := r.UpgradeStatus("product")
	assert.Nil(t, err, "wrong UpgradeStatus")
	assert.Equal(t, upgrade.Unscheduled, status.State, "wrong initial state")

	_, err = blockheader.Advance(time.Now())
	assert.Nil(t, err, "wrong Advance")

	schedule, err := r.ExecuteUpgrade("product", owner, []byte{0x00}, 700)
	assert.Nil(t, err, "wrong ExecuteUpgrade")
	assert.Equal(t, blockheader.Height(), schedule.UpgradeBlock, "wrong upgrade block")

	status, err = r.UpgradeStatus("product")
	assert.Nil(t, err, "wrong UpgradeStatus")
	assert.Equal(t, upgrade.Scheduled, status.State, "wrong state")
	assert.Equal(t, uint64(700), status.Remaining, "wrong remaining")

	entries, err := r.Events("product", event.Filter{Kind: event.UpgradeScheduleKind})
	assert.Nil(t, err, "wrong Events")
	assert.Equal(t, 1, len(entries), "wrong schedule count")
}
