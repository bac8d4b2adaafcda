// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/storage"
	"github.com/bitmark-inc/productd/wallet"
)

const testingDirName = "testing"

func setup(t *testing.T) *wallet.Wallet {
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
	return wallet.New()
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func makeAccount(b byte) *account.Account {
	return &account.Account{Test: true, PublicKey: bytes.Repeat([]byte{b}, 32)}
}

func TestDepositWithdraw(t *testing.T) {
	w := setup(t)
	defer teardown()

	alice := makeAccount(1)
	assert.Equal(t, uint64(0), w.Balance(alice), "wrong initial balance")

	assert.Nil(t, w.Deposit(alice, 100), "wrong Deposit")
	assert.Nil(t, w.Withdraw(alice, 30), "wrong Withdraw")
	assert.Equal(t, uint64(70), w.Balance(alice), "wrong balance")

	assert.Equal(t, fault.ErrInsufficientFunds, w.Withdraw(alice, 71), "overdraft accepted")
	assert.Equal(t, uint64(70), w.Balance(alice), "failed withdraw changed balance")

	assert.Nil(t, w.Withdraw(alice, 70), "wrong Withdraw")
	assert.False(t, storage.Pool.Wallets.Has(alice.Bytes()), "zero balance stored")
}

func TestPay(t *testing.T) {
	w := setup(t)
	defer teardown()

	bob := makeAccount(2)
	assert.Nil(t, w.Pay(bob, 5), "wrong Pay")
	assert.Equal(t, uint64(5), w.Balance(bob), "wrong balance")

	w.SetRejecting(bob, true)
	assert.True(t, w.IsRejecting(bob), "not rejecting")
	assert.Equal(t, fault.ErrPayoutFailed, w.Pay(bob, 5), "rejecting receiver paid")
	assert.Equal(t, uint64(5), w.Balance(bob), "rejected payment changed balance")

	w.SetRejecting(bob, false)
	assert.Nil(t, w.Pay(bob, 5), "receiver still rejecting")
	assert.Equal(t, uint64(10), w.Balance(bob), "wrong balance")
}

func TestPayOverflow(t *testing.T) {
	w := setup(t)
	defer teardown()

	carol := makeAccount(3)
	assert.Nil(t, w.Deposit(carol, math.MaxUint64), "wrong Deposit")
	assert.Equal(t, fault.ErrPayoutFailed, w.Pay(carol, 1), "overflowing payment accepted")
	assert.Equal(t, fault.ErrArithmeticOverflow, w.Deposit(carol, 1), "overflowing deposit accepted")
}
