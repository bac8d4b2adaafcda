// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"math/bits"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/storage"
)

// Wallet - balances of external accounts
//
// the wallet stands in for the host system's native value: payments into
// a product are withdrawn from here and redemption payouts are paid back
// here; writes are immediate and never part of a ledger transaction
type Wallet struct {
	sync.Mutex
	log *logger.L
}

// New - wallet backed by the Wallets and Rejects pools
func New() *Wallet {
	return &Wallet{
		log: logger.New("wallet"),
	}
}

// Balance - value held by an external account
func (w *Wallet) Balance(owner *account.Account) uint64 {
	n, _ := storage.Pool.Wallets.GetN(owner.Bytes())
	return n
}

// IsRejecting - whether the account refuses incoming funds
func (w *Wallet) IsRejecting(owner *account.Account) bool {
	return storage.Pool.Rejects.Has(owner.Bytes())
}

// SetRejecting - make an account refuse (or accept again) incoming funds
func (w *Wallet) SetRejecting(owner *account.Account, reject bool) {
	w.Lock()
	defer w.Unlock()

	if reject {
		storage.Pool.Rejects.Put(owner.Bytes(), []byte{0x01})
	} else {
		storage.Pool.Rejects.Delete(owner.Bytes())
	}
	w.log.Infof("account: %s  rejecting: %t", owner, reject)
}

// Deposit - credit an account from outside the system
func (w *Wallet) Deposit(owner *account.Account, amount uint64) error {
	w.Lock()
	defer w.Unlock()

	return w.credit(owner, amount)
}

// Withdraw - debit an account, the source of a payment into a product
func (w *Wallet) Withdraw(owner *account.Account, amount uint64) error {
	w.Lock()
	defer w.Unlock()

	key := owner.Bytes()
	balance, _ := storage.Pool.Wallets.GetN(key)
	if balance < amount {
		return fault.ErrInsufficientFunds
	}
	w.put(key, balance-amount)
	w.log.Debugf("withdraw: %d from: %s", amount, owner)
	return nil
}

// Pay - transfer a redemption payout to an external account
//
// fails with ErrPayoutFailed if the receiver rejects funds or the
// balance would overflow, leaving the wallet unchanged
func (w *Wallet) Pay(receiver *account.Account, amount uint64) error {
	w.Lock()
	defer w.Unlock()

	if storage.Pool.Rejects.Has(receiver.Bytes()) {
		w.log.Warnf("pay: %d to: %s  receiver rejects funds", amount, receiver)
		return fault.ErrPayoutFailed
	}
	if err := w.credit(receiver, amount); nil != err {
		w.log.Warnf("pay: %d to: %s  error: %s", amount, receiver, err)
		return fault.ErrPayoutFailed
	}
	return nil
}

// must hold lock
func (w *Wallet) credit(owner *account.Account, amount uint64) error {
	key := owner.Bytes()
	balance, _ := storage.Pool.Wallets.GetN(key)
	total, carry := bits.Add64(balance, amount, 0)
	if 0 != carry {
		return fault.ErrArithmeticOverflow
	}
	w.put(key, total)
	w.log.Debugf("credit: %d to: %s", amount, owner)
	return nil
}

// zero balances are not stored
func (w *Wallet) put(key []byte, balance uint64) {
	if 0 == balance {
		storage.Pool.Wallets.Delete(key)
		return
	}
	storage.Pool.Wallets.PutN(key, balance)
}
