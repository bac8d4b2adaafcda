// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/rpc/gate"
	"github.com/bitmark-inc/productd/rpc/ratelimit"
)

const (
	rateLimitWallet = 200
	rateBurstWallet = 100
)

// Accounts - balances of external accounts
type Accounts interface {
	Balance(owner *account.Account) uint64
	IsRejecting(owner *account.Account) bool
	SetRejecting(owner *account.Account, reject bool)
	Deposit(owner *account.Account, amount uint64) error
}

// Wallet - type for RPC
type Wallet struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Gate     gate.Gate
	Accounts Accounts
}

// New - wallet service
func New(log *logger.L, g gate.Gate, accounts Accounts) *Wallet {
	return &Wallet{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitWallet, rateBurstWallet),
		Gate:     g,
		Accounts: accounts,
	}
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Account *account.Account `json:"account"`
}

// BalanceReply - result from RPC
type BalanceReply struct {
	Account   *account.Account `json:"account"`
	Balance   uint64           `json:"balance,string"`
	Rejecting bool             `json:"rejecting"`
}

// Balance - value held by an external account
func (w *Wallet) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Account {
		return fault.ErrMissingParameters
	}
	if err := w.Gate.Network(arguments.Account); nil != err {
		return err
	}

	reply.Account = arguments.Account
	reply.Balance = w.Accounts.Balance(arguments.Account)
	reply.Rejecting = w.Accounts.IsRejecting(arguments.Account)
	return nil
}

// DepositArguments - arguments for RPC
type DepositArguments struct {
	Account *account.Account `json:"account"`
	Amount  uint64           `json:"amount,string"`
}

// Deposit - credit an account out of nothing, testing chains only
func (w *Wallet) Deposit(arguments *DepositArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Account {
		return fault.ErrMissingParameters
	}
	if !w.Gate.IsTestingChain() {
		return fault.ErrNotAvailableOnLiveChain
	}
	if err := w.Gate.Network(arguments.Account); nil != err {
		return err
	}

	w.Log.Infof("Wallet.Deposit: %+v", arguments)

	if err := w.Accounts.Deposit(arguments.Account, arguments.Amount); nil != err {
		return err
	}
	reply.Account = arguments.Account
	reply.Balance = w.Accounts.Balance(arguments.Account)
	reply.Rejecting = w.Accounts.IsRejecting(arguments.Account)
	return nil
}

// RejectFundsReply - result from RPC
type RejectFundsReply struct {
	ID        proof.Digest `json:"id"`
	Rejecting bool         `json:"rejecting"`
}

// RejectFunds - an account refuses, or accepts again, incoming payouts
func (w *Wallet) RejectFunds(arguments *instruction.RejectFunds, reply *RejectFundsReply) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}
	w.Log.Infof("Wallet.RejectFunds: %+v", arguments)

	packed, err := w.Gate.Admit(arguments)
	if nil != err {
		return err
	}
	w.Accounts.SetRejecting(arguments.Account, arguments.Reject)

	reply.ID = packed.ID()
	reply.Rejecting = arguments.Reject
	return nil
}
