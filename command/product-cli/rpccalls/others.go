// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/keypair"
	"github.com/bitmark-inc/productd/rpc/events"
	"github.com/bitmark-inc/productd/rpc/node"
	"github.com/bitmark-inc/productd/rpc/upgrades"
	"github.com/bitmark-inc/productd/rpc/wallets"
	"github.com/bitmark-inc/productd/upgrade"
)

// ExecuteUpgrade - owner schedules an upgrade
func (c *Client) ExecuteUpgrade(t *instruction.ExecuteUpgrade, owner *keypair.KeyPair) (*upgrades.ExecuteReply, error) {
	var reply upgrades.ExecuteReply
	if err := c.submit("Upgrade.Execute", t, owner, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpgradeStatus - the upgrade schedule at the current block
func (c *Client) UpgradeStatus(name string) (*upgrade.Status, error) {
	var reply upgrade.Status
	if err := c.call("Upgrade.Status", &upgrades.StatusArguments{Product: name}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Events - a page of a product's event log
func (c *Client) Events(arguments *events.ListArguments) (*events.ListReply, error) {
	var reply events.ListReply
	if err := c.call("Events.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Wallet - external balance of an account
func (c *Client) Wallet(owner *account.Account) (*wallets.BalanceReply, error) {
	var reply wallets.BalanceReply
	if err := c.call("Wallet.Balance", &wallets.BalanceArguments{Account: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Deposit - credit an account on a testing chain
func (c *Client) Deposit(owner *account.Account, amount uint64) (*wallets.BalanceReply, error) {
	var reply wallets.BalanceReply
	arguments := wallets.DepositArguments{
		Account: owner,
		Amount:  amount,
	}
	if err := c.call("Wallet.Deposit", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RejectFunds - refuse, or accept again, incoming payouts
func (c *Client) RejectFunds(t *instruction.RejectFunds, owner *keypair.KeyPair) (*wallets.RejectFundsReply, error) {
	var reply wallets.RejectFundsReply
	if err := c.submit("Wallet.RejectFunds", t, owner, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// NodeInfo - state of the connected node
func (c *Client) NodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
