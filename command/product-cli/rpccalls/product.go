// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/keypair"
	"github.com/bitmark-inc/productd/ledger"
	"github.com/bitmark-inc/productd/rpc/product"
)

// sign and send an instruction
func (c *Client) submit(method string, i instruction.Instruction, signer *keypair.KeyPair, reply interface{}) error {
	if _, err := instruction.Sign(i, signer); nil != err {
		return err
	}
	return c.call(method, i, reply)
}

// TransferOwnership - hand a product to a new owner
func (c *Client) TransferOwnership(t *instruction.TransferOwnership, owner *keypair.KeyPair) (*product.Reply, error) {
	var reply product.Reply
	if err := c.submit("Product.TransferOwnership", t, owner, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ClaimAuthorship - record an authorship claim
func (c *Client) ClaimAuthorship(t *instruction.ClaimAuthorship, caller *keypair.KeyPair) (*product.Reply, error) {
	var reply product.Reply
	if err := c.submit("Product.ClaimAuthorship", t, caller, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ProposeIteration - offer a contribution
func (c *Client) ProposeIteration(t *instruction.ProposeIteration, caller *keypair.KeyPair) (*product.Reply, error) {
	var reply product.Reply
	if err := c.submit("Product.ProposeIteration", t, caller, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AcceptProposal - mint shares for a contributor
func (c *Client) AcceptProposal(t *instruction.AcceptProposal, owner *keypair.KeyPair) (*product.Reply, error) {
	var reply product.Reply
	if err := c.submit("Product.AcceptProposal", t, owner, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Pay - send value into a product's pool
func (c *Client) Pay(t *instruction.Payment, from *keypair.KeyPair) (*product.Reply, error) {
	var reply product.Reply
	if err := c.submit("Product.Pay", t, from, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Redeem - burn shares for their value
func (c *Client) Redeem(t *instruction.Redeem, holder *keypair.KeyPair) (*product.RedeemReply, error) {
	var reply product.RedeemReply
	if err := c.submit("Product.Redeem", t, holder, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// PrepareUpgrade - name a product's successor
func (c *Client) PrepareUpgrade(t *instruction.PrepareUpgrade, owner *keypair.KeyPair) (*product.Reply, error) {
	var reply product.Reply
	if err := c.submit("Product.PrepareUpgrade", t, owner, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ActivateUpgrade - accept holders of the previous product
func (c *Client) ActivateUpgrade(t *instruction.ActivateUpgrade, owner *keypair.KeyPair) (*product.Reply, error) {
	var reply product.Reply
	if err := c.submit("Product.ActivateUpgrade", t, owner, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Migrate - move shares from the previous product
func (c *Client) Migrate(t *instruction.Migrate, holder *keypair.KeyPair) (*product.MigrateReply, error) {
	var reply product.MigrateReply
	if err := c.submit("Product.Migrate", t, holder, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Info - committed state of a product
func (c *Client) Info(name string) (*ledger.Info, error) {
	var reply ledger.Info
	if err := c.call("Product.Info", &product.InfoArguments{Product: name}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - shares held by an account
func (c *Client) Balance(name string, holder *account.Account) (*product.BalanceReply, error) {
	var reply product.BalanceReply
	arguments := product.BalanceArguments{
		Product: name,
		Holder:  holder,
	}
	if err := c.call("Product.Balance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ShareValue - pool value per share
func (c *Client) ShareValue(name string) (*product.ShareValueReply, error) {
	var reply product.ShareValueReply
	if err := c.call("Product.ShareValue", &product.ShareValueArguments{Product: name}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
