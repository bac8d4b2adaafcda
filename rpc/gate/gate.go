// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gate

import (
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/mode"
)

// Gate - checks applied to every state changing call
type Gate struct {
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Record         func(instruction.Packed) error
}

// New - gate using the node's mode and the applied instruction pool
func New() Gate {
	return Gate{
		IsNormalMode:   mode.Is,
		IsTestingChain: mode.IsTesting,
		Record:         instruction.Record,
	}
}

// Admit - accept a signed instruction for execution
//
// every account named by the instruction must belong to this chain;
// the instruction is then verified and recorded so it runs only once
func (g Gate) Admit(i instruction.Instruction, accounts ...*account.Account) (instruction.Packed, error) {
	if !g.IsNormalMode(mode.Normal) {
		return nil, fault.ErrNotAvailableDuringSynchronise
	}

	if err := g.Network(append(accounts, i.Signer())...); nil != err {
		return nil, err
	}

	packed, err := instruction.Verify(i)
	if nil != err {
		return nil, err
	}

	if err := g.Record(packed); nil != err {
		return nil, err
	}
	return packed, nil
}

// Network - accounts must match the chain's testing flag
func (g Gate) Network(accounts ...*account.Account) error {
	testing := g.IsTestingChain()
	for _, a := range accounts {
		if nil == a {
			return fault.ErrMissingParameters
		}
		if a.IsTesting() != testing {
			return fault.ErrWrongNetworkForPublicKey
		}
	}
	return nil
}
