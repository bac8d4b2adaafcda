// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/storage"
)

// NextVersion - product that holders of this one may move to
func (l *Ledger) NextVersion() string {
	return string(storage.Pool.Products.Get(l.fieldKey(nextField)))
}

// PreviousVersion - product whose holders may move to this one
func (l *Ledger) PreviousVersion() string {
	return string(storage.Pool.Products.Get(l.fieldKey(previousField)))
}

// PrepareUpgrade - owner of the current version names its successor
//
// calling again replaces the successor
func (l *Ledger) PrepareUpgrade(caller *account.Account, next string) error {
	if nil == caller {
		return fault.ErrMissingParameters
	}
	if "" == next || l.name == next {
		return fault.ErrInvalidProductName
	}
	return l.run("prepareUpgrade", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.authorise(caller); nil != err {
			return nil, err
		}
		s.setVersion(nextField, next)
		l.log.Infof("next version: %q", next)
		return nil, nil
	})
}

// ActivateUpgrade - owner of the successor accepts holders of previous
//
// previous must already name this product as its successor
func (l *Ledger) ActivateUpgrade(caller *account.Account, previous *Ledger) error {
	if nil == caller || nil == previous {
		return fault.ErrMissingParameters
	}
	if l.name == previous.name {
		return fault.ErrInvalidProductName
	}
	return l.run("activateUpgrade", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.authorise(caller); nil != err {
			return nil, err
		}
		if previous.in(s.trx).version(nextField) != l.name {
			return nil, fault.ErrUpgradeNotPrepared
		}
		s.setVersion(previousField, previous.name)
		l.log.Infof("previous version: %q", previous.name)
		return nil, nil
	})
}

// Upgrade - move all of the caller's shares from previous to this
// product, carrying their current value out of the previous pool
//
// both products change in one transaction and the migration is logged
// under each of them
func (l *Ledger) Upgrade(caller *account.Account, previous *Ledger) (shares uint64, value uint64, err error) {
	if nil == caller || nil == previous {
		return 0, 0, fault.ErrMissingParameters
	}
	err = l.run("upgrade", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.deployed(); nil != err {
			return nil, err
		}
		if s.version(previousField) != previous.name {
			return nil, fault.ErrUpgradeNotActivated
		}
		old := previous.in(s.trx)
		if old.version(nextField) != l.name {
			return nil, fault.ErrVersionMismatch
		}

		balance := old.balance(caller)
		if 0 == balance {
			return nil, fault.ErrInsufficientShares
		}

		shareValue, err := old.shareValue()
		if nil != err {
			return nil, err
		}
		carried, err := multiply(balance, shareValue)
		if nil != err {
			return nil, err
		}

		oldSupply, err := subtract(old.supply(), balance)
		if nil != err {
			return nil, err
		}
		oldPool, err := subtract(old.pool(), carried)
		if nil != err {
			return nil, err
		}
		newBalance, err := add(s.balance(caller), balance)
		if nil != err {
			return nil, err
		}
		newSupply, err := add(s.supply(), balance)
		if nil != err {
			return nil, err
		}
		newPool, err := add(s.pool(), carried)
		if nil != err {
			return nil, err
		}

		old.setBalance(caller, 0)
		old.setSupply(oldSupply)
		old.setPool(oldPool)

		s.setBalance(caller, newBalance)
		s.setSupply(newSupply)
		s.setPool(newPool)

		migration := &event.Migration{
			Holder: caller,
			From:   previous.name,
			To:     l.name,
			Shares: balance,
			Value:  carried,
		}
		s.others = append(s.others, event.Append(s.trx, previous.name, block, migration))
		s.touched = append(s.touched, snapshot{
			name:   previous.name,
			supply: oldSupply,
			pool:   oldPool,
		})

		shares = balance
		value = carried
		return []event.Event{migration}, nil
	})
	if nil != err {
		return 0, 0, err
	}
	return shares, value, nil
}
