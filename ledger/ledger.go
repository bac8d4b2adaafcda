// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/blockheader"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/metrics"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/storage"
)

// Payer - sends redemption payouts to a holder's external account
//
// a returned error means no value was transferred
type Payer interface {
	Pay(receiver *account.Account, amount uint64) error
}

// Ledger - the equity shares of one product
type Ledger struct {
	name  string
	key   []byte
	log   *logger.L
	payer Payer
}

// Info - committed state of a product
type Info struct {
	Name       string           `json:"name"`
	Owner      *account.Account `json:"owner"`
	Supply     uint64           `json:"totalSupply"`
	Pool       uint64           `json:"pool"`
	ShareValue uint64           `json:"shareValue"`
	Release    proof.Digest     `json:"proofOfProductionRelease"`
	Previous   string           `json:"previous,omitempty"`
	Next       string           `json:"next,omitempty"`
	Events     uint64           `json:"events"`
}

// New - ledger for a named product
//
// the product exists only once it has been deployed
func New(name string, payer Payer) (*Ledger, error) {
	if "" == name {
		return nil, fault.ErrInvalidProductName
	}
	return &Ledger{
		name:  name,
		key:   event.ProductKey(name),
		log:   logger.New("ledger:" + name),
		payer: payer,
	}, nil
}

// Name - product name
func (l *Ledger) Name() string {
	return l.name
}

// Deploy - create the product with the deployer as its owner
func (l *Ledger) Deploy(deployer *account.Account) error {
	if nil == deployer {
		return fault.ErrMissingParameters
	}
	return l.run("deploy", func(s *state, block uint64) ([]event.Event, error) {
		if nil != s.owner() {
			return nil, fault.ErrAlreadyDeployed
		}
		s.setOwner(deployer)
		l.log.Infof("deployed in block: %d  owner: %s", block, deployer)
		return nil, nil
	})
}

// IsDeployed - whether the product has an owner
func (l *Ledger) IsDeployed() bool {
	return storage.Pool.Products.Has(l.fieldKey(ownerField))
}

// Owner - current owner
func (l *Ledger) Owner() (*account.Account, error) {
	buffer := storage.Pool.Products.Get(l.fieldKey(ownerField))
	if nil == buffer {
		return nil, fault.ErrProductNotDeployed
	}
	return account.FromBytes(buffer)
}

// TotalSupply - shares in circulation
func (l *Ledger) TotalSupply() uint64 {
	n, _ := storage.Pool.Products.GetN(l.fieldKey(supplyField))
	return n
}

// Pool - value held for the shareholders
func (l *Ledger) Pool() uint64 {
	n, _ := storage.Pool.Products.GetN(l.fieldKey(poolField))
	return n
}

// ProofOfProductionRelease - proof of the most recently accepted proposal
func (l *Ledger) ProofOfProductionRelease() proof.Digest {
	var release proof.Digest
	buffer := storage.Pool.Products.Get(l.fieldKey(releaseField))
	if nil != buffer {
		err := proof.FromBytes(&release, buffer)
		logger.PanicIfError("ledger.release", err)
	}
	return release
}

// BalanceOf - shares held by an account, zero if it holds none
func (l *Ledger) BalanceOf(holder *account.Account) uint64 {
	n, _ := storage.Pool.Balances.GetN(l.balanceKey(holder))
	return n
}

// ShareValue - pool value per share rounded down
//
// pool and supply come from one committed state; fails with
// ErrDivisionByZero while no shares are in circulation
func (l *Ledger) ShareValue() (uint64, error) {
	snap, err := storage.NewSnapshot()
	if nil != err {
		return 0, err
	}
	defer snap.Release()

	pool, _ := snap.GetN(storage.Pool.Products, l.fieldKey(poolField))
	supply, _ := snap.GetN(storage.Pool.Products, l.fieldKey(supplyField))
	return divide(pool, supply)
}

// Info - all committed fields read at a single point in the sequence
func (l *Ledger) Info() (*Info, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	s := l.in(trx)
	owner := s.owner()
	if nil == owner {
		return nil, fault.ErrProductNotDeployed
	}

	info := &Info{
		Name:     l.name,
		Owner:    owner,
		Supply:   s.supply(),
		Pool:     s.pool(),
		Previous: s.version(previousField),
		Next:     s.version(nextField),
	}
	info.ShareValue, _ = s.shareValue()

	if buffer := trx.Get(storage.Pool.Products, l.fieldKey(releaseField)); nil != buffer {
		err := proof.FromBytes(&info.Release, buffer)
		logger.PanicIfError("ledger.info", err)
	}
	info.Events, _ = trx.GetN(storage.Pool.EventSequence, l.key)

	return info, nil
}

// TransferOwnership - owner hands the owner role to another account
func (l *Ledger) TransferOwnership(caller *account.Account, newOwner *account.Account) error {
	if nil == caller || nil == newOwner {
		return fault.ErrMissingParameters
	}
	return l.run("transferOwnership", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.authorise(caller); nil != err {
			return nil, err
		}
		s.setOwner(newOwner)
		return []event.Event{
			&event.OwnershipTransfer{
				PreviousOwner: caller,
				NewOwner:      newOwner,
			},
		}, nil
	})
}

// ClaimAuthorship - record a claim of authorship, open to anyone
//
// the caller may name any account as the author
func (l *Ledger) ClaimAuthorship(caller *account.Account, author *account.Account, claim proof.Digest) error {
	if nil == caller || nil == author {
		return fault.ErrMissingParameters
	}
	return l.run("claimAuthorship", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.deployed(); nil != err {
			return nil, err
		}
		l.log.Debugf("claim caller: %s  author: %s", caller, author)
		return []event.Event{
			&event.AuthorshipClaim{
				Author: author,
				Proof:  claim,
			},
		}, nil
	})
}

// ProposeIteration - record a contribution for the owner to consider
//
// open to anyone and the caller may name any account as the author
func (l *Ledger) ProposeIteration(caller *account.Account, author *account.Account, contribution proof.Digest, location string) error {
	if nil == caller || nil == author {
		return fault.ErrMissingParameters
	}
	return l.run("proposeIteration", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.deployed(); nil != err {
			return nil, err
		}
		l.log.Debugf("proposal caller: %s  author: %s", caller, author)
		return []event.Event{
			&event.IterationProposal{
				Author:   author,
				Proof:    contribution,
				Location: location,
			},
		}, nil
	})
}

// AcceptProposal - owner mints shares for a contributor
//
// the proof need not have been proposed first
func (l *Ledger) AcceptProposal(caller *account.Account, contributor *account.Account, release proof.Digest, amount uint64) error {
	if nil == caller || nil == contributor {
		return fault.ErrMissingParameters
	}
	return l.run("acceptProposal", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.authorise(caller); nil != err {
			return nil, err
		}

		balance, err := add(s.balance(contributor), amount)
		if nil != err {
			return nil, err
		}
		supply, err := add(s.supply(), amount)
		if nil != err {
			return nil, err
		}

		s.setBalance(contributor, balance)
		s.setSupply(supply)
		s.setRelease(release)

		return []event.Event{
			&event.Acceptance{
				Contributor: contributor,
				Proof:       release,
				Amount:      amount,
			},
		}, nil
	})
}

// Receive - value sent to the product goes into the pool
func (l *Ledger) Receive(from *account.Account, amount uint64) error {
	if nil == from {
		return fault.ErrMissingParameters
	}
	return l.run("receive", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.deployed(); nil != err {
			return nil, err
		}
		pool, err := add(s.pool(), amount)
		if nil != err {
			return nil, err
		}
		s.setPool(pool)
		return []event.Event{
			&event.Payment{
				From:   from,
				Amount: amount,
			},
		}, nil
	})
}

// Redeem - burn a holder's shares and pay out their value
//
// the payout uses the share value from before the burn; if the payer
// fails nothing changes
func (l *Ledger) Redeem(holder *account.Account, amount uint64) (uint64, error) {
	if nil == holder {
		return 0, fault.ErrMissingParameters
	}
	payout := uint64(0)
	err := l.run("redeem", func(s *state, block uint64) ([]event.Event, error) {
		if err := s.deployed(); nil != err {
			return nil, err
		}

		balance := s.balance(holder)
		if balance < amount {
			return nil, fault.ErrInsufficientShares
		}

		value, err := s.shareValue()
		if nil != err {
			return nil, err
		}
		total, err := multiply(amount, value)
		if nil != err {
			return nil, err
		}
		supply, err := subtract(s.supply(), amount)
		if nil != err {
			return nil, err
		}
		pool, err := subtract(s.pool(), total)
		if nil != err {
			return nil, err
		}

		s.setBalance(holder, balance-amount)
		s.setSupply(supply)
		s.setPool(pool)

		if err := l.payer.Pay(holder, total); nil != err {
			return nil, fault.ErrPayoutFailed
		}
		payout = total

		return []event.Event{
			&event.Redemption{
				Holder: holder,
				Shares: amount,
				Payout: total,
			},
		}, nil
	})
	if nil != err {
		return 0, err
	}
	return payout, nil
}

// Events - committed log entries of this product
func (l *Ledger) Events(filter event.Filter) ([]event.Entry, error) {
	return event.Fetch(l.name, filter)
}

// run - one operation as a single storage transaction
//
// the transaction lock orders every operation; events returned by f
// are logged in the same transaction and announced once committed
func (l *Ledger) run(operation string, f func(s *state, block uint64) ([]event.Event, error)) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	block := blockheader.Height()
	s := l.in(trx)

	events, err := f(s, block)
	if nil != err {
		trx.Abort()
		l.log.Warnf("%s in block: %d  error: %s", operation, block, err)
		metrics.Operation(l.name, operation, err)
		return err
	}

	entries := make([]event.Entry, 0, len(events)+len(s.others))
	for _, e := range events {
		entries = append(entries, event.Append(trx, l.name, block, e))
	}
	entries = append(entries, s.others...)
	supply := s.supply()
	pool := s.pool()

	err = trx.Commit()
	if nil != err {
		// payouts are not part of the transaction
		logger.Panicf("ledger: %s  %s commit error: %s", l.name, operation, err)
	}

	l.log.Debugf("%s in block: %d  events: %d", operation, block, len(entries))
	metrics.Operation(l.name, operation, nil)
	metrics.Product(l.name, supply, pool)
	for _, o := range s.touched {
		metrics.Product(o.name, o.supply, o.pool)
	}
	event.Announce(entries...)

	return nil
}

// fails unless the product exists
func (s *state) deployed() error {
	if nil == s.owner() {
		return fault.ErrProductNotDeployed
	}
	return nil
}

// fails unless caller is the current owner
func (s *state) authorise(caller *account.Account) error {
	owner := s.owner()
	if nil == owner {
		return fault.ErrProductNotDeployed
	}
	if !owner.Equal(caller) {
		return fault.ErrUnauthorised
	}
	return nil
}
