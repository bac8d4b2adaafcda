// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/ledger"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/upgrade"
)

// Funds - external value that payments come from and payouts go to
type Funds interface {
	ledger.Payer
	Deposit(owner *account.Account, amount uint64) error
	Withdraw(owner *account.Account, amount uint64) error
}

// Product - a ledger with its upgrade timer
type Product struct {
	Ledger *ledger.Ledger
	Timer  *upgrade.Timer
}

// Registry - all products served by this node
type Registry struct {
	sync.RWMutex

	log      *logger.L
	funds    Funds
	products map[string]*Product
}

// New - empty registry paying out through funds
func New(funds Funds) *Registry {
	return &Registry{
		log:      logger.New("registry"),
		funds:    funds,
		products: make(map[string]*Product),
	}
}

// Add - serve a product, deploying it with the owner on first start
//
// an existing product keeps its stored owner
func (r *Registry) Add(name string, owner *account.Account) (*Product, error) {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.products[name]; ok {
		return nil, fault.ErrAlreadyDeployed
	}

	l, err := ledger.New(name, r.funds)
	if nil != err {
		return nil, err
	}
	if !l.IsDeployed() {
		if nil == owner {
			return nil, fault.ErrMissingParameters
		}
		if err := l.Deploy(owner); nil != err {
			return nil, err
		}
		r.log.Infof("product: %q  deployed for: %s", name, owner)
	}

	p := &Product{
		Ledger: l,
		Timer:  upgrade.New(l),
	}
	r.products[name] = p
	return p, nil
}

// Get - a served product
func (r *Registry) Get(name string) (*Product, error) {
	r.RLock()
	defer r.RUnlock()

	p, ok := r.products[name]
	if !ok {
		return nil, fault.ErrProductNotFound
	}
	return p, nil
}

// Names - served products in name order
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()

	names := make([]string, 0, len(r.products))
	for name := range r.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ledger(name string) (*ledger.Ledger, error) {
	p, err := r.Get(name)
	if nil != err {
		return nil, err
	}
	return p.Ledger, nil
}

// Info - committed state of a product
func (r *Registry) Info(product string) (*ledger.Info, error) {
	l, err := r.ledger(product)
	if nil != err {
		return nil, err
	}
	return l.Info()
}

// Balance - shares held in a product
func (r *Registry) Balance(product string, holder *account.Account) (uint64, error) {
	l, err := r.ledger(product)
	if nil != err {
		return 0, err
	}
	return l.BalanceOf(holder), nil
}

// ShareValue - pool value per share of a product
func (r *Registry) ShareValue(product string) (uint64, error) {
	l, err := r.ledger(product)
	if nil != err {
		return 0, err
	}
	return l.ShareValue()
}

// Events - committed log entries of a product
func (r *Registry) Events(product string, filter event.Filter) ([]event.Entry, error) {
	l, err := r.ledger(product)
	if nil != err {
		return nil, err
	}
	return l.Events(filter)
}

// TransferOwnership - see ledger.TransferOwnership
func (r *Registry) TransferOwnership(product string, caller *account.Account, newOwner *account.Account) error {
	l, err := r.ledger(product)
	if nil != err {
		return err
	}
	return l.TransferOwnership(caller, newOwner)
}

// ClaimAuthorship - see ledger.ClaimAuthorship
func (r *Registry) ClaimAuthorship(product string, caller *account.Account, author *account.Account, claim proof.Digest) error {
	l, err := r.ledger(product)
	if nil != err {
		return err
	}
	return l.ClaimAuthorship(caller, author, claim)
}

// ProposeIteration - see ledger.ProposeIteration
func (r *Registry) ProposeIteration(product string, caller *account.Account, author *account.Account, contribution proof.Digest, location string) error {
	l, err := r.ledger(product)
	if nil != err {
		return err
	}
	return l.ProposeIteration(caller, author, contribution, location)
}

// AcceptProposal - see ledger.AcceptProposal
func (r *Registry) AcceptProposal(product string, caller *account.Account, contributor *account.Account, release proof.Digest, amount uint64) error {
	l, err := r.ledger(product)
	if nil != err {
		return err
	}
	return l.AcceptProposal(caller, contributor, release, amount)
}

// Pay - move value from the sender's funds into a product's pool
//
// the withdrawal is refunded if the pool does not accept it
//
// the withdrawal and the pool credit are separate commits: a crash
// between them loses the withdrawn amount, which is not recovered on
// restart
func (r *Registry) Pay(product string, from *account.Account, amount uint64) error {
	l, err := r.ledger(product)
	if nil != err {
		return err
	}

	if err := r.funds.Withdraw(from, amount); nil != err {
		return err
	}
	err = l.Receive(from, amount)
	if nil != err {
		if refundErr := r.funds.Deposit(from, amount); nil != refundErr {
			logger.Panicf("registry: refund of: %d to: %s  error: %s", amount, from, refundErr)
		}
		return err
	}
	return nil
}

// Redeem - see ledger.Redeem
func (r *Registry) Redeem(product string, holder *account.Account, amount uint64) (uint64, error) {
	l, err := r.ledger(product)
	if nil != err {
		return 0, err
	}
	return l.Redeem(holder, amount)
}

// PrepareUpgrade - see ledger.PrepareUpgrade
func (r *Registry) PrepareUpgrade(product string, caller *account.Account, next string) error {
	l, err := r.ledger(product)
	if nil != err {
		return err
	}
	return l.PrepareUpgrade(caller, next)
}

// ActivateUpgrade - successor product accepts holders of previous
func (r *Registry) ActivateUpgrade(product string, caller *account.Account, previous string) error {
	l, err := r.ledger(product)
	if nil != err {
		return err
	}
	p, err := r.ledger(previous)
	if nil != err {
		return err
	}
	return l.ActivateUpgrade(caller, p)
}

// Migrate - move the caller's shares from previous into product
func (r *Registry) Migrate(product string, caller *account.Account, previous string) (uint64, uint64, error) {
	l, err := r.ledger(product)
	if nil != err {
		return 0, 0, err
	}
	p, err := r.ledger(previous)
	if nil != err {
		return 0, 0, err
	}
	return l.Upgrade(caller, p)
}

// ExecuteUpgrade - see upgrade.ExecuteUpgrade
func (r *Registry) ExecuteUpgrade(product string, caller *account.Account, config []byte, gracePeriod uint64) (*event.UpgradeSchedule, error) {
	p, err := r.Get(product)
	if nil != err {
		return nil, err
	}
	return p.Timer.ExecuteUpgrade(caller, config, gracePeriod)
}

// UpgradeStatus - schedule of a product as seen from the current block
func (r *Registry) UpgradeStatus(product string) (*upgrade.Status, error) {
	p, err := r.Get(product)
	if nil != err {
		return nil, err
	}
	status := p.Timer.Status()
	return &status, nil
}
