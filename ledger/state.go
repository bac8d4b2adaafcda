// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/storage"
)

// single byte field names under a product's key in the Products pool
const (
	ownerField    = 'O'
	supplyField   = 'S'
	poolField     = 'V'
	releaseField  = 'R'
	nextField     = 'n'
	previousField = 'p'
)

func (l *Ledger) fieldKey(field byte) []byte {
	key := make([]byte, 0, len(l.key)+1)
	return append(append(key, l.key...), field)
}

func (l *Ledger) balanceKey(holder *account.Account) []byte {
	key := make([]byte, 0, len(l.key)+33)
	return append(append(key, l.key...), holder.Bytes()...)
}

// state - reads and writes of one product inside an open transaction
type state struct {
	l   *Ledger
	trx storage.Transaction

	// entries logged under other products in the same transaction
	others  []event.Entry
	touched []snapshot
}

// supply and pool of another product modified in the same transaction
type snapshot struct {
	name   string
	supply uint64
	pool   uint64
}

func (l *Ledger) in(trx storage.Transaction) *state {
	return &state{l: l, trx: trx}
}

func (s *state) owner() *account.Account {
	buffer := s.trx.Get(storage.Pool.Products, s.l.fieldKey(ownerField))
	if nil == buffer {
		return nil
	}
	owner, err := account.FromBytes(buffer)
	logger.PanicIfError("ledger.owner", err)
	return owner
}

func (s *state) setOwner(owner *account.Account) {
	s.trx.Put(storage.Pool.Products, s.l.fieldKey(ownerField), owner.Bytes())
}

func (s *state) supply() uint64 {
	n, _ := s.trx.GetN(storage.Pool.Products, s.l.fieldKey(supplyField))
	return n
}

func (s *state) setSupply(n uint64) {
	s.trx.PutN(storage.Pool.Products, s.l.fieldKey(supplyField), n)
}

func (s *state) pool() uint64 {
	n, _ := s.trx.GetN(storage.Pool.Products, s.l.fieldKey(poolField))
	return n
}

func (s *state) setPool(n uint64) {
	s.trx.PutN(storage.Pool.Products, s.l.fieldKey(poolField), n)
}

func (s *state) balance(holder *account.Account) uint64 {
	n, _ := s.trx.GetN(storage.Pool.Balances, s.l.balanceKey(holder))
	return n
}

// zero balances are removed rather than stored
func (s *state) setBalance(holder *account.Account, n uint64) {
	key := s.l.balanceKey(holder)
	if 0 == n {
		s.trx.Delete(storage.Pool.Balances, key)
		return
	}
	s.trx.PutN(storage.Pool.Balances, key, n)
}

func (s *state) setRelease(release proof.Digest) {
	s.trx.Put(storage.Pool.Products, s.l.fieldKey(releaseField), release[:])
}

func (s *state) version(field byte) string {
	return string(s.trx.Get(storage.Pool.Products, s.l.fieldKey(field)))
}

func (s *state) setVersion(field byte, name string) {
	s.trx.Put(storage.Pool.Products, s.l.fieldKey(field), []byte(name))
}

func (s *state) shareValue() (uint64, error) {
	return divide(s.pool(), s.supply())
}
