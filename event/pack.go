// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/util"
)

// Pack Varint64(kind) followed by fields in order as struct

func (e *AuthorshipClaim) Pack() []byte {
	message := util.ToVarint64(uint64(e.Kind()))
	message = account.Append(message, e.Author)
	return append(message, e.Proof[:]...)
}

func (e *IterationProposal) Pack() []byte {
	message := util.ToVarint64(uint64(e.Kind()))
	message = account.Append(message, e.Author)
	message = append(message, e.Proof[:]...)
	return util.AppendString(message, e.Location)
}

func (e *Payment) Pack() []byte {
	message := util.ToVarint64(uint64(e.Kind()))
	message = account.Append(message, e.From)
	return util.AppendVarint64(message, e.Amount)
}

func (e *OwnershipTransfer) Pack() []byte {
	message := util.ToVarint64(uint64(e.Kind()))
	message = account.Append(message, e.PreviousOwner)
	return account.Append(message, e.NewOwner)
}

func (e *Acceptance) Pack() []byte {
	message := util.ToVarint64(uint64(e.Kind()))
	message = account.Append(message, e.Contributor)
	message = append(message, e.Proof[:]...)
	return util.AppendVarint64(message, e.Amount)
}

func (e *Redemption) Pack() []byte {
	message := util.ToVarint64(uint64(e.Kind()))
	message = account.Append(message, e.Holder)
	message = util.AppendVarint64(message, e.Shares)
	return util.AppendVarint64(message, e.Payout)
}

func (e *UpgradeSchedule) Pack() []byte {
	message := util.ToVarint64(uint64(e.Kind()))
	message = account.Append(message, e.Owner)
	message = util.AppendVarint64(message, e.UpgradeBlock)
	message = util.AppendVarint64(message, e.GracePeriod)
	return append(message, e.Config[:]...)
}

func (e *Migration) Pack() []byte {
	message := util.ToVarint64(uint64(e.Kind()))
	message = account.Append(message, e.Holder)
	message = util.AppendString(message, e.From)
	message = util.AppendString(message, e.To)
	message = util.AppendVarint64(message, e.Shares)
	return util.AppendVarint64(message, e.Value)
}

// unpacker - consumes fields from the front of a packed record
//
// the first error sticks and later reads return zero values
type unpacker struct {
	record []byte
	n      int
	err    error
}

func (u *unpacker) account() *account.Account {
	if nil != u.err {
		return nil
	}
	a, n, err := account.Split(u.record[u.n:])
	if nil != err {
		u.err = err
		return nil
	}
	u.n += n
	return a
}

func (u *unpacker) digest() proof.Digest {
	var d proof.Digest
	if nil != u.err {
		return d
	}
	if len(u.record)-u.n < proof.DigestLength {
		u.err = fault.ErrTruncatedRecord
		return d
	}
	copy(d[:], u.record[u.n:])
	u.n += proof.DigestLength
	return d
}

func (u *unpacker) varint() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := util.FromVarint64(u.record[u.n:])
	if 0 == n {
		u.err = fault.ErrTruncatedRecord
		return 0
	}
	u.n += n
	return value
}

func (u *unpacker) string() string {
	if nil != u.err {
		return ""
	}
	s, n := util.SplitBytes(u.record[u.n:])
	if 0 == n {
		u.err = fault.ErrTruncatedRecord
		return ""
	}
	u.n += n
	return string(s)
}

// Unpack - turn a packed record back into an event
//
// must cast result to correct type, e.g.
//
//	switch e := result.(type) {
//	case *event.Payment:
func Unpack(record []byte) (Event, int, error) {
	kind, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrTruncatedRecord
	}

	u := &unpacker{record: record, n: n}

	var e Event
	switch Kind(kind) {
	case AuthorshipClaimKind:
		e = &AuthorshipClaim{
			Author: u.account(),
			Proof:  u.digest(),
		}

	case IterationProposalKind:
		e = &IterationProposal{
			Author:   u.account(),
			Proof:    u.digest(),
			Location: u.string(),
		}

	case PaymentKind:
		e = &Payment{
			From:   u.account(),
			Amount: u.varint(),
		}

	case OwnershipTransferKind:
		e = &OwnershipTransfer{
			PreviousOwner: u.account(),
			NewOwner:      u.account(),
		}

	case AcceptanceKind:
		e = &Acceptance{
			Contributor: u.account(),
			Proof:       u.digest(),
			Amount:      u.varint(),
		}

	case RedemptionKind:
		e = &Redemption{
			Holder: u.account(),
			Shares: u.varint(),
			Payout: u.varint(),
		}

	case UpgradeScheduleKind:
		e = &UpgradeSchedule{
			Owner:        u.account(),
			UpgradeBlock: u.varint(),
			GracePeriod:  u.varint(),
			Config:       u.digest(),
		}

	case MigrationKind:
		e = &Migration{
			Holder: u.account(),
			From:   u.string(),
			To:     u.string(),
			Shares: u.varint(),
			Value:  u.varint(),
		}

	default:
		return nil, 0, fault.ErrInvalidEventKind
	}

	if nil != u.err {
		return nil, 0, u.err
	}
	return e, u.n, nil
}
