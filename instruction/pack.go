// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/util"
)

// Pack Varint64(tag) followed by fields in order as struct with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       signing and testing

func (t *TransferOwnership) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Owner, t.NewOwner); nil != err {
		return nil, err
	}
	message := header(TransferOwnershipTag, t.Product)
	message = account.Append(message, t.Owner)
	message = account.Append(message, t.NewOwner)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *ClaimAuthorship) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Caller, t.Author); nil != err {
		return nil, err
	}
	message := header(ClaimAuthorshipTag, t.Product)
	message = account.Append(message, t.Caller)
	message = account.Append(message, t.Author)
	message = append(message, t.Proof[:]...)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *ProposeIteration) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Caller, t.Author); nil != err {
		return nil, err
	}
	if len(t.Location) > MaxLocationLength {
		return nil, fault.ErrLocationTooLong
	}
	message := header(ProposeIterationTag, t.Product)
	message = account.Append(message, t.Caller)
	message = account.Append(message, t.Author)
	message = append(message, t.Proof[:]...)
	message = util.AppendString(message, t.Location)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *AcceptProposal) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Owner, t.Contributor); nil != err {
		return nil, err
	}
	message := header(AcceptProposalTag, t.Product)
	message = account.Append(message, t.Owner)
	message = account.Append(message, t.Contributor)
	message = append(message, t.Proof[:]...)
	message = util.AppendVarint64(message, t.Amount)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *Payment) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.From); nil != err {
		return nil, err
	}
	message := header(PaymentTag, t.Product)
	message = account.Append(message, t.From)
	message = util.AppendVarint64(message, t.Amount)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *Redeem) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Holder); nil != err {
		return nil, err
	}
	message := header(RedeemTag, t.Product)
	message = account.Append(message, t.Holder)
	message = util.AppendVarint64(message, t.Amount)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *ExecuteUpgrade) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Owner); nil != err {
		return nil, err
	}
	message := header(ExecuteUpgradeTag, t.Product)
	message = account.Append(message, t.Owner)
	message = util.AppendBytes(message, t.Config)
	message = util.AppendVarint64(message, t.GracePeriod)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *PrepareUpgrade) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Owner); nil != err {
		return nil, err
	}
	if err := checkName(t.Next); nil != err {
		return nil, err
	}
	message := header(PrepareUpgradeTag, t.Product)
	message = account.Append(message, t.Owner)
	message = util.AppendString(message, t.Next)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *ActivateUpgrade) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Owner); nil != err {
		return nil, err
	}
	if err := checkName(t.Previous); nil != err {
		return nil, err
	}
	message := header(ActivateUpgradeTag, t.Product)
	message = account.Append(message, t.Owner)
	message = util.AppendString(message, t.Previous)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *Migrate) Pack(address *account.Account) (Packed, error) {
	if err := check(address, t.Signature, t.Nonce, t.Product, t.Holder); nil != err {
		return nil, err
	}
	if err := checkName(t.Previous); nil != err {
		return nil, err
	}
	message := header(MigrateTag, t.Product)
	message = util.AppendString(message, t.Previous)
	message = account.Append(message, t.Holder)
	return sign(message, t.Nonce, address, t.Signature)
}

func (t *RejectFunds) Pack(address *account.Account) (Packed, error) {
	if len(t.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if nil == address || nil == t.Account {
		return nil, fault.ErrMissingParameters
	}
	if 0 == t.Nonce {
		return nil, fault.ErrInvalidNonce
	}
	message := util.ToVarint64(uint64(RejectFundsTag))
	message = account.Append(message, t.Account)
	if t.Reject {
		message = append(message, 0x01)
	} else {
		message = append(message, 0x00)
	}
	return sign(message, t.Nonce, address, t.Signature)
}

// common validation of the signer, signature, nonce and product
func check(address *account.Account, signature account.Signature, nonce uint64, product string, accounts ...*account.Account) error {
	if len(signature) > maxSignatureLength {
		return fault.ErrSignatureTooLong
	}
	if nil == address {
		return fault.ErrMissingParameters
	}
	for _, a := range accounts {
		if nil == a {
			return fault.ErrMissingParameters
		}
	}
	if 0 == nonce {
		return fault.ErrInvalidNonce
	}
	return checkName(product)
}

func checkName(name string) error {
	if "" == name || len(name) > MaxProductNameLength {
		return fault.ErrInvalidProductName
	}
	return nil
}

func header(tag Tag, product string) []byte {
	message := util.ToVarint64(uint64(tag))
	return util.AppendString(message, product)
}

func sign(message []byte, nonce uint64, address *account.Account, signature account.Signature) (Packed, error) {
	message = util.AppendVarint64(message, nonce)

	err := address.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	return util.AppendBytes(message, signature), nil
}
