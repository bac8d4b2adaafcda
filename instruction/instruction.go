// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/proof"
)

// Tag - type code of a packed instruction
type Tag uint64

// enumerate the possible instruction tags; values are signed, so only
// append
const (
	NullTag              Tag = iota
	TransferOwnershipTag Tag = iota
	ClaimAuthorshipTag   Tag = iota
	ProposeIterationTag  Tag = iota
	AcceptProposalTag    Tag = iota
	PaymentTag           Tag = iota
	RedeemTag            Tag = iota
	ExecuteUpgradeTag    Tag = iota
	PrepareUpgradeTag    Tag = iota
	ActivateUpgradeTag   Tag = iota
	MigrateTag           Tag = iota
	RejectFundsTag       Tag = iota

	// this item must be last
	tagLimit Tag = iota
)

// limits
const (
	maxSignatureLength   = 64
	MaxProductNameLength = 64
	MaxLocationLength    = 2048
)

// Packed - signed binary form of an instruction
type Packed []byte

// Instruction - a signed request to change ledger state
type Instruction interface {
	Signer() *account.Account
	Pack(address *account.Account) (Packed, error)
	signature() *account.Signature
}

// TransferOwnership - owner hands the product to another account
type TransferOwnership struct {
	Product   string            `json:"product"`
	Owner     *account.Account  `json:"owner"`
	NewOwner  *account.Account  `json:"newOwner"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// ClaimAuthorship - anyone records a claim over a proof
//
// the caller signs and need not be the named author
type ClaimAuthorship struct {
	Product   string            `json:"product"`
	Caller    *account.Account  `json:"caller"`
	Author    *account.Account  `json:"author"`
	Proof     proof.Digest      `json:"proof"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// ProposeIteration - anyone offers a contribution
//
// the caller signs and need not be the named author; Location is
// limited to MaxLocationLength bytes to bound the signed record
type ProposeIteration struct {
	Product   string            `json:"product"`
	Caller    *account.Account  `json:"caller"`
	Author    *account.Account  `json:"author"`
	Proof     proof.Digest      `json:"proof"`
	Location  string            `json:"location"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// AcceptProposal - owner mints shares for a contributor
type AcceptProposal struct {
	Product     string            `json:"product"`
	Owner       *account.Account  `json:"owner"`
	Contributor *account.Account  `json:"contributor"`
	Proof       proof.Digest      `json:"proof"`
	Amount      uint64            `json:"amount,string"`
	Nonce       uint64            `json:"nonce,string"`
	Signature   account.Signature `json:"signature"`
}

// Payment - value sent from an external account into the pool
type Payment struct {
	Product   string            `json:"product"`
	From      *account.Account  `json:"from"`
	Amount    uint64            `json:"amount,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Redeem - a holder burns shares for their value
type Redeem struct {
	Product   string            `json:"product"`
	Holder    *account.Account  `json:"holder"`
	Amount    uint64            `json:"amount,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// ExecuteUpgrade - owner schedules an upgrade
type ExecuteUpgrade struct {
	Product     string            `json:"product"`
	Owner       *account.Account  `json:"owner"`
	Config      []byte            `json:"config"`
	GracePeriod uint64            `json:"gracePeriod,string"`
	Nonce       uint64            `json:"nonce,string"`
	Signature   account.Signature `json:"signature"`
}

// PrepareUpgrade - owner names the product's successor
type PrepareUpgrade struct {
	Product   string            `json:"product"`
	Owner     *account.Account  `json:"owner"`
	Next      string            `json:"next"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// ActivateUpgrade - owner of a successor accepts holders of the previous
// product
type ActivateUpgrade struct {
	Product   string            `json:"product"`
	Owner     *account.Account  `json:"owner"`
	Previous  string            `json:"previous"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Migrate - a holder moves shares from previous into Product
type Migrate struct {
	Product   string            `json:"product"`
	Previous  string            `json:"previous"`
	Holder    *account.Account  `json:"holder"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// RejectFunds - an external account refuses, or accepts again, incoming
// payouts
type RejectFunds struct {
	Account   *account.Account  `json:"account"`
	Reject    bool              `json:"reject"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Signer - the account whose signature authorises each instruction
func (t *TransferOwnership) Signer() *account.Account { return t.Owner }
func (t *ClaimAuthorship) Signer() *account.Account   { return t.Caller }
func (t *ProposeIteration) Signer() *account.Account  { return t.Caller }
func (t *AcceptProposal) Signer() *account.Account    { return t.Owner }
func (t *Payment) Signer() *account.Account           { return t.From }
func (t *Redeem) Signer() *account.Account            { return t.Holder }
func (t *ExecuteUpgrade) Signer() *account.Account    { return t.Owner }
func (t *PrepareUpgrade) Signer() *account.Account    { return t.Owner }
func (t *ActivateUpgrade) Signer() *account.Account   { return t.Owner }
func (t *Migrate) Signer() *account.Account           { return t.Holder }
func (t *RejectFunds) Signer() *account.Account       { return t.Account }

func (t *TransferOwnership) signature() *account.Signature { return &t.Signature }
func (t *ClaimAuthorship) signature() *account.Signature   { return &t.Signature }
func (t *ProposeIteration) signature() *account.Signature  { return &t.Signature }
func (t *AcceptProposal) signature() *account.Signature    { return &t.Signature }
func (t *Payment) signature() *account.Signature           { return &t.Signature }
func (t *Redeem) signature() *account.Signature            { return &t.Signature }
func (t *ExecuteUpgrade) signature() *account.Signature    { return &t.Signature }
func (t *PrepareUpgrade) signature() *account.Signature    { return &t.Signature }
func (t *ActivateUpgrade) signature() *account.Signature   { return &t.Signature }
func (t *Migrate) signature() *account.Signature           { return &t.Signature }
func (t *RejectFunds) signature() *account.Signature       { return &t.Signature }

// ID - digest identifying a packed instruction
func (p Packed) ID() proof.Digest {
	return proof.NewDigest(p)
}
