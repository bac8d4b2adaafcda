// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/proof"
)

// Kind - type code of an event record
type Kind uint64

// event kinds; values are stored, so only append
const (
	NullKind              Kind = iota
	AuthorshipClaimKind   Kind = iota
	IterationProposalKind Kind = iota
	PaymentKind           Kind = iota
	OwnershipTransferKind Kind = iota
	AcceptanceKind        Kind = iota
	RedemptionKind        Kind = iota
	UpgradeScheduleKind   Kind = iota
	MigrationKind         Kind = iota

	// this item must be last
	kindLimit Kind = iota
)

// Event - a record appended to a product's event log
type Event interface {
	Kind() Kind
	Indexed() *account.Account
	Pack() []byte
}

// AuthorshipClaim - someone asserts authorship of the work behind a proof
type AuthorshipClaim struct {
	Author *account.Account `json:"author"`
	Proof  proof.Digest     `json:"proof"`
}

// IterationProposal - a contribution offered for acceptance
type IterationProposal struct {
	Author   *account.Account `json:"author"`
	Proof    proof.Digest     `json:"proof"`
	Location string           `json:"location"`
}

// Payment - value received into the pool
type Payment struct {
	From   *account.Account `json:"from"`
	Amount uint64           `json:"amount"`
}

// OwnershipTransfer - the owner role was reassigned
type OwnershipTransfer struct {
	PreviousOwner *account.Account `json:"previousOwner"`
	NewOwner      *account.Account `json:"newOwner"`
}

// Acceptance - a proposal was accepted and shares minted
type Acceptance struct {
	Contributor *account.Account `json:"contributor"`
	Proof       proof.Digest     `json:"proof"`
	Amount      uint64           `json:"amount"`
}

// Redemption - shares burned in exchange for their pool value
type Redemption struct {
	Holder *account.Account `json:"holder"`
	Shares uint64           `json:"shares"`
	Payout uint64           `json:"payout"`
}

// UpgradeSchedule - the owner (re)scheduled an upgrade
type UpgradeSchedule struct {
	Owner        *account.Account `json:"owner"`
	UpgradeBlock uint64           `json:"upgradeBlock"`
	GracePeriod  uint64           `json:"gracePeriod"`
	Config       proof.Digest     `json:"config"`
}

// Migration - a holder's shares moved between product versions
type Migration struct {
	Holder *account.Account `json:"holder"`
	From   string           `json:"from"`
	To     string           `json:"to"`
	Shares uint64           `json:"shares"`
	Value  uint64           `json:"value"`
}

func (e *AuthorshipClaim) Kind() Kind   { return AuthorshipClaimKind }
func (e *IterationProposal) Kind() Kind { return IterationProposalKind }
func (e *Payment) Kind() Kind           { return PaymentKind }
func (e *OwnershipTransfer) Kind() Kind { return OwnershipTransferKind }
func (e *Acceptance) Kind() Kind        { return AcceptanceKind }
func (e *Redemption) Kind() Kind        { return RedemptionKind }
func (e *UpgradeSchedule) Kind() Kind   { return UpgradeScheduleKind }
func (e *Migration) Kind() Kind         { return MigrationKind }

// the account each kind of event can be filtered by
func (e *AuthorshipClaim) Indexed() *account.Account   { return e.Author }
func (e *IterationProposal) Indexed() *account.Account { return e.Author }
func (e *Payment) Indexed() *account.Account           { return e.From }
func (e *OwnershipTransfer) Indexed() *account.Account { return e.NewOwner }
func (e *Acceptance) Indexed() *account.Account        { return e.Contributor }
func (e *Redemption) Indexed() *account.Account        { return e.Holder }
func (e *UpgradeSchedule) Indexed() *account.Account   { return e.Owner }
func (e *Migration) Indexed() *account.Account         { return e.Holder }

var kindNames = map[Kind]string{
	AuthorshipClaimKind:   "AuthorshipClaim",
	IterationProposalKind: "IterationProposal",
	PaymentKind:           "Payment",
	OwnershipTransferKind: "OwnershipTransfer",
	AcceptanceKind:        "ProposalAccepted",
	RedemptionKind:        "Redemption",
	UpgradeScheduleKind:   "UpgradeScheduled",
	MigrationKind:         "Migration",
}

// String - name of the kind as it appears in JSON and the CLI
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "*unknown*"
}

// KindFromString - reverse of String, case sensitive
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return NullKind, false
}

// MarshalText - kinds appear by name in JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
