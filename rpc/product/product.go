// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/instruction"
	"github.com/bitmark-inc/productd/ledger"
	"github.com/bitmark-inc/productd/proof"
	"github.com/bitmark-inc/productd/rpc/gate"
	"github.com/bitmark-inc/productd/rpc/ratelimit"
)

// Product
// -------

const (
	rateLimitProduct = 200
	rateBurstProduct = 100
)

// Products - the deployed ledgers, addressed by product name
type Products interface {
	Info(product string) (*ledger.Info, error)
	Balance(product string, holder *account.Account) (uint64, error)
	ShareValue(product string) (uint64, error)
	TransferOwnership(product string, caller *account.Account, newOwner *account.Account) error
	ClaimAuthorship(product string, caller *account.Account, author *account.Account, claim proof.Digest) error
	ProposeIteration(product string, caller *account.Account, author *account.Account, contribution proof.Digest, location string) error
	AcceptProposal(product string, caller *account.Account, contributor *account.Account, release proof.Digest, amount uint64) error
	Pay(product string, from *account.Account, amount uint64) error
	Redeem(product string, holder *account.Account, amount uint64) (uint64, error)
	PrepareUpgrade(product string, caller *account.Account, next string) error
	ActivateUpgrade(product string, caller *account.Account, previous string) error
	Migrate(product string, caller *account.Account, previous string) (uint64, uint64, error)
}

// Product - type for RPC
type Product struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Gate     gate.Gate
	Products Products
}

// New - product service
func New(log *logger.L, g gate.Gate, products Products) *Product {
	return &Product{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitProduct, rateBurstProduct),
		Gate:     g,
		Products: products,
	}
}

// Reply - identifier of an executed instruction
type Reply struct {
	ID proof.Digest `json:"id"`
}

// TransferOwnership - hand the owner role to another account
func (p *Product) TransferOwnership(arguments *instruction.TransferOwnership, reply *Reply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.TransferOwnership: %+v", arguments)

	packed, err := p.Gate.Admit(arguments, arguments.NewOwner)
	if nil != err {
		return err
	}
	if err := p.Products.TransferOwnership(arguments.Product, arguments.Owner, arguments.NewOwner); nil != err {
		return err
	}
	reply.ID = packed.ID()
	return nil
}

// ClaimAuthorship - record an authorship claim
func (p *Product) ClaimAuthorship(arguments *instruction.ClaimAuthorship, reply *Reply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.ClaimAuthorship: %+v", arguments)

	packed, err := p.Gate.Admit(arguments, arguments.Author)
	if nil != err {
		return err
	}
	if err := p.Products.ClaimAuthorship(arguments.Product, arguments.Caller, arguments.Author, arguments.Proof); nil != err {
		return err
	}
	reply.ID = packed.ID()
	return nil
}

// ProposeIteration - offer a contribution to the owner
func (p *Product) ProposeIteration(arguments *instruction.ProposeIteration, reply *Reply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.ProposeIteration: %+v", arguments)

	packed, err := p.Gate.Admit(arguments, arguments.Author)
	if nil != err {
		return err
	}
	if err := p.Products.ProposeIteration(arguments.Product, arguments.Caller, arguments.Author, arguments.Proof, arguments.Location); nil != err {
		return err
	}
	reply.ID = packed.ID()
	return nil
}

// AcceptProposal - mint shares for a contributor
func (p *Product) AcceptProposal(arguments *instruction.AcceptProposal, reply *Reply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.AcceptProposal: %+v", arguments)

	packed, err := p.Gate.Admit(arguments, arguments.Contributor)
	if nil != err {
		return err
	}
	err = p.Products.AcceptProposal(arguments.Product, arguments.Owner, arguments.Contributor, arguments.Proof, arguments.Amount)
	if nil != err {
		return err
	}
	reply.ID = packed.ID()
	return nil
}

// Pay - send value from an external account into the pool
func (p *Product) Pay(arguments *instruction.Payment, reply *Reply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.Pay: %+v", arguments)

	packed, err := p.Gate.Admit(arguments)
	if nil != err {
		return err
	}
	if err := p.Products.Pay(arguments.Product, arguments.From, arguments.Amount); nil != err {
		return err
	}
	reply.ID = packed.ID()
	return nil
}

// RedeemReply - result of a redemption
type RedeemReply struct {
	ID     proof.Digest `json:"id"`
	Payout uint64       `json:"payout,string"`
}

// Redeem - burn shares and pay out their value
func (p *Product) Redeem(arguments *instruction.Redeem, reply *RedeemReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.Redeem: %+v", arguments)

	packed, err := p.Gate.Admit(arguments)
	if nil != err {
		return err
	}
	payout, err := p.Products.Redeem(arguments.Product, arguments.Holder, arguments.Amount)
	if nil != err {
		return err
	}
	reply.ID = packed.ID()
	reply.Payout = payout
	return nil
}

// PrepareUpgrade - name the product's successor
func (p *Product) PrepareUpgrade(arguments *instruction.PrepareUpgrade, reply *Reply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.PrepareUpgrade: %+v", arguments)

	packed, err := p.Gate.Admit(arguments)
	if nil != err {
		return err
	}
	if err := p.Products.PrepareUpgrade(arguments.Product, arguments.Owner, arguments.Next); nil != err {
		return err
	}
	reply.ID = packed.ID()
	return nil
}

// ActivateUpgrade - accept holders of the previous product
func (p *Product) ActivateUpgrade(arguments *instruction.ActivateUpgrade, reply *Reply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.ActivateUpgrade: %+v", arguments)

	packed, err := p.Gate.Admit(arguments)
	if nil != err {
		return err
	}
	if err := p.Products.ActivateUpgrade(arguments.Product, arguments.Owner, arguments.Previous); nil != err {
		return err
	}
	reply.ID = packed.ID()
	return nil
}

// MigrateReply - shares and value carried into the new product
type MigrateReply struct {
	ID     proof.Digest `json:"id"`
	Shares uint64       `json:"shares,string"`
	Value  uint64       `json:"value,string"`
}

// Migrate - move a holder's shares from the previous product
func (p *Product) Migrate(arguments *instruction.Migrate, reply *MigrateReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	p.Log.Infof("Product.Migrate: %+v", arguments)

	packed, err := p.Gate.Admit(arguments)
	if nil != err {
		return err
	}
	shares, value, err := p.Products.Migrate(arguments.Product, arguments.Holder, arguments.Previous)
	if nil != err {
		return err
	}
	reply.ID = packed.ID()
	reply.Shares = shares
	reply.Value = value
	return nil
}

// Queries
// -------

// InfoArguments - arguments for RPC
type InfoArguments struct {
	Product string `json:"product"`
}

// Info - committed state of a product
func (p *Product) Info(arguments *InfoArguments, reply *ledger.Info) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Product {
		return fault.ErrMissingParameters
	}

	info, err := p.Products.Info(arguments.Product)
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Product string           `json:"product"`
	Holder  *account.Account `json:"holder"`
}

// BalanceReply - result of balance request
type BalanceReply struct {
	Product string           `json:"product"`
	Holder  *account.Account `json:"holder"`
	Balance uint64           `json:"balance,string"`
}

// Balance - shares held by an account
func (p *Product) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Product || nil == arguments.Holder {
		return fault.ErrMissingParameters
	}
	if err := p.Gate.Network(arguments.Holder); nil != err {
		return err
	}

	balance, err := p.Products.Balance(arguments.Product, arguments.Holder)
	if nil != err {
		return err
	}
	reply.Product = arguments.Product
	reply.Holder = arguments.Holder
	reply.Balance = balance
	return nil
}

// ShareValueArguments - arguments for RPC
type ShareValueArguments struct {
	Product string `json:"product"`
}

// ShareValueReply - result of share value request
type ShareValueReply struct {
	Product string `json:"product"`
	Value   uint64 `json:"value,string"`
}

// ShareValue - pool value per share rounded down
func (p *Product) ShareValue(arguments *ShareValueArguments, reply *ShareValueReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Product {
		return fault.ErrMissingParameters
	}

	value, err := p.Products.ShareValue(arguments.Product)
	if nil != err {
		return err
	}
	reply.Product = arguments.Product
	reply.Value = value
	return nil
}
