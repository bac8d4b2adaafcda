// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/rpc/gate"
	"github.com/bitmark-inc/productd/rpc/ratelimit"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 100
)

// Log - source of committed event entries
type Log interface {
	Events(product string, filter event.Filter) ([]event.Entry, error)
}

// Events - type for RPC
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Gate    gate.Gate
	Source  Log
}

// New - events service
func New(log *logger.L, g gate.Gate, source Log) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		Gate:    g,
		Source:  source,
	}
}

// ListArguments - arguments for RPC
//
// Kind and Account are optional
type ListArguments struct {
	Product string           `json:"product"`
	Kind    string           `json:"kind"`
	Account *account.Account `json:"account"`
	Start   uint64           `json:"start,string"`
	Count   int              `json:"count"`
}

// ListReply - result from RPC
type ListReply struct {
	Events    []event.Entry `json:"events"`
	NextStart uint64        `json:"nextStart,string"`
}

// List - a page of a product's event log
func (e *Events) List(arguments *ListArguments, reply *ListReply) error {
	if nil == arguments || "" == arguments.Product {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(e.Limiter, arguments.Count, event.MaximumCount); nil != err {
		return err
	}

	filter := event.Filter{
		Account: arguments.Account,
		Start:   arguments.Start,
		Count:   arguments.Count,
	}
	if "" != arguments.Kind {
		kind, ok := event.KindFromString(arguments.Kind)
		if !ok {
			return fault.ErrInvalidEventKind
		}
		filter.Kind = kind
	}
	if nil != filter.Account {
		if err := e.Gate.Network(filter.Account); nil != err {
			return err
		}
	}

	entries, err := e.Source.Events(arguments.Product, filter)
	if nil != err {
		return err
	}

	reply.Events = entries
	reply.NextStart = arguments.Start
	if n := len(entries); n > 0 {
		reply.NextStart = entries[n-1].Sequence + 1
	}
	return nil
}
