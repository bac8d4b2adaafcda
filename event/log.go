// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"
	"sort"

	"github.com/bitmark-inc/productd/account"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/messagebus"
	"github.com/bitmark-inc/productd/storage"
	"github.com/bitmark-inc/productd/util"
)

// MaximumCount - largest number of entries returned by one Fetch
const MaximumCount = 100

// Entry - an event with its position in the log
type Entry struct {
	Product  string
	Sequence uint64
	Block    uint64
	Event    Event
}

// Filter - selects entries from a product's log
//
// zero fields match everything; Start is the first sequence number to
// return
type Filter struct {
	Kind    Kind
	Account *account.Account
	Start   uint64
	Count   int
}

// ProductKey - length prefixed product name, the common key prefix of
// every per product record
func ProductKey(product string) []byte {
	return util.AppendString(nil, product)
}

// Append - add an event inside the caller's transaction
//
// if the transaction is aborted the event, its index entry and its
// sequence number all disappear with it
func Append(trx storage.Transaction, product string, block uint64, e Event) Entry {
	productKey := ProductKey(product)

	sequence, _ := trx.GetN(storage.Pool.EventSequence, productKey)
	sequence += 1
	trx.PutN(storage.Pool.EventSequence, productKey, sequence)

	sequenceBytes := util.ToUint64(sequence)

	record := append(util.ToUint64(block), e.Pack()...)
	trx.Put(storage.Pool.Events, append(productKey, sequenceBytes...), record)

	if indexed := e.Indexed(); nil != indexed {
		trx.Put(storage.Pool.EventIndex, indexKey(productKey, e.Kind(), indexed, sequenceBytes), []byte{})
	}

	return Entry{
		Product:  product,
		Sequence: sequence,
		Block:    block,
		Event:    e,
	}
}

// Announce - send committed entries to bus subscribers
func Announce(entries ...Entry) {
	for _, entry := range entries {
		messagebus.Bus.Broadcast.Send("event", entry)
	}
}

// Count - number of events ever appended for a product
func Count(product string) uint64 {
	n, _ := storage.Pool.EventSequence.GetN(ProductKey(product))
	return n
}

// Get - a single entry by sequence number
func Get(product string, sequence uint64) (*Entry, error) {
	record := storage.Pool.Events.Get(append(ProductKey(product), util.ToUint64(sequence)...))
	if nil == record {
		return nil, fault.ErrEventNotFound
	}
	return decode(product, sequence, record)
}

// Fetch - committed entries matching a filter, in sequence order
func Fetch(product string, filter Filter) ([]Entry, error) {
	count := filter.Count
	if count <= 0 || count > MaximumCount {
		count = MaximumCount
	}
	start := filter.Start
	if 0 == start {
		start = 1
	}

	productKey := ProductKey(product)

	if nil == filter.Account {
		return scan(product, productKey, filter.Kind, start, count)
	}

	kinds := []Kind{filter.Kind}
	if NullKind == filter.Kind {
		kinds = kinds[:0]
		for k := NullKind + 1; k < kindLimit; k += 1 {
			kinds = append(kinds, k)
		}
	}

	sequences := make([]uint64, 0, count)
	for _, k := range kinds {
		prefix := indexKey(productKey, k, filter.Account, nil)
		cursor := storage.Pool.EventIndex.NewPrefixCursor(prefix)
		cursor.Seek(append(prefix, util.ToUint64(start)...))
		elements, err := cursor.Fetch(count)
		if nil != err {
			return nil, err
		}
		for _, element := range elements {
			n, ok := util.FromUint64(element.Key[len(prefix):])
			if !ok {
				return nil, fault.ErrTruncatedRecord
			}
			sequences = append(sequences, n)
		}
	}
	sort.Slice(sequences, func(i, j int) bool { return sequences[i] < sequences[j] })
	if len(sequences) > count {
		sequences = sequences[:count]
	}

	entries := make([]Entry, 0, len(sequences))
	for _, n := range sequences {
		entry, err := Get(product, n)
		if nil != err {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// walk the log from start, keeping entries of the requested kind
func scan(product string, productKey []byte, kind Kind, start uint64, count int) ([]Entry, error) {
	cursor := storage.Pool.Events.NewPrefixCursor(productKey)
	cursor.Seek(append(productKey, util.ToUint64(start)...))

	entries := make([]Entry, 0, count)
	for len(entries) < count {
		elements, err := cursor.Fetch(count)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			break
		}
		for _, element := range elements {
			sequence, ok := util.FromUint64(element.Key[len(productKey):])
			if !ok {
				return nil, fault.ErrTruncatedRecord
			}
			entry, err := decode(product, sequence, element.Value)
			if nil != err {
				return nil, err
			}
			if NullKind != kind && entry.Event.Kind() != kind {
				continue
			}
			entries = append(entries, *entry)
			if len(entries) >= count {
				break
			}
		}
	}
	return entries, nil
}

func decode(product string, sequence uint64, record []byte) (*Entry, error) {
	block, ok := util.FromUint64(record)
	if !ok {
		return nil, fault.ErrTruncatedRecord
	}
	e, _, err := Unpack(record[8:])
	if nil != err {
		return nil, err
	}
	return &Entry{
		Product:  product,
		Sequence: sequence,
		Block:    block,
		Event:    e,
	}, nil
}

func indexKey(productKey []byte, kind Kind, indexed *account.Account, sequence []byte) []byte {
	key := append([]byte{}, productKey...)
	key = append(key, byte(kind))
	key = append(key, indexed.Bytes()...)
	return append(key, sequence...)
}

// MarshalJSON - entry with its kind name and the event fields as data
func (entry Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Product  string `json:"product"`
		Sequence uint64 `json:"sequence"`
		Block    uint64 `json:"block"`
		Kind     Kind   `json:"kind"`
		Data     Event  `json:"data"`
	}{
		Product:  entry.Product,
		Sequence: entry.Sequence,
		Block:    entry.Block,
		Kind:     entry.Event.Kind(),
		Data:     entry.Event,
	})
}
