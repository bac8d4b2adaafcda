// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize = 1000
)

// Message - an item sent on the bus
type Message struct {
	Command    string
	Parameters []interface{}
}

// BroadcastQueue - every subscriber receives every message
//
// a subscriber whose queue is full misses the message rather than
// blocking the sender
type BroadcastQueue struct {
	sync.RWMutex
	subscribers map[string]chan Message
	dropped     uint64
}

type busses struct {
	Broadcast *BroadcastQueue
	TestQueue *BroadcastQueue
}

// Bus - all available message queues
var Bus = busses{
	Broadcast: newBroadcastQueue(),
	TestQueue: newBroadcastQueue(),
}

func newBroadcastQueue() *BroadcastQueue {
	return &BroadcastQueue{
		subscribers: make(map[string]chan Message),
	}
}

// Subscribe - channel for a named subscriber, created on first use
func (q *BroadcastQueue) Subscribe(name string) <-chan Message {
	q.Lock()
	defer q.Unlock()

	c, ok := q.subscribers[name]
	if !ok {
		c = make(chan Message, queueSize)
		q.subscribers[name] = c
	}
	return c
}

// Release - remove a subscriber and close its channel
func (q *BroadcastQueue) Release(name string) {
	q.Lock()
	defer q.Unlock()

	if c, ok := q.subscribers[name]; ok {
		delete(q.subscribers, name)
		close(c)
	}
}

// Send - queue a message to every subscriber
func (q *BroadcastQueue) Send(command string, parameters ...interface{}) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	q.Lock()
	defer q.Unlock()

	for _, c := range q.subscribers {
		select {
		case c <- m:
		default:
			q.dropped += 1
		}
	}
}

// Dropped - number of messages missed by full subscribers
func (q *BroadcastQueue) Dropped() uint64 {
	q.RLock()
	defer q.RUnlock()
	return q.dropped
}
