// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/event"
	"github.com/bitmark-inc/productd/fault"
	"github.com/bitmark-inc/productd/messagebus"
	"github.com/bitmark-inc/productd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	subscriberName       = "publish"

	// topic for messages that are not about a single product
	nodeTopic = "node"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {
	log := logger.New("broadcaster")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	brdc.log = log

	log.Info("initialising…")

	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	return nil
}

// Run - forward bus messages until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Subscribe(subscriberName)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-queue:
			if !ok {
				break loop
			}
			parts, err := format(item)
			if nil != err {
				log.Warnf("command: %q  format error: %s", item.Command, err)
				continue
			}
			if nil == parts {
				continue
			}
			log.Debugf("sending: %s  topic: %s", parts[1], parts[0])
			brdc.send(brdc.socket4, parts)
			brdc.send(brdc.socket6, parts)
		}
	}

	messagebus.Bus.Broadcast.Release(subscriberName)
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("finished")
	log.Flush()
}

// a slow subscriber must not stall the ledger, so sends never block
func (brdc *broadcaster) send(socket *zmq.Socket, parts [][]byte) {
	if nil == socket {
		return
	}
	last := len(parts) - 1
	for i, p := range parts {
		flags := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flags = zmq.DONTWAIT
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			brdc.log.Warnf("send error: %s", err)
			return
		}
	}
}

// format - topic, kind and JSON body of a bus message
//
// returns nil parts for commands that are not published
func format(item messagebus.Message) ([][]byte, error) {
	if 1 != len(item.Parameters) {
		return nil, nil
	}

	switch item.Command {
	case "event":
		entry, ok := item.Parameters[0].(event.Entry)
		if !ok {
			return nil, fault.ErrInvalidEventKind
		}
		body, err := json.Marshal(entry)
		if nil != err {
			return nil, err
		}
		return [][]byte{
			[]byte(entry.Product),
			[]byte(entry.Event.Kind().String()),
			body,
		}, nil

	case "block":
		height, ok := item.Parameters[0].(uint64)
		if !ok {
			return nil, fault.ErrInvalidCount
		}
		body, err := json.Marshal(struct {
			Height uint64 `json:"height"`
		}{
			Height: height,
		})
		if nil != err {
			return nil, err
		}
		return [][]byte{
			[]byte(nodeTopic),
			[]byte("block"),
			body,
		}, nil
	}
	return nil, nil
}
