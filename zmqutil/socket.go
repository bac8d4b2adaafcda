// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"net"
	"strconv"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/productd/fault"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// Endpoint - a listen address as a zmq tcp endpoint
//
// accepts "host:port" where host is an IPv4 address, a bracketed IPv6
// address or "*" for all IPv4 interfaces
func Endpoint(address string) (string, bool, error) {
	host, port, err := net.SplitHostPort(address)
	if nil != err {
		return "", false, fault.ErrInvalidIPAddress
	}
	if n, err := strconv.Atoi(port); nil != err || n < 1 || n > 65535 {
		return "", false, fault.ErrInvalidIPAddress
	}
	if "*" == host {
		return "tcp://*:" + port, false, nil
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.ErrInvalidIPAddress
	}
	if nil != ip.To4() {
		return "tcp://" + ip.String() + ":" + port, false, nil
	}
	return "tcp://[" + ip.String() + "]:" + port, true, nil
}

// NewBind - bind a list of addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {
	socket4 := (*zmq.Socket)(nil)
	socket6 := (*zmq.Socket)(nil)

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := Endpoint(address)
		if nil != err {
			log.Errorf("invalid address[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - socket suitable for a server side connection
//
// any client holding the server public key may connect
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	err = socket.SetCurveServer(1)
	if nil != err {
		socket.Close()
		return nil, err
	}
	err = socket.SetCurveSecretkey(string(privateKey))
	if nil != err {
		socket.Close()
		return nil, err
	}
	err = socket.SetZapDomain(zapDomain)
	if nil != err {
		socket.Close()
		return nil, err
	}

	_ = socket.SetIdentity(string(publicKey))
	_ = socket.SetIpv6(v6)
	_ = socket.SetLinger(0)

	_ = socket.SetHeartbeatIvl(heartbeatInterval)
	_ = socket.SetHeartbeatTimeout(heartbeatTimeout)
	_ = socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}
