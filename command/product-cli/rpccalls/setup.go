// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a productd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the productd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call - one request, echoing both sides when verbose
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJSON(method+" request", arguments)
	if err := c.client.Call(method, arguments, reply); nil != err {
		return err
	}
	c.printJSON(method+" reply", reply)
	return nil
}

func (c *Client) printJSON(title string, message interface{}) {
	if !c.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
