// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer_test

import (
	"net"
	"testing"
	"time"

	"github.com/bitmark-inc/tinychaind/peer"
)

const writeTimeout = time.Second

// connected pair: the local side wrapped as a peer and the raw
// remote side for reading what the peer sends
func connectedPair(t *testing.T) (*peer.Peer, net.Conn) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	defer listener.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := listener.Accept()
		if nil != err {
			close(accepted)
			return
		}
		accepted <- conn
	}()

	local, err := net.Dial("tcp", listener.Addr().String())
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	remote, ok := <-accepted
	if !ok {
		t.Fatal("accept failed")
	}

	p := peer.New(local, writeTimeout)
	p.Open()
	return p, remote
}
