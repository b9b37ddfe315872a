// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"io"
	"net"

	"github.com/bitmark-inc/tinychaind/fault"
	"github.com/bitmark-inc/tinychaind/peer"
)

// Connect - dial a peer and start receiving from it
func (n *Node) Connect(address string) error {
	if !n.IsRunning() {
		return fault.NotRunning
	}

	hostPort, err := ParseAddress(address)
	if nil != err {
		return err
	}

	dialer := net.Dialer{
		Timeout: n.settings.dialTimeout,
	}
	conn, err := dialer.Dial("tcp", hostPort)
	if nil != err {
		n.log.Warnf("connect to: %s  error: %s", hostPort, err)
		return err
	}

	_, err = n.open(conn)
	return err
}

func (n *Node) acceptLoop(ctx context.Context, listener net.Listener) {
	defer n.loops.Done()

	log := n.log

	for {
		if nil != n.limiter {
			if err := n.limiter.Wait(ctx); nil != err {
				log.Infof("accept stopped: %s", err)
				return
			}
		}

		conn, err := listener.Accept()
		if nil != err {
			if n.IsRunning() {
				log.Criticalf("accept error: %s", err)
			} else {
				log.Infof("listener closed")
			}
			return
		}

		maximum := n.settings.maximumConnections
		if maximum > 0 && n.registry.Count() >= maximum {
			log.Warnf("refused: %s  connections: %d  error: %s", conn.RemoteAddr(), maximum, fault.TooManyConnections)
			conn.Close()
			continue
		}

		if _, err := n.open(conn); nil != err {
			continue
		}
		n.counts.connections.Increment()
	}
}

// register a connection and start its receive loop
//
// registration happens under the read lock so that Stop either sees
// the peer in the registry or open sees the node is not running
func (n *Node) open(conn net.Conn) (*peer.Peer, error) {
	p := peer.New(conn, n.settings.writeTimeout)

	n.RLock()
	if !n.running {
		n.RUnlock()
		p.Close()
		return nil, fault.NotRunning
	}
	n.registry.Add(p)
	n.loops.Add(1)
	n.RUnlock()

	p.Open()

	go n.receiveLoop(p)

	return p, nil
}

// one per peer; messages are handled in arrival order
func (n *Node) receiveLoop(p *peer.Peer) {
	defer n.loops.Done()

	log := n.log
	log.Infof("peer: %s  state: %s", p.Address(), p.State())

	for {
		message, err := p.Receive(n.settings.maximumMessageSize)
		if nil != err {
			if io.EOF == err || peer.Closed == p.State() {
				log.Infof("peer: %s  disconnected", p.Address())
			} else if fault.IsErrLength(err) {
				log.Warnf("peer: %s  invalid frame: %s", p.Address(), err)
			} else {
				log.Warnf("peer: %s  receive error: %s", p.Address(), err)
			}
			break
		}

		err = n.process(p, message)
		if nil == err {
			continue
		}
		if fault.IsErrRecord(err) {
			n.counts.blocksRejected.Increment()
			log.Warnf("peer: %s  block rejected: %s", p.Address(), err)
		} else {
			n.counts.dropped.Increment()
			log.Warnf("peer: %s  tag: %q  dropped: %s", p.Address(), message.Tag.String(), err)
		}
	}

	n.registry.Remove(p)
	p.Close()

	log.Infof("peer: %s  state: %s", p.Address(), p.State())
}
