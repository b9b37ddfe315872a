// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"net"
	"sync"
	"time"

	"github.com/bitmark-inc/tinychaind/wire"
)

// Peer - one connection to a remote node
type Peer struct {
	sync.RWMutex

	conn         net.Conn
	address      string
	state        State
	writeTimeout time.Duration
	closeOnce    sync.Once
}

// New - wrap a connection, zero writeTimeout means no write deadline
func New(conn net.Conn, writeTimeout time.Duration) *Peer {
	return &Peer{
		conn:         conn,
		address:      conn.RemoteAddr().String(),
		state:        Connecting,
		writeTimeout: writeTimeout,
	}
}

// Address - remote address
func (p *Peer) Address() string {
	return p.address
}

// State - current state
func (p *Peer) State() State {
	p.RLock()
	defer p.RUnlock()
	return p.state
}

// Open - mark the connection ready for traffic
//
// returns false if the peer was already closed
func (p *Peer) Open() bool {
	p.Lock()
	defer p.Unlock()
	if Closed == p.state {
		return false
	}
	p.state = Open
	return true
}

// Send - write a packed frame
func (p *Peer) Send(frame []byte) error {
	if p.writeTimeout > 0 {
		if err := p.conn.SetWriteDeadline(time.Now().Add(p.writeTimeout)); nil != err {
			return err
		}
	}
	_, err := p.conn.Write(frame)
	return err
}

// Receive - block until the next complete frame
func (p *Peer) Receive(maximumLength int) (*wire.Message, error) {
	return wire.ReadMessage(p.conn, maximumLength)
}

// Close - close the connection, only the first call has any effect
func (p *Peer) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.Lock()
		p.state = Closed
		p.Unlock()
		err = p.conn.Close()
	})
	return err
}
