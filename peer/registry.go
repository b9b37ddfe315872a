// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tinychaind/wire"
)

// Registry - the set of live peers in connection order
type Registry struct {
	sync.Mutex

	log   *logger.L
	peers []*Peer
}

// NewRegistry - an empty registry
func NewRegistry(log *logger.L) *Registry {
	return &Registry{
		log:   log,
		peers: make([]*Peer, 0),
	}
}

// Add - register a peer
func (r *Registry) Add(p *Peer) {
	r.Lock()
	r.peers = append(r.peers, p)
	r.Unlock()
	r.log.Infof("added peer: %s", p.Address())
}

// Remove - unregister a peer
//
// returns true only for the call that actually removed it
func (r *Registry) Remove(p *Peer) bool {
	r.Lock()
	removed := r.remove(p)
	r.Unlock()
	if removed {
		r.log.Infof("removed peer: %s", p.Address())
	}
	return removed
}

// must hold lock
func (r *Registry) remove(p *Peer) bool {
	for i, item := range r.peers {
		if item == p {
			r.peers = append(r.peers[:i], r.peers[i+1:]...)
			return true
		}
	}
	return false
}

// Count - number of registered peers
func (r *Registry) Count() int {
	r.Lock()
	defer r.Unlock()
	return len(r.peers)
}

// Snapshot - remote addresses in connection order
func (r *Registry) Snapshot() []string {
	r.Lock()
	defer r.Unlock()

	addresses := make([]string, len(r.peers))
	for i, p := range r.peers {
		addresses[i] = p.Address()
	}
	return addresses
}

// CloseAll - remove and close every peer
func (r *Registry) CloseAll() int {
	r.Lock()
	peers := r.peers
	r.peers = make([]*Peer, 0)
	r.Unlock()

	for _, p := range peers {
		if err := p.Close(); nil != err {
			r.log.Debugf("close peer: %s  error: %s", p.Address(), err)
		}
	}
	return len(peers)
}

// Broadcast - send one message to every peer
//
// returns the number of peers the message was delivered to
func (r *Registry) Broadcast(tag wire.Tag, payload []byte) int {
	return r.BroadcastExcept(nil, tag, payload)
}

// BroadcastExcept - send one message to every peer except one
func (r *Registry) BroadcastExcept(exclude *Peer, tag wire.Tag, payload []byte) int {
	frame := wire.Pack(tag, payload)

	delivered := 0
	failed := make([]*Peer, 0)

	r.Lock()
	for _, p := range r.peers {
		if p == exclude {
			continue
		}
		if err := p.Send(frame); nil != err {
			r.log.Warnf("send: %s to peer: %s  error: %s", tag, p.Address(), err)
			failed = append(failed, p)
			continue
		}
		delivered += 1
	}
	for _, p := range failed {
		r.remove(p)
	}
	r.Unlock()

	for _, p := range failed {
		r.log.Infof("dropped peer: %s", p.Address())
		_ = p.Close()
	}

	r.log.Debugf("broadcast: %s  delivered: %d  failed: %d", tag, delivered, len(failed))
	return delivered
}
