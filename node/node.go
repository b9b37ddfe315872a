// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"io"
	"io/ioutil"
	"net"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tinychaind/block"
	"github.com/bitmark-inc/tinychaind/chain"
	"github.com/bitmark-inc/tinychaind/fault"
	"github.com/bitmark-inc/tinychaind/peer"
	"github.com/bitmark-inc/tinychaind/reservoir"
)

// Node - a single participant in the network
type Node struct {
	sync.RWMutex // protects running and listener

	log      *logger.L
	settings *settings
	hasher   block.Hasher

	outputLock sync.Mutex
	output     io.Writer

	registry  *peer.Registry
	reservoir *reservoir.Reservoir
	chain     *chain.Chain

	seen    *cache.Cache
	limiter *rate.Limiter
	counts  counts

	listener net.Listener
	running  bool
	cancel   context.CancelFunc

	lifecycle sync.Mutex     // serialises Start and Stop
	loops     sync.WaitGroup // accept loop and receive loops
}

// New - create a node from its configuration
//
// the chain starts with the genesis block; nothing listens until Start
func New(conf *Configuration, hasher block.Hasher, output io.Writer) (*Node, error) {
	log := logger.New("node")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	peerLog := logger.New("peer")
	if nil == peerLog {
		return nil, fault.InvalidLoggerChannel
	}

	s, err := conf.settings()
	if nil != err {
		return nil, err
	}

	c, err := chain.New(s.difficulty, s.policy, hasher)
	if nil != err {
		return nil, err
	}

	var limiter *rate.Limiter
	if s.acceptRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.acceptRate), s.acceptBurst)
	}

	if nil == output {
		output = ioutil.Discard
	}

	n := &Node{
		log:       log,
		settings:  s,
		hasher:    hasher,
		output:    output,
		registry:  peer.NewRegistry(peerLog),
		reservoir: reservoir.New(),
		chain:     c,
		seen:      cache.New(s.seenExpiry, 2*s.seenExpiry),
		limiter:   limiter,
	}

	log.Infof("difficulty: %d  policy: %s  miner: %t  relay: %t", s.difficulty, s.policy, s.miner, s.relay)
	log.Infof("genesis: %s", c.Latest().Hash)

	return n, nil
}

// Start - listen for incoming connections
func (n *Node) Start() error {
	n.lifecycle.Lock()
	defer n.lifecycle.Unlock()

	n.Lock()
	defer n.Unlock()

	if n.running {
		return fault.AlreadyRunning
	}

	listener, err := net.Listen("tcp", n.settings.listen)
	if nil != err {
		n.log.Errorf("listen on: %q  error: %s", n.settings.listen, err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())

	n.listener = listener
	n.running = true
	n.cancel = cancel

	n.log.Infof("listening on: %s", listener.Addr())

	n.loops.Add(1)
	go n.acceptLoop(ctx, listener)

	return nil
}

// Stop - close the listener and every peer connection
//
// returns after the accept loop and all receive loops have finished
func (n *Node) Stop() error {
	n.lifecycle.Lock()
	defer n.lifecycle.Unlock()

	n.Lock()
	if !n.running {
		n.Unlock()
		return fault.NotRunning
	}
	n.running = false
	listener := n.listener
	n.listener = nil
	n.cancel()
	n.cancel = nil
	n.Unlock()

	if err := listener.Close(); nil != err {
		n.log.Warnf("listener close error: %s", err)
	}
	closed := n.registry.CloseAll()

	n.loops.Wait()

	n.log.Infof("stopped  closed peers: %d", closed)
	return nil
}

// IsRunning - true between Start and Stop
func (n *Node) IsRunning() bool {
	n.RLock()
	defer n.RUnlock()
	return n.running
}

// IsMiner - true if AutoMine produces blocks
func (n *Node) IsMiner() bool {
	return n.settings.miner
}

// Address - the bound listener address or nil if not listening
func (n *Node) Address() net.Addr {
	n.RLock()
	defer n.RUnlock()
	if nil == n.listener {
		return nil
	}
	return n.listener.Addr()
}

// Peers - remote addresses of connected peers
func (n *Node) Peers() []string {
	return n.registry.Snapshot()
}

// Chain - the node's chain
func (n *Node) Chain() *chain.Chain {
	return n.chain
}

// Reservoir - the node's pending transactions
func (n *Node) Reservoir() *reservoir.Reservoir {
	return n.reservoir
}

// Registry - the node's peers
func (n *Node) Registry() *peer.Registry {
	return n.registry
}

// PrintChain - render the chain to the node output
func (n *Node) PrintChain() {
	n.outputLock.Lock()
	defer n.outputLock.Unlock()

	if err := n.chain.Render(n.output); nil != err {
		n.log.Warnf("print chain error: %s", err)
	}
}
