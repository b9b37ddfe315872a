// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// AutoMiner - background process calling AutoMine periodically
type AutoMiner struct {
	log      *logger.L
	node     *Node
	interval time.Duration
}

// NewAutoMiner - create a miner process for a node
//
// a zero interval uses the configured auto_mine_interval
func NewAutoMiner(n *Node, interval time.Duration) *AutoMiner {
	if interval <= 0 {
		interval = n.settings.autoMineInterval
	}
	return &AutoMiner{
		log:      logger.New("autominer"),
		node:     n,
		interval: interval,
	}
}

// Run - background.Process
func (a *AutoMiner) Run(args interface{}, shutdown <-chan struct{}) {
	log := a.log

	log.Infof("starting  interval: %s", a.interval)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			b, err := a.node.AutoMine()
			if nil != err {
				log.Errorf("auto mine error: %s", err)
			} else if nil != b {
				log.Infof("auto mined block: %d", b.Index)
			}
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
