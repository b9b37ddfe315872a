// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"

	"github.com/bitmark-inc/tinychaind/transaction"
)

// Reservoir - insertion ordered queue of pending transactions
type Reservoir struct {
	sync.Mutex
	pending []transaction.Transaction
}

// New - an empty reservoir
func New() *Reservoir {
	return &Reservoir{
		pending: make([]transaction.Transaction, 0),
	}
}

// Add - append a transaction, duplicates are kept
func (r *Reservoir) Add(tx transaction.Transaction) {
	r.Lock()
	r.pending = append(r.pending, tx)
	r.Unlock()
}

// DrainAll - remove and return everything currently queued
func (r *Reservoir) DrainAll() []transaction.Transaction {
	r.Lock()
	defer r.Unlock()

	drained := r.pending
	r.pending = make([]transaction.Transaction, 0)
	return drained
}

// Count - number of pending transactions
func (r *Reservoir) Count() int {
	r.Lock()
	defer r.Unlock()
	return len(r.pending)
}

// Snapshot - copy of the pending transactions
func (r *Reservoir) Snapshot() []transaction.Transaction {
	r.Lock()
	defer r.Unlock()

	txs := make([]transaction.Transaction, len(r.pending))
	copy(txs, r.pending)
	return txs
}
