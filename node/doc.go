// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - peer to peer node
//
// A Node owns the peer registry, the reservoir of pending
// transactions and the chain.  It runs one accept loop and one
// receive loop per connected peer; messages from one peer are
// processed strictly in order.  Mining and broadcast run on the
// caller's goroutine.
package node
