// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block - a batch of transactions with linkage and proof of work
//
// The packed form carried by a "BLCK" message is:
//
//   index;timestamp;previousHash;nonce;tx1|tx2|...
//
// the hash is not transmitted, a receiver recomputes it
package block
