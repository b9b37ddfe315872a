// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - pending transactions not yet in a block
//
// Transactions are only ever removed as a whole batch by DrainAll,
// which is a single critical section so a transaction is claimed by
// exactly one drain.
package reservoir
