// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - value transfer records
//
// The textual form "<from>-><to>:<amount>" is used both on the wire
// and at the console.  Splitting is done on both "->" and ":" so a
// name that itself contains either delimiter cannot be represented;
// this is a limitation of the wire format.
package transaction
