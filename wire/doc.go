// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - length prefixed message framing
//
// Every message is:
//
//   [4 byte big endian signed length][4 byte tag][payload]
//
// where length counts the tag and payload bytes.  The tag is ASCII,
// right padded with spaces to four characters.
package wire
