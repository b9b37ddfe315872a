// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - fingerprint of a block
//
// The digest is the SHA3-256 of a canonical text record of all block
// fields except the digest itself, rendered as lower case hex.
// Difficulty is the count of leading '0' characters of that text.
package blockdigest
