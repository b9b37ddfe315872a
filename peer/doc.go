// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer - connected peers and fan-out broadcast
//
// A single registry lock guards the peer list and is held for the
// whole of a broadcast, so delivery is serialised.  Each write is
// bounded by a timeout; a peer whose write fails is removed and
// closed once the fan-out has finished and never affects delivery to
// the remaining peers.
package peer
