// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tinychaind/peer"
	"github.com/bitmark-inc/tinychaind/wire"
)

func TestStateTransitions(t *testing.T) {
	p, remote := connectedPair(t)
	defer remote.Close()

	assert.Equal(t, peer.Open, p.State(), "not open")
	assert.Nil(t, p.Close(), "close error")
	assert.Equal(t, peer.Closed, p.State(), "not closed")
	assert.Nil(t, p.Close(), "second close error")
	assert.False(t, p.Open(), "closed peer reopened")
	assert.Equal(t, peer.Closed, p.State(), "closed is not terminal")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Connecting", peer.Connecting.String(), "wrong name")
	assert.Equal(t, "Open", peer.Open.String(), "wrong name")
	assert.Equal(t, "Closed", peer.Closed.String(), "wrong name")
	assert.Equal(t, "*Unknown*", peer.State(99).String(), "wrong name")
}

func TestSendReceive(t *testing.T) {
	p, remote := connectedPair(t)
	defer p.Close()

	other := peer.New(remote, writeTimeout)
	defer other.Close()

	assert.Nil(t, p.Send(wire.Pack(wire.TagTransaction, []byte("alice->bob:10"))), "send error")

	m, err := other.Receive(wire.DefaultMaximumLength)
	assert.Nil(t, err, "receive error")
	assert.Equal(t, wire.TagTransaction, m.Tag, "wrong tag")
	assert.Equal(t, "alice->bob:10", string(m.Payload), "wrong payload")
}
