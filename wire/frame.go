// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/bitmark-inc/tinychaind/fault"
)

// LengthSize - bytes in the length prefix
const LengthSize = 4

// DefaultMaximumLength - largest body accepted unless configured
const DefaultMaximumLength = 16 * 1024 * 1024

// Message - a decoded frame
type Message struct {
	Tag     Tag
	Payload []byte
}

// Pack - create a complete frame ready to write
func Pack(tag Tag, payload []byte) []byte {
	t := NewTag(string(tag))
	bodyLength := TagLength + len(payload)

	packed := make([]byte, LengthSize, LengthSize+bodyLength)
	binary.BigEndian.PutUint32(packed, uint32(int32(bodyLength)))
	packed = append(packed, string(t)...)
	packed = append(packed, payload...)
	return packed
}

// WriteMessage - write one complete frame
func WriteMessage(w io.Writer, tag Tag, payload []byte) error {
	if TagLength+len(payload) > math.MaxInt32 {
		return fault.FrameTooLarge
	}
	_, err := w.Write(Pack(tag, payload))
	return err
}

// ReadMessage - read one complete frame
//
// any error means the stream can no longer be trusted and must be
// closed
func ReadMessage(r io.Reader, maximumLength int) (*Message, error) {
	var prefix [LengthSize]byte
	if _, err := io.ReadFull(r, prefix[:]); nil != err {
		return nil, err
	}

	length := int(int32(binary.BigEndian.Uint32(prefix[:])))
	switch {
	case length <= 0:
		return nil, fault.InvalidFrameLength
	case length < TagLength:
		return nil, fault.ShortFrame
	case maximumLength > 0 && length > maximumLength:
		return nil, fault.FrameTooLarge
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); nil != err {
		if io.EOF == err {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	m := &Message{
		Tag:     Tag(body[:TagLength]),
		Payload: body[TagLength:],
	}
	return m, nil
}
