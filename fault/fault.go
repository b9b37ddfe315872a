// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyRunning           = ExistsError("node is already running")
	FrameTooLarge            = LengthError("frame length exceeds maximum")
	HashMismatch             = RecordError("block hash does not match its contents")
	InsufficientDifficulty   = RecordError("block hash does not meet difficulty")
	InvalidAmount            = InvalidError("invalid amount")
	InvalidBlockFormat       = InvalidError("invalid block format")
	InvalidConfiguration     = InvalidError("configuration file must return a table")
	InvalidDifficulty        = InvalidError("invalid difficulty")
	InvalidDuration          = InvalidError("invalid duration")
	InvalidFrameLength       = LengthError("invalid frame length")
	InvalidIndex             = InvalidError("invalid block index")
	InvalidLoggerChannel     = InvalidError("invalid logger channel")
	InvalidNonce             = InvalidError("invalid nonce")
	InvalidPeerAddress       = InvalidError("invalid peer address")
	InvalidPolicy            = InvalidError("invalid acceptance policy")
	InvalidTimestamp         = InvalidError("invalid timestamp")
	InvalidTransactionFormat = InvalidError("invalid transaction format")
	MissingListenAddress     = NotFoundError("listen address is required")
	NotRunning               = ProcessError("node is not running")
	PreviousHashMismatch     = RecordError("previous hash does not match latest block")
	ShortFrame               = LengthError("frame shorter than message tag")
	TooManyConnections       = ProcessError("too many connections")
	UnknownMessageTag        = NotFoundError("unknown message tag")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool  { _, ok := e.(LengthError); return ok }
func IsErrRecord(e error) bool  { _, ok := e.(RecordError); return ok }
