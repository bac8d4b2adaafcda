// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// ledger errors - keep in alphabetic order
var (
	ErrArithmeticOverflow = ArithmeticError("arithmetic overflow")
	ErrDivisionByZero     = ArithmeticError("division by zero")
	ErrInsufficientShares = InvalidError("insufficient shares")
	ErrPayoutFailed       = ProcessError("payout failed")
	ErrUnauthorised       = PermissionError("unauthorised")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyDeployed               = ExistsError("product already deployed")
	ErrAlreadyInitialised            = ExistsError("already initialised")
	ErrCannotDecodeAccount           = RecordError("cannot decode account")
	ErrChecksumMismatch              = ProcessError("checksum mismatch")
	ErrConnectionLimitExceeded       = InvalidError("connection limit exceeded")
	ErrDatabaseIsNotSet              = ProcessError("database is not set")
	ErrEventNotFound                 = NotFoundError("event not found")
	ErrInsufficientFunds             = InvalidError("insufficient funds")
	ErrInvalidChain                  = InvalidError("invalid chain")
	ErrInvalidCount                  = InvalidError("invalid count")
	ErrInvalidCursor                 = InvalidError("invalid cursor")
	ErrInvalidEventKind              = RecordError("invalid event kind")
	ErrInvalidIPAddress              = InvalidError("invalid IP address")
	ErrInvalidInstruction            = RecordError("invalid instruction")
	ErrInvalidKeyLength              = LengthError("invalid key length")
	ErrInvalidKeyType                = InvalidError("invalid key type")
	ErrInvalidLoggerChannel          = InvalidError("invalid logger channel")
	ErrInvalidNonce                  = InvalidError("invalid nonce")
	ErrInvalidPrivateKey             = InvalidError("invalid private key")
	ErrInvalidPrivateKeyFile         = InvalidError("invalid private key file")
	ErrInvalidProductName            = InvalidError("invalid product name")
	ErrInvalidProofLength            = LengthError("invalid proof length")
	ErrInvalidPublicKeyFile          = InvalidError("invalid public key file")
	ErrInvalidSignature              = InvalidError("invalid signature")
	ErrKeyFileAlreadyExists          = ExistsError("key file already exists")
	ErrLocationTooLong               = LengthError("location too long")
	ErrMissingParameters             = InvalidError("missing parameters")
	ErrNotAvailableDuringSynchronise = InvalidError("not available during synchronise")
	ErrNotAvailableOnLiveChain       = InvalidError("not available on live chain")
	ErrNotInitialised                = NotFoundError("not initialised")
	ErrNotPublicKey                  = RecordError("not public key")
	ErrProductNotDeployed            = NotFoundError("product not deployed")
	ErrProductNotFound               = NotFoundError("product not found")
	ErrRateLimiting                  = InvalidError("rate limiting")
	ErrSignatureTooLong              = LengthError("signature too long")
	ErrTransactionAlreadyExists      = ExistsError("transaction already exists")
	ErrTransactionAlreadyInUse       = ProcessError("transaction already in use")
	ErrTruncatedRecord               = RecordError("truncated record")
	ErrUpgradeNotActivated           = InvalidError("upgrade not activated")
	ErrUpgradeNotPrepared            = InvalidError("upgrade not prepared")
	ErrUpgradeSameBlock              = InvalidError("upgrade already scheduled in this block, retry in the next block")
	ErrVersionMismatch               = InvalidError("product version mismatch")
	ErrWalletNotAvailable            = ProcessError("wallet not available")
	ErrWrongNetworkForPublicKey      = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool { _, ok := e.(ArithmeticError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
