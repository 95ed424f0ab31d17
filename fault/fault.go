// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	AuthorizationError GenericError
	ExistsError        GenericError
	InvalidError       GenericError
	LengthError        GenericError
	NotFoundError      GenericError
	NotOwnerError      GenericError
	ProcessError       GenericError
	RecordError        GenericError
	StaleError         GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ProcessError("already initialised")
	CannotDecodeRecorder          = RecordError("cannot decode recorder")
	CargoIsEmpty                  = InvalidError("cargo description is empty")
	CargoTooLong                  = LengthError("cargo description too long")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ConfigurationIsNotATable      = InvalidError("configuration script must return a table")
	CryptoFailed                  = ProcessError("crypto failed")
	DatabaseIsNotSet              = ProcessError("database is not set")
	HandleNotRegistered           = NotFoundError("ciphertext handle not registered")
	IdentityNameAlreadyExists     = ExistsError("identity name already exists")
	IdentityNameNotFound          = NotFoundError("identity name not found")
	IncompatibleOptions           = InvalidError("incompatible options")
	InvalidCiphertextHandle       = InvalidError("invalid ciphertext handle")
	InvalidCiphertextProof        = InvalidError("invalid ciphertext proof")
	InvalidCount                  = InvalidError("invalid count")
	InvalidCursor                 = InvalidError("invalid cursor")
	InvalidDataDirectory          = InvalidError("invalid data directory")
	InvalidFingerprint            = InvalidError("invalid fingerprint")
	InvalidIpAddress              = InvalidError("invalid IP Address")
	InvalidKeyLength              = LengthError("invalid key length")
	InvalidNetwork                = InvalidError("invalid network")
	InvalidPasswordLength         = LengthError("invalid password length")
	InvalidPortNumber             = InvalidError("invalid port number")
	InvalidPrivateKey             = InvalidError("invalid private key")
	InvalidPrivateKeyFile         = InvalidError("invalid private key file")
	InvalidPublicKey              = InvalidError("invalid public key")
	InvalidPublicKeyFile          = InvalidError("invalid public key file")
	InvalidRecorderAddress        = InvalidError("invalid recorder address")
	InvalidSalt                   = InvalidError("invalid salt")
	InvalidSignature              = AuthorizationError("invalid signature")
	InvalidSignatureLength        = AuthorizationError("invalid signature length")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	KeyFileNotFound               = NotFoundError("key file not found")
	KeyNameIsEmpty                = InvalidError("key name is empty")
	KeyNameTooLong                = LengthError("key name too long")
	LocationIsEmpty               = InvalidError("location is empty")
	LocationTooLong               = LengthError("location too long")
	MissingParameters             = ProcessError("missing parameters")
	NotAuthorised                 = AuthorizationError("signer does not match recorder")
	NotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	NotInitialised                = ProcessError("not initialised")
	NotOwner                      = NotOwnerError("record owned by another recorder")
	NotPrivateKey                 = InvalidError("not private key")
	NotRecordPack                 = RecordError("not record pack")
	PasswordMismatch              = InvalidError("password mismatch")
	RateLimiting                  = ProcessError("rate limiting")
	RecordNotFound                = NotFoundError("record not found")
	RecordTruncated               = RecordError("record truncated")
	StaleTimestamp                = StaleError("timestamp not later than last update")
	VaultIsNotSet                 = ProcessError("vault is not set")
	WrongPassword                 = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e NotOwnerError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e StaleError) Error() string         { return string(e) }

// IsErrAuthorization - determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine the class of an error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrNotOwner - determine the class of an error
func IsErrNotOwner(e error) bool { _, ok := e.(NotOwnerError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine the class of an error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }

// IsErrStale - determine the class of an error
func IsErrStale(e error) bool { _, ok := e.(StaleError); return ok }
