// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import "errors"

var (
	// ErrInvalidMnemonic is returned when a phrase has the wrong word count,
	// contains a word outside the table, or fails its checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrInvalidPrivateKey is returned when a scalar is zero or not below the
	// secp256k1 group order.
	ErrInvalidPrivateKey = errors.New("invalid private key")
	// ErrInvalidPublicKeyEncoding is returned for malformed compressed points
	// and points that are not on the curve.
	ErrInvalidPublicKeyEncoding = errors.New("invalid public key encoding")
	// ErrInvalidAddress is returned when an address is not valid Base58Check.
	ErrInvalidAddress = errors.New("invalid address")
)

// Reasons wrapped together with one of the errors above.
var (
	ErrWordCount        = errors.New("wrong word count")
	ErrUnknownWord      = errors.New("unknown word")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrInvalidCharacter = errors.New("invalid base58 character")
	ErrInvalidLength    = errors.New("invalid length")
)
