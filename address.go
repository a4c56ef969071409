// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mr-tron/base58"
)

const (
	// AddressPayloadSize is the version byte plus the 20-byte hash160.
	AddressPayloadSize = 1 + 20
	// AddressChecksumSize is the number of double-SHA256 bytes appended to
	// the payload.
	AddressChecksumSize = 4
)

// AddressVersion is the mainnet pay-to-pubkey-hash version byte (0x00).
var AddressVersion = chaincfg.MainNetParams.PubKeyHashAddrID

// EncodeAddress returns the Base58Check pay-to-pubkey-hash address of pk:
// Base58(0x00 ‖ RIPEMD160(SHA256(pk)) ‖ checksum), where checksum is the first
// four bytes of SHA256(SHA256(0x00 ‖ hash160)).
func EncodeAddress(pk PublicKey) string {
	payload := make([]byte, 0, AddressPayloadSize+AddressChecksumSize)
	payload = append(payload, AddressVersion)
	payload = append(payload, btcutil.Hash160(pk.Bytes())...)
	payload = append(payload, addressChecksum(payload)...)
	return btcbase58.Encode(payload)
}

// DecodeAddress reverses EncodeAddress and returns the 21-byte payload
// (version byte followed by the hash160). The returned error wraps
// ErrInvalidAddress and one of ErrInvalidCharacter, ErrInvalidLength or
// ErrChecksumMismatch.
func DecodeAddress(address string) ([]byte, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: %w: empty address", ErrInvalidAddress, ErrInvalidLength)
	}
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrInvalidAddress, ErrInvalidCharacter, err)
	}
	if len(raw) != AddressPayloadSize+AddressChecksumSize {
		return nil, fmt.Errorf("%w: %w: decoded %d bytes, want %d",
			ErrInvalidAddress, ErrInvalidLength, len(raw), AddressPayloadSize+AddressChecksumSize)
	}

	payload, checksum := raw[:AddressPayloadSize], raw[AddressPayloadSize:]
	if !bytes.Equal(addressChecksum(payload), checksum) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, ErrChecksumMismatch)
	}
	return payload, nil
}

func addressChecksum(payload []byte) []byte {
	return chainhash.DoubleHashB(payload)[:AddressChecksumSize]
}
