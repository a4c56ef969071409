// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	// PrivateKeySize is the length of a serialized private scalar.
	PrivateKeySize = 32
	// PublicKeySize is the length of a SEC1 compressed public key.
	PublicKeySize = 33

	pubKeyEvenPrefix = 0x02
	pubKeyOddPrefix  = 0x03
)

// PrivateKey is a secp256k1 scalar in the range [1, n-1].
type PrivateKey struct {
	key *btcec.PrivateKey
}

// PublicKey is a point on secp256k1 other than the point at infinity.
type PublicKey struct {
	key *btcec.PublicKey
}

// DeriveKeyPair takes the first 32 bytes of seed as the private scalar and
// computes its public point.
//
// No hierarchical derivation path is applied, so the result does not match
// BIP32/BIP44 wallets restored from the same mnemonic.
func DeriveKeyPair(seed Seed) (PrivateKey, PublicKey, error) {
	priv, err := PrivateKeyFromBytes(seed[:PrivateKeySize])
	if err != nil {
		return PrivateKey{}, PublicKey{}, err
	}
	return priv, priv.PubKey(), nil
}

// PrivateKeyFromBytes parses a 32-byte big-endian scalar. Zero and values
// greater than or equal to the curve order are rejected rather than reduced.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return PrivateKey{}, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidPrivateKey, PrivateKeySize, len(b))
	}

	var scalar btcec.ModNScalar
	overflow := scalar.SetByteSlice(b)
	defer scalar.Zero()
	if overflow {
		return PrivateKey{}, fmt.Errorf("%w: scalar is not below the curve order", ErrInvalidPrivateKey)
	}
	if scalar.IsZero() {
		return PrivateKey{}, fmt.Errorf("%w: scalar is zero", ErrInvalidPrivateKey)
	}

	key, _ := btcec.PrivKeyFromBytes(b)
	return PrivateKey{key: key}, nil
}

// PubKey returns the public point scalar·G.
func (k PrivateKey) PubKey() PublicKey {
	return PublicKey{key: k.key.PubKey()}
}

// Bytes returns the 32-byte big-endian scalar.
func (k PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

// Hex returns the scalar as 64 lowercase hex characters.
func (k PrivateKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

// PublicKeyFromBytes parses a SEC1 compressed point: a 0x02 (even Y) or 0x03
// (odd Y) prefix followed by the 32-byte X coordinate.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidPublicKeyEncoding, PublicKeySize, len(b))
	}
	if b[0] != pubKeyEvenPrefix && b[0] != pubKeyOddPrefix {
		return PublicKey{}, fmt.Errorf("%w: unknown prefix 0x%02x", ErrInvalidPublicKeyEncoding, b[0])
	}

	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidPublicKeyEncoding, err)
	}
	return PublicKey{key: key}, nil
}

// Bytes returns the 33-byte compressed encoding.
func (k PublicKey) Bytes() []byte {
	return k.key.SerializeCompressed()
}

// Hex returns the compressed encoding as 66 lowercase hex characters.
func (k PublicKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

// IsEqual reports whether both keys are the same point.
func (k PublicKey) IsEqual(other PublicKey) bool {
	return k.key.IsEqual(other.key)
}
