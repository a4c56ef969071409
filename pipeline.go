// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package walletgen derives a single Bitcoin pay-to-pubkey-hash address from
// a freshly generated 24-word mnemonic:
//
//	mnemonic -> seed -> private key -> public key -> address
//
// Each step is a pure function of the previous step's text artifact, so a
// caller can persist every artifact and resume from any of them. The package
// does no file I/O and never logs.
//
// The private key is the first 32 bytes of the BIP39 seed. No BIP32
// derivation path is applied, so addresses will not match those of HD
// wallets restored from the same phrase.
package walletgen

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Stage identifies one step of the derivation chain and the artifact it
// produces.
type Stage int

// Stages in derivation order.
const (
	StageSeed Stage = iota
	StagePrivate
	StagePublic
	StageAddress
)

// Stages lists every stage in derivation order.
var Stages = []Stage{StageSeed, StagePrivate, StagePublic, StageAddress}

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StagePrivate:
		return "private"
	case StagePublic:
		return "public"
	case StageAddress:
		return "address"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// DefaultFile returns the file name the stage's artifact is saved under.
func (s Stage) DefaultFile() string {
	return "wallet." + s.String()
}

// Input returns the stage whose artifact s consumes. The seed stage has no
// input and returns false.
func (s Stage) Input() (Stage, bool) {
	if s <= StageSeed || s > StageAddress {
		return 0, false
	}
	return s - 1, true
}

// NewSeedPhrase generates a mnemonic from src and returns the sentence.
func NewSeedPhrase(src io.Reader) (string, error) {
	m, err := GenerateMnemonic(src)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// PrivateKeyHexFromPhrase validates phrase, derives its seed with passphrase
// and returns the private key as 64 lowercase hex characters.
func PrivateKeyHexFromPhrase(phrase, passphrase string) (string, error) {
	m, err := ValidateMnemonic(phrase)
	if err != nil {
		return "", err
	}
	priv, _, err := DeriveKeyPair(DeriveSeed(m, passphrase))
	if err != nil {
		return "", err
	}
	return priv.Hex(), nil
}

// PublicKeyHexFromPrivateHex returns the compressed public key, as 66
// lowercase hex characters, for a hex-encoded private key.
func PublicKeyHexFromPrivateHex(privateHex string) (string, error) {
	b, err := hex.DecodeString(strings.TrimSpace(privateHex))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	priv, err := PrivateKeyFromBytes(b)
	if err != nil {
		return "", err
	}
	return priv.PubKey().Hex(), nil
}

// AddressFromPublicHex returns the address for a hex-encoded compressed
// public key.
func AddressFromPublicHex(publicHex string) (string, error) {
	b, err := hex.DecodeString(strings.TrimSpace(publicHex))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKeyEncoding, err)
	}
	pub, err := PublicKeyFromBytes(b)
	if err != nil {
		return "", err
	}
	return EncodeAddress(pub), nil
}

// AddressFromPhrase runs the whole chain after the seed stage in memory.
func AddressFromPhrase(phrase, passphrase string) (string, error) {
	privateHex, err := PrivateKeyHexFromPhrase(phrase, passphrase)
	if err != nil {
		return "", err
	}
	publicHex, err := PublicKeyHexFromPrivateHex(privateHex)
	if err != nil {
		return "", err
	}
	return AddressFromPublicHex(publicHex)
}
