// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length of a derived seed in bytes (512 bits).
	SeedSize = 64

	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// Seed is the 64-byte value stretched from a mnemonic and passphrase.
type Seed [SeedSize]byte

// Hex returns the seed as lowercase hexadecimal.
func (s Seed) Hex() string {
	return hex.EncodeToString(s[:])
}

// DeriveSeed stretches a mnemonic into a seed with PBKDF2-HMAC-SHA512 over
// 2048 iterations. The password is the space-joined sentence and the salt is
// "mnemonic" followed by passphrase, both in Unicode NFKD form.
func DeriveSeed(m Mnemonic, passphrase string) Seed {
	password := norm.NFKD.String(m.String())
	salt := norm.NFKD.String(seedSaltPrefix + passphrase)

	var seed Seed
	copy(seed[:], pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedSize, sha512.New))
	return seed
}
