// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"io"
)

// DefaultEntropy is the secure random source used when no other source is
// given.
var DefaultEntropy io.Reader = rand.Reader

// SSHKeyEntropy returns an entropy source that yields the 32-byte seed of an
// ed25519 private key, so the same key always produces the same mnemonic.
//
// If keyPassphrase is non-empty it is hashed with SHA-256 and XORed into the
// key seed, giving a different mnemonic per passphrase for the same key.
func SSHKeyEntropy(key *ed25519.PrivateKey, keyPassphrase string) io.Reader {
	seed := key.Seed()
	if keyPassphrase != "" {
		seed = combineSeedPassphrase(seed, keyPassphrase)
	}
	return bytes.NewReader(seed)
}

func combineSeedPassphrase(keySeed []byte, passphrase string) []byte {
	passphraseHash := sha256.Sum256([]byte(passphrase))

	combined := make([]byte, len(keySeed))
	for i := range keySeed {
		combined[i] = keySeed[i] ^ passphraseHash[i]
	}
	return combined
}
