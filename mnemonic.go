// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	// EntropySize is the number of entropy bytes behind a mnemonic (256 bits).
	EntropySize = 32
	// MnemonicWords is the number of words in a mnemonic: 256 entropy bits
	// plus an 8-bit checksum, in groups of 11 bits.
	MnemonicWords = 24
)

// Mnemonic is an ordered sequence of MnemonicWords words from the active
// word table whose trailing checksum bits match its entropy.
type Mnemonic []string

// String returns the words joined by single spaces.
func (m Mnemonic) String() string {
	return strings.Join(m, " ")
}

// Entropy decodes the mnemonic back to its 32 bytes of entropy, verifying
// the checksum on the way.
func (m Mnemonic) Entropy() ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(m.String())
	if err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonic, ErrChecksumMismatch)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return entropy, nil
}

// GenerateMnemonic reads EntropySize bytes from src and encodes them as a
// 24-word mnemonic. The checksum is the first byte of SHA-256(entropy).
//
// src is normally crypto/rand.Reader; tests pass a fixed reader to get a
// reproducible phrase.
func GenerateMnemonic(src io.Reader) (Mnemonic, error) {
	entropy := make([]byte, EntropySize)
	if _, err := io.ReadFull(src, entropy); err != nil {
		return nil, fmt.Errorf("could not read entropy: %w", err)
	}
	return MnemonicFromEntropy(entropy)
}

// MnemonicFromEntropy encodes exactly EntropySize bytes of entropy as a
// mnemonic.
func MnemonicFromEntropy(entropy []byte) (Mnemonic, error) {
	if len(entropy) != EntropySize {
		return nil, fmt.Errorf("entropy must be %d bytes, got %d", EntropySize, len(entropy))
	}
	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("could not create a mnemonic set of words: %w", err)
	}
	return Mnemonic(strings.Fields(words)), nil
}

// ValidateMnemonic parses a phrase into a Mnemonic. Words may be separated by
// any amount of whitespace. The returned error wraps ErrInvalidMnemonic and
// one of ErrWordCount, ErrUnknownWord or ErrChecksumMismatch.
func ValidateMnemonic(phrase string) (Mnemonic, error) {
	words := strings.Fields(phrase)
	if len(words) != MnemonicWords {
		return nil, fmt.Errorf("%w: %w: got %d, want %d", ErrInvalidMnemonic, ErrWordCount, len(words), MnemonicWords)
	}
	for _, w := range words {
		if _, ok := WordIndex(w); !ok {
			return nil, fmt.Errorf("%w: %w %q", ErrInvalidMnemonic, ErrUnknownWord, w)
		}
	}

	m := Mnemonic(words)
	if _, err := m.Entropy(); err != nil {
		return nil, err
	}
	return m, nil
}
