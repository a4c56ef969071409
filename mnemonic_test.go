// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/matryer/is"
	"github.com/tyler-smith/go-bip39"
)

const (
	zeroEntropyPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	fullEntropyPhrase = "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote"
)

// TestGenerateMnemonic_FixedEntropy checks the BIP39 reference vectors for
// all-zero and all-one entropy.
func TestGenerateMnemonic_FixedEntropy(t *testing.T) {
	is := is.New(t)

	m, err := GenerateMnemonic(bytes.NewReader(make([]byte, EntropySize)))
	is.NoErr(err)
	is.Equal(m.String(), zeroEntropyPhrase)

	m, err = GenerateMnemonic(bytes.NewReader(bytes.Repeat([]byte{0xff}, EntropySize)))
	is.NoErr(err)
	is.Equal(m.String(), fullEntropyPhrase)
}

// TestGenerateMnemonic_ReadsOnce verifies that exactly EntropySize bytes are
// consumed from the source.
func TestGenerateMnemonic_ReadsOnce(t *testing.T) {
	is := is.New(t)

	src := bytes.NewReader(make([]byte, EntropySize+8))
	_, err := GenerateMnemonic(src)
	is.NoErr(err)
	is.Equal(src.Len(), 8)
}

// TestGenerateMnemonic_ShortSource tests that a source with too few bytes fails.
func TestGenerateMnemonic_ShortSource(t *testing.T) {
	is := is.New(t)

	_, err := GenerateMnemonic(bytes.NewReader(make([]byte, EntropySize-1)))
	is.True(err != nil)

	readErr := errors.New("boom")
	_, err = GenerateMnemonic(iotest.ErrReader(readErr))
	is.True(errors.Is(err, readErr))
}

// TestGenerateMnemonic_RoundTrip checks that generated phrases validate and
// decode to the entropy they were built from.
func TestGenerateMnemonic_RoundTrip(t *testing.T) {
	is := is.New(t)

	for i := 0; i < 16; i++ {
		entropy := make([]byte, EntropySize)
		_, err := rand.Read(entropy)
		is.NoErr(err)

		m, err := GenerateMnemonic(bytes.NewReader(entropy))
		is.NoErr(err)
		is.Equal(len(m), MnemonicWords)

		parsed, err := ValidateMnemonic(m.String())
		is.NoErr(err)
		is.Equal(parsed.String(), m.String())

		decoded, err := parsed.Entropy()
		is.NoErr(err)
		is.Equal(decoded, entropy)
	}
}

// TestGenerateMnemonic_DefaultEntropy tests generation from the secure source.
func TestGenerateMnemonic_DefaultEntropy(t *testing.T) {
	is := is.New(t)

	m1, err := GenerateMnemonic(DefaultEntropy)
	is.NoErr(err)
	m2, err := GenerateMnemonic(DefaultEntropy)
	is.NoErr(err)

	is.True(bip39.IsMnemonicValid(m1.String()))
	is.True(m1.String() != m2.String())
}

// TestMnemonicFromEntropy_WrongSize tests that only 256-bit entropy is accepted.
func TestMnemonicFromEntropy_WrongSize(t *testing.T) {
	is := is.New(t)

	for _, size := range []int{0, 16, 31, 33} {
		_, err := MnemonicFromEntropy(make([]byte, size))
		is.True(err != nil)
	}
}

// TestValidateMnemonic_WordCount tests that a 23-word phrase of valid words is
// rejected for its word count.
func TestValidateMnemonic_WordCount(t *testing.T) {
	is := is.New(t)

	words := strings.Fields(zeroEntropyPhrase)
	_, err := ValidateMnemonic(strings.Join(words[:23], " "))
	is.True(errors.Is(err, ErrInvalidMnemonic))
	is.True(errors.Is(err, ErrWordCount))

	_, err = ValidateMnemonic(zeroEntropyPhrase + " abandon")
	is.True(errors.Is(err, ErrWordCount))

	_, err = ValidateMnemonic("")
	is.True(errors.Is(err, ErrWordCount))

	// A valid 12-word BIP39 phrase is still the wrong length here.
	_, err = ValidateMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	is.True(errors.Is(err, ErrWordCount))
}

// TestValidateMnemonic_UnknownWord tests rejection of words outside the table.
func TestValidateMnemonic_UnknownWord(t *testing.T) {
	is := is.New(t)

	words := strings.Fields(zeroEntropyPhrase)
	words[5] = "bitcoin"
	_, err := ValidateMnemonic(strings.Join(words, " "))
	is.True(errors.Is(err, ErrInvalidMnemonic))
	is.True(errors.Is(err, ErrUnknownWord))
	is.True(strings.Contains(err.Error(), `"bitcoin"`))
}

// TestValidateMnemonic_ChecksumBitFlip flips each of the eight checksum bits
// held in the last word and expects every variant to fail.
func TestValidateMnemonic_ChecksumBitFlip(t *testing.T) {
	is := is.New(t)

	m, err := GenerateMnemonic(DefaultEntropy)
	is.NoErr(err)

	last, ok := WordIndex(m[MnemonicWords-1])
	is.True(ok)

	for bit := 0; bit < 8; bit++ {
		words := append(Mnemonic(nil), m...)
		words[MnemonicWords-1] = Wordlist()[last^(1<<bit)]

		_, err := ValidateMnemonic(words.String())
		is.True(errors.Is(err, ErrInvalidMnemonic))
		is.True(errors.Is(err, ErrChecksumMismatch))
	}
}

// TestValidateMnemonic_Whitespace tests that extra whitespace is normalized.
func TestValidateMnemonic_Whitespace(t *testing.T) {
	is := is.New(t)

	messy := "  " + strings.ReplaceAll(zeroEntropyPhrase, " ", " \t ") + "\n"
	m, err := ValidateMnemonic(messy)
	is.NoErr(err)
	is.Equal(m.String(), zeroEntropyPhrase)
}
