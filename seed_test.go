// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/tyler-smith/go-bip39"
)

func mustMnemonic(t *testing.T, phrase string) Mnemonic {
	t.Helper()
	m, err := ValidateMnemonic(phrase)
	if err != nil {
		t.Fatalf("ValidateMnemonic(%q): %v", phrase, err)
	}
	return m
}

// TestDeriveSeed_MatchesBIP39 compares the seed against the go-bip39
// reference implementation, with and without a passphrase.
func TestDeriveSeed_MatchesBIP39(t *testing.T) {
	is := is.New(t)

	for _, phrase := range []string{zeroEntropyPhrase, fullEntropyPhrase} {
		m := mustMnemonic(t, phrase)
		for _, pass := range []string{"", "TREZOR", "correct horse battery staple"} {
			seed := DeriveSeed(m, pass)
			is.Equal(seed[:], bip39.NewSeed(phrase, pass))
		}
	}
}

// TestDeriveSeed_Deterministic verifies the same inputs give the same seed.
func TestDeriveSeed_Deterministic(t *testing.T) {
	is := is.New(t)

	m, err := GenerateMnemonic(DefaultEntropy)
	is.NoErr(err)

	is.Equal(DeriveSeed(m, "pass"), DeriveSeed(m, "pass"))
	is.Equal(len(DeriveSeed(m, "").Hex()), 2*SeedSize)
}

// TestDeriveSeed_PassphraseChangesSeed verifies different passphrases give
// different seeds.
func TestDeriveSeed_PassphraseChangesSeed(t *testing.T) {
	is := is.New(t)

	m := mustMnemonic(t, zeroEntropyPhrase)
	is.True(DeriveSeed(m, "") != DeriveSeed(m, "passphrase1"))
	is.True(DeriveSeed(m, "passphrase1") != DeriveSeed(m, "passphrase2"))
}

// TestDeriveSeed_NFKD tests that a composed passphrase and its decomposed
// form derive the same seed.
func TestDeriveSeed_NFKD(t *testing.T) {
	is := is.New(t)

	m := mustMnemonic(t, zeroEntropyPhrase)
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	is.Equal(DeriveSeed(m, composed), DeriveSeed(m, decomposed))
}
