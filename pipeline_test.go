// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// TestPipeline_EndToEndVector runs the private, public and address stages on
// the scalar-one key.
func TestPipeline_EndToEndVector(t *testing.T) {
	is := is.New(t)

	publicHex, err := PublicKeyHexFromPrivateHex(scalarOneHex)
	is.NoErr(err)
	is.Equal(publicHex, generatorHex)

	addr, err := AddressFromPublicHex(publicHex)
	is.NoErr(err)
	is.Equal(addr, generatorAddress)
}

// TestPipeline_StagesAgree tests that running the stages one artifact at a
// time gives the same address as the in-memory chain.
func TestPipeline_StagesAgree(t *testing.T) {
	is := is.New(t)

	phrase, err := NewSeedPhrase(bytes.NewReader(bytes.Repeat([]byte{0x42}, EntropySize)))
	is.NoErr(err)
	is.Equal(len(strings.Fields(phrase)), MnemonicWords)
	is.Equal(phrase, strings.TrimSpace(phrase))

	privateHex, err := PrivateKeyHexFromPhrase(phrase, "")
	is.NoErr(err)
	is.Equal(len(privateHex), 64)
	is.Equal(privateHex, strings.ToLower(privateHex))

	publicHex, err := PublicKeyHexFromPrivateHex(privateHex + "\n")
	is.NoErr(err)
	is.Equal(len(publicHex), 66)

	addr, err := AddressFromPublicHex(publicHex)
	is.NoErr(err)

	direct, err := AddressFromPhrase(phrase, "")
	is.NoErr(err)
	is.Equal(addr, direct)

	_, err = DecodeAddress(addr)
	is.NoErr(err)
}

// TestPipeline_PassphraseChangesAddress tests that the BIP39 passphrase flows
// through to the address.
func TestPipeline_PassphraseChangesAddress(t *testing.T) {
	is := is.New(t)

	a1, err := AddressFromPhrase(zeroEntropyPhrase, "")
	is.NoErr(err)
	a2, err := AddressFromPhrase(zeroEntropyPhrase, "TREZOR")
	is.NoErr(err)
	is.True(a1 != a2)
}

// TestPipeline_Errors tests that each stage reports its own error kind.
func TestPipeline_Errors(t *testing.T) {
	is := is.New(t)

	_, err := PrivateKeyHexFromPhrase("abandon abandon", "")
	is.True(errors.Is(err, ErrInvalidMnemonic))

	_, err = PublicKeyHexFromPrivateHex("not hex")
	is.True(errors.Is(err, ErrInvalidPrivateKey))

	_, err = PublicKeyHexFromPrivateHex(curveOrderHex)
	is.True(errors.Is(err, ErrInvalidPrivateKey))

	_, err = AddressFromPublicHex("zz")
	is.True(errors.Is(err, ErrInvalidPublicKeyEncoding))

	_, err = AddressFromPublicHex(generatorHex[:64])
	is.True(errors.Is(err, ErrInvalidPublicKeyEncoding))
}

// TestStage tests stage names, files and the input chain.
func TestStage(t *testing.T) {
	is := is.New(t)

	is.Equal(StageSeed.DefaultFile(), "wallet.seed")
	is.Equal(StagePrivate.DefaultFile(), "wallet.private")
	is.Equal(StagePublic.DefaultFile(), "wallet.public")
	is.Equal(StageAddress.DefaultFile(), "wallet.address")

	_, ok := StageSeed.Input()
	is.True(!ok)

	for i, s := range Stages[1:] {
		in, ok := s.Input()
		is.True(ok)
		is.Equal(in, Stages[i])
	}
}
