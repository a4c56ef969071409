// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// WordlistSize is the number of entries in every mnemonic word table.
const WordlistSize = 2048

var wordLists = map[lang.Tag][]string{
	lang.Chinese:              wordlists.ChineseSimplified,
	lang.SimplifiedChinese:    wordlists.ChineseSimplified,
	lang.TraditionalChinese:   wordlists.ChineseTraditional,
	lang.Czech:                wordlists.Czech,
	lang.AmericanEnglish:      wordlists.English,
	lang.BritishEnglish:       wordlists.English,
	lang.English:              wordlists.English,
	lang.French:               wordlists.French,
	lang.Italian:              wordlists.Italian,
	lang.Japanese:             wordlists.Japanese,
	lang.Korean:               wordlists.Korean,
	lang.Spanish:              wordlists.Spanish,
	lang.EuropeanSpanish:      wordlists.Spanish,
	lang.LatinAmericanSpanish: wordlists.Spanish,
}

// SetLanguage selects the word table used by the mnemonic codec. It must be
// called at most once, at process start, before any mnemonic is generated or
// validated. The table is English when SetLanguage is never called.
func SetLanguage(language string) error {
	list := languageWordlist(language)
	if list == nil {
		return fmt.Errorf("language %q is not supported", language)
	}
	bip39.SetWordList(list)
	return nil
}

// LanguageWordlist returns the word table for a language given either as a
// BCP 47 tag ("en", "zh-Hant") or an English display name ("english",
// "traditional chinese"). The result is a copy. It returns nil for unknown
// languages.
func LanguageWordlist(language string) []string {
	return slices.Clone(languageWordlist(language))
}

func languageWordlist(language string) []string {
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages()
	for t := range wordLists {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und {
		return nil
	}
	if wl := wordLists[tag]; wl != nil {
		return wl
	}
	base, _ := tag.Base()
	btag, err := lang.Parse(base.String())
	if err != nil {
		return nil
	}
	return wordLists[btag]
}

// Wordlist returns a copy of the active word table.
func Wordlist() []string {
	return slices.Clone(bip39.GetWordList())
}

// WordIndex returns the 11-bit index of word in the active table.
func WordIndex(word string) (int, bool) {
	return bip39.GetWordIndex(word)
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
