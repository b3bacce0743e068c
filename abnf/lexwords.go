package abnf

import "github.com/coregx/ahocorasick"

// fixedTokens are every ABNF operator spelled as a fixed byte string rather
// than a character class: the two defined-as forms and the five %-prefixed
// case/base markers. Longest-match means "=/" always wins over a lone "="
// when both are viable at the same offset.
var fixedTokens = []string{"=/", "=", "%i", "%s", "%b", "%d", "%x"}

// KeywordScanner locates the next fixed ABNF operator token at a given
// offset using an Aho-Corasick automaton built over fixedTokens.
type KeywordScanner struct {
	auto *ahocorasick.Automaton
}

// NewKeywordScanner builds a scanner over fixedTokens.
func NewKeywordScanner() (*KeywordScanner, error) {
	b := ahocorasick.NewBuilder()
	for _, tok := range fixedTokens {
		b.AddPattern([]byte(tok))
	}
	auto, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &KeywordScanner{auto: auto}, nil
}

// MatchAt reports the fixed token beginning exactly at offset at, or ""
// if none of fixedTokens starts there.
func (k *KeywordScanner) MatchAt(src []byte, at int) string {
	if at >= len(src) {
		return ""
	}
	m := k.auto.Find(src, at)
	if m == nil || m.Start != at {
		return ""
	}
	return string(src[m.Start:m.End])
}
