package abnf

import "github.com/coregx/abnfset/builtin"

// CoreRuleNames lists the sixteen RFC 5234 Appendix B.1 rulenames that
// every rulelist may reference without defining. The compiled DFAs for
// these live in package builtin, seeded directly from alphabet/nfa/dfa
// primitives rather than parsed from ABNF text, so that catalog (which
// imports this package to parse rulelists) isn't required by the builtin
// rules themselves — parsing the builtin grammar through catalog would
// close an import cycle back into catalog from here.
func CoreRuleNames() []string { return builtin.Names }

// IsCoreRule reports whether name (case-insensitively) is one of
// CoreRuleNames.
func IsCoreRule(name string) bool {
	return builtin.IsCore(name)
}
