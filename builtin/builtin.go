// Package builtin compiles the sixteen core rules of RFC 5234 Appendix B.1
// directly from alphabet/nfa/dfa primitives, the way abnf/builtin.go would
// otherwise have to bootstrap them from their own ABNF text. Building them by
// hand here, once, avoids a catalog->abnf->catalog import cycle: catalog
// resolves rulenames against a dictionary, and these sixteen rules are the
// base case of that dictionary.
package builtin

import (
	"github.com/coregx/abnfset/alphabet"
	"github.com/coregx/abnfset/dfa"
	"github.com/coregx/abnfset/nfa"
)

// Names lists the sixteen core rules in the order RFC 5234 Appendix B.1
// defines them.
var Names = []string{
	"ALPHA", "BIT", "CHAR", "CR", "CRLF", "CTL", "DIGIT", "DQUOTE",
	"HEXDIG", "HTAB", "LF", "LWSP", "OCTET", "SP", "VCHAR", "WSP",
}

func rng(lo, hi alphabet.Symbol) *dfa.DFA {
	return dfa.FromNFA(nfa.FromRange(alphabet.Range{Lo: lo, Hi: hi}))
}

func char(c byte) *dfa.DFA {
	return rng(alphabet.Symbol(c), alphabet.Symbol(c))
}

// All builds and returns a fresh dictionary mapping each core rulename to
// its compiled DFA. Fresh on every call: callers that mutate a returned
// machine (e.g. via dfa.Minimize in place, which this package never does)
// must not corrupt a shared instance.
func All() map[string]*dfa.DFA {
	alpha := dfa.Union(rng(0x41, 0x5A), rng(0x61, 0x7A))
	bit := dfa.Union(char('0'), char('1'))
	chr := rng(0x01, 0x7F)
	cr := char(0x0D)
	lf := char(0x0A)
	crlf := dfa.Concat(cr, lf)
	ctl := dfa.Union(rng(0x00, 0x1F), char(0x7F))
	digit := rng(0x30, 0x39)
	dquote := char(0x22)
	// HEXDIG's "A".."F" are case-insensitive char-vals (RFC 5234 §2.3).
	hexdig := dfa.UnionAll(digit, char('A'), char('B'), char('C'), char('D'), char('E'), char('F'),
		char('a'), char('b'), char('c'), char('d'), char('e'), char('f'))
	htab := char(0x09)
	octet := rng(0x00, 0xFF)
	sp := char(0x20)
	vchar := rng(0x21, 0x7E)
	wsp := dfa.Union(sp, htab)
	// LWSP = *(WSP / CRLF WSP)
	lwsp := dfa.Star(dfa.Union(wsp, dfa.Concat(crlf, wsp)))

	// Keyed lower-case: catalog.Config.CaseFold folds every rulename to
	// lower on insert and lookup (RFC 5234 §2.1), and this dictionary is
	// merged directly into that same key space.
	return map[string]*dfa.DFA{
		"alpha":  alpha,
		"bit":    bit,
		"char":   chr,
		"cr":     cr,
		"crlf":   crlf,
		"ctl":    ctl,
		"digit":  digit,
		"dquote": dquote,
		"hexdig": hexdig,
		"htab":   htab,
		"lf":     lf,
		"lwsp":   lwsp,
		"octet":  octet,
		"sp":     sp,
		"vchar":  vchar,
		"wsp":    wsp,
	}
}

// IsCore reports whether name names one of the sixteen rules this package
// provides, case-insensitively.
func IsCore(name string) bool {
	for _, n := range Names {
		if len(n) == len(name) && equalFold(n, name) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'a' && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
