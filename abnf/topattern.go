package abnf

import (
	"fmt"

	"github.com/coregx/abnfset/alphabet"
	"github.com/coregx/abnfset/dfa"
	"github.com/coregx/abnfset/nfa"
	"github.com/coregx/abnfset/regexir"
)

// PatternKind selects which algebra ToPattern should return a node's
// compiled language in.
type PatternKind int

const (
	PatternDFA PatternKind = iota
	PatternNFA
	PatternRegex
)

// UndefinedRuleError reports that a rulename was referenced but not found
// in the rules dictionary passed to ToPattern.
type UndefinedRuleError struct {
	Name string
}

func (e *UndefinedRuleError) Error() string {
	return fmt.Sprintf("abnf: undefined rule %q", e.Name)
}

// ToPattern compiles node into the requested algebra, resolving any
// Rulename it contains against rules (a dictionary of already-compiled
// dependencies, keyed by lower-cased name — exactly what catalog builds up
// as it resolves a rulelist bottom-up). The returned value is a *dfa.DFA,
// *nfa.NFA, or *regexir.Regex depending on kind.
func ToPattern(node Node, kind PatternKind, rules map[string]*dfa.DFA) (any, error) {
	d, err := ToDFA(node, rules)
	if err != nil {
		return nil, err
	}
	switch kind {
	case PatternDFA:
		return d, nil
	case PatternNFA:
		return d.ToNFA(), nil
	case PatternRegex:
		return d.ToRegex(), nil
	default:
		return nil, fmt.Errorf("abnf: unknown pattern kind %d", kind)
	}
}

// ToDFA compiles node directly to a DFA, the algebra every other
// conversion and every composite node builds on.
func ToDFA(node Node, rules map[string]*dfa.DFA) (*dfa.DFA, error) {
	switch n := node.(type) {
	case *Rulename:
		key := lowerASCII(n.Name)
		d, ok := rules[key]
		if !ok {
			return nil, &UndefinedRuleError{Name: n.Name}
		}
		return d, nil
	case *CharVal:
		return charValDFA(n), nil
	case *NumVal:
		return numValDFA(n), nil
	case *ProseVal:
		return nil, fmt.Errorf("abnf: prose-val %q cannot be compiled directly; resolve it via catalog import dereferencing first", n.Text)
	case *Group:
		return ToDFA(n.Alt, rules)
	case *Option:
		inner, err := ToDFA(n.Alt, rules)
		if err != nil {
			return nil, err
		}
		return dfa.Optional(inner), nil
	case *Repetition:
		return repetitionDFA(n, rules)
	case *Concatenation:
		return concatenationDFA(n, rules)
	case *Alternation:
		return alternationDFA(n, rules)
	default:
		return nil, fmt.Errorf("abnf: unsupported node type %T", node)
	}
}

// WrapRepetition applies a lo*hi repeat count to an already-compiled
// element DFA, the way a Repetition node's count modifies its Element.
// Exported so catalog can reuse this exact dispatch when it resolves a
// Repetition's Element itself rather than through ToDFA's rules dictionary.
func WrapRepetition(lo, hi int, el *dfa.DFA) *dfa.DFA {
	switch {
	case hi < 0:
		return dfa.RepeatAtLeast(el, lo)
	case lo == hi:
		return dfa.Repeat(el, lo)
	default:
		return dfa.RepeatRange(el, lo, hi)
	}
}

// WrapListRepetition applies an RFC 9110 #-list repeat count, splicing sep
// between consecutive copies of el.
func WrapListRepetition(lo, hi int, el, sep *dfa.DFA) *dfa.DFA {
	return dfa.RepeatList(el, sep, lo, hi)
}

var defaultListSeparator *dfa.DFA

// DefaultListSeparator builds the RFC 9110 §5.6.1 default list separator,
// OWS around a comma: *WSP "," *WSP, where WSP is SP or HTAB.
func DefaultListSeparator() *dfa.DFA {
	if defaultListSeparator == nil {
		sp := dfa.FromNFA(nfa.FromRange(alphabet.Range{Lo: ' ', Hi: ' '}))
		htab := dfa.FromNFA(nfa.FromRange(alphabet.Range{Lo: '\t', Hi: '\t'}))
		wsp := dfa.Union(sp, htab)
		comma := dfa.FromNFA(nfa.FromRange(alphabet.Range{Lo: ',', Hi: ','}))
		defaultListSeparator = dfa.Concat(dfa.Star(wsp), comma, dfa.Star(wsp))
	}
	return defaultListSeparator
}

func repetitionDFA(r *Repetition, rules map[string]*dfa.DFA) (*dfa.DFA, error) {
	el, err := ToDFA(r.Element, rules)
	if err != nil {
		return nil, err
	}
	if r.List {
		return WrapListRepetition(r.Lo, r.Hi, el, DefaultListSeparator()), nil
	}
	return WrapRepetition(r.Lo, r.Hi, el), nil
}

// WrapConcatenation concatenates already-compiled member DFAs in order,
// exported for the same reuse reason as WrapRepetition.
func WrapConcatenation(machines []*dfa.DFA) *dfa.DFA {
	if len(machines) == 0 {
		return dfa.FromNFA(nfa.Epsilon())
	}
	return dfa.Concat(machines...)
}

func concatenationDFA(c *Concatenation, rules map[string]*dfa.DFA) (*dfa.DFA, error) {
	machines := make([]*dfa.DFA, len(c.Items))
	for i, it := range c.Items {
		d, err := repetitionDFA(it, rules)
		if err != nil {
			return nil, err
		}
		machines[i] = d
	}
	return WrapConcatenation(machines), nil
}

func alternationDFA(a *Alternation, rules map[string]*dfa.DFA) (*dfa.DFA, error) {
	machines := make([]*dfa.DFA, len(a.Items))
	for i, it := range a.Items {
		d, err := concatenationDFA(it, rules)
		if err != nil {
			return nil, err
		}
		machines[i] = d
	}
	return dfa.UnionAll(machines...), nil
}

// charValDFA compiles a quoted-string terminal into a concatenation of
// per-character DFAs. Case-insensitive char-vals (the RFC 5234 default)
// union the upper- and lower-case range for each ASCII letter, matching
// both "ab" and "AB" and every mixed-case spelling between.
func charValDFA(c *CharVal) *dfa.DFA {
	if c.Text == "" {
		return dfa.FromNFA(nfa.Epsilon())
	}
	machines := make([]*dfa.DFA, len(c.Text))
	for i := 0; i < len(c.Text); i++ {
		b := c.Text[i]
		if c.Sensitive || !isASCIILetter(b) {
			machines[i] = dfa.FromNFA(nfa.FromRange(alphabet.Range{Lo: alphabet.Symbol(b), Hi: alphabet.Symbol(b)}))
			continue
		}
		lo, up := toLower(b), toUpper(b)
		machines[i] = dfa.FromNFA(nfa.Union(
			nfa.FromRange(alphabet.Range{Lo: alphabet.Symbol(lo), Hi: alphabet.Symbol(lo)}),
			nfa.FromRange(alphabet.Range{Lo: alphabet.Symbol(up), Hi: alphabet.Symbol(up)}),
		))
	}
	return dfa.Concat(machines...)
}

// numValDFA compiles a %b/%d/%x terminal: a Lo-Hi range, or a "."-joined
// sequence of single values (each a one-symbol range).
func numValDFA(n *NumVal) *dfa.DFA {
	if n.Range {
		return dfa.FromNFA(nfa.FromRange(alphabet.Range{Lo: alphabet.Symbol(n.Lo), Hi: alphabet.Symbol(n.Hi)}))
	}
	machines := make([]*dfa.DFA, len(n.Values))
	for i, v := range n.Values {
		machines[i] = dfa.FromNFA(nfa.FromRange(alphabet.Range{Lo: alphabet.Symbol(v), Hi: alphabet.Symbol(v)}))
	}
	if len(machines) == 0 {
		return dfa.FromNFA(nfa.Epsilon())
	}
	return dfa.Concat(machines...)
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// PrintRegex converts node directly to a printed regex in dialect dia,
// resolving rulenames against rules.
func PrintRegex(node Node, rules map[string]*dfa.DFA, dia regexir.Dialect) (string, error) {
	d, err := ToDFA(node, rules)
	if err != nil {
		return "", err
	}
	return regexir.Print(d.ToRegex(), dia), nil
}
