// Package regexir implements the algebraic regex intermediate
// representation (§4.4): an alternation/concatenation/star/range
// algebra with normalization rules, plus a dialect-parameterized
// printer (print.go, dialect.go) that renders the same IR as POSIX,
// Perl, ECMAScript, or Swift-flavored syntax.
//
// coregex has no analogue — it parses regexp/syntax.Regexp, it never
// prints one back out — so the IR's variant shape borrows coregex's
// tagged-union convention for nfa.State (a Kind discriminant plus
// kind-specific fields) rather than a literal port.
package regexir

import (
	"sort"

	"github.com/coregx/abnfset/alphabet"
)

// Kind discriminates a Regex node's variant.
type Kind int

const (
	// KindEmpty is the empty language: matches nothing, not even epsilon.
	KindEmpty Kind = iota
	// KindEpsilon matches only the empty sequence.
	KindEpsilon
	// KindRange matches exactly one symbol from a class.
	KindRange
	// KindConcat matches its children in sequence.
	KindConcat
	// KindAlt matches any one of its children.
	KindAlt
	// KindStar matches zero or more repetitions of its single child.
	KindStar
)

// Regex is the algebraic IR node. Which fields are meaningful depends on
// Kind: Range for KindRange, Child for KindStar, Children for KindConcat
// and KindAlt.
type Regex struct {
	Kind     Kind
	Range    alphabet.Class
	Child    *Regex
	Children []*Regex
}

// Empty returns the empty-language node.
func Empty() *Regex { return &Regex{Kind: KindEmpty} }

// Eps returns the epsilon (empty-sequence) node.
func Eps() *Regex { return &Regex{Kind: KindEpsilon} }

// Sym returns a node matching exactly one symbol from cls.
func Sym(cls alphabet.Class) *Regex { return &Regex{Kind: KindRange, Range: cls} }

// Concat builds a concatenation node, flattening nested concatenations
// and short-circuiting to Empty if any child is the empty language, and
// dropping Epsilon children (epsilon is the identity for concatenation).
func Concat(children ...*Regex) *Regex {
	var flat []*Regex
	for _, c := range children {
		if c.Kind == KindEmpty {
			return Empty()
		}
		if c.Kind == KindEpsilon {
			continue
		}
		if c.Kind == KindConcat {
			flat = append(flat, c.Children...)
			continue
		}
		flat = append(flat, c)
	}
	if len(flat) == 0 {
		return Eps()
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Regex{Kind: KindConcat, Children: flat}
}

// Alt builds an alternation node, flattening nested alternations and
// deduplicating structurally-identical children. Empty children are
// dropped (empty is the identity for union); an alternation with no
// surviving children is Empty.
func Alt(children ...*Regex) *Regex {
	var flat []*Regex
	for _, c := range children {
		if c.Kind == KindEmpty {
			continue
		}
		if c.Kind == KindAlt {
			flat = append(flat, c.Children...)
			continue
		}
		flat = append(flat, c)
	}
	flat = dedupe(flat)
	if len(flat) == 0 {
		return Empty()
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Regex{Kind: KindAlt, Children: flat}
}

// StarOf builds a star (Kleene closure) node. star(empty) == epsilon;
// star(star(r)) == star(r) (idempotent).
func StarOf(r *Regex) *Regex {
	if r.Kind == KindEmpty {
		return Eps()
	}
	if r.Kind == KindStar {
		return r
	}
	return &Regex{Kind: KindStar, Child: r}
}

// Equal reports structural equality between two IR nodes (used by Alt's
// deduplication and by tests).
func Equal(a, b *Regex) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindEmpty, KindEpsilon:
		return true
	case KindRange:
		return classEqual(a.Range, b.Range)
	case KindStar:
		return Equal(a.Child, b.Child)
	case KindConcat, KindAlt:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func classEqual(a, b alphabet.Class) bool {
	if len(a.Ranges) != len(b.Ranges) {
		return false
	}
	for i := range a.Ranges {
		if a.Ranges[i] != b.Ranges[i] {
			return false
		}
	}
	return true
}

func dedupe(nodes []*Regex) []*Regex {
	var out []*Regex
	for _, n := range nodes {
		dup := false
		for _, o := range out {
			if Equal(n, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, n)
		}
	}
	return out
}

// sortedRanges is a small helper used by the printer to render a class's
// ranges in ascending order (Refine already produces them sorted, but
// nodes built directly via Sym may not be).
func sortedRanges(c alphabet.Class) []alphabet.Range {
	out := append([]alphabet.Range(nil), c.Ranges...)
	sort.Slice(out, func(i, j int) bool { return out[i].Lo < out[j].Lo })
	return out
}
