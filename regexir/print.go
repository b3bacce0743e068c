package regexir

import (
	"fmt"
	"strings"

	"github.com/coregx/abnfset/alphabet"
)

// rank orders node kinds from tightest- to loosest-binding, matching
// §4.4's "Precedence: symbol < star < concatenation < alternation".
func rank(k Kind) int {
	switch k {
	case KindRange, KindEmpty, KindEpsilon:
		return 0
	case KindStar:
		return 1
	case KindConcat:
		return 2
	case KindAlt:
		return 3
	}
	return 0
}

// Print renders r in the given dialect. The printer recursively
// descends and wraps a child in GroupOpen/GroupClose iff the child's
// precedence rank is greater than or equal to its parent's — e.g. an
// alternation nested inside a concatenation always needs grouping,
// while a star nested inside a concatenation never does.
func Print(r *Regex, dia Dialect) string {
	var b strings.Builder
	printNode(&b, r, dia, -1)
	return b.String()
}

func printNode(b *strings.Builder, r *Regex, dia Dialect, parentRank int) {
	needsGroup := parentRank >= 0 && rank(r.Kind) >= parentRank
	if needsGroup {
		b.WriteString(dia.GroupOpen)
	}
	switch r.Kind {
	case KindEmpty:
		b.WriteString(dia.ClassOpen)
		b.WriteString(dia.ClassClose)
	case KindEpsilon:
		// epsilon renders as the empty string
	case KindRange:
		printClass(b, r.Range, dia)
	case KindStar:
		printNode(b, r.Child, dia, rank(KindStar))
		b.WriteString(dia.Star)
	case KindConcat:
		for _, c := range r.Children {
			printNode(b, c, dia, rank(KindConcat))
		}
	case KindAlt:
		for i, c := range r.Children {
			if i > 0 {
				b.WriteString(dia.Alternation)
			}
			printNode(b, c, dia, rank(KindAlt))
		}
	}
	if needsGroup {
		b.WriteString(dia.GroupClose)
	}
}

func printClass(b *strings.Builder, c alphabet.Class, dia Dialect) {
	ranges := sortedRanges(c)
	if len(ranges) == 1 && ranges[0].Lo == ranges[0].Hi {
		writeEscapedRune(b, rune(ranges[0].Lo), dia)
		return
	}
	b.WriteString(dia.ClassOpen)
	for _, r := range ranges {
		if r.Lo == r.Hi {
			writeEscapedRune(b, rune(r.Lo), dia)
			continue
		}
		writeEscapedRune(b, rune(r.Lo), dia)
		b.WriteString(dia.RangeSep)
		writeEscapedRune(b, rune(r.Hi), dia)
	}
	b.WriteString(dia.ClassClose)
}

func writeEscapedRune(b *strings.Builder, r rune, dia Dialect) {
	if dia.Meta[r] {
		b.WriteString(dia.Escape)
	}
	if r < 0x20 || r == 0x7F {
		fmt.Fprintf(b, "\\x%02x", r)
		return
	}
	b.WriteRune(r)
}
