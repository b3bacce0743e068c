package nfa

import (
	"testing"

	"github.com/coregx/abnfset/alphabet"
)

func runAccepts(n *NFA, seq []alphabet.Symbol) bool {
	current := n.EpsilonClosure(n.Initial())
	for _, sym := range seq {
		var next []StateID
		for _, s := range current {
			for _, e := range n.State(s).Transitions {
				if e.Range.Contains(sym) {
					next = append(next, e.To)
				}
			}
		}
		current = n.EpsilonClosure(next)
		if len(current) == 0 {
			return false
		}
	}
	for _, s := range current {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}

func TestFromRange(t *testing.T) {
	n := FromRange(alphabet.Range{Lo: 'a', Hi: 'z'})
	if !runAccepts(n, []alphabet.Symbol{'m'}) {
		t.Error("should accept a letter within the range")
	}
	if runAccepts(n, []alphabet.Symbol{'A'}) {
		t.Error("should reject a letter outside the range")
	}
	if runAccepts(n, []alphabet.Symbol{'a', 'b'}) {
		t.Error("should reject a 2-symbol sequence")
	}
}

func TestEpsilonAndEmpty(t *testing.T) {
	if !runAccepts(Epsilon(), nil) {
		t.Error("Epsilon() should accept the empty sequence")
	}
	if runAccepts(Epsilon(), []alphabet.Symbol{'a'}) {
		t.Error("Epsilon() should reject any non-empty sequence")
	}
	if runAccepts(Empty(), nil) {
		t.Error("Empty() should reject even the empty sequence")
	}
}

func TestFromSequence(t *testing.T) {
	n := FromSequence([]alphabet.Range{
		{Lo: 'a', Hi: 'a'},
		{Lo: 'b', Hi: 'b'},
		{Lo: 'c', Hi: 'c'},
	})
	if !runAccepts(n, []alphabet.Symbol{'a', 'b', 'c'}) {
		t.Error("should accept \"abc\"")
	}
	if runAccepts(n, []alphabet.Symbol{'a', 'b'}) {
		t.Error("should reject a truncated prefix")
	}
	if runAccepts(n, []alphabet.Symbol{'a', 'b', 'c', 'd'}) {
		t.Error("should reject extra trailing input")
	}
}

func TestFromSequence_Empty(t *testing.T) {
	n := FromSequence(nil)
	if !runAccepts(n, nil) {
		t.Error("FromSequence(nil) should behave like Epsilon()")
	}
}
