package dfa

import (
	"testing"

	"github.com/coregx/abnfset/alphabet"
	"github.com/coregx/abnfset/nfa"
)

func TestMinimize_PreservesLanguage(t *testing.T) {
	d := digitDFA()
	min := Minimize(d)

	cases := []struct {
		seq  []alphabet.Symbol
		want bool
	}{
		{[]alphabet.Symbol{0x30}, true},
		{[]alphabet.Symbol{0x39}, true},
		{[]alphabet.Symbol{0x2F}, false},
		{[]alphabet.Symbol{}, false},
	}
	for _, c := range cases {
		if d.Accepts(c.seq) != min.Accepts(c.seq) || min.Accepts(c.seq) != c.want {
			t.Errorf("Accepts(%v): got original=%v minimized=%v, want %v", c.seq, d.Accepts(c.seq), min.Accepts(c.seq), c.want)
		}
	}
}

func TestMinimize_NeverIncreasesStates(t *testing.T) {
	// Build a deliberately redundant NFA: (a|a)a, which subset
	// construction may over-split before minimization collapses it.
	a := nfa.FromRange(alphabet.Range{Lo: 'a', Hi: 'a'})
	a2 := nfa.FromRange(alphabet.Range{Lo: 'a', Hi: 'a'})
	u := nfa.Union(a, a2)
	full := nfa.Concatenate(u, nfa.FromRange(alphabet.Range{Lo: 'a', Hi: 'a'}))
	d := FromNFA(full)
	min := Minimize(d)
	if min.NumStates() > d.NumStates() {
		t.Errorf("minimize increased state count: %d -> %d", d.NumStates(), min.NumStates())
	}
}

func TestMinimize_EmptyLanguage(t *testing.T) {
	d := FromNFA(nfa.Empty())
	min := Minimize(d)
	if min.Accepts(nil) || min.Accepts([]alphabet.Symbol{'a'}) {
		t.Error("empty-language DFA should reject everything")
	}
	if min.NumStates() != 1 {
		t.Errorf("minimized empty language should have exactly 1 state, got %d", min.NumStates())
	}
}

func TestNormalize_CanonicalForm(t *testing.T) {
	d1 := digitDFA()
	// Build an equivalent DFA via a different construction path (union
	// of two overlapping halves) to get a structurally different but
	// language-equal machine.
	half1 := FromNFA(nfa.FromRange(alphabet.Range{Lo: 0x30, Hi: 0x35}))
	half2 := FromNFA(nfa.FromRange(alphabet.Range{Lo: 0x33, Hi: 0x39}))
	d2 := Union(half1, half2)

	n1 := Minimize(d1)
	n1 = Normalize(n1)
	n2 := Minimize(d2)
	n2 = Normalize(n2)

	if n1.NumStates() != n2.NumStates() {
		t.Fatalf("canonical forms differ in size: %d vs %d", n1.NumStates(), n2.NumStates())
	}
	for s := 0; s < n1.NumStates(); s++ {
		if n1.IsFinal(State(s)) != n2.IsFinal(State(s)) {
			t.Errorf("state %d finality differs after normalize", s)
		}
	}
}

func TestEqual(t *testing.T) {
	d1 := digitDFA()
	half1 := FromNFA(nfa.FromRange(alphabet.Range{Lo: 0x30, Hi: 0x35}))
	half2 := FromNFA(nfa.FromRange(alphabet.Range{Lo: 0x36, Hi: 0x39}))
	d2 := Union(half1, half2)

	if !Equal(d1, d2) {
		t.Error("digit built directly and digit built by union-of-halves should be equal")
	}

	other := FromNFA(nfa.FromRange(alphabet.Range{Lo: 0x30, Hi: 0x38}))
	if Equal(d1, other) {
		t.Error("[0-9] and [0-8] must not be equal")
	}
}
