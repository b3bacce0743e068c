package dfa

import (
	"testing"

	"github.com/coregx/abnfset/alphabet"
	"github.com/coregx/abnfset/nfa"
)

func TestLanguageIterator_LengthThenLex(t *testing.T) {
	// (a|b){1,2}: accepts "a","b","aa","ab","ba","bb".
	a := nfa.FromRange(alphabet.Range{Lo: 'a', Hi: 'a'})
	b := nfa.FromRange(alphabet.Range{Lo: 'b', Hi: 'b'})
	one := nfa.Union(a, b)
	two := nfa.Concatenate(nfa.Union(nfa.FromRange(alphabet.Range{Lo: 'a', Hi: 'a'}), nfa.FromRange(alphabet.Range{Lo: 'b', Hi: 'b'})),
		nfa.Union(nfa.FromRange(alphabet.Range{Lo: 'a', Hi: 'a'}), nfa.FromRange(alphabet.Range{Lo: 'b', Hi: 'b'})))
	full := nfa.Union(one, two)
	d := FromNFA(full)

	it := d.PathsFiltered(2, nil)
	var got [][]alphabet.Symbol
	for {
		seq, ok := it.Next()
		if !ok {
			break
		}
		cp := append([]alphabet.Symbol(nil), seq...)
		got = append(got, cp)
	}

	want := [][]alphabet.Symbol{
		{'a'}, {'b'},
		{'a', 'a'}, {'a', 'b'}, {'b', 'a'}, {'b', 'b'},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sequences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if string(runesOf(got[i])) != string(runesOf(want[i])) {
			t.Errorf("sequence %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func runesOf(syms []alphabet.Symbol) []rune {
	out := make([]rune, len(syms))
	for i, s := range syms {
		out[i] = rune(s)
	}
	return out
}

func TestLanguageIterator_EmptyLanguage(t *testing.T) {
	d := FromNFA(nfa.Empty())
	it := d.Paths()
	if _, ok := it.Next(); ok {
		t.Error("empty-language DFA should yield no sequences")
	}
}

func TestLanguageIterator_EpsilonOnly(t *testing.T) {
	d := FromNFA(nfa.Epsilon())
	it := d.PathsFiltered(0, nil)
	seq, ok := it.Next()
	if !ok || len(seq) != 0 {
		t.Errorf("epsilon-only DFA should yield one empty sequence, got %v,%v", seq, ok)
	}
	if _, ok := it.Next(); ok {
		t.Error("epsilon-only DFA should yield exactly one sequence")
	}
}
