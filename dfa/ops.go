package dfa

import "github.com/coregx/abnfset/nfa"

// toNFA widens d into a trivial NFA with the same transitions and no
// epsilon edges, so the operator laws of §4.3.6 can be expressed once,
// via nfa composition, and reused by both the DFA-level API and the
// abnf package's to_pattern conversions.
func (d *DFA) toNFA() *nfa.NFA {
	n := nfa.New()
	for i := 0; i < d.NumStates(); i++ {
		n.AddState()
	}
	n.SetInitial(nfa.StateID(d.initial))
	for f := range d.finals {
		if d.IsFinal(f) {
			n.MarkFinal(nfa.StateID(f))
		}
	}
	for s := 0; s < d.NumStates(); s++ {
		for _, e := range d.Transitions(State(s)) {
			n.AddTransition(nfa.StateID(s), e.Class.Ranges[0], nfa.StateID(e.To))
			for _, r := range e.Class.Ranges[1:] {
				n.AddTransition(nfa.StateID(s), r, nfa.StateID(e.To))
			}
		}
	}
	return n
}

// ToNFA exports the trivial DFA->NFA widening for callers outside this
// package, notably abnf's to_pattern conversions when a caller asks for
// the NFA algebra instead of DFA or regex IR.
func (d *DFA) ToNFA() *nfa.NFA { return d.toNFA() }

// Optional builds the DFA accepting A's language or the empty sequence
// (§4.3.6), via nfa.Optional.
func Optional(d *DFA) *DFA {
	out := FromNFA(nfa.Optional(d.toNFA()))
	return out
}

// Plus builds the DFA accepting one-or-more repetitions of A's language,
// via the NFA construction (epsilon from every final back to initial).
func Plus(d *DFA) *DFA {
	return FromNFA(nfa.Plus(d.toNFA()))
}

// Star builds the DFA accepting zero-or-more repetitions of A's
// language: Plus(A) together with the empty sequence.
func Star(d *DFA) *DFA {
	return FromNFA(nfa.Star(d.toNFA()))
}

// Concat builds the DFA accepting the concatenation of the given
// machines in order.
func Concat(machines ...*DFA) *DFA {
	ns := make([]*nfa.NFA, len(machines))
	for i, m := range machines {
		ns[i] = m.toNFA()
	}
	return FromNFA(nfa.Concatenate(ns...))
}

// UnionAll builds the DFA accepting the union of every operand's
// language, folding pairwise.
func UnionAll(machines ...*DFA) *DFA {
	if len(machines) == 0 {
		panic("dfa: UnionAll requires at least one operand")
	}
	out := machines[0]
	for _, m := range machines[1:] {
		out = Union(out, m)
	}
	return out
}

// Repeat builds the DFA accepting exactly n concatenated repetitions of
// A's language (§4.3.6: repeat(A,n) = concatenate n copies of A).
func Repeat(d *DFA, n int) *DFA {
	if n == 0 {
		return FromNFA(nfa.Epsilon())
	}
	machines := make([]*DFA, n)
	for i := range machines {
		machines[i] = d
	}
	return Concat(machines...)
}

// RepeatRange builds the DFA accepting between lo and hi (inclusive)
// concatenated repetitions of A's language: lo mandatory copies followed
// by (hi-lo) optional copies (§4.3.6: repeat(A, lo..hi)).
func RepeatRange(d *DFA, lo, hi int) *DFA {
	machines := make([]*DFA, 0, hi)
	for i := 0; i < lo; i++ {
		machines = append(machines, d)
	}
	for i := lo; i < hi; i++ {
		machines = append(machines, Optional(d))
	}
	if len(machines) == 0 {
		return FromNFA(nfa.Epsilon())
	}
	return Concat(machines...)
}

// RepeatAtLeast builds the DFA accepting lo or more concatenated
// repetitions of A's language: lo mandatory copies followed by Star(A)
// (§4.3.6: repeat(A, lo..)).
func RepeatAtLeast(d *DFA, lo int) *DFA {
	if lo == 0 {
		return Star(d)
	}
	machines := make([]*DFA, lo)
	for i := range machines {
		machines[i] = d
	}
	machines = append(machines, Star(d))
	return Concat(machines...)
}

// RepeatList builds the DFA for a list-separated repeat: A (sep A){lo-1,
// hi-1}, with an optional leading A? when lo == 0 (§4.3.6). hi < 0 means
// unbounded (sep A)*.
func RepeatList(d, sep *DFA, lo, hi int) *DFA {
	if hi == 0 {
		return FromNFA(nfa.Epsilon())
	}

	tailLo := lo - 1
	if tailLo < 0 {
		tailLo = 0
	}

	var tail *DFA
	switch {
	case hi < 0:
		tail = RepeatAtLeast(Concat(sep, d), tailLo)
	case tailLo == 0 && hi-1 <= 0:
		tail = FromNFA(nfa.Epsilon())
	default:
		tail = RepeatRange(Concat(sep, d), tailLo, hi-1)
	}

	body := Concat(d, tail)
	if lo == 0 {
		return Optional(body)
	}
	return body
}
