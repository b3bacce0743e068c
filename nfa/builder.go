package nfa

import "github.com/coregx/abnfset/alphabet"

// FromRange builds the minimal NFA accepting exactly one symbol from r:
// a single transition from a fresh initial state to a fresh final state.
// This is the leaf constructor every ABNF terminal (char-val, num-val
// range) bottoms out in.
func FromRange(r alphabet.Range) *NFA {
	n := New()
	start := n.AddState()
	end := n.AddState()
	n.AddTransition(start, r, end)
	n.SetInitial(start)
	n.MarkFinal(end)
	return n
}

// Epsilon builds the NFA accepting only the empty sequence: a single
// state that is both initial and final.
func Epsilon() *NFA {
	n := New()
	s := n.AddState()
	n.SetInitial(s)
	n.MarkFinal(s)
	return n
}

// Empty builds the NFA accepting no sequences at all: a single
// unreachable-final state.
func Empty() *NFA {
	n := New()
	s := n.AddState()
	n.SetInitial(s)
	return n
}

// FromSequence builds a linear chain NFA, one state per symbol, matching
// exactly the given literal sequence of ranges in order (each position a
// single symbol's range, typically Lo==Hi).
func FromSequence(seq []alphabet.Range) *NFA {
	if len(seq) == 0 {
		return Epsilon()
	}
	n := New()
	start := n.AddState()
	n.SetInitial(start)
	cur := start
	for _, r := range seq {
		next := n.AddState()
		n.AddTransition(cur, r, next)
		cur = next
	}
	n.MarkFinal(cur)
	return n
}
