// Package dfa implements the deterministic finite automaton at the
// center of the design (§4.3): construction from an NFA via subset
// construction, the full product-construction set algebra (union,
// intersection, difference, symmetric difference, equality), Hopcroft
// minimization, canonical BFS normalization, path/language enumeration,
// and state-elimination to a regex IR.
//
// The arena-indexed state model (State IDs are plain ints into a flat
// slice, an implicit sink/"oblivion" state represents "no transition")
// is grounded on coregex/nfa.NFA's StateID-into-[]State layout.
package dfa

import (
	"fmt"

	"github.com/coregx/abnfset/alphabet"
)

// State identifies a DFA state by index. Sink is the implicit oblivion
// state: "no transition defined", represented out-of-band rather than
// stored, so every DFA of n real states has exactly n addressable states
// plus one universal dead state.
type State int

// Sink is the sentinel for the oblivion state: no transition reaches any
// accepting state from here, ever.
const Sink State = -1

// DFA is a deterministic finite automaton keyed on an alphabet.Alphabet
// shared by every state's transition table.
type DFA struct {
	// trans[s] holds, for each class index of alphabet, the target state
	// (or Sink). trans[s][c] is defined for all c < alphabet.Len().
	trans    [][]State
	alphabet alphabet.Alphabet
	initial  State
	finals   map[State]bool
}

// New builds an empty-shell DFA over the given alphabet with n states,
// all transitioning to Sink until set via SetTransition.
func New(ab alphabet.Alphabet, n int, initial State) *DFA {
	trans := make([][]State, n)
	for i := range trans {
		row := make([]State, ab.Len())
		for c := range row {
			row[c] = Sink
		}
		trans[i] = row
	}
	return &DFA{trans: trans, alphabet: ab, initial: initial, finals: make(map[State]bool)}
}

// Alphabet returns the DFA's shared alphabet.
func (d *DFA) Alphabet() alphabet.Alphabet {
	return d.alphabet
}

// NumStates returns the number of real (non-sink) states.
func (d *DFA) NumStates() int {
	return len(d.trans)
}

// Initial returns the initial state.
func (d *DFA) Initial() State {
	return d.initial
}

// MarkFinal marks s as accepting.
func (d *DFA) MarkFinal(s State) {
	d.finals[s] = true
}

// IsFinal reports whether s is accepting. Sink is never final.
func (d *DFA) IsFinal(s State) bool {
	return s != Sink && d.finals[s]
}

// Finals returns the set of accepting states.
func (d *DFA) Finals() map[State]bool {
	return d.finals
}

// SetTransition sets the transition from s on class index c to target.
func (d *DFA) SetTransition(s State, classIdx int, target State) {
	d.trans[s][classIdx] = target
}

// Step returns the target state after consuming symbol sym from s. If
// sym is outside the alphabet, or s is Sink, or no transition is
// defined, the result is Sink.
func (d *DFA) Step(s State, sym alphabet.Symbol) State {
	if s == Sink {
		return Sink
	}
	idx, ok := d.alphabet.IndexOf(sym)
	if !ok {
		return Sink
	}
	return d.trans[s][idx]
}

// StepClass returns the target state after consuming a symbol in the
// class at classIdx, directly, bypassing alphabet lookup.
func (d *DFA) StepClass(s State, classIdx int) State {
	if s == Sink || classIdx < 0 || classIdx >= len(d.trans[s]) {
		return Sink
	}
	return d.trans[s][classIdx]
}

// Accepts reports whether the DFA accepts the given symbol sequence.
func (d *DFA) Accepts(seq []alphabet.Symbol) bool {
	s := d.initial
	for _, sym := range seq {
		s = d.Step(s, sym)
		if s == Sink {
			return false
		}
	}
	return d.IsFinal(s)
}

// Transitions returns the (classIdx, target) pairs for state s whose
// target is not Sink, in ascending class order.
func (d *DFA) Transitions(s State) []Edge {
	var out []Edge
	classes := d.alphabet.Classes()
	for c, target := range d.trans[s] {
		if target != Sink {
			out = append(out, Edge{ClassIdx: c, Class: classes[c], To: target})
		}
	}
	return out
}

// Edge is a materialized (class, target) transition for iteration.
type Edge struct {
	ClassIdx int
	Class    alphabet.Class
	To       State
}

// String renders a debug summary.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states:%d, classes:%d, initial:%d, finals:%d}",
		len(d.trans), d.alphabet.Len(), d.initial, len(d.finals))
}
