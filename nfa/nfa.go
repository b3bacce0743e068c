// Package nfa implements an epsilon-NFA over alphabet.Symbol classes,
// used as the scratch representation for ABNF constructions that need
// non-determinism: concatenation, plus, star, and homomorphism (§4.2).
// A companion subset-construction (dfa/subset.go) turns any NFA into a dfa.DFA.
//
// The state layout is grounded on coregex/nfa.State's arena-indexed,
// tagged-union design (StateID into a flat []State, InvalidState
// sentinel) — generalized here from byte ranges to alphabet.Range and
// from a single "next" pointer per transition to a full symbol-class
// transition table, since ABNF elements can carry arbitrarily wide
// Unicode ranges instead of single bytes.
package nfa

import (
	"fmt"
	"sort"

	"github.com/coregx/abnfset/alphabet"
)

// StateID identifies one NFA state by its index into NFA.states.
type StateID int

// InvalidState is the zero-value sentinel for "no such state".
const InvalidState StateID = -1

// State is one NFA state: a set of (range -> target) transitions plus an
// epsilon-transition set to other states taken without consuming input.
type State struct {
	Transitions []RangeEdge
	Epsilon     []StateID
}

// RangeEdge is a single consuming transition over a closed symbol range.
type RangeEdge struct {
	Range alphabet.Range
	To    StateID
}

// NFA is an epsilon-NFA: states, an initial state set, and a final state
// set. Unlike dfa.DFA there is no single designated initial state — ABNF's
// union construction introduces a fresh initial state epsilon-connected
// to both operands' initials, so initials is carried as a set from the
// start.
type NFA struct {
	states  []State
	initial []StateID
	finals  map[StateID]bool
}

// New creates an empty NFA with no states.
func New() *NFA {
	return &NFA{finals: make(map[StateID]bool)}
}

// AddState appends a fresh, transition-less state and returns its ID.
func (n *NFA) AddState() StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, State{})
	return id
}

// AddTransition adds a consuming edge from -> to over the closed range r.
func (n *NFA) AddTransition(from StateID, r alphabet.Range, to StateID) {
	n.states[from].Transitions = append(n.states[from].Transitions, RangeEdge{r, to})
}

// AddEpsilon adds a non-consuming edge from -> to.
func (n *NFA) AddEpsilon(from, to StateID) {
	n.states[from].Epsilon = append(n.states[from].Epsilon, to)
}

// SetInitial replaces the set of initial states.
func (n *NFA) SetInitial(ids ...StateID) {
	n.initial = append([]StateID(nil), ids...)
}

// Initial returns the current set of initial states.
func (n *NFA) Initial() []StateID {
	return n.initial
}

// MarkFinal marks id as an accepting state.
func (n *NFA) MarkFinal(id StateID) {
	n.finals[id] = true
}

// UnmarkFinal removes id from the accepting set, if present.
func (n *NFA) UnmarkFinal(id StateID) {
	delete(n.finals, id)
}

// IsFinal reports whether id is an accepting state.
func (n *NFA) IsFinal(id StateID) bool {
	return n.finals[id]
}

// Finals returns the accepting state set.
func (n *NFA) Finals() map[StateID]bool {
	return n.finals
}

// State returns a pointer to the state with the given id.
func (n *NFA) State(id StateID) *State {
	return &n.states[id]
}

// NumStates returns the total number of states.
func (n *NFA) NumStates() int {
	return len(n.states)
}

// EpsilonClosure returns the epsilon-closure of the given seed set: every
// state reachable from it using zero or more epsilon transitions,
// including the seeds themselves.
func (n *NFA) EpsilonClosure(seed []StateID) []StateID {
	seen := make(map[StateID]bool, len(seed))
	var stack []StateID
	for _, s := range seed {
		if !seen[s] {
			seen[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.states[cur].Epsilon {
			if !seen[e] {
				seen[e] = true
				stack = append(stack, e)
			}
		}
	}
	out := make([]StateID, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders a debug summary; not used for serialization.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states:%d, initial:%v, finals:%d}", len(n.states), n.initial, len(n.finals))
}
