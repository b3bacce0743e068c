package dfa

import "github.com/coregx/abnfset/alphabet"

// Filter prunes an enumeration subtree: given the prefix accumulated so
// far, returning false stops the iterator from exploring any extension
// of that prefix (the prefix itself may still be yielded if it is
// otherwise eligible).
type Filter func(prefix []alphabet.Symbol) bool

// frame is one level of the enumeration stack: the state reached, its
// live outgoing edges in ascending class order, and which edge index is
// next to try.
type frame struct {
	state State
	edges []Edge
	next  int
}

// LanguageIterator enumerates the accepting paths of a DFA in (length,
// then lexicographic by output-class label) order, without materializing
// the — possibly infinite — language (§4.3.4, §5). Each path is yielded as
// one sequence made of every traversed class's Label() symbol, so a class
// spanning several symbols contributes only its label.
//
// It precomputes the live states (backward reachability from finals)
// and, for each live state, its outgoing transitions restricted to live
// targets: descending into a dead state could never reach an accepting
// state, so it is never worth exploring. An outer loop over increasing
// length bands turns the inner depth-first stack machine into
// length-then-lexicographic delivery: within one band the stack explores
// strictly depth-first in ascending-label order at every level, and no
// sequence of a shorter length is produced once a longer band has begun.
type LanguageIterator struct {
	d         *DFA
	filter    Filter
	live      map[State]bool
	liveEdges map[State][]Edge

	targetLen int
	maxLen    int // negative = unbounded
	path      []alphabet.Symbol
	stack     []frame
	reached   bool // some path of length targetLen was reached in this band
	done      bool
}

// Paths returns a LanguageIterator over one sequence per accepting class
// path, with no length bound and no pruning filter.
func (d *DFA) Paths() *LanguageIterator {
	return d.PathsFiltered(-1, nil)
}

// PathsFiltered returns a LanguageIterator bounded to sequences of at
// most maxLen symbols (maxLen < 0 means unbounded), additionally pruning
// any subtree for which filter returns false.
func (d *DFA) PathsFiltered(maxLen int, filter Filter) *LanguageIterator {
	reachable := reachableFrom(d, d.initial)
	liveList := liveStates(d, reachable)
	live := make(map[State]bool, len(liveList))
	for _, s := range liveList {
		live[s] = true
	}

	liveEdges := make(map[State][]Edge)
	for _, s := range liveList {
		for _, e := range d.Transitions(s) {
			if live[e.To] {
				liveEdges[s] = append(liveEdges[s], e)
			}
		}
	}

	it := &LanguageIterator{d: d, filter: filter, live: live, liveEdges: liveEdges, maxLen: maxLen}
	it.resetBand()
	if !live[d.initial] {
		it.done = true
	}
	return it
}

func (it *LanguageIterator) resetBand() {
	it.path = it.path[:0]
	it.stack = append(it.stack[:0], frame{state: it.d.initial, edges: it.liveEdges[it.d.initial]})
}

// Next returns the next accepted sequence in order, and false once the
// iterator — or its length bound — is exhausted.
func (it *LanguageIterator) Next() ([]alphabet.Symbol, bool) {
	for {
		if it.done {
			return nil, false
		}
		if it.maxLen >= 0 && it.targetLen > it.maxLen {
			it.done = true
			return nil, false
		}
		if len(it.stack) == 0 {
			if !it.reached {
				// No live path reaches this length, so none is longer.
				it.done = true
				return nil, false
			}
			it.reached = false
			it.targetLen++
			it.resetBand()
			continue
		}

		top := &it.stack[len(it.stack)-1]

		if len(it.path) == it.targetLen {
			it.reached = true
			isFinal := it.d.IsFinal(top.state)
			var seq []alphabet.Symbol
			if isFinal {
				seq = append([]alphabet.Symbol(nil), it.path...)
			}
			it.popFrame()
			if isFinal {
				return seq, true
			}
			continue
		}

		if it.filter != nil && !it.filter(it.path) {
			it.popFrame()
			continue
		}

		if top.next >= len(top.edges) {
			it.popFrame()
			continue
		}

		e := top.edges[top.next]
		top.next++
		it.path = append(it.path, e.Class.Label())
		it.stack = append(it.stack, frame{state: e.To, edges: it.liveEdges[e.To]})
	}
}

// popFrame removes the deepest frame. Unless it is the root frame, the
// path symbol that led to it is removed too — its siblings are explored
// from the parent frame's own edge list, not by revisiting this state.
func (it *LanguageIterator) popFrame() {
	it.stack = it.stack[:len(it.stack)-1]
	if len(it.path) > 0 {
		it.path = it.path[:len(it.path)-1]
	}
}
