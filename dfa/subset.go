package dfa

import (
	"github.com/coregx/abnfset/alphabet"
	"github.com/coregx/abnfset/nfa"
)

// FromNFA performs subset construction (§4.2): starting from the
// epsilon-closure of n's initial set, for each discovered closed set it
// computes the refined alphabet that unions the alphabets of all member
// states' outgoing transitions, then for each output class determines
// the successor closed set. A fresh DFA state index is assigned to each
// distinct closed set the first time it is discovered; a state is final
// iff its closed set intersects n's final set.
//
// The discovery loop's memoization discipline — insert the entry for a
// newly-discovered set into the map before ever looking it up again —
// mirrors coregex/nfa/composite_dfa.go's buildDFASubsetConstruction,
// which seeds configToState before flood-filling the queue; skipping
// that order there (or here) causes the same closed set to be assigned
// two different DFA state IDs and silently duplicates states (§9).
func FromNFA(n *nfa.NFA) *DFA {
	key := func(set []nfa.StateID) string {
		b := make([]byte, 0, len(set)*5)
		for _, s := range set {
			b = append(b, byte(s), byte(s>>8), byte(s>>16), byte(s>>24), ',')
		}
		return string(b)
	}

	start := n.EpsilonClosure(n.Initial())
	setOf := map[string][]nfa.StateID{key(start): start}
	idOf := map[string]State{key(start): 0}
	order := []string{key(start)}
	queue := []string{key(start)}

	for len(queue) > 0 {
		curKey := queue[0]
		queue = queue[1:]
		cur := setOf[curKey]

		// Build the refined alphabet over the union of this closed set's
		// outgoing transition ranges.
		var inputClasses []alphabet.Class
		for _, sid := range cur {
			for _, tr := range n.State(sid).Transitions {
				inputClasses = append(inputClasses, alphabet.NewClass(tr.Range))
			}
		}
		ab := alphabet.Refine(inputClasses)

		for _, cls := range ab.Classes() {
			label := cls.Label()
			var next []nfa.StateID
			for _, sid := range cur {
				for _, tr := range n.State(sid).Transitions {
					if tr.Range.Contains(label) {
						next = append(next, tr.To)
					}
				}
			}
			if len(next) == 0 {
				continue
			}
			closed := n.EpsilonClosure(next)
			ck := key(closed)
			if _, ok := idOf[ck]; !ok {
				idOf[ck] = State(len(order))
				setOf[ck] = closed
				order = append(order, ck)
				queue = append(queue, ck)
			}
		}
	}

	// Now that every reachable closed set has a stable ID, rebuild the
	// global alphabet as the refinement over *all* discovered sets'
	// outgoing ranges, so every state's transition table is keyed
	// consistently.
	var allClasses []alphabet.Class
	for _, ck := range order {
		for _, sid := range setOf[ck] {
			for _, tr := range n.State(sid).Transitions {
				allClasses = append(allClasses, alphabet.NewClass(tr.Range))
			}
		}
	}
	globalAlphabet := alphabet.Refine(allClasses)

	d := New(globalAlphabet, len(order), 0)
	for i, ck := range order {
		cur := setOf[ck]
		for ci, cls := range globalAlphabet.Classes() {
			label := cls.Label()
			var next []nfa.StateID
			for _, sid := range cur {
				for _, tr := range n.State(sid).Transitions {
					if tr.Range.Contains(label) {
						next = append(next, tr.To)
					}
				}
			}
			if len(next) == 0 {
				continue
			}
			closed := n.EpsilonClosure(next)
			d.SetTransition(State(i), ci, idOf[key(closed)])
		}
		for _, sid := range cur {
			if n.IsFinal(sid) {
				d.MarkFinal(State(i))
				break
			}
		}
	}

	return d
}
