package dfa

// Normalize relabels states by a breadth-first traversal from the
// initial state, visiting each state's transitions in ascending
// symbol-class order (§4.3.3). The alphabet is carried over unchanged:
// two minimized DFAs accepting the same language get identical state
// arrays only when their alphabets partition the symbols into the same
// classes; DFAs whose class partitions differ are not made identical.
func Normalize(d *DFA) *DFA {
	oldToNew := map[State]State{d.initial: 0}
	order := []State{d.initial}
	queue := []State{d.initial}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range d.Transitions(cur) { // Transitions already ascending by class
			if _, ok := oldToNew[e.To]; !ok {
				oldToNew[e.To] = State(len(order))
				order = append(order, e.To)
				queue = append(queue, e.To)
			}
		}
	}

	out := New(d.alphabet, len(order), 0)
	for newID, old := range order {
		for _, e := range d.Transitions(old) {
			out.SetTransition(State(newID), e.ClassIdx, oldToNew[e.To])
		}
		if d.IsFinal(old) {
			out.MarkFinal(State(newID))
		}
	}
	return out
}
