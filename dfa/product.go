package dfa

import "github.com/coregx/abnfset/alphabet"

// mergePair is a product state: one optional source state per operand.
// An entry equal to Sink means that operand has fallen into its sink.
type mergePair [2]State

// Product builds the DFA whose language is { w | f(a accepts w, b
// accepts w) } for a two-machine product construction (§4.3.1). The
// merge predicate f is evaluated on each product state's per-operand
// finality. Memoization: product states are addressed by their
// (srcA, srcB) tuple and assigned a fresh index the first time they are
// discovered, exactly as with subset construction — the tuple must be
// inserted into the index map before its successors are explored, never
// looked up beforehand (§9).
func Product(a, b *DFA, f func(aFinal, bFinal bool) bool) *DFA {
	joint := alphabet.Refine(append(append([]alphabet.Class{}, classesOf(a)...), classesOf(b)...))

	idOf := map[mergePair]State{}
	var order []mergePair

	start := mergePair{a.initial, b.initial}
	idOf[start] = 0
	order = append(order, start)

	type pending struct {
		id   State
		pair mergePair
	}
	queue := []pending{{0, start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, cls := range joint.Classes() {
			label := cls.Label()
			nextA := stepByLabel(a, cur.pair[0], label)
			nextB := stepByLabel(b, cur.pair[1], label)
			if nextA == Sink && nextB == Sink {
				continue
			}
			np := mergePair{nextA, nextB}
			if _, ok := idOf[np]; !ok {
				idOf[np] = State(len(order))
				order = append(order, np)
				queue = append(queue, pending{idOf[np], np})
			}
		}
	}

	d := New(joint, len(order), 0)
	for i, pair := range order {
		for ci, cls := range joint.Classes() {
			label := cls.Label()
			nextA := stepByLabel(a, pair[0], label)
			nextB := stepByLabel(b, pair[1], label)
			if nextA == Sink && nextB == Sink {
				continue
			}
			np := mergePair{nextA, nextB}
			d.SetTransition(State(i), ci, idOf[np])
		}
		if f(a.IsFinal(pair[0]), b.IsFinal(pair[1])) {
			d.MarkFinal(State(i))
		}
	}
	return d
}

func classesOf(d *DFA) []alphabet.Class {
	return d.alphabet.Classes()
}

// stepByLabel steps s on whichever symbol label represents, using d's
// own alphabet (which may differ from the joint alphabet the caller is
// iterating — label is still a valid representative symbol either way).
func stepByLabel(d *DFA, s State, label alphabet.Symbol) State {
	if s == Sink {
		return Sink
	}
	return d.Step(s, label)
}

// Union builds the DFA accepting a's language or b's (§4.3.1, f = any).
func Union(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Intersect builds the DFA accepting both a's and b's language
// (f = all).
func Intersect(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// SymmetricDifference builds the DFA accepting exactly one of a's or
// b's language (f = xor).
func SymmetricDifference(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x != y })
}

// Difference builds the DFA accepting a's language minus b's
// (f(x,y) = x && !y).
func Difference(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x && !y })
}

// Equal reports whether a and b accept the same language: their
// symmetric difference has no final state reachable from its initial.
func Equal(a, b *DFA) bool {
	xor := SymmetricDifference(a, b)
	live := Minimize(xor)
	return live.NumStates() == 1 && !live.IsFinal(live.initial) && len(live.Transitions(live.initial)) == 0
}
