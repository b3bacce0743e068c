package dfa

import "github.com/coregx/abnfset/alphabet"

// Minimize implements Hopcroft-style partition refinement (§4.3.2).
//
// Steps: (1) remove unreachable states via BFS from the initial state;
// (2) remove dead states — those with no path to any final — via BFS on
// the reversed transition graph seeded at the finals; (3) initialize a
// two-block partition (finals, non-finals) over what remains; (4)
// repeatedly split any block whose members disagree on which block their
// class-c successor lands in, for every class c, until a full pass makes
// no split; (5) emit one output state per surviving block.
//
// If the language is empty, the minimal DFA is a single non-accepting
// state over the empty alphabet.
func Minimize(d *DFA) *DFA {
	reachable := reachableFrom(d, d.initial)
	live := liveStates(d, reachable)
	if len(live) == 0 {
		return New(alphabet.Alphabet{}, 1, 0)
	}

	liveSet := make(map[State]bool, len(live))
	for _, s := range live {
		liveSet[s] = true
	}

	var finalsBlock, nonFinalsBlock []State
	for _, s := range live {
		if d.IsFinal(s) {
			finalsBlock = append(finalsBlock, s)
		} else {
			nonFinalsBlock = append(nonFinalsBlock, s)
		}
	}
	var blocks [][]State
	if len(finalsBlock) > 0 {
		blocks = append(blocks, finalsBlock)
	}
	if len(nonFinalsBlock) > 0 {
		blocks = append(blocks, nonFinalsBlock)
	}

	numClasses := d.alphabet.Len()

	targetBlock := func(bo map[State]int, s State, classIdx int) int {
		t := d.StepClass(s, classIdx)
		if t == Sink || !liveSet[t] {
			return -1
		}
		return bo[t]
	}

	for {
		bo := blockIndex(blocks)
		var newBlocks [][]State
		splitAny := false
		for _, blk := range blocks {
			groups := map[string][]State{}
			var order []string
			for _, s := range blk {
				sig := make([]byte, 0, numClasses*4)
				for c := 0; c < numClasses; c++ {
					tb := targetBlock(bo, s, c)
					sig = append(sig, byte(tb), byte(tb>>8), byte(tb>>16), byte(tb>>24))
				}
				key := string(sig)
				if _, ok := groups[key]; !ok {
					order = append(order, key)
				}
				groups[key] = append(groups[key], s)
			}
			if len(order) > 1 {
				splitAny = true
			}
			for _, key := range order {
				newBlocks = append(newBlocks, groups[key])
			}
		}
		blocks = newBlocks
		if !splitAny {
			break
		}
	}

	bo := blockIndex(blocks)
	out := New(d.alphabet, len(blocks), State(bo[d.initial]))
	for bi, blk := range blocks {
		rep := blk[0]
		for c := 0; c < numClasses; c++ {
			if tb := targetBlock(bo, rep, c); tb >= 0 {
				out.SetTransition(State(bi), c, State(tb))
			}
		}
		if d.IsFinal(rep) {
			out.MarkFinal(State(bi))
		}
	}
	return out
}

func blockIndex(blocks [][]State) map[State]int {
	m := make(map[State]int)
	for bi, blk := range blocks {
		for _, s := range blk {
			m[s] = bi
		}
	}
	return m
}

func reachableFrom(d *DFA, start State) []State {
	seen := map[State]bool{start: true}
	queue := []State{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range d.Transitions(cur) {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	out := make([]State, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}

func liveStates(d *DFA, reachable []State) []State {
	reachSet := make(map[State]bool, len(reachable))
	for _, s := range reachable {
		reachSet[s] = true
	}
	rev := map[State][]State{}
	for _, s := range reachable {
		for _, e := range d.Transitions(s) {
			if reachSet[e.To] {
				rev[e.To] = append(rev[e.To], s)
			}
		}
	}
	seen := map[State]bool{}
	var queue []State
	for _, s := range reachable {
		if d.IsFinal(s) && !seen[s] {
			seen[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range rev[cur] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	out := make([]State, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}
