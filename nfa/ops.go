package nfa

import "github.com/coregx/abnfset/alphabet"

// merge copies other's states into n, offsetting every StateID reference
// by the size of n at the time of the call. It returns the offset so the
// caller can translate other's own StateIDs (initial/final sets) into
// n's address space.
func (n *NFA) merge(other *NFA) StateID {
	offset := StateID(len(n.states))
	for _, s := range other.states {
		ns := State{
			Transitions: make([]RangeEdge, len(s.Transitions)),
			Epsilon:     make([]StateID, len(s.Epsilon)),
		}
		for i, t := range s.Transitions {
			ns.Transitions[i] = RangeEdge{Range: t.Range, To: t.To + offset}
		}
		for i, e := range s.Epsilon {
			ns.Epsilon[i] = e + offset
		}
		n.states = append(n.states, ns)
	}
	for f := range other.finals {
		n.finals[f+offset] = true
	}
	return offset
}

// Union builds the NFA accepting the union of the operands' languages
// (§4.2): a fresh initial state epsilon-connected to both operands'
// initials, their state spaces merged disjointly.
func Union(a, b *NFA) *NFA {
	n := New()
	aOff := n.merge(a)
	bOff := n.merge(b)

	fresh := n.AddState()
	for _, i := range a.initial {
		n.AddEpsilon(fresh, i+aOff)
	}
	for _, i := range b.initial {
		n.AddEpsilon(fresh, i+bOff)
	}
	n.SetInitial(fresh)
	return n
}

// Concatenate builds the NFA accepting the concatenation of the given
// machines in order: an epsilon edge is added from every final of
// machine i to every initial of machine i+1, and only the last machine's
// finals remain accepting.
func Concatenate(machines ...*NFA) *NFA {
	if len(machines) == 0 {
		return Epsilon()
	}
	n := New()
	offsets := make([]StateID, len(machines))
	for i, m := range machines {
		offsets[i] = n.merge(m)
	}

	n.SetInitial(translate(machines[0].initial, offsets[0])...)

	// Clear finality on every machine's original finals (merge copied the
	// flags over); only the last machine's finals should remain final.
	for i := 0; i < len(machines)-1; i++ {
		for f := range machines[i].finals {
			n.UnmarkFinal(f + offsets[i])
		}
	}
	for f := range machines[len(machines)-1].finals {
		n.MarkFinal(f + offsets[len(machines)-1])
	}

	for i := 0; i < len(machines)-1; i++ {
		for f := range machines[i].finals {
			for _, init := range machines[i+1].initial {
				n.AddEpsilon(f+offsets[i], init+offsets[i+1])
			}
		}
	}

	return n
}

func translate(ids []StateID, offset StateID) []StateID {
	out := make([]StateID, len(ids))
	for i, id := range ids {
		out[i] = id + offset
	}
	return out
}

// Plus builds the NFA accepting one-or-more repetitions of a's language:
// an epsilon edge from every final back to every initial.
func Plus(a *NFA) *NFA {
	n := New()
	off := n.merge(a)
	n.SetInitial(translate(a.initial, off)...)
	for f := range a.finals {
		for _, init := range a.initial {
			n.AddEpsilon(f+off, init+off)
		}
	}
	return n
}

// Star builds the NFA accepting zero-or-more repetitions of a's
// language: Optional(Plus(a)).
func Star(a *NFA) *NFA {
	return Optional(Plus(a))
}

// Optional builds the NFA accepting a's language or the empty sequence:
// a fresh initial state, itself final, with an epsilon edge to each of
// a's initials. a's initials stay non-final, so a word that merely leads
// back to one of them is not accepted.
func Optional(a *NFA) *NFA {
	n := New()
	off := n.merge(a)
	fresh := n.AddState()
	for _, i := range a.initial {
		n.AddEpsilon(fresh, i+off)
	}
	n.SetInitial(fresh)
	n.MarkFinal(fresh)
	return n
}

// HomomorphismRule rewrites a transition into the sequence To. Only
// rules whose From holds exactly one range are applied, and a transition
// matches such a rule only when its range equals that range; a From of
// several ranges never matches. An empty To denotes deletion (the matched
// input is replaced by an epsilon edge).
type HomomorphismRule struct {
	From []alphabet.Range
	To   []alphabet.Range
}

// Homomorphism replaces every symbol-range transition in a with the
// chain of transitions specified by the matching rule's To sequence (or
// an epsilon edge if To is empty), leaving a's topology otherwise
// unchanged. Transitions whose range matches no rule pass through
// unmodified.
func Homomorphism(a *NFA, rules []HomomorphismRule) *NFA {
	n := New()
	for range a.states {
		n.AddState()
	}
	n.SetInitial(a.initial...)
	for f := range a.finals {
		n.MarkFinal(f)
	}
	for i, s := range a.states {
		from := StateID(i)
		for _, e := range s.Epsilon {
			n.AddEpsilon(from, e)
		}
		for _, tr := range s.Transitions {
			rule, ok := matchRule(rules, tr.Range)
			if !ok {
				n.AddTransition(from, tr.Range, tr.To)
				continue
			}
			if len(rule.To) == 0 {
				n.AddEpsilon(from, tr.To)
				continue
			}
			cur := from
			for j, r := range rule.To {
				if j == len(rule.To)-1 {
					n.AddTransition(cur, r, tr.To)
				} else {
					mid := n.AddState()
					n.AddTransition(cur, r, mid)
					cur = mid
				}
			}
		}
	}
	return n
}

func matchRule(rules []HomomorphismRule, r alphabet.Range) (HomomorphismRule, bool) {
	for _, rule := range rules {
		if len(rule.From) == 1 && rule.From[0] == r {
			return rule, true
		}
	}
	return HomomorphismRule{}, false
}
