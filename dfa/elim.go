package dfa

import "github.com/coregx/abnfset/regexir"

// ToRegex converts d to an equivalent regexir.Regex via state
// elimination (§4.3.5).
//
// A fresh initial state 0 is introduced with an epsilon transition to
// d's old initial, and a fresh sole accepting state 1 receives an
// epsilon transition from every old final. Intermediate states are then
// eliminated one at a time, highest index first: for state e, every
// incoming edge d->e labelled R_de, the self-loop e->e labelled R_ee
// (absent if none), and every outgoing e->f labelled R_ef are combined
// into a new d->f edge labelled R_df | R_de . R_ee* . R_ef, and e is
// removed. When only states 0 and 1 remain, the regex is read directly
// off the 2x2 transition matrix.
func (d *DFA) ToRegex() *regexir.Regex {
	n := d.NumStates()
	// label[i][j] is the regex labelling the (possibly absent, in which
	// case nil) edge from elimination-state i to j, over states
	// 0..n+1 where 0 and 1 are the fresh start/accept states and
	// 2..n+1 correspond to d's original states 0..n-1.
	size := n + 2
	label := make([][]*regexir.Regex, size)
	for i := range label {
		label[i] = make([]*regexir.Regex, size)
	}

	orEdge := func(i, j int, r *regexir.Regex) {
		if label[i][j] == nil {
			label[i][j] = r
		} else {
			label[i][j] = regexir.Alt(label[i][j], r)
		}
	}

	label[0][2+int(d.initial)] = regexir.Eps()
	for f := range d.finals {
		if d.IsFinal(f) {
			orEdge(2+int(f), 1, regexir.Eps())
		}
	}
	for s := 0; s < n; s++ {
		for _, e := range d.Transitions(State(s)) {
			orEdge(2+s, 2+int(e.To), regexir.Sym(e.Class))
		}
	}

	// Eliminate intermediate states (original indices) highest first, so
	// state IDs 2+n-1 down to 2.
	for e := size - 1; e >= 2; e-- {
		self := label[e][e]
		var selfStar *regexir.Regex
		if self != nil {
			selfStar = regexir.StarOf(self)
		}
		for din := 0; din < size; din++ {
			if din == e {
				continue
			}
			rde := label[din][e]
			if rde == nil {
				continue
			}
			for dout := 0; dout < size; dout++ {
				if dout == e {
					continue
				}
				ref := label[e][dout]
				if ref == nil {
					continue
				}
				var through *regexir.Regex
				if selfStar != nil {
					through = regexir.Concat(rde, selfStar, ref)
				} else {
					through = regexir.Concat(rde, ref)
				}
				orEdge(din, dout, through)
			}
			label[din][e] = nil
		}
		for dout := 0; dout < size; dout++ {
			label[e][dout] = nil
		}
	}

	r00 := label[0][0]
	r01 := label[0][1]
	r10 := label[1][0]
	r11 := label[1][1]

	if r01 == nil {
		return regexir.Empty()
	}

	var r11star *regexir.Regex
	if r11 != nil {
		r11star = regexir.StarOf(r11)
	}

	loop := r00
	if r10 != nil {
		var through *regexir.Regex
		if r11star != nil {
			through = regexir.Concat(r01, r11star, r10)
		} else {
			through = regexir.Concat(r01, r10)
		}
		if loop == nil {
			loop = through
		} else {
			loop = regexir.Alt(loop, through)
		}
	}

	var loopStar *regexir.Regex
	if loop != nil {
		loopStar = regexir.StarOf(loop)
	}

	tail := r01
	if r11star != nil {
		tail = regexir.Concat(r01, r11star)
	}

	if loopStar != nil {
		return regexir.Concat(loopStar, tail)
	}
	return tail
}
