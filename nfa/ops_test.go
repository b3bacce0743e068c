package nfa

import (
	"testing"

	"github.com/coregx/abnfset/alphabet"
)

func rng(lo, hi alphabet.Symbol) *NFA { return FromRange(alphabet.Range{Lo: lo, Hi: hi}) }

func TestUnion(t *testing.T) {
	u := Union(rng('a', 'a'), rng('b', 'b'))
	if !runAccepts(u, []alphabet.Symbol{'a'}) || !runAccepts(u, []alphabet.Symbol{'b'}) {
		t.Error("union should accept both operands' languages")
	}
	if runAccepts(u, []alphabet.Symbol{'c'}) {
		t.Error("union should reject symbols outside both operands")
	}
}

func TestConcatenate(t *testing.T) {
	c := Concatenate(rng('a', 'a'), rng('b', 'b'), rng('c', 'c'))
	if !runAccepts(c, []alphabet.Symbol{'a', 'b', 'c'}) {
		t.Error("should accept the concatenated sequence")
	}
	if runAccepts(c, []alphabet.Symbol{'a', 'b'}) {
		t.Error("should reject a prefix")
	}
}

func TestConcatenate_Empty(t *testing.T) {
	c := Concatenate()
	if !runAccepts(c, nil) {
		t.Error("Concatenate() with no operands should behave like Epsilon()")
	}
}

func TestPlus(t *testing.T) {
	p := Plus(rng('a', 'a'))
	if runAccepts(p, nil) {
		t.Error("plus(a) should reject the empty sequence")
	}
	if !runAccepts(p, []alphabet.Symbol{'a'}) {
		t.Error("plus(a) should accept one repetition")
	}
	if !runAccepts(p, []alphabet.Symbol{'a', 'a', 'a'}) {
		t.Error("plus(a) should accept many repetitions")
	}
}

func TestStar(t *testing.T) {
	s := Star(rng('a', 'a'))
	if !runAccepts(s, nil) {
		t.Error("star(a) should accept the empty sequence")
	}
	if !runAccepts(s, []alphabet.Symbol{'a', 'a'}) {
		t.Error("star(a) should accept repetitions")
	}
}

func TestOptional(t *testing.T) {
	o := Optional(rng('a', 'a'))
	if !runAccepts(o, nil) {
		t.Error("optional(a) should accept the empty sequence")
	}
	if !runAccepts(o, []alphabet.Symbol{'a'}) {
		t.Error("optional(a) should accept a")
	}
	if runAccepts(o, []alphabet.Symbol{'a', 'a'}) {
		t.Error("optional(a) should reject aa")
	}
}

func TestHomomorphism(t *testing.T) {
	// Replace 'x' with the literal chain "ab", and delete 'y' entirely.
	base := Concatenate(rng('x', 'x'), rng('y', 'y'), rng('z', 'z'))
	rules := []HomomorphismRule{
		{From: []alphabet.Range{{Lo: 'x', Hi: 'x'}}, To: []alphabet.Range{{Lo: 'a', Hi: 'a'}, {Lo: 'b', Hi: 'b'}}},
		{From: []alphabet.Range{{Lo: 'y', Hi: 'y'}}, To: nil},
	}
	h := Homomorphism(base, rules)
	if !runAccepts(h, []alphabet.Symbol{'a', 'b', 'z'}) {
		t.Error("homomorphism should accept the rewritten sequence \"abz\"")
	}
	if runAccepts(h, []alphabet.Symbol{'x', 'y', 'z'}) {
		t.Error("homomorphism should no longer accept the original sequence")
	}
}
