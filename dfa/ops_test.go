package dfa

import (
	"testing"

	"github.com/coregx/abnfset/alphabet"
	"github.com/coregx/abnfset/nfa"
)

func TestRepeatRange_Desugaring(t *testing.T) {
	// 2*3DIGIT: accepts 2 or 3 digits, rejects 1 or 4.
	d := RepeatRange(digitDFA(), 2, 3)

	cases := []struct {
		seq  []alphabet.Symbol
		want bool
	}{
		{[]alphabet.Symbol{0x30}, false},
		{[]alphabet.Symbol{0x30, 0x31}, true},
		{[]alphabet.Symbol{0x30, 0x31, 0x32}, true},
		{[]alphabet.Symbol{0x30, 0x31, 0x32, 0x33}, false},
	}
	for _, c := range cases {
		if got := d.Accepts(c.seq); got != c.want {
			t.Errorf("Accepts(%v) = %v, want %v", c.seq, got, c.want)
		}
	}
}

func TestRepeatAtLeast(t *testing.T) {
	d := RepeatAtLeast(digitDFA(), 1)
	if d.Accepts(nil) {
		t.Error("1*DIGIT must reject the empty sequence")
	}
	if !d.Accepts([]alphabet.Symbol{'1'}) {
		t.Error("1*DIGIT must accept a single digit")
	}
	if !d.Accepts([]alphabet.Symbol{'1', '2', '3', '4', '5'}) {
		t.Error("1*DIGIT must accept many digits")
	}
}

func TestOptional(t *testing.T) {
	d := Optional(digitDFA())
	if !d.Accepts(nil) {
		t.Error("[DIGIT] must accept the empty sequence")
	}
	if !d.Accepts([]alphabet.Symbol{'5'}) {
		t.Error("[DIGIT] must accept a single digit")
	}
	if d.Accepts([]alphabet.Symbol{'5', '5'}) {
		t.Error("[DIGIT] must reject two digits")
	}
}

func TestRepeatList(t *testing.T) {
	// 1#3DIGIT: a comma-separated list of 1 to 3 digits.
	comma := FromNFA(nfa.FromRange(alphabet.Range{Lo: ',', Hi: ','}))
	d := RepeatList(digitDFA(), comma, 1, 3)

	cases := []struct {
		seq  string
		want bool
	}{
		{"1", true},
		{"1,2", true},
		{"1,2,3", true},
		{"1,2,3,4", false},
		{"", false},
		{",1", false},
	}
	for _, c := range cases {
		syms := make([]alphabet.Symbol, len(c.seq))
		for i, r := range c.seq {
			syms[i] = alphabet.Symbol(r)
		}
		if got := d.Accepts(syms); got != c.want {
			t.Errorf("Accepts(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}

func TestRepeatList_MandatoryTail(t *testing.T) {
	// 2#4DIGIT: a comma-separated list of 2 to 4 digits. A single digit
	// has length 1, below the lo=2 floor, and must be rejected.
	comma := FromNFA(nfa.FromRange(alphabet.Range{Lo: ',', Hi: ','}))
	d := RepeatList(digitDFA(), comma, 2, 4)

	cases := []struct {
		seq  string
		want bool
	}{
		{"1", false},
		{"1,2", true},
		{"1,2,3", true},
		{"1,2,3,4", true},
		{"1,2,3,4,5", false},
		{"", false},
	}
	for _, c := range cases {
		syms := make([]alphabet.Symbol, len(c.seq))
		for i, r := range c.seq {
			syms[i] = alphabet.Symbol(r)
		}
		if got := d.Accepts(syms); got != c.want {
			t.Errorf("Accepts(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}
