package regexir

import (
	"testing"

	"github.com/coregx/abnfset/alphabet"
)

func digitClass() alphabet.Class {
	return alphabet.NewClass(alphabet.Range{Lo: '0', Hi: '9'})
}

func TestConcat_FlattensAndDropsEpsilon(t *testing.T) {
	a := Sym(digitClass())
	c := Concat(Eps(), Concat(a, a), Eps())
	if c.Kind != KindConcat || len(c.Children) != 2 {
		t.Fatalf("want flattened 2-child concat, got %+v", c)
	}
}

func TestConcat_EmptyShortCircuits(t *testing.T) {
	c := Concat(Sym(digitClass()), Empty())
	if c.Kind != KindEmpty {
		t.Errorf("concat with an empty child must be empty, got kind %d", c.Kind)
	}
}

func TestAlt_DedupesAndFlattens(t *testing.T) {
	a := Sym(digitClass())
	alt := Alt(a, Alt(a, Sym(digitClass())))
	if alt.Kind != KindRange {
		t.Fatalf("fully-deduped alternation of identical ranges should collapse to the range itself, got kind %d (%+v)", alt.Kind, alt)
	}
}

func TestStarOf_EmptyIsEpsilon(t *testing.T) {
	if StarOf(Empty()).Kind != KindEpsilon {
		t.Error("star(empty) must be epsilon")
	}
}

func TestStarOf_Idempotent(t *testing.T) {
	s := StarOf(Sym(digitClass()))
	if !Equal(StarOf(s), s) {
		t.Error("star(star(r)) must equal star(r)")
	}
}

func TestPrint_Digit(t *testing.T) {
	got := Print(Sym(digitClass()), Perl)
	want := "[0-9]"
	if got != want {
		t.Errorf("Print(digit) = %q, want %q", got, want)
	}
}

func TestPrint_PrecedenceGrouping(t *testing.T) {
	a := Sym(alphabet.NewClass(alphabet.Range{Lo: 'a', Hi: 'a'}))
	b := Sym(alphabet.NewClass(alphabet.Range{Lo: 'b', Hi: 'b'}))
	// (a|b)* must group the alternation under the star.
	star := StarOf(Alt(a, b))
	got := Print(star, Perl)
	want := "(a|b)*"
	if got != want {
		t.Errorf("Print((a|b)*) = %q, want %q", got, want)
	}

	// a* inside a concatenation needs no grouping.
	seq := Concat(StarOf(a), b)
	got2 := Print(seq, Perl)
	want2 := "a*b"
	if got2 != want2 {
		t.Errorf("Print(a*b) = %q, want %q", got2, want2)
	}

	// alternation inside concatenation must group.
	seq2 := Concat(Alt(a, b), b)
	got3 := Print(seq2, Perl)
	want3 := "(a|b)b"
	if got3 != want3 {
		t.Errorf("Print((a|b)b) = %q, want %q", got3, want3)
	}
}
