package alphabet

import "testing"

func TestClass_MergeAdjacent(t *testing.T) {
	c := NewClass(Range{0x30, 0x39}, Range{0x3A, 0x40})
	if len(c.Ranges) != 1 {
		t.Fatalf("expected merge into 1 range, got %d: %v", len(c.Ranges), c.Ranges)
	}
	if c.Ranges[0] != (Range{0x30, 0x40}) {
		t.Errorf("got %v, want [0x30,0x40]", c.Ranges[0])
	}
}

func TestClass_NoMergeNonAdjacent(t *testing.T) {
	c := NewClass(Range{0x30, 0x39}, Range{0x41, 0x5A})
	if len(c.Ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(c.Ranges))
	}
}

func TestRefine_Empty(t *testing.T) {
	a := Refine(nil)
	if a.Len() != 0 {
		t.Errorf("empty input should yield empty alphabet, got %d classes", a.Len())
	}
}

func TestRefine_SingleClass(t *testing.T) {
	in := []Class{NewClass(Range{0, 9}, Range{20, 29})}
	a := Refine(in)
	if a.Len() != 2 {
		t.Fatalf("want 2 disjoint output ranges, got %d", a.Len())
	}
}

func TestRefine_Overlapping(t *testing.T) {
	// A = [0x30,0x39], B = [0x35,0x41] -> classes: [0x30,0x34] [0x35,0x39] [0x3A,0x41]
	a := Class{Ranges: []Range{{0x30, 0x39}}}
	b := Class{Ranges: []Range{{0x35, 0x41}}}
	refined := Refine([]Class{a, b})

	if refined.Len() != 3 {
		t.Fatalf("want 3 output classes, got %d: %+v", refined.Len(), refined.Classes())
	}
	wantRanges := []Range{{0x30, 0x34}, {0x35, 0x39}, {0x3A, 0x41}}
	for i, cls := range refined.Classes() {
		if len(cls.Ranges) != 1 || cls.Ranges[0] != wantRanges[i] {
			t.Errorf("class %d = %v, want %v", i, cls.Ranges, wantRanges[i])
		}
	}

	if !refined.RefinesInput(0, 0) || refined.RefinesInput(0, 1) {
		t.Errorf("class 0 should refine only input A")
	}
	if !refined.RefinesInput(1, 0) || !refined.RefinesInput(1, 1) {
		t.Errorf("class 1 should refine both A and B")
	}
	if refined.RefinesInput(2, 0) || !refined.RefinesInput(2, 1) {
		t.Errorf("class 2 should refine only input B")
	}
}

func TestRefine_Idempotent(t *testing.T) {
	in := []Class{NewClass(Range{0, 9}), NewClass(Range{5, 14})}
	once := Refine(in)
	twice := Refine(once.Classes())

	if once.Len() != twice.Len() {
		t.Fatalf("refine not idempotent: %d vs %d classes", once.Len(), twice.Len())
	}
	for i := range once.Classes() {
		if once.Classes()[i].Label() != twice.Classes()[i].Label() {
			t.Errorf("class %d label mismatch: %d vs %d", i, once.Classes()[i].Label(), twice.Classes()[i].Label())
		}
	}
}

func TestAlphabet_IsEquivalent(t *testing.T) {
	in := []Class{NewClass(Range{0x61, 0x7A})} // a-z
	a := Refine(in)

	if !a.IsEquivalent('a', 'm') {
		t.Error("a and m should be equivalent (both in a-z)")
	}
	if a.IsEquivalent('a', 'A') {
		t.Error("a and A should not be equivalent")
	}
}

func TestTable_AssignAndGet(t *testing.T) {
	tb := NewTable[int]()
	tb.Assign(NewClass(Range{0x30, 0x39}), 1)
	tb.Assign(NewClass(Range{0x61, 0x7A}), 2)

	if v, ok := tb.Get('5'); !ok || v != 1 {
		t.Errorf("Get('5') = %v,%v want 1,true", v, ok)
	}
	if v, ok := tb.Get('m'); !ok || v != 2 {
		t.Errorf("Get('m') = %v,%v want 2,true", v, ok)
	}
	if _, ok := tb.Get('!'); ok {
		t.Error("Get('!') should miss")
	}
}

func TestTable_SplitInheritsValue(t *testing.T) {
	tb := NewTable[string]()
	tb.Assign(NewClass(Range{0x30, 0x39}), "digit")
	// Now split it by assigning a narrower class.
	tb.Assign(NewClass(Range{0x35, 0x39}), "digit-high")

	if v, ok := tb.Get('2'); !ok || v != "digit" {
		t.Errorf("Get('2') = %v,%v want digit,true", v, ok)
	}
	if v, ok := tb.Get('7'); !ok || v != "digit-high" {
		t.Errorf("Get('7') = %v,%v want digit-high,true", v, ok)
	}
}
