package catalog

import "testing"

func TestConfig_FoldRespectsCaseFold(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.fold("Foo") != "foo" {
		t.Errorf("fold with CaseFold=true: got %q", cfg.fold("Foo"))
	}
	cfg.CaseFold = false
	if cfg.fold("Foo") != "Foo" {
		t.Errorf("fold with CaseFold=false should be identity, got %q", cfg.fold("Foo"))
	}
}

func TestConfig_CaseSensitiveTreatsDistinctCaseAsDistinctRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaseFold = false
	c := New(cfg)
	mustLoad(t, c, "Foo = \"x\"\r\nfoo = \"y\"\r\n")
	dFoo, err := c.Compile("Foo")
	if err != nil {
		t.Fatal(err)
	}
	dfoo, err := c.Compile("foo")
	if err != nil {
		t.Fatal(err)
	}
	accepts(t, dFoo, "x", true)
	accepts(t, dFoo, "y", false)
	accepts(t, dfoo, "y", true)
}
