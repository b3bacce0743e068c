package catalog

import "testing"

func TestImport_Dereference(t *testing.T) {
	c := New(DefaultConfig())
	mustLoad(t, c, "greeting = <import shared.abnf hello>\r\n")
	c.SetFileLoader(func(filename string) ([]byte, error) {
		if filename != "shared.abnf" {
			t.Fatalf("unexpected filename %q", filename)
		}
		return []byte("hello = \"hi\"\r\n"), nil
	})
	d, err := c.Compile("greeting")
	if err != nil {
		t.Fatal(err)
	}
	accepts(t, d, "hi", true)
	accepts(t, d, "bye", false)
}

func TestImport_MemoizedPerFilename(t *testing.T) {
	c := New(DefaultConfig())
	mustLoad(t, c, "a = <import shared.abnf x>\r\nb = <import shared.abnf x>\r\n")
	calls := 0
	c.SetFileLoader(func(filename string) ([]byte, error) {
		calls++
		return []byte("x = \"z\"\r\n"), nil
	})
	if _, err := c.Compile("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Compile("b"); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1 (memoized per filename)", calls)
	}
}

func TestImport_NonImportProseValErrors(t *testing.T) {
	c := New(DefaultConfig())
	mustLoad(t, c, "r = <a free-text description>\r\n")
	if _, err := c.Compile("r"); err == nil {
		t.Fatal("expected an ImportError for a non-import prose-val")
	}
}
