package builtin

import (
	"testing"

	"github.com/coregx/abnfset/alphabet"
)

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func accepts(t *testing.T, name string, seq string, want bool) {
	t.Helper()
	d := All()[lower(name)]
	if d == nil {
		t.Fatalf("no builtin rule %q", name)
	}
	syms := make([]alphabet.Symbol, len(seq))
	for i := 0; i < len(seq); i++ {
		syms[i] = alphabet.Symbol(seq[i])
	}
	if got := d.Accepts(syms); got != want {
		t.Errorf("%s.Accepts(%q) = %v, want %v", name, seq, got, want)
	}
}

func TestCoreRules(t *testing.T) {
	accepts(t, "ALPHA", "a", true)
	accepts(t, "ALPHA", "Z", true)
	accepts(t, "ALPHA", "5", false)
	accepts(t, "DIGIT", "5", true)
	accepts(t, "DIGIT", "a", false)
	accepts(t, "HEXDIG", "F", true)
	accepts(t, "HEXDIG", "G", false)
	accepts(t, "CRLF", "\r\n", true)
	accepts(t, "CRLF", "\n", false)
	accepts(t, "WSP", " ", true)
	accepts(t, "WSP", "\t", true)
	accepts(t, "LWSP", "", true)
	accepts(t, "LWSP", "  \t", true)
	accepts(t, "LWSP", "\r\n ", true)
	accepts(t, "BIT", "0", true)
	accepts(t, "BIT", "2", false)
}

func TestIsCore(t *testing.T) {
	if !IsCore("DIGIT") {
		t.Error("DIGIT should be a core rule")
	}
	if IsCore("postal-code") {
		t.Error("postal-code should not be a core rule")
	}
}
