// Package dotexport renders a dfa.DFA as Graphviz DOT source, for
// visualizing compiled rules and debugging the regular-language algebra.
package dotexport

import (
	"fmt"
	"strings"

	"github.com/coregx/abnfset/alphabet"
	"github.com/coregx/abnfset/dfa"
)

// Options controls the rendered graph's appearance.
type Options struct {
	// GraphName is the digraph's identifier. Defaults to "G".
	GraphName string
	// RankDir sets the layout direction ("LR" or "TB"). Defaults to "LR".
	RankDir string
}

// DefaultOptions returns the package's rendering defaults.
func DefaultOptions() Options {
	return Options{GraphName: "G", RankDir: "LR"}
}

// Render writes d as a Graphviz digraph: a point-shaped "_initial" source
// node with an edge into the start state, doublecircle shapes for finals,
// and one edge per transition labelled with a readable rendering of its
// symbol class.
func Render(d *dfa.DFA, opts Options) string {
	if opts.GraphName == "" {
		opts.GraphName = "G"
	}
	if opts.RankDir == "" {
		opts.RankDir = "LR"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", opts.GraphName)
	fmt.Fprintf(&b, "\trankdir=%s;\n", opts.RankDir)
	b.WriteString("\t_initial [shape=point];\n")

	for s := 0; s < d.NumStates(); s++ {
		shape := "circle"
		if d.IsFinal(dfa.State(s)) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\ts%d [shape=%s, label=\"%d\"];\n", s, shape, s)
	}

	fmt.Fprintf(&b, "\t_initial -> s%d;\n", d.Initial())

	for s := 0; s < d.NumStates(); s++ {
		for _, e := range d.Transitions(dfa.State(s)) {
			fmt.Fprintf(&b, "\ts%d -> s%d [label=%q];\n", s, e.To, classLabel(e.Class))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// classLabel renders a symbol class the way a human reads a character
// range: a comma-separated list of "lo-hi" (or a bare "c" for singleton ranges),
// using printable ASCII literally and escaping everything else as hex.
func classLabel(c alphabet.Class) string {
	parts := make([]string, len(c.Ranges))
	for i, r := range c.Ranges {
		if r.Lo == r.Hi {
			parts[i] = symLabel(r.Lo)
		} else {
			parts[i] = symLabel(r.Lo) + "-" + symLabel(r.Hi)
		}
	}
	return strings.Join(parts, ",")
}

func symLabel(s alphabet.Symbol) string {
	if s >= 0x20 && s < 0x7F {
		return string(rune(s))
	}
	return fmt.Sprintf("\\\\x%02X", uint32(s))
}
