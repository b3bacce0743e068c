package catalog

import (
	"sort"

	"github.com/coregx/abnfset/abnf"
	"github.com/coregx/abnfset/builtin"
)

// DependencyReport summarizes the reference graph of a rulelist as seen
// from a single root rule: which rules it transitively depends on, which
// of those are core (builtin) rules, which names are referenced but never
// defined, and any cycles found along the way.
type DependencyReport struct {
	// Order lists every non-core dependency in a valid compilation order
	// (dependencies before dependents), root included.
	Order []string
	// Builtins lists the core rulenames the root transitively depends on.
	Builtins []string
	// Undefined lists referenced rulenames that are neither defined in
	// the rulelist nor core.
	Undefined []string
	// Cycles lists every distinct cycle discovered, each as the chain of
	// rulenames that closes it.
	Cycles [][]string
}

// AnalyzeDependencies walks rl's reference graph starting at root (case
// folded per cfg) and reports it. It never errors: undefined references
// and cycles are data in the report, not failures, so tooling can present
// them to a user instead of aborting.
func AnalyzeDependencies(rl *abnf.Rulelist, root string, cfg Config) *DependencyReport {
	byName := map[string]*abnf.Rule{}
	for _, r := range rl.Rules {
		byName[cfg.fold(r.Name)] = r
	}

	rep := &DependencyReport{}
	seenOrder := map[string]bool{}
	undefinedSeen := map[string]bool{}
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	var stack []string

	var visit func(name string)
	visit = func(name string) {
		key := cfg.fold(name)
		switch color[key] {
		case black:
			return
		case gray:
			// Found a back-edge: record the cycle from its first
			// occurrence on the stack to here.
			start := 0
			for i, n := range stack {
				if n == key {
					start = i
					break
				}
			}
			cycle := append(append([]string{}, stack[start:]...), key)
			rep.Cycles = append(rep.Cycles, cycle)
			return
		}
		if builtin.IsCore(key) {
			if !seenOrder[key] {
				seenOrder[key] = true
				rep.Builtins = append(rep.Builtins, key)
			}
			return
		}
		rule, ok := byName[key]
		if !ok {
			if !undefinedSeen[key] {
				undefinedSeen[key] = true
				rep.Undefined = append(rep.Undefined, key)
			}
			return
		}

		color[key] = gray
		stack = append(stack, key)
		for ref := range rule.Alt.ReferencedRules() {
			visit(ref)
		}
		stack = stack[:len(stack)-1]
		color[key] = black

		if !seenOrder[key] {
			seenOrder[key] = true
			rep.Order = append(rep.Order, key)
		}
	}

	visit(root)
	sort.Strings(rep.Builtins)
	sort.Strings(rep.Undefined)
	return rep
}
