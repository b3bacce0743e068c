// Package catalog resolves a parsed ABNF rulelist into a dictionary of
// compiled DFAs: it merges "=/" incremental alternatives into their base
// rule, compiles each rule's dependencies before the rule itself, detects
// cycles and undefined references, and dereferences this module's
// prose-val import convention against other documents.
package catalog

import (
	"github.com/coregx/abnfset/abnf"
	"github.com/coregx/abnfset/builtin"
	"github.com/coregx/abnfset/dfa"
)

// Catalog accumulates rules loaded from one or more rulelists and compiles
// them on demand, caching every compiled rule so repeated Compile calls
// for different roots share work.
type Catalog struct {
	cfg         Config
	rules       map[string]*abnf.Rule // keyed by cfg.fold(name)
	order       []string              // insertion order of rules, for Rules()
	compiled    map[string]*dfa.DFA
	builtins    map[string]*dfa.DFA
	loader      FileLoader
	importCache map[string]*abnf.Rulelist
	listSep     *dfa.DFA
}

// New creates an empty Catalog, compiling cfg.ListSeparator once up front
// so every #-list repetition it resolves later shares the same machine.
func New(cfg Config) *Catalog {
	c := &Catalog{
		cfg:         cfg,
		rules:       map[string]*abnf.Rule{},
		compiled:    map[string]*dfa.DFA{},
		builtins:    builtin.All(),
		importCache: map[string]*abnf.Rulelist{},
	}
	c.listSep = c.compileSeparator(cfg.ListSeparator)
	return c
}

// compileSeparator compiles a bare ABNF alternation snippet (no rulename,
// no "="), such as Config.ListSeparator, against the core rule dictionary.
// Falls back to abnf.DefaultListSeparator on any parse/compile failure, so
// a malformed Config never prevents the catalog from being constructed.
func (c *Catalog) compileSeparator(src string) *dfa.DFA {
	rl, err := abnf.NewParser([]byte("sep = " + src + "\r\n")).ParseRulelist()
	if err != nil || len(rl.Rules) == 0 {
		return abnf.DefaultListSeparator()
	}
	d, err := abnf.ToDFA(rl.Rules[0].Alt, c.builtins)
	if err != nil {
		return abnf.DefaultListSeparator()
	}
	return d
}

// SetFileLoader configures how prose-val imports of the form
// "<import filename rulename>" dereference other documents.
func (c *Catalog) SetFileLoader(loader FileLoader) { c.loader = loader }

// Load merges rl's rules into the catalog: a first "=" definition is
// inserted, a later "=/" is merged as additional alternation branches onto
// the existing rule (errors with ErrIncrementalWithoutBase if there is no
// base), and a later "=" is handled per cfg.DuplicateRulePolicy.
func (c *Catalog) Load(rl *abnf.Rulelist) error {
	for _, rule := range rl.Rules {
		key := c.cfg.fold(rule.Name)
		existing, ok := c.rules[key]
		if !ok {
			if rule.Op == abnf.DefinedIncremental {
				return &IncrementalWithoutBaseError{Name: rule.Name}
			}
			c.rules[key] = rule
			c.order = append(c.order, key)
			continue
		}

		if rule.Op == abnf.DefinedIncremental {
			merged := &abnf.Rule{
				Name: existing.Name,
				Op:   existing.Op,
				Alt:  existing.Alt.Union(rule.Alt),
			}
			c.rules[key] = merged
			continue
		}

		switch c.cfg.DuplicateRulePolicy {
		case DuplicateFirstWins:
			// keep existing
		case DuplicateLastWins:
			c.rules[key] = rule
		default:
			return &DuplicateRuleError{Name: rule.Name}
		}
	}
	return nil
}

// Rules returns every rulename currently loaded, in first-load order.
func (c *Catalog) Rules() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Dependencies reports root's reference graph without compiling anything.
func (c *Catalog) Dependencies(root string) *DependencyReport {
	rl := &abnf.Rulelist{}
	for _, name := range c.order {
		rl.Rules = append(rl.Rules, c.rules[name])
	}
	return AnalyzeDependencies(rl, root, c.cfg)
}

// Compile resolves root's full dependency chain and returns its compiled
// DFA, caching every rule compiled along the way.
func (c *Catalog) Compile(root string) (*dfa.DFA, error) {
	return c.resolve(root, map[string]bool{}, 0)
}

// CompileAll compiles every rule currently loaded, returning a dictionary
// keyed by folded rulename. Compilation failures for one rule do not
// prevent others from being attempted; the first error encountered is
// returned alongside whatever did compile.
func (c *Catalog) CompileAll() (map[string]*dfa.DFA, error) {
	out := map[string]*dfa.DFA{}
	var firstErr error
	for _, name := range c.order {
		d, err := c.Compile(name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out[name] = d
	}
	return out, firstErr
}

func (c *Catalog) resolve(name string, visiting map[string]bool, depth int) (*dfa.DFA, error) {
	key := c.cfg.fold(name)
	if d, ok := c.compiled[key]; ok {
		return d, nil
	}
	if d, ok := c.builtins[key]; ok {
		c.compiled[key] = d
		return d, nil
	}
	rule, ok := c.rules[key]
	if !ok {
		return nil, &UndefinedRuleError{Name: name}
	}
	if visiting[key] {
		return nil, &CycleError{Chain: []string{key, key}}
	}
	if depth > c.cfg.MaxRuleDepth {
		return nil, &DepthExceededError{Name: name, Depth: depth}
	}

	visiting[key] = true
	d, err := c.compileNode(rule.Alt, visiting, depth+1)
	delete(visiting, key)
	if err != nil {
		return nil, err
	}
	c.compiled[key] = d
	return d, nil
}

// compileNode mirrors abnf.ToDFA's node traversal, but resolves Rulename
// through this catalog's rule dictionary (tracking recursion depth and
// cycles) and dereferences import-shaped prose-vals, instead of requiring
// a pre-compiled flat dictionary up front.
func (c *Catalog) compileNode(node abnf.Node, visiting map[string]bool, depth int) (*dfa.DFA, error) {
	switch n := node.(type) {
	case *abnf.Rulename:
		return c.resolve(n.Name, visiting, depth)
	case *abnf.CharVal, *abnf.NumVal:
		return abnf.ToDFA(node, nil)
	case *abnf.ProseVal:
		return c.compileImport(n, visiting, depth)
	case *abnf.Group:
		return c.compileNode(n.Alt, visiting, depth)
	case *abnf.Option:
		inner, err := c.compileNode(n.Alt, visiting, depth)
		if err != nil {
			return nil, err
		}
		return dfa.Optional(inner), nil
	case *abnf.Repetition:
		return c.compileRepetition(n, visiting, depth)
	case *abnf.Concatenation:
		return c.compileConcatenation(n, visiting, depth)
	case *abnf.Alternation:
		return c.compileAlternation(n, visiting, depth)
	default:
		return abnf.ToDFA(node, nil)
	}
}

func (c *Catalog) compileRepetition(r *abnf.Repetition, visiting map[string]bool, depth int) (*dfa.DFA, error) {
	el, err := c.compileNode(r.Element, visiting, depth)
	if err != nil {
		return nil, err
	}
	if r.List {
		return abnf.WrapListRepetition(r.Lo, r.Hi, el, c.listSep), nil
	}
	return abnf.WrapRepetition(r.Lo, r.Hi, el), nil
}

func (c *Catalog) compileConcatenation(conc *abnf.Concatenation, visiting map[string]bool, depth int) (*dfa.DFA, error) {
	machines := make([]*dfa.DFA, 0, len(conc.Items))
	for _, rep := range conc.Items {
		d, err := c.compileRepetition(rep, visiting, depth)
		if err != nil {
			return nil, err
		}
		machines = append(machines, d)
	}
	return abnf.WrapConcatenation(machines), nil
}

func (c *Catalog) compileAlternation(alt *abnf.Alternation, visiting map[string]bool, depth int) (*dfa.DFA, error) {
	machines := make([]*dfa.DFA, 0, len(alt.Items))
	for _, conc := range alt.Items {
		d, err := c.compileConcatenation(conc, visiting, depth)
		if err != nil {
			return nil, err
		}
		machines = append(machines, d)
	}
	return dfa.UnionAll(machines...), nil
}

// compileImport dereferences an import-shaped prose-val against another
// document, memoizing the imported rulelist per filename. A non-import
// prose-val (ordinary free text) is reported as ErrBadImport: it has no
// compilable meaning on its own.
func (c *Catalog) compileImport(p *abnf.ProseVal, visiting map[string]bool, depth int) (*dfa.DFA, error) {
	file, ruleName, ok := parseImportProseVal(p)
	if !ok {
		return nil, &ImportError{Err: ErrBadImport}
	}
	mangled := importMangle(file, ruleName)
	if d, ok := c.compiled[mangled]; ok {
		return d, nil
	}
	rl, err := c.loadImportedRulelist(file)
	if err != nil {
		return nil, &ImportError{File: file, Rule: ruleName, Err: err}
	}

	sub := New(c.cfg)
	sub.loader = c.loader
	sub.importCache = c.importCache
	if err := sub.Load(rl); err != nil {
		return nil, &ImportError{File: file, Rule: ruleName, Err: err}
	}
	d, err := sub.Compile(ruleName)
	if err != nil {
		return nil, &ImportError{File: file, Rule: ruleName, Err: err}
	}
	c.compiled[mangled] = d
	return d, nil
}
