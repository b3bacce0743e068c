// Package abnfset is a library for manipulating regular languages and RFC
// 5234 ABNF grammar: parsing ABNF into an AST, reducing expressions to
// finite-state machines, performing set algebra and minimization on them,
// and resolving whole rulelists — including "=/" incremental definitions
// and prose-val import dereferencing — into a dictionary of compiled
// rules.
//
// Package abnfset is the facade over abnf, catalog, dfa, nfa, regexir, and
// alphabet: most callers only need the functions here, and reach into the
// sub-packages directly only for lower-level algebra (e.g. building and
// combining DFAs by hand rather than through ABNF source text).
package abnfset

import (
	"github.com/coregx/abnfset/abnf"
	"github.com/coregx/abnfset/catalog"
	"github.com/coregx/abnfset/dfa"
)

// Parse canonicalizes src's line endings and validates its ASCII-outside-
// literals constraint, then parses it into a Rulelist.
func Parse(src []byte) (*abnf.Rulelist, error) {
	canon, err := abnf.ReadSource(src)
	if err != nil {
		return nil, err
	}
	return abnf.NewParser(canon).ParseRulelist()
}

// NewCatalog creates an empty Catalog under cfg, exported so callers that
// need to Load several rulelists incrementally, or configure a
// catalog.FileLoader for prose-val imports, don't need to import the
// catalog package by name.
func NewCatalog(cfg catalog.Config) *catalog.Catalog {
	return catalog.New(cfg)
}

// DefaultConfig returns the catalog's default tunables (see
// catalog.DefaultConfig).
func DefaultConfig() catalog.Config {
	return catalog.DefaultConfig()
}

// Compile parses src and compiles every rule it defines, resolving
// each rule's dependencies recursively on demand and caching the result. If importRoot is non-empty, prose-val
// imports of the form "<import filename rulename>" are resolved against
// files under that directory; if empty, such imports will fail to
// resolve when encountered.
func Compile(src []byte, importRoot string) (map[string]*dfa.DFA, error) {
	rl, err := Parse(src)
	if err != nil {
		return nil, err
	}
	c := catalog.New(catalog.DefaultConfig())
	if importRoot != "" {
		c.SetFileLoader(catalog.DirFileLoader(importRoot))
	}
	if err := c.Load(rl); err != nil {
		return nil, err
	}
	return c.CompileAll()
}

// CompileRule parses src and compiles only rulename and its dependency
// closure.
func CompileRule(src []byte, rulename string) (*dfa.DFA, error) {
	rl, err := Parse(src)
	if err != nil {
		return nil, err
	}
	c := catalog.New(catalog.DefaultConfig())
	if err := c.Load(rl); err != nil {
		return nil, err
	}
	return c.Compile(rulename)
}
