package catalog

import (
	"errors"
	"fmt"
)

// Common catalog errors.
var (
	// ErrDuplicateRule indicates a rule name was defined more than once
	// with "=" under a policy that rejects redefinition.
	ErrDuplicateRule = errors.New("duplicate rule definition")

	// ErrUndefinedRule indicates a rulename was referenced but never
	// defined and isn't one of the sixteen core rules.
	ErrUndefinedRule = errors.New("undefined rule")

	// ErrCycle indicates a rule's definition depends on itself, directly
	// or transitively.
	ErrCycle = errors.New("rule dependency cycle")

	// ErrMaxDepthExceeded indicates rule resolution recursed past
	// Config.MaxRuleDepth.
	ErrMaxDepthExceeded = errors.New("maximum rule depth exceeded")

	// ErrIncrementalWithoutBase indicates a "=/" rule appeared with no
	// prior "=" definition of the same name in the catalog.
	ErrIncrementalWithoutBase = errors.New("incremental rule has no base definition")

	// ErrBadImport indicates a prose-val did not parse as this module's
	// import convention.
	ErrBadImport = errors.New("malformed prose-val import")
)

// DuplicateRuleError reports which rule name was redefined.
type DuplicateRuleError struct {
	Name string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("catalog: rule %q redefined", e.Name)
}
func (e *DuplicateRuleError) Unwrap() error { return ErrDuplicateRule }

// UndefinedRuleError reports which rulename had no definition.
type UndefinedRuleError struct {
	Name string
}

func (e *UndefinedRuleError) Error() string {
	return fmt.Sprintf("catalog: rule %q is undefined", e.Name)
}
func (e *UndefinedRuleError) Unwrap() error { return ErrUndefinedRule }

// CycleError reports a dependency cycle. Chain holds the folded name of
// the rule at which resolution re-entered a rule already being resolved,
// listed twice; the intermediate rules of the cycle are not included.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	out := "catalog: dependency cycle: "
	for i, n := range e.Chain {
		if i > 0 {
			out += " -> "
		}
		out += n
	}
	return out
}
func (e *CycleError) Unwrap() error { return ErrCycle }

// DepthExceededError reports which rule's resolution exceeded the
// configured depth bound.
type DepthExceededError struct {
	Name  string
	Depth int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("catalog: rule %q exceeded max depth %d", e.Name, e.Depth)
}
func (e *DepthExceededError) Unwrap() error { return ErrMaxDepthExceeded }

// IncrementalWithoutBaseError reports a "=/" rule with no prior "="
// definition of the same name.
type IncrementalWithoutBaseError struct {
	Name string
}

func (e *IncrementalWithoutBaseError) Error() string {
	return fmt.Sprintf("catalog: rule %q uses \"=/\" with no prior \"=\" definition", e.Name)
}
func (e *IncrementalWithoutBaseError) Unwrap() error { return ErrIncrementalWithoutBase }

// ImportError reports a failure resolving a prose-val import.
type ImportError struct {
	File, Rule string
	Err        error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("catalog: import %s %s: %v", e.File, e.Rule, e.Err)
}
func (e *ImportError) Unwrap() error { return e.Err }
