package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coregx/abnfset/abnf"
)

// DirFileLoader builds a FileLoader that reads imported documents relative
// to root, applying the same CRLF canonicalization as direct input (§6:
// "the catalog loads files by concatenating a root directory with a
// filename, with the same CR LF canonicalisation as direct input").
func DirFileLoader(root string) FileLoader {
	return func(filename string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(root, filename))
		if err != nil {
			return nil, err
		}
		return abnf.ReadSource(data)
	}
}

// FileLoader reads the raw ABNF source for filename, the way a prose-val
// import dereferences into another document's rulelist.
type FileLoader func(filename string) ([]byte, error)

// importMangle produces the internal dictionary key an imported rule is
// compiled under, so it can never collide with a same-named local rule.
func importMangle(file, rule string) string {
	return fmt.Sprintf("{File: %s Rule: %s}", file, rule)
}

// parseImportProseVal recognizes this module's prose-val import
// convention: <import filename rulename>. Returns ok=false for any
// prose-val that isn't of that shape (an ordinary free-text description).
func parseImportProseVal(p *abnf.ProseVal) (file, rule string, ok bool) {
	fields := strings.Fields(p.Text)
	if len(fields) != 3 || fields[0] != "import" {
		return "", "", false
	}
	return fields[1], fields[2], true
}

// loadImportedRulelist parses filename's contents (via the catalog's
// FileLoader) into a Rulelist, memoizing per filename so a document
// imported by multiple prose-vals is only parsed once.
func (c *Catalog) loadImportedRulelist(file string) (*abnf.Rulelist, error) {
	if rl, ok := c.importCache[file]; ok {
		return rl, nil
	}
	if c.loader == nil {
		return nil, fmt.Errorf("catalog: prose-val import of %q but no FileLoader configured", file)
	}
	src, err := c.loader(file)
	if err != nil {
		return nil, err
	}
	rl, err := abnf.NewParser(src).ParseRulelist()
	if err != nil {
		return nil, err
	}
	c.importCache[file] = rl
	return rl, nil
}
