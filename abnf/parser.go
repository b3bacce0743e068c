package abnf

import (
	"fmt"
	"sync"

	"github.com/coregx/abnfset/alphabet"
	"github.com/coregx/abnfset/builtin"
	"github.com/coregx/abnfset/dfa"
)

var (
	sharedScanner     *KeywordScanner
	sharedScannerOnce sync.Once
)

// keywordScanner returns the process-wide fixed-token automaton, built once
// since fixedTokens never varies between parsers.
func keywordScanner() *KeywordScanner {
	sharedScannerOnce.Do(func() {
		s, err := NewKeywordScanner()
		if err != nil {
			panic("abnf: building keyword scanner: " + err.Error())
		}
		sharedScanner = s
	})
	return sharedScanner
}

// ParseError reports a syntax error with the byte offset and line it was
// found at.
type ParseError struct {
	Offset int
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("abnf: line %d: %s", e.Line, e.Msg)
}

// Parser turns ABNF source text into a Rulelist. The character classes it
// tests individual bytes against (ALPHA, BIT, DIGIT, HEXDIG, WSP) are the
// same DFAs builtin.All() hands to the catalog package, so a byte is
// classified identically whether the parser or a compiled rule inspects it.
type Parser struct {
	src  []byte
	pos  int
	line int
	core map[string]*dfa.DFA
	kw   *KeywordScanner
}

// NewParser creates a Parser over src.
func NewParser(src []byte) *Parser {
	return &Parser{src: src, pos: 0, line: 1, core: builtin.All(), kw: keywordScanner()}
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) classify(name string, b byte) bool {
	return p.core[name].Accepts([]alphabet.Symbol{alphabet.Symbol(b)})
}

func (p *Parser) eof() bool { return p.pos >= len(p.src) }

func (p *Parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) peekAt(off int) byte {
	if p.pos+off >= len(p.src) {
		return 0
	}
	return p.src[p.pos+off]
}

func (p *Parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
	}
	return c
}

// skipCWSP skips c-wsp: WSP, or a line fold (CRLF followed by WSP), any
// number of times.
func (p *Parser) skipCWSP() {
	for !p.eof() {
		c := p.peek()
		if p.classify("WSP", c) {
			p.advance()
			continue
		}
		if c == '\r' && p.peekAt(1) == '\n' && p.classify("WSP", p.peekAt(2)) {
			p.advance()
			p.advance()
			continue
		}
		break
	}
}

// skipCNL skips a single c-nl (comment-or-newline): an optional ";
// comment" followed by CRLF, or a bare CRLF/LF.
func (p *Parser) skipCNL() bool {
	if p.peek() == ';' {
		for !p.eof() && p.peek() != '\r' && p.peek() != '\n' {
			p.advance()
		}
	}
	if p.peek() == '\r' && p.peekAt(1) == '\n' {
		p.advance()
		p.advance()
		return true
	}
	if p.peek() == '\n' {
		p.advance()
		return true
	}
	return false
}

// skipBlank skips c-wsp / c-nl repeatedly, the inter-rule whitespace of a
// rulelist.
func (p *Parser) skipBlank() {
	for {
		before := p.pos
		p.skipCWSP()
		if p.peek() == ';' || p.peek() == '\r' || p.peek() == '\n' {
			p.skipCNL()
		}
		if p.pos == before {
			return
		}
	}
}

// ParseRulelist parses the entire source as a sequence of rules.
func (p *Parser) ParseRulelist() (*Rulelist, error) {
	rl := &Rulelist{}
	p.skipBlank()
	for !p.eof() {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rl.Rules = append(rl.Rules, rule)
		p.skipBlank()
	}
	return rl, nil
}

func (p *Parser) parseRulename() (string, error) {
	start := p.pos
	if !p.classify("ALPHA", p.peek()) {
		return "", p.errorf("expected rulename, got %q", string(p.peek()))
	}
	p.advance()
	for !p.eof() {
		c := p.peek()
		if p.classify("ALPHA", c) || p.classify("DIGIT", c) || c == '-' {
			p.advance()
			continue
		}
		break
	}
	return string(p.src[start:p.pos]), nil
}

func (p *Parser) parseRule() (*Rule, error) {
	name, err := p.parseRulename()
	if err != nil {
		return nil, err
	}
	p.skipCWSP()
	op := DefinedAssign
	switch p.kw.MatchAt(p.src, p.pos) {
	case "=/":
		op = DefinedIncremental
		p.pos += 2
	case "=":
		p.pos++
	default:
		return nil, p.errorf("expected '=' or '=/' after rulename %q", name)
	}
	p.skipCWSP()
	alt, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	// Consume trailing c-wsp then a mandatory c-nl terminating the rule,
	// unless we've hit EOF (the last rule in a file need not end in a
	// newline).
	p.skipCWSP()
	if !p.eof() {
		if p.peek() == ';' || p.peek() == '\r' || p.peek() == '\n' {
			p.skipCNL()
		}
	}
	return &Rule{Name: name, Op: op, Alt: alt}, nil
}

func (p *Parser) parseAlternation() (*Alternation, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	items := []*Concatenation{first}
	for {
		save := p.pos
		saveLine := p.line
		p.skipCWSP()
		if p.peek() != '/' {
			p.pos = save
			p.line = saveLine
			break
		}
		p.advance()
		p.skipCWSP()
		next, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return &Alternation{Items: items}, nil
}

func (p *Parser) parseConcatenation() (*Concatenation, error) {
	first, err := p.parseRepetition()
	if err != nil {
		return nil, err
	}
	items := []*Repetition{first}
	for {
		save := p.pos
		saveLine := p.line
		p.skipCWSP()
		if !p.startsElement() {
			p.pos = save
			p.line = saveLine
			break
		}
		next, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return &Concatenation{Items: items}, nil
}

// startsElement reports whether the parser is positioned at a byte that
// can begin a repetition (so parseConcatenation knows to keep consuming
// rather than mistaking the next "/" alternative or closing bracket for
// more of this sequence).
func (p *Parser) startsElement() bool {
	c := p.peek()
	if c == 0 {
		return false
	}
	switch c {
	case '(', '[', '"', '<', '%':
		return true
	case '/', ')', ']', ';':
		return false
	}
	return p.classify("ALPHA", c) || p.classify("DIGIT", c) || c == '*' || c == '#'
}

func (p *Parser) parseRepetition() (*Repetition, error) {
	lo, hi := 1, 1
	list := false
	if p.classify("DIGIT", p.peek()) || p.peek() == '*' || p.peek() == '#' {
		start := p.pos
		for p.classify("DIGIT", p.peek()) {
			p.advance()
		}
		loStr := string(p.src[start:p.pos])
		if p.peek() == '*' || p.peek() == '#' {
			list = p.peek() == '#'
			p.advance()
			hiStart := p.pos
			for p.classify("DIGIT", p.peek()) {
				p.advance()
			}
			hiStr := string(p.src[hiStart:p.pos])
			lo = atoiOr(loStr, 0)
			if hiStr == "" {
				hi = -1
			} else {
				hi = atoiOr(hiStr, -1)
			}
		} else {
			n := atoiOr(loStr, 1)
			lo, hi = n, n
		}
	}
	el, err := p.parseElement()
	if err != nil {
		return nil, err
	}
	return &Repetition{Lo: lo, Hi: hi, List: list, Element: el}, nil
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func (p *Parser) parseElement() (Node, error) {
	switch c := p.peek(); {
	case c == '(':
		p.advance()
		p.skipCWSP()
		alt, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		p.skipCWSP()
		if p.peek() != ')' {
			return nil, p.errorf("expected ')' to close group")
		}
		p.advance()
		return &Group{Alt: alt}, nil
	case c == '[':
		p.advance()
		p.skipCWSP()
		alt, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		p.skipCWSP()
		if p.peek() != ']' {
			return nil, p.errorf("expected ']' to close option")
		}
		p.advance()
		return &Option{Alt: alt}, nil
	case c == '"':
		return p.parseCharVal(true)
	case c == '<':
		return p.parseProseVal()
	case c == '%':
		return p.parsePercent()
	case p.classify("ALPHA", c):
		name, err := p.parseRulename()
		if err != nil {
			return nil, err
		}
		return &Rulename{Name: name}, nil
	default:
		return nil, p.errorf("unexpected character %q in element", string(c))
	}
}

func (p *Parser) parseCharVal(insensitiveDefault bool) (*CharVal, error) {
	if p.peek() != '"' {
		return nil, p.errorf("expected opening quote")
	}
	p.advance()
	start := p.pos
	for !p.eof() && p.peek() != '"' {
		p.advance()
	}
	if p.eof() {
		return nil, p.errorf("unterminated quoted string")
	}
	text := string(p.src[start:p.pos])
	p.advance()
	return &CharVal{Text: text, Sensitive: !insensitiveDefault}, nil
}

func (p *Parser) parseProseVal() (*ProseVal, error) {
	p.advance() // '<'
	start := p.pos
	for !p.eof() && p.peek() != '>' {
		p.advance()
	}
	if p.eof() {
		return nil, p.errorf("unterminated prose-val")
	}
	text := string(p.src[start:p.pos])
	p.advance()
	return &ProseVal{Text: text}, nil
}

// parsePercent parses everything that begins with '%': %i"..."/%s"..."
// case-val prefixes (RFC 7405) and %b/%d/%x num-val terminals.
func (p *Parser) parsePercent() (Node, error) {
	switch p.kw.MatchAt(p.src, p.pos) {
	case "%i":
		p.pos += 2
		return p.parseCharVal(true)
	case "%s":
		p.pos += 2
		return p.parseCharVal(false)
	case "%b", "%d", "%x":
		p.advance() // '%', leaving the base letter for parseNumVal
		return p.parseNumVal()
	default:
		return nil, p.errorf("unrecognized %%-escape %q", string(p.peekAt(1)))
	}
}

func (p *Parser) parseNumVal() (*NumVal, error) {
	var kind NumValKind
	var digitClass string
	var base int
	switch p.peek() {
	case 'b':
		kind, digitClass, base = NumBin, "BIT", 2
	case 'd':
		kind, digitClass, base = NumDec, "DIGIT", 10
	case 'x':
		kind, digitClass, base = NumHex, "HEXDIG", 16
	}
	p.advance()

	readDigits := func() (uint32, error) {
		start := p.pos
		for p.classify(digitClass, p.peek()) {
			p.advance()
		}
		if p.pos == start {
			return 0, p.errorf("expected digits in num-val")
		}
		return parseBase(string(p.src[start:p.pos]), base), nil
	}

	first, err := readDigits()
	if err != nil {
		return nil, err
	}

	switch p.peek() {
	case '-':
		p.advance()
		last, err := readDigits()
		if err != nil {
			return nil, err
		}
		return &NumVal{Kind: kind, Range: true, Lo: first, Hi: last}, nil
	case '.':
		values := []uint32{first}
		for p.peek() == '.' {
			p.advance()
			v, err := readDigits()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return &NumVal{Kind: kind, Values: values}, nil
	default:
		return &NumVal{Kind: kind, Values: []uint32{first}}, nil
	}
}

func parseBase(s string, base int) uint32 {
	var n uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		}
		n = n*uint32(base) + d
	}
	return n
}
