package regexir

// Dialect parameterizes the printer over a concrete regex syntax
// (§4.4): delimiters and meta-character escaping. Printing never tries to
// recover predefined aliases (`\d`, `\w`, ...) from an arbitrary symbol
// class — that would require pattern-matching against the builtin rule
// set, which belongs to the abnf package, not here — so Dialect only
// controls syntax, not alias recognition.
type Dialect struct {
	Name string

	// GroupOpen/GroupClose wrap a sub-expression that must be grouped
	// for precedence (e.g. "(", ")").
	GroupOpen, GroupClose string

	// ClassOpen/ClassClose wrap a character-class range list unless the
	// class is a single symbol (e.g. "[", "]").
	ClassOpen, ClassClose string

	// ClassNegate is unused by abnfset (ABNF has no negated char
	// classes) but is kept for dialect completeness; always "".
	ClassNegate string

	// Star is the repetition suffix operator.
	Star string

	// Alternation is the infix alternation operator (e.g. "|").
	Alternation string

	// Escape is the escape character prefixed to meta-characters when
	// they appear as literals.
	Escape string

	// Meta is the set of characters that must be escaped when they
	// appear as a literal symbol in this dialect.
	Meta map[rune]bool

	// RangeSep separates the lo/hi of a class range inside brackets
	// (e.g. "-").
	RangeSep string
}

func newMeta(chars string) map[rune]bool {
	m := make(map[rune]bool, len(chars))
	for _, c := range chars {
		m[c] = true
	}
	return m
}

// POSIXExtended is the POSIX Extended Regular Expression dialect.
var POSIXExtended = Dialect{
	Name: "posix-extended", GroupOpen: "(", GroupClose: ")",
	ClassOpen: "[", ClassClose: "]", Star: "*", Alternation: "|",
	Escape: "\\", RangeSep: "-",
	Meta: newMeta(`.^$*+?()[]{}|\`),
}

// Perl is the Perl-compatible regex dialect (also what Go's stdlib
// regexp/syntax and coregex itself accept).
var Perl = Dialect{
	Name: "perl", GroupOpen: "(", GroupClose: ")",
	ClassOpen: "[", ClassClose: "]", Star: "*", Alternation: "|",
	Escape: "\\", RangeSep: "-",
	Meta: newMeta(`.^$*+?()[]{}|\`),
}

// ECMAScript is the JavaScript/ECMAScript RegExp dialect.
var ECMAScript = Dialect{
	Name: "ecmascript", GroupOpen: "(", GroupClose: ")",
	ClassOpen: "[", ClassClose: "]", Star: "*", Alternation: "|",
	Escape: "\\", RangeSep: "-",
	Meta: newMeta(`.^$*+?()[]{}|\/`),
}

// Swift is the Swift Regex literal dialect (NSRegularExpression-flavored
// but with Swift's additional escaping of `/` inside regex literals).
var Swift = Dialect{
	Name: "swift", GroupOpen: "(", GroupClose: ")",
	ClassOpen: "[", ClassClose: "]", Star: "*", Alternation: "|",
	Escape: "\\", RangeSep: "-",
	Meta: newMeta(`.^$*+?()[]{}|\/`),
}
