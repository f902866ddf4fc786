// Package css_lexer tokenizes the SCSS-subset source language: a
// single-pass deterministic state machine over a byte stream, producing
// a flat token sequence with source-range annotations. Dispatch happens
// on the current lookahead byte, with a "read while predicate" helper
// and an explicit end-of-input sentinel so running out of bytes is just
// another byte value rather than a special case.
package css_lexer

import (
	"github.com/stylekit/scssc/internal/errs"
	"github.com/stylekit/scssc/internal/logger"
)

type T uint8

const (
	Selector T = iota
	BlockStart
	BlockEnd
	PropertyName
	PropertyValue
	EndStatement
	VariableName
	VariableValue
	EndOfFile
)

var tokenNames = [...]string{
	"Selector", "BlockStart", "BlockEnd", "PropertyName", "PropertyValue",
	"EndStatement", "VariableName", "VariableValue", "EndOfFile",
}

func (t T) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "Unknown"
}

// Token is a tagged value over a half-open byte range into the original
// input. EndOfFile is always the last token in a Tokenization.
type Token struct {
	Range logger.Range
	Kind  T
}

// Lexeme recovers the exact byte slice this token refers to.
func (t Token) Lexeme(source logger.Source) string {
	return source.Text(t.Range)
}

// Tokenization is the flat token sequence plus the original input buffer,
// which lexemes are sliced from throughout parsing, resolution, and
// emission.
type Tokenization struct {
	Tokens []Token
	Source logger.Source
}

const eof = 0

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool  { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '_'
}
func isSelectorStart(c byte) bool {
	return isIdentChar(c) || c == '.' || c == '#'
}
func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
func isSpace(c byte) bool {
	return isBlank(c) || c == '\r' || c == '\n'
}
func isNewline(c byte) bool {
	return c == '\r' || c == '\n'
}

// lexer holds the cursor over the input buffer. Unlike a rune-based
// scanner, this walks raw bytes: every character class in this
// grammar is pure ASCII, so byte-at-a-time stepping is both correct
// and simpler than decoding UTF-8 code points.
type lexer struct {
	input string
	pos   int
}

// cur returns the current lookahead byte, or the synthetic eof sentinel
// (0) once the cursor runs past the end of input. This lets every state's
// dispatch treat "ran out of bytes" as just another byte value instead of
// a special case.
func (l *lexer) cur() byte {
	if l.pos >= len(l.input) {
		return eof
	}
	return l.input[l.pos]
}

func (l *lexer) advance() {
	if l.pos < len(l.input) {
		l.pos++
	}
}

func (l *lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// skipWhile advances past a run of bytes matching pred.
func (l *lexer) skipWhile(pred func(byte) bool) {
	for !l.atEOF() && pred(l.cur()) {
		l.advance()
	}
}

func (l *lexer) skipSpaces() { l.skipWhile(isSpace) }
func (l *lexer) skipBlanks() { l.skipWhile(isBlank) }

// Tokenize runs the whole input through the state machine in one pass
// and returns the flat token sequence, or the first error encountered.
// There is no recovery: no partial token sequence is returned on failure.
func Tokenize(source logger.Source) (Tokenization, error) {
	l := &lexer{input: source.Contents}
	var tokens []Token
	depth := 0

	emit := func(kind T, start, end int) {
		tokens = append(tokens, Token{
			Kind:  kind,
			Range: logger.Range{Loc: logger.Loc{Start: int32(start)}, Len: int32(end - start)},
		})
	}

	fail := func(kind errs.Kind, detail string) (Tokenization, error) {
		return Tokenization{}, errs.New(kind, detail)
	}

	for {
		l.skipSpaces()
		c := l.cur()

		switch {
		case c == eof && l.atEOF():
			if depth != 0 {
				return fail(errs.UnexpectedEndOfFile, "unclosed block at end of input")
			}
			emit(EndOfFile, l.pos, l.pos+1)
			return Tokenization{Tokens: tokens, Source: source}, nil

		case c == '$':
			if err := tokenizeVariable(l, emit); err != nil {
				return Tokenization{}, err
			}

		case depth > 0 && c == '}':
			start := l.pos
			l.advance()
			emit(BlockEnd, start, start+1)
			depth--

		case depth == 0 && isSelectorStart(c):
			newDepth, err := tokenizeTopLevelSelector(l, emit)
			if err != nil {
				return Tokenization{}, err
			}
			depth += newDepth

		case depth > 0 && isSelectorStart(c):
			newDepth, err := tokenizeNameInBlock(l, emit)
			if err != nil {
				return Tokenization{}, err
			}
			depth += newDepth

		default:
			if depth > 0 {
				return fail(errs.NotImplemented, "unexpected token inside block")
			}
			return fail(errs.UnexpectedCharacter, "unexpected top-level character")
		}
	}
}

// tokenizeTopLevelSelector implements the Selector / SelectorLookup
// states: a selector at depth 0 is followed either directly by '{' or by
// blanks then '{' (SelectorLookup). It returns the depth delta (1, once
// BlockStart is emitted).
func tokenizeTopLevelSelector(l *lexer, emit func(T, int, int)) (int, error) {
	start := l.pos
	prefix := l.cur()
	l.advance()
	l.skipWhile(isIdentChar)

	switch {
	case isBlank(l.cur()):
		emit(Selector, start, l.pos)
		return tokenizeSelectorLookup(l, emit)

	case l.cur() == '{':
		emit(Selector, start, l.pos)
		blockStart := l.pos
		l.advance()
		emit(BlockStart, blockStart, blockStart+1)
		return 1, nil

	case l.atEOF():
		return 0, errs.New(errs.UnexpectedEndOfFile, "selector not followed by a block")

	default:
		return 0, errs.New(selectorAlphaError(prefix), "selector contains a non-identifier character")
	}
}

// tokenizeSelectorLookup handles the state reached after a selector name
// is followed by blanks at depth 0. This subset carries no combinators
// beyond nesting, so the only live transitions are a block start or end
// of input; a fresh selector-start char restarts selector tokenization
// (kept for robustness, though the one-selector-per-rule grammar never
// actually exercises this path; see DESIGN.md).
func tokenizeSelectorLookup(l *lexer, emit func(T, int, int)) (int, error) {
	l.skipSpaces()
	switch {
	case l.cur() == '{':
		blockStart := l.pos
		l.advance()
		emit(BlockStart, blockStart, blockStart+1)
		return 1, nil

	case l.atEOF():
		return 0, errs.New(errs.UnexpectedEndOfFile, "selector not followed by a block")

	case isSelectorStart(l.cur()):
		return tokenizeTopLevelSelector(l, emit)

	default:
		return 0, errs.New(errs.UnexpectedCharacter, "expected '{' after selector")
	}
}

// tokenizeNameInBlock implements the lookahead-by-continuation at the
// core of the tokenizer: an identifier seen inside a block could be a
// nested selector or a property name, and it is only disambiguated once
// its follow character (after any intervening blanks) is seen.
func tokenizeNameInBlock(l *lexer, emit func(T, int, int)) (int, error) {
	start := l.pos
	l.advance()
	l.skipWhile(isIdentChar)
	nameEnd := l.pos
	l.skipBlanks()

	switch l.cur() {
	case ':':
		emit(PropertyName, start, nameEnd)
		l.advance()
		return 0, tokenizePropertyValue(l, emit)

	case '{':
		emit(Selector, start, nameEnd)
		blockStart := l.pos
		l.advance()
		emit(BlockStart, blockStart, blockStart+1)
		return 1, nil

	default:
		return 0, errs.New(errs.NotImplemented, "identifier inside a block is neither a property nor a nested rule")
	}
}

// tokenizePropertyValue implements the property-value subroutine. It
// shares its character class and trailing-blank trimming with the value
// half of tokenizeVariable: both values are a single token spanning
// identifier chars, blanks, '#', and '$' (for variable references).
func tokenizePropertyValue(l *lexer, emit func(T, int, int)) error {
	l.skipBlanks()
	start := l.pos
	l.skipWhile(isPropertyValueChar)
	end := l.pos

	switch l.cur() {
	case ';':
		if trimTrailingBlanks(l.input, start, end) == start {
			return errs.New(errs.PropertyValueCannotBeEmpty, "property value is empty")
		}
		emit(PropertyValue, start, trimTrailingBlanks(l.input, start, end))
		semiStart := l.pos
		l.advance()
		emit(EndStatement, semiStart, semiStart+1)
		return nil

	default:
		if isNewline(l.cur()) {
			return errs.New(errs.PropertyValueCannotContainCRLF, "property value cannot contain a line break")
		}
		if l.cur() == '}' || l.atEOF() {
			return errs.New(errs.PropertyValueMustEndWithASemicolon, "property value must be followed by ';'")
		}
		return errs.New(errs.PropertyValueCanOnlyContainsAlphaChar, "property value contains an unsupported character")
	}
}

func isPropertyValueChar(c byte) bool {
	return isIdentChar(c) || isBlank(c) || c == '#' || c == '$'
}

// trimTrailingBlanks rewinds end past any trailing blanks, so the value
// lexeme never includes blanks the writer put before ';'.
func trimTrailingBlanks(input string, start, end int) int {
	for end > start && isBlank(input[end-1]) {
		end--
	}
	return end
}

// tokenizeVariable implements the variable subroutine, invoked whenever
// '$' is seen, whether at the top level or inside a block.
func tokenizeVariable(l *lexer, emit func(T, int, int)) error {
	dollar := l.pos
	l.advance()
	nameStart := dollar // the VariableName lexeme includes the leading '$',
	// so the tokenizer and the resolver both carry the '$' prefix consistently.
	l.skipWhile(isIdentChar)
	nameEnd := l.pos
	l.skipBlanks()

	switch {
	case isNewline(l.cur()):
		return errs.New(errs.VariableNameCannotContainCRLF, "variable name cannot be followed by a line break before ':'")
	case l.cur() == ':':
		// ok
	case l.atEOF():
		return errs.New(errs.UnexpectedEndOfFile, "variable declaration not terminated")
	default:
		return errs.New(errs.VariableNameCanOnlyContainsAlphaChar, "variable name contains an unsupported character")
	}

	emit(VariableName, nameStart, nameEnd)
	l.advance() // past ':'
	l.skipBlanks()

	valueStart := l.pos
	l.skipWhile(isPropertyValueChar)
	valueEnd := trimTrailingBlanks(l.input, valueStart, l.pos)

	switch {
	case l.cur() == ';':
		emit(VariableValue, valueStart, valueEnd)
		semiStart := l.pos
		l.advance()
		emit(EndStatement, semiStart, semiStart+1)
		return nil
	case isNewline(l.cur()):
		return errs.New(errs.VariableValueCannotContainCRLF, "variable value cannot contain a line break")
	case l.atEOF():
		return errs.New(errs.UnexpectedEndOfFile, "variable declaration not terminated")
	default:
		return errs.New(errs.PropertyValueMustEndWithASemicolon, "variable value must be followed by ';'")
	}
}

// selectorAlphaError picks the taxonomy member matching the selector's
// leading sigil, so a malformed class selector and a malformed id
// selector are reported distinctly from a malformed bare type selector.
func selectorAlphaError(prefix byte) errs.Kind {
	switch prefix {
	case '.':
		return errs.ClassSelectorCanOnlyContainsAlphaChar
	case '#':
		return errs.IdSelectorCanOnlyContainsAlphaChar
	default:
		return errs.IdentifierCanOnlyContainsAlphaChar
	}
}
