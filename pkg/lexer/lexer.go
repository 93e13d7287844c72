package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"estree/pkg/source"
)

// Lexer holds the state of the scanner.
type Lexer struct {
	src          *source.File
	input        string
	position     int  // current position in input (byte offset of current char)
	readPosition int  // reading position (byte offset after current char)
	ch           byte // current char under examination (first byte for multi-byte runes)
	line         int  // current 1-based line number
	column       int  // current 1-based column number
}

// New creates a Lexer over a source file.
func New(src *source.File) *Lexer {
	l := &Lexer{src: src, input: src.Content, line: 1, column: 0}
	l.readChar()
	return l
}

// NewFromString creates a Lexer over an in-memory string.
func NewFromString(input string) *Lexer {
	return New(source.FromString(input))
}

// Source returns the source file the lexer is scanning.
func (l *Lexer) Source() *source.File {
	return l.src
}

// readChar advances to the next byte and updates line/column accounting.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekCharAt(n int) byte {
	if l.position+n >= len(l.input) {
		return 0
	}
	return l.input[l.position+n]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken scans the input and returns the next token. Comments are returned
// as LINE_COMMENT/BLOCK_COMMENT tokens; callers that do not care skip them.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column
	startPos := l.position

	mk := func(typ TokenType, width int) Token {
		for i := 0; i < width; i++ {
			l.readChar()
		}
		return Token{
			Type:     typ,
			Literal:  l.input[startPos:l.position],
			Line:     startLine,
			Column:   startCol,
			StartPos: startPos,
			EndPos:   l.position,
		}
	}

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			if l.peekCharAt(2) == '=' {
				return mk(STRICT_EQ, 3)
			}
			return mk(EQ, 2)
		}
		if l.peekChar() == '>' {
			return mk(ARROW, 2)
		}
		return mk(ASSIGN, 1)
	case '!':
		if l.peekChar() == '=' {
			if l.peekCharAt(2) == '=' {
				return mk(STRICT_NOT_EQ, 3)
			}
			return mk(NOT_EQ, 2)
		}
		return mk(BANG, 1)
	case '+':
		if l.peekChar() == '=' {
			return mk(PLUS_ASSIGN, 2)
		}
		if l.peekChar() == '+' {
			return mk(INC, 2)
		}
		return mk(PLUS, 1)
	case '-':
		if l.peekChar() == '=' {
			return mk(MINUS_ASSIGN, 2)
		}
		if l.peekChar() == '-' {
			return mk(DEC, 2)
		}
		return mk(MINUS, 1)
	case '*':
		if l.peekChar() == '*' {
			if l.peekCharAt(2) == '=' {
				return mk(EXPONENT_ASSIGN, 3)
			}
			return mk(EXPONENT, 2)
		}
		if l.peekChar() == '=' {
			return mk(ASTERISK_ASSIGN, 2)
		}
		return mk(ASTERISK, 1)
	case '%':
		if l.peekChar() == '=' {
			return mk(REMAINDER_ASSIGN, 2)
		}
		return mk(REMAINDER, 1)
	case '/':
		if l.peekChar() == '/' {
			return l.readLineComment(startPos, startLine, startCol)
		}
		if l.peekChar() == '*' {
			return l.readBlockComment(startPos, startLine, startCol)
		}
		if l.peekChar() == '=' {
			return mk(SLASH_ASSIGN, 2)
		}
		return mk(SLASH, 1)
	case '&':
		if l.peekChar() == '&' {
			if l.peekCharAt(2) == '=' {
				return mk(LOGICAL_AND_ASSIGN, 3)
			}
			return mk(LOGICAL_AND, 2)
		}
		if l.peekChar() == '=' {
			return mk(BITWISE_AND_ASSIGN, 2)
		}
		return mk(BITWISE_AND, 1)
	case '|':
		if l.peekChar() == '|' {
			if l.peekCharAt(2) == '=' {
				return mk(LOGICAL_OR_ASSIGN, 3)
			}
			return mk(LOGICAL_OR, 2)
		}
		if l.peekChar() == '=' {
			return mk(BITWISE_OR_ASSIGN, 2)
		}
		return mk(PIPE, 1)
	case '^':
		if l.peekChar() == '=' {
			return mk(BITWISE_XOR_ASSIGN, 2)
		}
		return mk(BITWISE_XOR, 1)
	case '~':
		return mk(BITWISE_NOT, 1)
	case '<':
		if l.peekChar() == '<' {
			if l.peekCharAt(2) == '=' {
				return mk(LEFT_SHIFT_ASSIGN, 3)
			}
			return mk(LEFT_SHIFT, 2)
		}
		if l.peekChar() == '=' {
			return mk(LE, 2)
		}
		return mk(LT, 1)
	case '>':
		if l.peekChar() == '>' {
			if l.peekCharAt(2) == '>' {
				if l.peekCharAt(3) == '=' {
					return mk(UNSIGNED_RIGHT_SHIFT_ASSIGN, 4)
				}
				return mk(UNSIGNED_RIGHT_SHIFT, 3)
			}
			if l.peekCharAt(2) == '=' {
				return mk(RIGHT_SHIFT_ASSIGN, 3)
			}
			return mk(RIGHT_SHIFT, 2)
		}
		if l.peekChar() == '=' {
			return mk(GE, 2)
		}
		return mk(GT, 1)
	case '?':
		if l.peekChar() == '?' {
			if l.peekCharAt(2) == '=' {
				return mk(COALESCE_ASSIGN, 3)
			}
			return mk(COALESCE, 2)
		}
		// `?.` is optional chaining unless followed by a digit (`a ? .5 : b`).
		if l.peekChar() == '.' && !isDigit(l.peekCharAt(2)) {
			return mk(OPTIONAL_CHAINING, 2)
		}
		return mk(QUESTION, 1)
	case '.':
		if l.peekChar() == '.' && l.peekCharAt(2) == '.' {
			return mk(SPREAD, 3)
		}
		if isDigit(l.peekChar()) {
			return l.readNumberToken(startPos, startLine, startCol)
		}
		return mk(DOT, 1)
	case ';':
		return mk(SEMICOLON, 1)
	case ':':
		return mk(COLON, 1)
	case ',':
		return mk(COMMA, 1)
	case '(':
		return mk(LPAREN, 1)
	case ')':
		return mk(RPAREN, 1)
	case '{':
		return mk(LBRACE, 1)
	case '}':
		return mk(RBRACE, 1)
	case '[':
		return mk(LBRACKET, 1)
	case ']':
		return mk(RBRACKET, 1)
	case '@':
		return mk(AT, 1)
	case '"', '\'':
		return l.readStringToken(l.ch, startPos, startLine, startCol)
	case 0:
		return Token{Type: EOF, Literal: "", Line: startLine, Column: startCol, StartPos: startPos, EndPos: startPos}
	default:
		if isIdentStart(l.ch) || l.ch >= utf8.RuneSelf {
			return l.readIdentToken(startPos, startLine, startCol)
		}
		if isDigit(l.ch) {
			return l.readNumberToken(startPos, startLine, startCol)
		}
		return mk(ILLEGAL, 1)
	}
}

// readLineComment consumes `// ...` up to (not including) the newline.
// The token literal is the comment text without the leading slashes.
func (l *Lexer) readLineComment(startPos, startLine, startCol int) Token {
	l.readChar() // consume first '/'
	l.readChar() // consume second '/'
	textStart := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return Token{
		Type:     LINE_COMMENT,
		Literal:  l.input[textStart:l.position],
		Line:     startLine,
		Column:   startCol,
		StartPos: startPos,
		EndPos:   l.position,
	}
}

// readBlockComment consumes `/* ... */`. The token literal is the inner text.
func (l *Lexer) readBlockComment(startPos, startLine, startCol int) Token {
	l.readChar() // consume '/'
	l.readChar() // consume '*'
	textStart := l.position
	for {
		if l.ch == 0 {
			return Token{
				Type:     ILLEGAL,
				Literal:  "unterminated block comment",
				Line:     startLine,
				Column:   startCol,
				StartPos: startPos,
				EndPos:   l.position,
			}
		}
		if l.ch == '*' && l.peekChar() == '/' {
			text := l.input[textStart:l.position]
			l.readChar() // consume '*'
			l.readChar() // consume '/'
			return Token{
				Type:     BLOCK_COMMENT,
				Literal:  text,
				Line:     startLine,
				Column:   startCol,
				StartPos: startPos,
				EndPos:   l.position,
			}
		}
		l.readChar()
	}
}

// readIdentToken reads an identifier or keyword. Identifiers may contain
// non-ASCII letters; their names are NFC-normalized, since ECMAScript
// compares identifier names after normalization.
func (l *Lexer) readIdentToken(startPos, startLine, startCol int) Token {
	ascii := true
	for {
		if l.ch < utf8.RuneSelf {
			if !isIdentPart(l.ch) {
				break
			}
			l.readChar()
			continue
		}
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		ascii = false
		for i := 0; i < size; i++ {
			l.readChar()
		}
	}
	literal := l.input[startPos:l.position]
	if !ascii {
		literal = norm.NFC.String(literal)
	}
	return Token{
		Type:     LookupIdent(literal),
		Literal:  literal,
		Line:     startLine,
		Column:   startCol,
		StartPos: startPos,
		EndPos:   l.position,
	}
}

// readNumberToken reads a numeric literal: decimal with optional fraction and
// exponent, or hex/binary/octal with a base prefix. Numeric separators '_'
// are accepted between digits.
func (l *Lexer) readNumberToken(startPos, startLine, startCol int) Token {
	base := 10
	if l.ch == '0' {
		switch l.peekChar() {
		case 'x', 'X':
			base = 16
			l.readChar()
			l.readChar()
		case 'b', 'B':
			base = 2
			l.readChar()
			l.readChar()
		case 'o', 'O':
			base = 8
			l.readChar()
			l.readChar()
		}
	}

	readDigits := func(valid func(byte) bool) bool {
		any := false
		for {
			if valid(l.ch) {
				any = true
				l.readChar()
			} else if l.ch == '_' && any && valid(l.peekChar()) {
				l.readChar()
			} else {
				break
			}
		}
		return any
	}

	switch base {
	case 16:
		readDigits(isHexDigit)
	case 8:
		readDigits(isOctalDigit)
	case 2:
		readDigits(isBinaryDigit)
	default:
		readDigits(isDigit)
		if l.ch == '.' && isDigit(l.peekChar()) {
			l.readChar()
			readDigits(isDigit)
		}
		if l.ch == 'e' || l.ch == 'E' {
			save := l.position
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !readDigits(isDigit) {
				// `1e` with no exponent digits: back out to just the mantissa.
				l.rewindTo(save, startLine, startCol)
			}
		}
	}

	return Token{
		Type:     NUMBER,
		Literal:  l.input[startPos:l.position],
		Line:     startLine,
		Column:   startCol,
		StartPos: startPos,
		EndPos:   l.position,
	}
}

// readStringToken reads a string literal delimited by quote. The token
// literal is the cooked (unescaped) value; the raw text is recoverable from
// StartPos/EndPos.
func (l *Lexer) readStringToken(quote byte, startPos, startLine, startCol int) Token {
	var b strings.Builder
	l.readChar() // consume the opening quote
	for {
		switch {
		case l.ch == quote:
			l.readChar() // consume the closing quote
			return Token{
				Type:     STRING,
				Literal:  b.String(),
				Line:     startLine,
				Column:   startCol,
				StartPos: startPos,
				EndPos:   l.position,
			}
		case l.ch == 0 || l.ch == '\n' || l.ch == '\r':
			return Token{
				Type:     ILLEGAL,
				Literal:  "unterminated string literal",
				Line:     startLine,
				Column:   startCol,
				StartPos: startPos,
				EndPos:   l.position,
			}
		case l.ch == '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'v':
				b.WriteByte('\v')
			case '0':
				b.WriteByte(0)
			case 'x':
				if hi, lo := l.peekChar(), l.peekCharAt(2); isHexDigit(hi) && isHexDigit(lo) {
					b.WriteByte(hexVal(hi)<<4 | hexVal(lo))
					l.readChar()
					l.readChar()
				} else {
					b.WriteByte('x')
				}
			case 'u':
				if r, consumed := l.readUnicodeEscape(); consumed > 0 {
					b.WriteRune(r)
				} else {
					b.WriteByte('u')
				}
			case '\n':
				// Line continuation: contributes nothing.
			case 0:
				return Token{
					Type:     ILLEGAL,
					Literal:  "unterminated string literal",
					Line:     startLine,
					Column:   startCol,
					StartPos: startPos,
					EndPos:   l.position,
				}
			default:
				// Unknown escapes keep the escaped character (\z == z).
				b.WriteByte(l.ch)
			}
			l.readChar()
		default:
			b.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// readUnicodeEscape handles the tail of \uHHHH or \u{H...}. The lexer is
// positioned on the 'u'; on success it is left on the last consumed char.
func (l *Lexer) readUnicodeEscape() (rune, int) {
	if l.peekChar() == '{' {
		var r rune
		n := 2 // 'u' and '{' relative to current position
		for isHexDigit(l.peekCharAt(n)) {
			r = r<<4 | rune(hexVal(l.peekCharAt(n)))
			n++
		}
		if l.peekCharAt(n) != '}' || n == 2 {
			return 0, 0
		}
		for i := 0; i < n; i++ {
			l.readChar()
		}
		return r, n
	}
	var r rune
	for i := 1; i <= 4; i++ {
		if !isHexDigit(l.peekCharAt(i)) {
			return 0, 0
		}
		r = r<<4 | rune(hexVal(l.peekCharAt(i)))
	}
	for i := 0; i < 4; i++ {
		l.readChar()
	}
	return r, 4
}

// ScanRegexFrom re-scans a '/' or '/=' token as a regular expression literal.
// The parser calls this when a slash appears in prefix position. The returned
// token literal is the full `/pattern/flags` text.
func (l *Lexer) ScanRegexFrom(slash Token) (Token, bool) {
	l.rewindTo(slash.StartPos, slash.Line, slash.Column)
	l.readChar() // consume '/'
	inClass := false
	for {
		switch l.ch {
		case 0, '\n', '\r':
			return Token{}, false
		case '\\':
			l.readChar()
			if l.ch == 0 {
				return Token{}, false
			}
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				l.readChar() // consume the closing '/'
				for isIdentPart(l.ch) {
					l.readChar()
				}
				return Token{
					Type:     REGEX,
					Literal:  l.input[slash.StartPos:l.position],
					Line:     slash.Line,
					Column:   slash.Column,
					StartPos: slash.StartPos,
					EndPos:   l.position,
				}, true
			}
		}
		l.readChar()
	}
}

// State is an opaque snapshot of the scanner position. The parser saves and
// restores it around speculative parses, for example when deciding whether a
// parenthesized prefix is an arrow function parameter list.
type State struct {
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// SaveState captures the current scanner position.
func (l *Lexer) SaveState() State {
	return State{
		position:     l.position,
		readPosition: l.readPosition,
		ch:           l.ch,
		line:         l.line,
		column:       l.column,
	}
}

// RestoreState rewinds the scanner to a previously saved position.
func (l *Lexer) RestoreState(s State) {
	l.position = s.position
	l.readPosition = s.readPosition
	l.ch = s.ch
	l.line = s.line
	l.column = s.column
}

// rewindTo resets the lexer to a byte position with known line/column.
// Only safe for short, same-line backtracks.
func (l *Lexer) rewindTo(pos, line, col int) {
	l.position = pos
	l.readPosition = pos + 1
	l.line = line
	l.column = col
	if pos >= len(l.input) {
		l.position = len(l.input)
		l.readPosition = len(l.input)
		l.ch = 0
		return
	}
	l.ch = l.input[pos]
}

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '$'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func isOctalDigit(ch byte) bool {
	return '0' <= ch && ch <= '7'
}

func isBinaryDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func hexVal(ch byte) byte {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0'
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10
	default:
		return ch - 'A' + 10
	}
}
