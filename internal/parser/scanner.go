package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type Position struct {
	Line   int
	Column int
	Offset int
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// Scanner turns model-file source text into tokens. Identifiers and version
// literals are scanned as atomic runs; whitespace and comments only ever
// separate tokens.
type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position
	Length   int // how many bytes the error covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Single-character tokens
	case '.':
		s.addToken(DOT)
	case '@':
		s.addToken(AT)
		s.scanVersionLiteral()
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case ':':
		s.addToken(COLON)

	// Whitespace (ignored; line bookkeeping happens in advance)
	case ' ', '\t', '\r', '\n', '\u2028', '\u2029':

	case '/':
		s.scanSlash()

	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanSlash() {
	if s.matchNext('/') {
		s.scanLineComment()
	} else if s.matchNext('*') {
		s.scanBlockComment()
	} else {
		s.reportError("unexpected character: '/'")
	}
}

func (s *Scanner) scanDefault(c rune) {
	if isDigit(c) {
		s.scanNumber()
	} else if isIdentifierStart(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("unexpected character: %q", c))
	}
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	switch r {
	case '\n':
		// CRLF already counted at the '\r'
		if s.current < 2 || s.source[s.current-2] != '\r' {
			s.line++
			s.column = 1
		}
	case '\r', '\u2028', '\u2029':
		s.line++
		s.column = 1
	default:
		s.column++
	}
	return r
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) peekRune() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Character classes.

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentifierStart(c rune) bool {
	return unicode.IsLetter(c) || c == '$' || c == '_'
}

// isIdentifierPart covers letters, digits, connector punctuation (which
// includes '_'), non-spacing marks, and enclosing marks. Note that '$' is
// valid only as a start character.
func isIdentifierPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) ||
		unicode.In(c, unicode.Pc, unicode.Mn, unicode.Me)
}

func isVersionChar(c byte) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		c == '.' || c == '-' || c == '+'
}

func (s *Scanner) scanIdentifier() {
	for !s.isAtEnd() && isIdentifierPart(s.peekRune()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	s.addToken(lookupIdentifier(text))
}

// scanVersionLiteral consumes the version text immediately following '@' as
// one atomic token. The run is only delimited here; the SemVer parser
// validates it.
func (s *Scanner) scanVersionLiteral() {
	if s.isAtEnd() || !isVersionChar(s.peek()) {
		return
	}
	s.start = s.current
	s.startLine = s.line
	s.startColumn = s.column
	for !s.isAtEnd() && isVersionChar(s.peek()) {
		s.advance()
	}
	s.addToken(VERSION)
}

func (s *Scanner) scanNumber() {
	for isDigit(rune(s.peek())) {
		s.advance()
	}
	s.addToken(NUMBER)
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("unterminated string")
		return
	}
	s.advance()
	value := s.source[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, Token{Type: STRING, Lexeme: value, Position: Position{
		Line: s.startLine, Column: s.startColumn, Offset: s.start},
	})
}

func (s *Scanner) scanLineComment() {
	for !s.isAtEnd() && !isLineTerminator(s.peekRune()) {
		s.advance()
	}
	commentText := s.source[s.start:s.current]
	tokenType := COMMENT
	if len(commentText) >= 3 && commentText[:3] == "///" {
		tokenType = DOC_COMMENT
	}
	s.tokens = append(s.tokens, Token{Type: tokenType, Lexeme: commentText, Position: Position{
		Line: s.startLine, Column: s.startColumn, Offset: s.start}})
}

func (s *Scanner) scanBlockComment() {
	unterminated := true
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			unterminated = false
			break
		}
		s.advance()
	}

	if unterminated {
		s.reportError("unterminated block comment")
		return
	}

	commentText := s.source[s.start:s.current]
	tokenType := BLOCK_COMMENT
	if len(commentText) >= 5 && commentText[:3] == "/**" {
		tokenType = DOC_COMMENT
	}

	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: commentText,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == '\u2028' || c == '\u2029'
}
