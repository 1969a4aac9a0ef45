package parser

import (
	"fmt"

	"concerto/internal/ast"
	"concerto/internal/errors"
)

// ParseError is a pure value describing one grammar violation. Code is one of
// the stable E01xx codes from internal/errors.
type ParseError struct {
	Code     string
	Message  string
	Position Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s [%s]", e.Position.Line, e.Position.Column, e.Message, e.Code)
}

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseModel parses the sole top-level rule: optional leading comments, one
// namespace declaration, optional trailing comments, end of input. It never
// guesses past a failed sub-rule; the first mismatch is the reported failure.
func (p *Parser) ParseModel() *ast.Model {
	leading := p.collectComments()

	if !p.check(NAMESPACE) {
		p.errorAtCurrent(errors.ErrorMissingNamespace, "expected 'namespace' declaration")
		return nil
	}

	ns := p.parseNamespace()
	if ns == nil {
		return nil
	}

	p.collectComments() // trailing comments are permitted and discarded
	if !p.isAtEnd() {
		tok := p.peek()
		p.errorAtCurrent(errors.ErrorUnexpectedTrailingInput,
			fmt.Sprintf("unexpected %q after namespace declaration", tok.Lexeme))
	}

	pos := ns.Pos
	if len(leading) > 0 {
		pos = leading[0].NodePos()
	}

	return &ast.Model{
		Pos:             pos,
		EndPos:          ns.EndPos,
		LeadingComments: leading,
		Namespace:       ns,
	}
}

func (p *Parser) collectComments() []ast.ModelItem {
	var items []ast.ModelItem
	for {
		switch p.peek().Type {
		case COMMENT, BLOCK_COMMENT:
			tok := p.advance()
			items = append(items, &ast.Comment{
				Pos:    p.makePos(tok),
				EndPos: p.makeEndPos(tok),
				Text:   tok.Lexeme,
			})
		case DOC_COMMENT:
			tok := p.advance()
			items = append(items, &ast.DocComment{
				Pos:    p.makePos(tok),
				EndPos: p.makeEndPos(tok),
				Text:   tok.Lexeme,
			})
		default:
			return items
		}
	}
}

// Token cursor helpers.

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

// peekAt looks n tokens past the cursor, clamping at EOF.
func (p *Parser) peekAt(n int) Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorAtCurrent(code, message string) {
	p.errorAt(p.peek(), code, message)
}

func (p *Parser) errorAt(tok Token, code, message string) {
	p.errors = append(p.errors, ParseError{
		Code:     code,
		Message:  message,
		Position: tok.Position,
	})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}
