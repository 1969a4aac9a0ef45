package parser

import (
	"fmt"

	"concerto/internal/ast"
	"concerto/internal/errors"
)

func (p *Parser) parseNamespace() *ast.Namespace {
	keyword := p.advance() // 'namespace', checked by the caller

	name := p.parseQualifiedName()
	if name == nil {
		return nil
	}

	ns := &ast.Namespace{
		Pos:    p.makePos(keyword),
		EndPos: name.EndPos,
		Name:   *name,
	}

	// The '@' suffix extends the declaration only when written directly
	// against the name; a detached '@' is trailing input.
	if p.check(AT) && p.peek().Position.Offset == name.EndPos.Offset {
		at := p.advance()
		version := p.parseVersionSuffix(at)
		if version == nil {
			return nil
		}
		ns.Version = version
		ns.EndPos = version.EndPos
	}

	return ns
}

// parseQualifiedName parses a dotted name as one atomic run: a '.' joins
// segments only when neither side is separated from it by whitespace or
// comments. "org . acme" therefore parses as the name "org" with leftovers.
func (p *Parser) parseQualifiedName() *ast.QualifiedName {
	if !p.check(IDENTIFIER) {
		tok := p.peek()
		if tok.Type == NUMBER {
			p.errorAtCurrent(errors.ErrorInvalidIdentifier, "identifier cannot start with a digit")
		} else {
			p.errorAtCurrent(errors.ErrorInvalidIdentifier,
				fmt.Sprintf("expected namespace identifier, found %s", describeToken(tok)))
		}
		return nil
	}

	first := p.advance()
	parts := []ast.Ident{p.makeIdent(first)}
	end := first.Position.Offset + len(first.Lexeme)

	for p.check(DOT) && p.peek().Position.Offset == end {
		next := p.peekAt(1)
		if next.Position.Offset != end+1 {
			break // whitespace after the dot ends the atomic run
		}
		if next.Type == COMMENT || next.Type == BLOCK_COMMENT || next.Type == DOC_COMMENT {
			break // comments separate tokens just like whitespace
		}
		if next.Type != IDENTIFIER {
			p.errorAt(next, errors.ErrorInvalidIdentifier,
				fmt.Sprintf("expected identifier after '.', found %s", describeToken(next)))
			return nil
		}
		p.advance() // '.'
		segment := p.advance()
		parts = append(parts, p.makeIdent(segment))
		end = segment.Position.Offset + len(segment.Lexeme)
	}

	return &ast.QualifiedName{
		Pos:    parts[0].Pos,
		EndPos: parts[len(parts)-1].EndPos,
		Parts:  parts,
	}
}

func (p *Parser) parseVersionSuffix(at Token) *ast.SemVer {
	if !p.check(VERSION) {
		p.errorAt(at, errors.ErrorInvalidVersionSuffix, "expected semantic version after '@'")
		return nil
	}

	tok := p.advance()
	version, err := ParseSemVer(tok.Lexeme)
	if err != nil {
		p.errors = append(p.errors, ParseError{
			Code:    errors.ErrorInvalidVersionSuffix,
			Message: fmt.Sprintf("invalid version suffix: %s", err.Message),
			Position: Position{
				Line:   tok.Position.Line,
				Column: tok.Position.Column + err.Position.Offset,
				Offset: tok.Position.Offset + err.Position.Offset,
			},
		})
		return nil
	}

	version.Pos = p.makePos(tok)
	version.EndPos = p.makeEndPos(tok)
	return version
}

func describeToken(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case STRING:
		return fmt.Sprintf("string %q", tok.Lexeme)
	default:
		return fmt.Sprintf("%q", tok.Lexeme)
	}
}
