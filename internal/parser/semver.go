package parser

import (
	"fmt"
	"strconv"

	"concerto/internal/ast"
	"concerto/internal/errors"
)

// ParseSemVer parses input as a complete SemVer 2.0 literal:
// major[.minor[.patch]], optional "-" prerelease, optional "+" build metadata.
// The version alternatives are tried longest-first; a consumed '.' commits to
// the longer form, so "1." is malformed rather than "1" with trailing input.
// Error positions are relative to the start of input; callers parsing a
// version token inside a larger file rebase them onto the token position.
func ParseSemVer(input string) (*ast.SemVer, *ParseError) {
	p := &semverParser{input: input}

	version, err := p.parseVersion()
	if err != nil {
		return nil, err
	}

	sv := &ast.SemVer{
		Pos:     ast.Position{Line: 1, Column: 1, Offset: 0},
		EndPos:  ast.Position{Line: 1, Column: len(input) + 1, Offset: len(input)},
		Version: version,
	}

	if p.peek() == '-' {
		p.pos++
		sv.Prerelease, err = p.parsePrerelease()
		if err != nil {
			return nil, err
		}
	}

	if p.peek() == '+' {
		p.pos++
		sv.Build, err = p.parseBuild()
		if err != nil {
			return nil, err
		}
	}

	if p.pos != len(p.input) {
		return nil, p.errorf(p.pos, "unexpected character %q in version", p.input[p.pos])
	}

	return sv, nil
}

type semverParser struct {
	input string
	pos   int
}

func (p *semverParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *semverParser) errorf(offset int, format string, args ...any) *ParseError {
	return &ParseError{
		Code:     errors.ErrorInvalidSemVer,
		Message:  fmt.Sprintf(format, args...),
		Position: Position{Line: 1, Column: offset + 1, Offset: offset},
	}
}

func (p *semverParser) parseVersion() (ast.Version, *ParseError) {
	version := ast.Version{Kind: ast.VersionMajor}

	major, err := p.parseNumericIdentifier("major version")
	if err != nil {
		return version, err
	}
	version.Major = major

	if p.peek() == '.' {
		p.pos++
		version.Kind = ast.VersionMajorMinor
		version.Minor, err = p.parseNumericIdentifier("minor version")
		if err != nil {
			return version, err
		}
	}

	if p.peek() == '.' {
		p.pos++
		version.Kind = ast.VersionFull
		version.Patch, err = p.parseNumericIdentifier("patch version")
		if err != nil {
			return version, err
		}
	}

	return version, nil
}

// parseNumericIdentifier reads a version component: "0" or a nonzero digit
// followed by more digits. Leading zeros are rejected per SemVer 2.0.
func (p *semverParser) parseNumericIdentifier(what string) (uint32, *ParseError) {
	start := p.pos
	if !isDigit(rune(p.peek())) {
		return 0, p.errorf(start, "expected %s number", what)
	}
	if p.peek() == '0' && p.pos+1 < len(p.input) && isDigit(rune(p.input[p.pos+1])) {
		return 0, p.errorf(start, "%s must not have leading zeros", what)
	}
	for isDigit(rune(p.peek())) {
		p.pos++
	}
	n, err := strconv.ParseUint(p.input[start:p.pos], 10, 32)
	if err != nil {
		return 0, p.errorf(start, "%s out of range", what)
	}
	return uint32(n), nil
}

func (p *semverParser) parsePrerelease() ([]ast.PrereleaseIdent, *ParseError) {
	var idents []ast.PrereleaseIdent

	for {
		start := p.pos
		for isAlphanumericOrHyphen(p.peek()) {
			p.pos++
		}
		text := p.input[start:p.pos]
		if text == "" {
			return nil, p.errorf(start, "empty prerelease identifier")
		}

		numeric := true
		for i := 0; i < len(text); i++ {
			if !isDigit(rune(text[i])) {
				numeric = false
				break
			}
		}
		if numeric && len(text) > 1 && text[0] == '0' {
			return nil, p.errorf(start, "numeric prerelease identifier must not have leading zeros")
		}

		idents = append(idents, ast.PrereleaseIdent{Value: text, Numeric: numeric})

		if p.peek() != '.' {
			return idents, nil
		}
		p.pos++
	}
}

// parseBuild reads build metadata identifiers. Unlike prerelease identifiers,
// digit runs with leading zeros are allowed here (SemVer 2.0 item 10).
func (p *semverParser) parseBuild() ([]string, *ParseError) {
	var idents []string

	for {
		start := p.pos
		for isAlphanumericOrHyphen(p.peek()) {
			p.pos++
		}
		text := p.input[start:p.pos]
		if text == "" {
			return nil, p.errorf(start, "empty build identifier")
		}
		idents = append(idents, text)

		if p.peek() != '.' {
			return idents, nil
		}
		p.pos++
	}
}

func isAlphanumericOrHyphen(c byte) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		c == '-'
}
