package parser

import "concerto/internal/ast"

// ParseSource scans and parses one model-file header. The model is nil when
// no namespace declaration could be recognized; callers must treat any
// returned error as fatal for the file.
func ParseSource(path string, source string) (*ast.Model, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	model := parser.ParseModel()

	return model, parser.errors, scanner.errors
}
