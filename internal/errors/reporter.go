package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"concerto/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError represents a structured diagnostic with source context
type CompilerError struct {
	Level    ErrorLevel
	Code     string       // Error code like E0101
	Message  string       // Primary error message
	Position ast.Position // Location in source
	Length   int          // Length of the problematic region
	Notes    []string     // Additional context notes
}

// ErrorReporter handles consistent diagnostic formatting for one file
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders a diagnostic with Rust-like styling:
//
//	error[E0104]: unexpected "extra" after namespace declaration
//	  --> models/shipping.cto:3:19
//	   |
//	 3 | namespace org.acme extra
//	   |                    ^^^^^
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	lineNumberWidth := er.getLineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("|")))

	if err.Position.Line >= 1 && err.Position.Line <= len(er.lines) {
		lineContent := er.lines[err.Position.Line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			dim("|"),
			lineContent))

		marker := strings.Repeat(" ", max(0, err.Position.Column-1)) +
			strings.Repeat("^", max(1, err.Length))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("|"), bold(levelColor(marker))))
	}

	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s: %s\n", indent, dim("="), bold("note"), note))
	}

	result.WriteString("\n")
	return result.String()
}

func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(a ...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow).SprintFunc()
	case Note:
		return color.New(color.FgBlue).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}

func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}
