package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"concerto/internal/ast"
	"concerto/internal/errors"
	"concerto/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: concerto-cli <file.cto>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	model, parseErrors, scanErrors := parser.ParseSource(path, string(source))

	reporter := errors.NewErrorReporter(path, string(source))

	for _, scanErr := range scanErrors {
		fmt.Print(reporter.FormatError(errors.CompilerError{
			Level:    errors.Error,
			Code:     scanErrorCode(scanErr),
			Message:  scanErr.Message,
			Position: toAstPosition(path, scanErr.Position),
			Length:   scanErr.Length,
		}))
	}

	for _, parseErr := range parseErrors {
		fmt.Print(reporter.FormatError(errors.CompilerError{
			Level:    errors.Error,
			Code:     parseErr.Code,
			Message:  parseErr.Message,
			Position: toAstPosition(path, parseErr.Position),
			Length:   1,
		}))
	}

	duration := formatDuration(time.Since(startTime))

	if len(scanErrors) > 0 || len(parseErrors) > 0 || model == nil {
		color.Red("Parsing failed after %s", duration)
		os.Exit(1)
	}

	fmt.Print(model.String())
	color.Green("Successfully parsed %s in %s", path, duration)
}

func toAstPosition(filename string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func scanErrorCode(err parser.ScanError) string {
	if err.Message == "unterminated block comment" || err.Message == "unterminated string" {
		return errors.ErrorUnterminatedComment
	}
	return errors.ErrorUnexpectedCharacter
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
