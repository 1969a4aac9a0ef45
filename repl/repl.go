package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"concerto/grammar"
	"concerto/internal/parser"
)

const PROMPT = ">> "

// Start reads namespace declarations line by line, parses each with the
// declarative frontend, and validates any version suffix with the full
// SemVer grammar.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		model, err := grammar.ParseSource("repl", line)
		if err != nil {
			fmt.Fprintf(out, "parse error: %s\n", err)
			continue
		}

		ns := model.Namespace
		if !ns.Versioned() {
			fmt.Fprintf(out, "namespace %s (%d segments, unversioned)\n",
				ns.Name, len(ns.Segments()))
			continue
		}

		version, verr := parser.ParseSemVer(ns.SemVer())
		if verr != nil {
			fmt.Fprintf(out, "invalid version %q: %s\n", ns.SemVer(), verr.Message)
			continue
		}

		fmt.Fprintf(out, "namespace %s (%d segments, version %s)\n",
			ns.Name, len(ns.Segments()), version)
	}
}
