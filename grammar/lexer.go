package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ConcertoLexer tokenizes model-file headers for the declarative frontend.
// QualifiedName and Version are single tokens, which keeps dotted names and
// version literals atomic even though whitespace is elided between tokens.
var ConcertoLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments (order matters: doc before plain block)
		{Name: "DocComment", Pattern: `/\*\*(?s:.*?)\*/`},
		{Name: "BlockComment", Pattern: `/\*(?s:.*?)\*/`},
		{Name: "Comment", Pattern: `//[^\n\r]*`},

		// '@' glued to its version literal
		{Name: "Version", Pattern: `@[0-9A-Za-z.+-]+`},

		// Dotted identifier runs; also matches bare keywords like "namespace"
		{Name: "QualifiedName", Pattern: `[\p{L}$_][\p{L}\p{Nd}\p{Pc}\p{Mn}\p{Me}]*(\.[\p{L}$_][\p{L}\p{Nd}\p{Pc}\p{Mn}\p{Me}]*)*`},

		// Whitespace
		{Name: "Whitespace", Pattern: `\s+`},
	},
})
