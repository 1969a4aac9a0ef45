package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING
	VERSION // semantic-version literal, scanned atomically after '@'

	// Keywords
	NAMESPACE
	IMPORT
	CONCEPT
	ENUM
	SCALAR
	MAP
	ASSET
	PARTICIPANT
	TRANSACTION
	EVENT
	ABSTRACT
	EXTENDS

	// Punctuation
	DOT
	AT
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	COLON

	// Trivia
	COMMENT
	BLOCK_COMMENT
	DOC_COMMENT
)

var tokenNames = map[TokenType]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENTIFIER:    "IDENTIFIER",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	VERSION:       "VERSION",
	NAMESPACE:     "NAMESPACE",
	IMPORT:        "IMPORT",
	CONCEPT:       "CONCEPT",
	ENUM:          "ENUM",
	SCALAR:        "SCALAR",
	MAP:           "MAP",
	ASSET:         "ASSET",
	PARTICIPANT:   "PARTICIPANT",
	TRANSACTION:   "TRANSACTION",
	EVENT:         "EVENT",
	ABSTRACT:      "ABSTRACT",
	EXTENDS:       "EXTENDS",
	DOT:           "DOT",
	AT:            "AT",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COMMA:         "COMMA",
	COLON:         "COLON",
	COMMENT:       "COMMENT",
	BLOCK_COMMENT: "BLOCK_COMMENT",
	DOC_COMMENT:   "DOC_COMMENT",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}
