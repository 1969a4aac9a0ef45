package parser

// Declaration keywords beyond "namespace" are reserved for the upcoming
// body grammar; the header parser only ever sees them as trailing input.
var KEYWORDS = map[string]TokenType{
	"namespace":   NAMESPACE,
	"import":      IMPORT,
	"concept":     CONCEPT,
	"enum":        ENUM,
	"scalar":      SCALAR,
	"map":         MAP,
	"asset":       ASSET,
	"participant": PARTICIPANT,
	"transaction": TRANSACTION,
	"event":       EVENT,
	"abstract":    ABSTRACT,
	"extends":     EXTENDS,
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
