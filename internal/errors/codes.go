package errors

// Error codes for the Concerto toolchain.
// These codes are used in error messages and documentation
// to provide consistent error identification across the tools.
//
// Error code ranges:
// E0100-E0199: Scanner and parser errors
// E0200-E0299: Reserved for declaration-body parsing
// E0300-E0399: Reserved for import resolution
// E0400-E0499: Reserved for model validation

const (
	// E0100: Character violates identifier start/continuation rules
	ErrorInvalidIdentifier = "E0100"

	// E0101: Malformed version, prerelease, or build component
	ErrorInvalidSemVer = "E0101"

	// E0102: '@' present but not followed by a valid semantic version
	ErrorInvalidVersionSuffix = "E0102"

	// E0103: No namespace declaration where one is required
	ErrorMissingNamespace = "E0103"

	// E0104: Unconsumed content after the namespace declaration
	ErrorUnexpectedTrailingInput = "E0104"

	// E0105: Character outside the lexical grammar
	ErrorUnexpectedCharacter = "E0105"

	// E0106: Block comment or string left open at end of input
	ErrorUnterminatedComment = "E0106"
)
