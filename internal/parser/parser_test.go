package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concerto/internal/ast"
	"concerto/internal/errors"
)

func segmentValues(name ast.QualifiedName) []string {
	values := make([]string, len(name.Parts))
	for i, part := range name.Parts {
		values[i] = part.Value
	}
	return values
}

func errorCodes(parseErrors []ParseError) []string {
	codes := make([]string, len(parseErrors))
	for i, err := range parseErrors {
		codes[i] = err.Code
	}
	return codes
}

func TestParseBareNamespace(t *testing.T) {
	model, parseErrors, scanErrors := ParseSource("test.cto", "namespace com.foo.bar")
	assert.Empty(t, parseErrors)
	assert.Empty(t, scanErrors)
	require.NotNil(t, model)

	assert.Equal(t, []string{"com", "foo", "bar"}, segmentValues(model.Namespace.Name))
	assert.Nil(t, model.Namespace.Version)
}

func TestParseVersionedNamespace(t *testing.T) {
	model, parseErrors, _ := ParseSource("test.cto", "namespace com.example.foo@1.0.42")
	assert.Empty(t, parseErrors)
	require.NotNil(t, model)

	version := model.Namespace.Version
	require.NotNil(t, version)
	assert.Equal(t, ast.Version{Kind: ast.VersionFull, Major: 1, Minor: 0, Patch: 42}, version.Version)
}

func TestParseVersionedNamespaceWithPrereleaseAndBuild(t *testing.T) {
	model, parseErrors, _ := ParseSource("test.cto", "namespace org.acme@1.2.3-beta.1+build.5")
	assert.Empty(t, parseErrors)
	require.NotNil(t, model)

	ns := model.Namespace
	assert.Equal(t, []string{"org", "acme"}, segmentValues(ns.Name))

	require.NotNil(t, ns.Version)
	assert.Equal(t, ast.Version{Kind: ast.VersionFull, Major: 1, Minor: 2, Patch: 3}, ns.Version.Version)
	assert.Equal(t, []ast.PrereleaseIdent{
		{Value: "beta", Numeric: false},
		{Value: "1", Numeric: true},
	}, ns.Version.Prerelease)
	assert.Equal(t, []string{"build", "5"}, ns.Version.Build)
}

func TestQualifiedNameSegments(t *testing.T) {
	sequences := [][]string{
		{"org"},
		{"org", "acme"},
		{"a", "b", "c"},
		{"$root", "_inner", "café"},
		{"com", "example", "shipping", "v2"},
	}

	for _, segments := range sequences {
		source := "namespace " + segments[0]
		for _, segment := range segments[1:] {
			source += "." + segment
		}

		model, parseErrors, _ := ParseSource("test.cto", source)
		require.Empty(t, parseErrors, "source %q", source)
		require.NotNil(t, model, "source %q", source)
		assert.Equal(t, segments, segmentValues(model.Namespace.Name), "source %q", source)
		assert.Nil(t, model.Namespace.Version, "source %q", source)
	}
}

func TestTrailingInputRejected(t *testing.T) {
	model, parseErrors, _ := ParseSource("test.cto", "namespace org.acme extra")
	require.NotNil(t, model)
	assert.Contains(t, errorCodes(parseErrors), errors.ErrorUnexpectedTrailingInput)
}

func TestMissingNamespace(t *testing.T) {
	for _, source := range []string{"", "import org.acme.*", "// just a comment", "concept Thing {}"} {
		model, parseErrors, _ := ParseSource("test.cto", source)
		assert.Nil(t, model, "source %q", source)
		assert.Contains(t, errorCodes(parseErrors), errors.ErrorMissingNamespace, "source %q", source)
	}
}

func TestCommentAndWhitespaceInsensitivity(t *testing.T) {
	sources := []string{
		"/* c */ namespace   org.acme",
		"// header\nnamespace org.acme",
		"namespace org.acme // trailing note",
		"namespace org.acme\n/* epilogue */",
		"\n\t namespace org.acme\r\n",
		"/** doc */\nnamespace org.acme@1.2.3 // pinned",
	}

	for _, source := range sources {
		model, parseErrors, scanErrors := ParseSource("test.cto", source)
		assert.Empty(t, parseErrors, "source %q", source)
		assert.Empty(t, scanErrors, "source %q", source)
		require.NotNil(t, model, "source %q", source)
		assert.Equal(t, []string{"org", "acme"}, segmentValues(model.Namespace.Name), "source %q", source)
	}
}

func TestQualifiedNameIsAtomic(t *testing.T) {
	// Whitespace around the dots ends the name; the leftovers are trailing input.
	for _, source := range []string{
		"namespace org . acme",
		"namespace org. acme",
		"namespace org .acme",
		"namespace org.acme .versioned",
		"namespace org./* gap */acme",
	} {
		model, parseErrors, _ := ParseSource("test.cto", source)
		require.NotNil(t, model, "source %q", source)
		assert.Equal(t, []string{"org"}, segmentValues(model.Namespace.Name)[:1], "source %q", source)
		assert.Contains(t, errorCodes(parseErrors), errors.ErrorUnexpectedTrailingInput, "source %q", source)
	}
}

func TestVersionSuffixIsAtomic(t *testing.T) {
	// A detached '@' never attaches to the name.
	model, parseErrors, _ := ParseSource("test.cto", "namespace org.acme @1.0.0")
	require.NotNil(t, model)
	assert.Nil(t, model.Namespace.Version)
	assert.Contains(t, errorCodes(parseErrors), errors.ErrorUnexpectedTrailingInput)
}

func TestIdentifierCannotStartWithDigit(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.cto", "namespace 1foo")
	assert.Contains(t, errorCodes(parseErrors), errors.ErrorInvalidIdentifier)

	_, parseErrors, _ = ParseSource("test.cto", "namespace org.1foo")
	assert.Contains(t, errorCodes(parseErrors), errors.ErrorInvalidIdentifier)
}

func TestInvalidVersionSuffix(t *testing.T) {
	tests := []struct {
		source  string
		message string
	}{
		{"namespace org.acme@", "expected semantic version after '@'"},
		{"namespace org.acme@beta", "expected major version number"},
		{"namespace org.acme@01.2.3", "major version must not have leading zeros"},
		{"namespace org.acme@1.2.3.4", `unexpected character '.' in version`},
	}

	for _, tt := range tests {
		model, parseErrors, _ := ParseSource("test.cto", tt.source)
		assert.Nil(t, model, "source %q", tt.source)
		require.Len(t, parseErrors, 1, "source %q", tt.source)
		assert.Equal(t, errors.ErrorInvalidVersionSuffix, parseErrors[0].Code, "source %q", tt.source)
		assert.Contains(t, parseErrors[0].Message, tt.message, "source %q", tt.source)
	}
}

func TestInvalidVersionSuffixPosition(t *testing.T) {
	// The error points into the version literal, not at the '@'.
	_, parseErrors, _ := ParseSource("test.cto", "namespace org.acme@1.02.3")
	require.Len(t, parseErrors, 1)
	// "namespace org.acme@" is 19 bytes; the bad "02" starts at offset 21.
	assert.Equal(t, 21, parseErrors[0].Position.Offset)
	assert.Equal(t, 22, parseErrors[0].Position.Column)
}

func TestLeadingCommentsCollected(t *testing.T) {
	source := "// SPDX-License-Identifier: Apache-2.0\n/** Shipping model. */\nnamespace org.acme.shipping"
	model, parseErrors, _ := ParseSource("test.cto", source)
	assert.Empty(t, parseErrors)
	require.NotNil(t, model)

	require.Len(t, model.LeadingComments, 2)
	_, isComment := model.LeadingComments[0].(*ast.Comment)
	_, isDoc := model.LeadingComments[1].(*ast.DocComment)
	assert.True(t, isComment, "first should be a regular comment")
	assert.True(t, isDoc, "second should be a doc comment")
}

func TestModelPositions(t *testing.T) {
	model, _, _ := ParseSource("test.cto", "namespace org.acme@1.2.3")
	require.NotNil(t, model)

	assert.Equal(t, 1, model.Namespace.Pos.Line)
	assert.Equal(t, 1, model.Namespace.Pos.Column)
	assert.Equal(t, "test.cto", model.Namespace.Pos.Filename)
	assert.Equal(t, len("namespace org.acme@1.2.3"), model.Namespace.EndPos.Offset)

	name := model.Namespace.Name
	assert.Equal(t, 10, name.Pos.Offset)
	assert.Equal(t, 18, name.EndPos.Offset)
}

func TestModelStringRoundTrip(t *testing.T) {
	for _, source := range []string{
		"namespace org.acme",
		"namespace org.acme@1.2.3",
		"namespace org.acme@1.2.3-beta.1+build.5",
	} {
		model, parseErrors, _ := ParseSource("test.cto", source)
		require.Empty(t, parseErrors, "source %q", source)

		reparsed, reparseErrors, _ := ParseSource("test.cto", model.String())
		require.Empty(t, reparseErrors, "rendered %q", model.String())
		assert.Equal(t, model.Namespace.Name.String(), reparsed.Namespace.Name.String())
		if model.Namespace.Version != nil {
			require.NotNil(t, reparsed.Namespace.Version)
			assert.Equal(t, model.Namespace.Version.String(), reparsed.Namespace.Version.String())
		}
	}
}

func TestParseErrorFormatting(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.cto", "namespace org.acme extra")
	require.Len(t, parseErrors, 1)
	assert.Equal(t, fmt.Sprintf("1:20: unexpected %q after namespace declaration [E0104]", "extra"),
		parseErrors[0].Error())
}
