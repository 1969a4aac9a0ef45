package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concerto/grammar"
	"concerto/internal/parser"
)

func TestParseBareNamespace(t *testing.T) {
	model, err := grammar.ParseSource("test.cto", "namespace com.foo.bar")
	require.NoError(t, err)

	ns := model.Namespace
	require.NotNil(t, ns)
	assert.Equal(t, "com.foo.bar", ns.Name)
	assert.Equal(t, []string{"com", "foo", "bar"}, ns.Segments())
	assert.False(t, ns.Versioned())
	assert.Equal(t, "", ns.SemVer())
}

func TestParseVersionedNamespace(t *testing.T) {
	model, err := grammar.ParseSource("test.cto", "namespace org.acme@1.2.3-beta.1+build.5")
	require.NoError(t, err)

	ns := model.Namespace
	require.NotNil(t, ns)
	assert.Equal(t, "org.acme", ns.Name)
	assert.True(t, ns.Versioned())
	assert.Equal(t, "1.2.3-beta.1+build.5", ns.SemVer())
}

func TestCommentsAreElided(t *testing.T) {
	model, err := grammar.ParseSource("test.cto", "/* header */\n// note\nnamespace org.acme // trailing")
	require.NoError(t, err)
	assert.Equal(t, "org.acme", model.Namespace.Name)
}

func TestParseFile(t *testing.T) {
	model, err := grammar.ParseFile("../examples/shipping.cto")
	require.NoError(t, err)
	assert.Equal(t, "org.acme.shipping", model.Namespace.Name)
	assert.Equal(t, "1.0.0", model.Namespace.SemVer())
}

func TestRejectsNonNamespaceInput(t *testing.T) {
	for _, source := range []string{"", "import org.acme", "namespace", "namespace org.acme extra"} {
		_, err := grammar.ParseSource("test.cto", source)
		assert.Error(t, err, "source %q", source)
	}
}

// TestAgreesWithHandWrittenParser cross-checks the two frontends on inputs
// both accept.
func TestAgreesWithHandWrittenParser(t *testing.T) {
	sources := []string{
		"namespace org",
		"namespace org.acme",
		"namespace org.acme@1.0.42",
		"namespace org.acme@12.13-pre123+a",
		"/* c */ namespace   com.example.foo",
	}

	for _, source := range sources {
		declarative, err := grammar.ParseSource("test.cto", source)
		require.NoError(t, err, "source %q", source)

		model, parseErrors, scanErrors := parser.ParseSource("test.cto", source)
		require.Empty(t, parseErrors, "source %q", source)
		require.Empty(t, scanErrors, "source %q", source)

		assert.Equal(t, model.Namespace.Name.String(), declarative.Namespace.Name, "source %q", source)
		if model.Namespace.Version != nil {
			assert.Equal(t, model.Namespace.Version.String(), declarative.Namespace.SemVer(), "source %q", source)
		} else {
			assert.False(t, declarative.Namespace.Versioned(), "source %q", source)
		}
	}
}
