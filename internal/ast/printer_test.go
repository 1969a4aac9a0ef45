package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	// Partial forms render only what was written; no fabricated zeros.
	assert.Equal(t, "1", Version{Kind: VersionMajor, Major: 1}.String())
	assert.Equal(t, "1.2", Version{Kind: VersionMajorMinor, Major: 1, Minor: 2}.String())
	assert.Equal(t, "1.2.3", Version{Kind: VersionFull, Major: 1, Minor: 2, Patch: 3}.String())
	assert.Equal(t, "0.0.0", Version{Kind: VersionFull}.String())
}

func TestSemVerString(t *testing.T) {
	sv := &SemVer{
		Version: Version{Kind: VersionFull, Major: 1, Minor: 2, Patch: 3},
		Prerelease: []PrereleaseIdent{
			{Value: "beta", Numeric: false},
			{Value: "1", Numeric: true},
		},
		Build: []string{"build", "5"},
	}
	assert.Equal(t, "1.2.3-beta.1+build.5", sv.String())

	bare := &SemVer{Version: Version{Kind: VersionMajorMinor, Major: 12, Minor: 13}}
	assert.Equal(t, "12.13", bare.String())
}

func TestQualifiedNameString(t *testing.T) {
	name := QualifiedName{Parts: []Ident{{Value: "org"}, {Value: "acme"}, {Value: "shipping"}}}
	assert.Equal(t, "org.acme.shipping", name.String())
}

func TestNamespaceString(t *testing.T) {
	name := QualifiedName{Parts: []Ident{{Value: "org"}, {Value: "acme"}}}

	bare := &Namespace{Name: name}
	assert.Equal(t, "namespace org.acme", bare.String())

	versioned := &Namespace{
		Name:    name,
		Version: &SemVer{Version: Version{Kind: VersionFull, Major: 1, Minor: 0, Patch: 42}},
	}
	assert.Equal(t, "namespace org.acme@1.0.42", versioned.String())
}

func TestModelString(t *testing.T) {
	model := &Model{
		LeadingComments: []ModelItem{
			&Comment{Text: "// license"},
		},
		Namespace: &Namespace{
			Name: QualifiedName{Parts: []Ident{{Value: "org"}, {Value: "acme"}}},
		},
	}
	assert.Equal(t, "// license\nnamespace org.acme\n", model.String())
}
