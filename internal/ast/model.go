package ast

// Model represents one parsed Concerto model-file header.
// Example: "// license\nnamespace org.accordproject.cicero@0.25.0"
type Model struct {
	Pos             Position
	EndPos          Position
	LeadingComments []ModelItem // Comments before the namespace declaration
	Namespace       *Namespace
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents a single identifier segment
// Example: "org", "acme", "_private", "$root"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// QualifiedName represents a dot-separated namespace path.
// The parts are parsed as one atomic token run: no whitespace or comments
// may appear around the dots.
// Example: "org.acme.shipping"
type QualifiedName struct {
	Pos    Position
	EndPos Position
	Parts  []Ident
}

// Namespace represents a namespace declaration, versioned or bare.
// Version is nil for the bare form.
// Example: "namespace org.acme@1.2.3-beta.1+build.5"
type Namespace struct {
	Pos     Position
	EndPos  Position
	Name    QualifiedName
	Version *SemVer
}

// VersionKind distinguishes which of the ordered version alternatives matched.
// Shorter forms do not invent zero components: "1.2" and "1.2.0" parse to
// distinct values even though they compare equal under SemVer precedence.
type VersionKind int

const (
	VersionMajor VersionKind = iota // "1"
	VersionMajorMinor               // "1.2"
	VersionFull                     // "1.2.3"
)

// Version holds the numeric core of a semantic version.
// Components beyond Kind are zero and not rendered.
type Version struct {
	Kind  VersionKind
	Major uint32
	Minor uint32
	Patch uint32
}

// PrereleaseIdent represents one dot-separated prerelease identifier.
// Numeric identifiers ("1", "42") sort numerically under SemVer precedence,
// alphanumeric ones ("beta", "rc-2", "0a") lexically.
type PrereleaseIdent struct {
	Value   string
	Numeric bool
}

// SemVer represents a semantic-version literal per SemVer 2.0.
// Example: "1.2.3-beta.1+build.5"
type SemVer struct {
	Pos        Position
	EndPos     Position
	Version    Version
	Prerelease []PrereleaseIdent
	Build      []string
}

// Comment represents regular comments
// Example: "// SPDX-License-Identifier: Apache-2.0"
type Comment struct {
	Pos    Position
	EndPos Position
	Text   string
}

// DocComment represents documentation comments
// Example: "/** The shipping namespace. */"
type DocComment struct {
	Pos    Position
	EndPos Position
	Text   string
}
