package grammar

import "strings"

// Model is the top-level rule: exactly one namespace declaration.
type Model struct {
	Namespace *Namespace `parser:"@@"`
}

// Namespace captures "namespace <qualified name>[@<semver>]".
type Namespace struct {
	Name    string `parser:"'namespace' @QualifiedName"`
	Version string `parser:"@Version?"`
}

// Segments returns the dot-separated parts of the qualified name.
func (n *Namespace) Segments() []string {
	return strings.Split(n.Name, ".")
}

// SemVer returns the version literal without the leading '@', or "" for a
// bare namespace.
func (n *Namespace) SemVer() string {
	return strings.TrimPrefix(n.Version, "@")
}

// Versioned reports whether the declaration carries a version suffix.
func (n *Namespace) Versioned() bool {
	return n.Version != ""
}
