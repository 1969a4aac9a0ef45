package ast

import (
	"strconv"
	"strings"
)

// String renders nodes back to Concerto source form. SemVer rendering is
// lossless: re-parsing the output yields a structurally equal value.

func (i *Ident) String() string {
	return i.Value
}

func (qn *QualifiedName) String() string {
	parts := make([]string, len(qn.Parts))
	for i, p := range qn.Parts {
		parts[i] = p.Value
	}
	return strings.Join(parts, ".")
}

func (v Version) String() string {
	s := strconv.FormatUint(uint64(v.Major), 10)
	if v.Kind == VersionMajorMinor || v.Kind == VersionFull {
		s += "." + strconv.FormatUint(uint64(v.Minor), 10)
	}
	if v.Kind == VersionFull {
		s += "." + strconv.FormatUint(uint64(v.Patch), 10)
	}
	return s
}

func (sv *SemVer) String() string {
	var b strings.Builder
	b.WriteString(sv.Version.String())
	if len(sv.Prerelease) > 0 {
		b.WriteByte('-')
		for i, id := range sv.Prerelease {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(id.Value)
		}
	}
	if len(sv.Build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(sv.Build, "."))
	}
	return b.String()
}

func (ns *Namespace) String() string {
	if ns.Version != nil {
		return "namespace " + ns.Name.String() + "@" + ns.Version.String()
	}
	return "namespace " + ns.Name.String()
}

func (m *Model) String() string {
	var b strings.Builder
	for _, c := range m.LeadingComments {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	if m.Namespace != nil {
		b.WriteString(m.Namespace.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Comment) String() string {
	return c.Text
}

func (dc *DocComment) String() string {
	return dc.Text
}
