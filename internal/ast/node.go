package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

type NodeType int

const (
	MODEL NodeType = iota
	NAMESPACE
	QUALIFIED_NAME
	IDENT
	SEMVER
	COMMENT
	DOC_COMMENT
)

// ModelItem is implemented by nodes that may appear before the namespace
// declaration at the top of a model file.
type ModelItem interface {
	Node
	isModelItem()
}

func (*Comment) isModelItem()    {}
func (*DocComment) isModelItem() {}

func (m *Model) NodePos() Position    { return m.Pos }
func (m *Model) NodeEndPos() Position { return m.EndPos }
func (*Model) NodeType() NodeType     { return MODEL }

func (ns *Namespace) NodePos() Position    { return ns.Pos }
func (ns *Namespace) NodeEndPos() Position { return ns.EndPos }
func (*Namespace) NodeType() NodeType      { return NAMESPACE }

func (qn *QualifiedName) NodePos() Position    { return qn.Pos }
func (qn *QualifiedName) NodeEndPos() Position { return qn.EndPos }
func (*QualifiedName) NodeType() NodeType      { return QUALIFIED_NAME }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (sv *SemVer) NodePos() Position    { return sv.Pos }
func (sv *SemVer) NodeEndPos() Position { return sv.EndPos }
func (*SemVer) NodeType() NodeType      { return SEMVER }

func (c *Comment) NodePos() Position    { return c.Pos }
func (c *Comment) NodeEndPos() Position { return c.EndPos }
func (*Comment) NodeType() NodeType     { return COMMENT }

func (dc *DocComment) NodePos() Position    { return dc.Pos }
func (dc *DocComment) NodeEndPos() Position { return dc.EndPos }
func (*DocComment) NodeType() NodeType      { return DOC_COMMENT }
