package view

import (
	"xqfront/internal/cst"
	"xqfront/internal/nav"
	"xqfront/internal/source"
	"xqfront/internal/token"
)

// View is the closed set of typed views. Only this package implements it.
type View interface {
	isView()
	Tree() *cst.Tree
	ID() cst.NodeID
	Kind() token.Kind
	Span() source.Span
	Text() string
}

// node is embedded by every view.
type node struct {
	tree *cst.Tree
	id   cst.NodeID
}

func (node) isView() {}

func (n node) Tree() *cst.Tree   { return n.tree }
func (n node) ID() cst.NodeID    { return n.id }
func (n node) Kind() token.Kind  { return n.tree.Kind(n.id) }
func (n node) Span() source.Span { return n.tree.Span(n.id) }
func (n node) Text() string      { return n.tree.Text(n.id) }

// significant returns the children that are not whitespace or comments.
func (n node) significant() []cst.NodeID { return n.tree.Significant(n.id) }

func (n node) child(k token.Kind) cst.NodeID { return n.tree.Child(n.id, k) }

// Generic is the view of nodes with no specialised accessors.
type Generic struct{ node }

// Named is implemented by views that carry a (possibly missing) name.
type Named interface {
	View
	Name() (QName, bool)
}

// Valued is implemented by views with a value that can be written as a
// string: literals and references.
type Valued interface {
	View
	StringValue() string
}

// Content is implemented by views whose text sits between delimiters.
type Content interface {
	View
	Content() string
}

// VariableBinder is implemented by views that introduce a variable.
type VariableBinder interface {
	View
	Variable() (QName, bool)
}

type factory func(n node) View

var factories [token.KindCount]factory

func register(f factory, kinds ...token.Kind) {
	for _, k := range kinds {
		factories[k] = f
	}
}

func init() {
	register(func(n node) View { return IntegerLiteral{n} }, token.IntegerLiteral)
	register(func(n node) View { return DecimalLiteral{n} }, token.DecimalLiteral)
	register(func(n node) View { return DoubleLiteral{n} }, token.DoubleLiteral)
	register(func(n node) View { return StringLiteral{n} }, token.StringLiteral)
	register(func(n node) View { return URILiteral{n} }, token.URILiteral)
	register(func(n node) View { return EscapedCharacter{n} }, token.EscapedCharacter)
	register(func(n node) View { return CharacterReference{n} }, token.CharacterReference)
	register(func(n node) View { return PredefinedEntityReference{n} }, token.PredefinedEntityReference)
	register(func(n node) View { return NCName{n} }, token.NCName)
	register(func(n node) View { return QName{n} }, token.QName, token.URIQualifiedName)
	register(func(n node) View { return VarRef{n} }, token.VarRef)
	register(func(n node) View { return Comment{n} }, token.Comment)
	register(func(n node) View { return XMLComment{n} }, token.DirCommentConstructor)
	register(func(n node) View { return CDataSection{n} }, token.CDataSection)
	register(func(n node) View { return VersionDecl{n} }, token.VersionDecl)
	register(func(n node) View { return ModuleDecl{n} }, token.ModuleDecl)
	register(func(n node) View { return ModuleImport{n} }, token.ModuleImport)
	register(func(n node) View { return FunctionCall{n} }, token.FunctionCall)
	register(func(n node) View { return VariableBinding{n} }, bindingKinds...)
	register(func(n node) View { return DirElemConstructor{n} }, token.DirElemConstructor)
	register(func(n node) View { return Error{n} }, token.Error)
	for k := token.Kind(0); k < token.KindCount; k++ {
		if k.IsKeyword() {
			factories[k] = func(n node) View { return NCName{n} }
		}
	}
}

// Of returns the view for id. An invalid id yields nil.
func Of(t *cst.Tree, id cst.NodeID) View {
	k := t.Kind(id)
	if t.Get(id) == nil || k >= token.KindCount {
		return nil
	}
	n := node{tree: t, id: id}
	if f := factories[k]; f != nil {
		return f(n)
	}
	return Generic{n}
}

// As returns the view of id when it implements C.
func As[C any](t *cst.Tree, id cst.NodeID) (C, bool) {
	c, ok := Of(t, id).(C)
	return c, ok
}

// Enclosing returns the nearest node at or above id whose view implements C.
func Enclosing[C any](t *cst.Tree, id cst.NodeID) (C, bool) {
	return nav.Ancestor(t, id, As[C])
}

// Leading returns the first view implementing C along the first-child chain
// below id. For `1` in a query body it finds the IntegerLiteral.
func Leading[C any](t *cst.Tree, id cst.NodeID) (C, bool) {
	return nav.FirstChildDescendant(t, id, As[C])
}

// ValueOf returns the value of a literal node or of the literal that
// starts at id.
func ValueOf(t *cst.Tree, id cst.NodeID) (Valued, bool) {
	if v, ok := As[Valued](t, id); ok {
		return v, true
	}
	return Leading[Valued](t, id)
}

// Error is an Error node inserted by the parser.
type Error struct{ node }

// Message describes what the parser could not place.
func (e Error) Message() string { return e.tree.Get(e.id).Message }
