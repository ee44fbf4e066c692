package view

import (
	"xqfront/internal/cst"
	"xqfront/internal/token"
)

// NCName is a name leaf: an NCName or a keyword used as one.
type NCName struct{ node }

func (n NCName) LocalName() string { return n.Text() }

// QName is a QName or URIQualifiedName node.
type QName struct{ node }

// names returns the name leaves of a QName.
func (q QName) names() []cst.NodeID {
	var out []cst.NodeID
	for _, c := range q.tree.ChildrenOf(q.id) {
		if q.tree.Kind(c).IsNameLike() {
			out = append(out, c)
		}
	}
	return out
}

// Prefix returns the part before ':'; "" when there is none.
func (q QName) Prefix() string {
	if q.Kind() != token.QName || !q.child(token.QNameSeparator).IsValid() {
		return ""
	}
	if names := q.names(); len(names) == 2 {
		return q.tree.Get(names[0]).Text
	}
	return ""
}

// LocalName returns the part after ':', or the whole name.
func (q QName) LocalName() string {
	names := q.names()
	if len(names) == 0 {
		return ""
	}
	if q.Kind() == token.QName && len(names) == 1 && q.child(token.QNameSeparator).IsValid() {
		// "p:" with the local part missing
		return ""
	}
	return q.tree.Get(names[len(names)-1]).Text
}

// Namespace returns the URI of a URIQualifiedName. ok is false for QNames,
// whose namespace depends on in-scope prefixes.
func (q QName) Namespace() (string, bool) {
	if q.Kind() != token.URIQualifiedName {
		return "", false
	}
	uri := q.child(token.BracedURILiteral)
	if !uri.IsValid() {
		return "", true
	}
	var s string
	for _, c := range q.tree.ChildrenOf(uri) {
		switch k := q.tree.Kind(c); k {
		case token.BracedURILiteralStart, token.BracedURILiteralEnd, token.UnexpectedEndOfBlock:
		default:
			s += leafValue(node{q.tree, c})
		}
	}
	return s, true
}

// String is the lexical form: "p:local", "local" or "Q{uri}local".
func (q QName) String() string {
	if ns, ok := q.Namespace(); ok {
		return "Q{" + ns + "}" + q.LocalName()
	}
	if p := q.Prefix(); p != "" {
		return p + ":" + q.LocalName()
	}
	return q.LocalName()
}

// Name returns q itself so that QName satisfies Named.
func (q QName) Name() (QName, bool) { return q, true }

// nameChild returns the first QName or URIQualifiedName child of id.
func nameChild(t *cst.Tree, id cst.NodeID) (QName, bool) {
	for _, c := range t.ChildrenOf(id) {
		if k := t.Kind(c); k == token.QName || k == token.URIQualifiedName {
			return QName{node{t, c}}, true
		}
	}
	return QName{}, false
}

// VarRef is `$name`.
type VarRef struct{ node }

func (v VarRef) Name() (QName, bool) { return nameChild(v.tree, v.id) }

// Binding returns the declaration v refers to; see Resolve.
func (v VarRef) Binding() (VariableBinding, bool) { return Resolve(v) }

// FunctionCall is `name(args)`.
type FunctionCall struct{ node }

func (f FunctionCall) Name() (QName, bool) { return nameChild(f.tree, f.id) }

// Arity counts the arguments, placeholders included.
func (f FunctionCall) Arity() int {
	args := f.child(token.ArgumentList)
	if !args.IsValid() {
		return 0
	}
	n := 0
	for _, c := range f.tree.Significant(args) {
		switch f.tree.Kind(c) {
		case token.ParenOpen, token.ParenClose, token.Comma:
		default:
			n++
		}
	}
	return n
}

// Arguments returns the argument nodes; a placeholder is an Optional leaf.
func (f FunctionCall) Arguments() []View {
	args := f.child(token.ArgumentList)
	var out []View
	for _, c := range f.tree.Significant(args) {
		switch f.tree.Kind(c) {
		case token.ParenOpen, token.ParenClose, token.Comma:
		default:
			out = append(out, Of(f.tree, c))
		}
	}
	return out
}
