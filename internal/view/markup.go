package view

import (
	"xqfront/internal/token"
)

// Comment is `(: ... :)`.
type Comment struct{ node }

// Content is the text between the delimiters, nested comments included.
func (c Comment) Content() string { return leafText(c.node, token.CommentContents) }

// Terminated is false when the input ended inside the comment. The node then
// ends with an UnexpectedEndOfBlock token instead of ':)'.
func (c Comment) Terminated() bool { return c.child(token.CommentEndTag).IsValid() }

// XMLComment is a direct comment constructor `<!-- ... -->`.
type XMLComment struct{ node }

func (c XMLComment) Content() string { return leafText(c.node, token.XMLCommentContents) }

func (c XMLComment) Terminated() bool { return c.child(token.XMLCommentEndTag).IsValid() }

// CDataSection is `<![CDATA[ ... ]]>`.
type CDataSection struct{ node }

func (c CDataSection) Content() string { return leafText(c.node, token.CDataSectionContents) }

func (c CDataSection) Terminated() bool { return c.child(token.CDataSectionEndTag).IsValid() }

func leafText(n node, k token.Kind) string {
	if id := n.child(k); id.IsValid() {
		return n.tree.Get(id).Text
	}
	return ""
}

// DirElemConstructor is a direct element constructor.
type DirElemConstructor struct{ node }

// Name is the name of the start tag.
func (e DirElemConstructor) Name() (QName, bool) { return nameChild(e.tree, e.id) }

// AttributeNames lists the attribute names in source order.
func (e DirElemConstructor) AttributeNames() []QName {
	list := e.child(token.DirAttributeList)
	if !list.IsValid() {
		return nil
	}
	var out []QName
	for _, a := range e.tree.ChildrenOfKind(list, token.NewSet(token.DirAttribute)) {
		if q, ok := nameChild(e.tree, a); ok {
			out = append(out, q)
		}
	}
	return out
}

// Children returns the nested element constructors.
func (e DirElemConstructor) Children() []DirElemConstructor {
	content := e.child(token.DirElemContent)
	if !content.IsValid() {
		return nil
	}
	var out []DirElemConstructor
	for _, c := range e.tree.ChildrenOfKind(content, token.NewSet(token.DirElemConstructor)) {
		out = append(out, DirElemConstructor{node{e.tree, c}})
	}
	return out
}
