package cst

import (
	"strings"

	"xqfront/internal/source"
	"xqfront/internal/token"
)

// Tree is the syntax tree of one parse. It is not modified after Builder.Finish
// and may be read from several goroutines.
type Tree struct {
	File  *source.File
	Root  NodeID
	nodes *Arena[Node]
}

// Get returns the node for id, or nil. The node must not be modified.
func (t *Tree) Get(id NodeID) *Node {
	if t == nil {
		return nil
	}
	return t.nodes.Get(uint32(id))
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return int(t.nodes.Len()) }

func (t *Tree) Kind(id NodeID) token.Kind {
	if n := t.Get(id); n != nil {
		return n.Kind
	}
	return token.Invalid
}

func (t *Tree) Span(id NodeID) source.Span {
	if n := t.Get(id); n != nil {
		return n.Span
	}
	return source.Span{}
}

func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.Get(id); n != nil {
		return n.Parent
	}
	return NoNodeID
}

// ChildrenOf returns the children of id in source order.
func (t *Tree) ChildrenOf(id NodeID) []NodeID {
	if n := t.Get(id); n != nil {
		return n.Children
	}
	return nil
}

func (t *Tree) FirstChild(id NodeID) NodeID {
	if ch := t.ChildrenOf(id); len(ch) > 0 {
		return ch[0]
	}
	return NoNodeID
}

// Child returns the first child of id with kind k.
func (t *Tree) Child(id NodeID, k token.Kind) NodeID {
	for _, c := range t.ChildrenOf(id) {
		if t.Kind(c) == k {
			return c
		}
	}
	return NoNodeID
}

// ChildrenOfKind returns every child of id whose kind is in set.
func (t *Tree) ChildrenOfKind(id NodeID, set token.Set) []NodeID {
	var out []NodeID
	for _, c := range t.ChildrenOf(id) {
		if set.Has(t.Kind(c)) {
			out = append(out, c)
		}
	}
	return out
}

// Significant returns the children of id that are not trivia.
func (t *Tree) Significant(id NodeID) []NodeID {
	var out []NodeID
	for _, c := range t.ChildrenOf(id) {
		if k := t.Kind(c); !token.Trivia.Has(k) && k != token.Comment {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits id and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	n := t.Get(id)
	if n == nil || !fn(id) {
		return
	}
	for _, c := range n.Children {
		t.Walk(c, fn)
	}
}

// Leaves returns the leaves under id in source order.
func (t *Tree) Leaves(id NodeID) []NodeID {
	var out []NodeID
	t.Walk(id, func(n NodeID) bool {
		if t.Kind(n).IsToken() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Text concatenates the leaf texts under id.
func (t *Tree) Text(id NodeID) string {
	n := t.Get(id)
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return n.Text
	}
	var sb strings.Builder
	for _, l := range t.Leaves(id) {
		sb.WriteString(t.Get(l).Text)
	}
	return sb.String()
}

// LeafAt returns the leaf covering off, or the last leaf when off is at
// the end of the input.
func (t *Tree) LeafAt(off uint32) NodeID {
	id := t.Root
	for {
		n := t.Get(id)
		if n == nil || n.IsLeaf() {
			return id
		}
		next := NoNodeID
		for _, c := range n.Children {
			sp := t.Span(c)
			if sp.Contains(off) || (sp.End == off && c == n.Children[len(n.Children)-1]) {
				next = c
				break
			}
		}
		if next == NoNodeID {
			return id
		}
		id = next
	}
}
