package cst

import (
	"xqfront/internal/source"
	"xqfront/internal/token"
)

// Node is either a leaf wrapping one token or a composite owning ordered children.
// Kind.IsToken() tells them apart.
type Node struct {
	Kind     token.Kind
	Span     source.Span
	Parent   NodeID
	Children []NodeID
	// Text is the token text of a leaf; empty for composites.
	Text string
	// Message describes the problem for Error composites.
	Message string
}

func (n *Node) IsLeaf() bool { return n.Kind.IsToken() }
