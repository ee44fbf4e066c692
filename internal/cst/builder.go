package cst

import (
	"xqfront/internal/source"
	"xqfront/internal/token"
)

// Builder assembles a Tree bottom-up. Finished nodes sit on a pending list
// until a Close wraps them into a composite, so every node gets exactly
// one parent.
type Builder struct {
	file    *source.File
	nodes   *Arena[Node]
	pending []NodeID
	// off is the end offset of the last leaf, used to place empty composites.
	off uint32
}

// Marker records where a composite starts on the pending list.
type Marker struct {
	pos   int
	nodes uint32
	off   uint32
}

func NewBuilder(file *source.File, capHint uint) *Builder {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Builder{
		file:  file,
		nodes: NewArena[Node](capHint),
	}
}

// Token appends a leaf for tok.
func (b *Builder) Token(tok token.Token) NodeID {
	id := NodeID(b.nodes.Allocate(Node{Kind: tok.Kind, Span: tok.Span, Text: tok.Text}))
	b.pending = append(b.pending, id)
	b.off = tok.Span.End
	return id
}

// Open starts a composite at the current position.
func (b *Builder) Open() Marker {
	return Marker{pos: len(b.pending), nodes: b.nodes.Len(), off: b.off}
}

// Close wraps everything appended since m into a composite of kind k.
// Trailing whitespace and comments stay outside the new node.
// m stays valid: closing it again wraps the new node together with what
// follows it, which is how left-associative chains are folded.
func (b *Builder) Close(m Marker, k token.Kind) NodeID {
	return b.close(m, k, "", true)
}

// CloseError wraps everything appended since m into an Error composite.
func (b *Builder) CloseError(m Marker, msg string) NodeID {
	return b.close(m, token.Error, msg, true)
}

func (b *Builder) isTrivia(id NodeID) bool {
	k := b.nodes.Get(uint32(id)).Kind
	return token.Trivia.Has(k) || k == token.Comment
}

func (b *Builder) close(m Marker, k token.Kind, msg string, trim bool) NodeID {
	end := len(b.pending)
	if trim {
		for end > m.pos && b.isTrivia(b.pending[end-1]) {
			end--
		}
	}
	trailing := append([]NodeID(nil), b.pending[end:]...)
	children := append([]NodeID(nil), b.pending[m.pos:end]...)
	sp := source.At(b.fileID(), m.off)
	if len(children) > 0 {
		sp = b.nodes.Get(uint32(children[0])).Span.Cover(b.nodes.Get(uint32(children[len(children)-1])).Span)
	}
	id := NodeID(b.nodes.Allocate(Node{Kind: k, Span: sp, Children: children, Message: msg}))
	for _, c := range children {
		b.nodes.Get(uint32(c)).Parent = id
	}
	b.pending = append(append(b.pending[:m.pos], id), trailing...)
	return id
}

// Precede returns a marker that starts just before the node closed at m.
func (b *Builder) Precede(m Marker) Marker {
	return Marker{pos: m.pos, nodes: b.nodes.Len(), off: m.off}
}

// Rollback discards everything appended or allocated since m.
func (b *Builder) Rollback(m Marker) {
	b.pending = b.pending[:m.pos]
	b.nodes.Truncate(m.nodes)
	b.off = m.off
}

// Pending reports how many nodes are waiting for a parent after m.
func (b *Builder) Pending(m Marker) int { return len(b.pending) - m.pos }

// Finish wraps all pending nodes into a root of kind k and returns the tree.
// The builder must not be used afterwards.
func (b *Builder) Finish(k token.Kind) *Tree {
	root := b.close(Marker{}, k, "", false)
	b.pending = nil
	return &Tree{File: b.file, Root: root, nodes: b.nodes}
}

func (b *Builder) fileID() source.FileID {
	if b.file == nil {
		return 0
	}
	return b.file.ID
}
