package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xqfront/internal/cst"
	"xqfront/internal/source"
	"xqfront/internal/token"
)

func tok(k token.Kind, start uint32, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{File: 1, Start: start, End: start + uint32(len(text))}, Text: text}
}

func TestBuilderLeftFold(t *testing.T) {
	file := &source.File{ID: 1, Content: []byte("1+2+3")}
	b := cst.NewBuilder(file, 0)

	m := b.Open()
	b.Token(tok(token.IntegerLiteral, 0, "1"))
	b.Token(tok(token.Plus, 1, "+"))
	b.Token(tok(token.IntegerLiteral, 2, "2"))
	inner := b.Close(m, token.AdditiveExpr)
	b.Token(tok(token.Plus, 3, "+"))
	b.Token(tok(token.IntegerLiteral, 4, "3"))
	outer := b.Close(m, token.AdditiveExpr)
	tree := b.Finish(token.Module)

	require.Equal(t, token.Module, tree.Kind(tree.Root))
	assert.Equal(t, []cst.NodeID{outer}, tree.ChildrenOf(tree.Root))
	assert.Equal(t, inner, tree.FirstChild(outer))
	assert.Equal(t, outer, tree.Parent(inner))
	assert.Equal(t, "1+2+3", tree.Text(tree.Root))
	assert.Equal(t, source.Span{File: 1, Start: 0, End: 5}, tree.Span(outer))
	assert.Equal(t, source.Span{File: 1, Start: 0, End: 3}, tree.Span(inner))
}

func TestBuilderRollback(t *testing.T) {
	file := &source.File{ID: 1, Content: []byte("ab")}
	b := cst.NewBuilder(file, 0)
	b.Token(tok(token.NCName, 0, "a"))
	m := b.Open()
	b.Token(tok(token.NCName, 1, "b"))
	b.Close(m, token.QName)
	b.Rollback(m)
	tree := b.Finish(token.Module)

	assert.Equal(t, 2, tree.Len())
	assert.Len(t, tree.ChildrenOf(tree.Root), 1)
}

func TestEmptyCompositeIsZeroWidth(t *testing.T) {
	file := &source.File{ID: 1, Content: []byte("x")}
	b := cst.NewBuilder(file, 0)
	b.Token(tok(token.NCName, 0, "x"))
	empty := b.Close(b.Open(), token.Prolog)
	tree := b.Finish(token.Module)

	sp := tree.Span(empty)
	assert.True(t, sp.Empty())
	assert.Equal(t, uint32(1), sp.Start)
}

func TestLeafAtAndWalk(t *testing.T) {
	file := &source.File{ID: 1, Content: []byte("a b")}
	b := cst.NewBuilder(file, 0)
	m := b.Open()
	a := b.Token(tok(token.NCName, 0, "a"))
	ws := b.Token(tok(token.Whitespace, 1, " "))
	bb := b.Token(tok(token.NCName, 2, "b"))
	b.Close(m, token.Expr)
	tree := b.Finish(token.Module)

	assert.Equal(t, a, tree.LeafAt(0))
	assert.Equal(t, ws, tree.LeafAt(1))
	assert.Equal(t, bb, tree.LeafAt(2))
	assert.Equal(t, bb, tree.LeafAt(3))
	assert.Equal(t, []cst.NodeID{a, ws, bb}, tree.Leaves(tree.Root))

	var kinds []token.Kind
	tree.Walk(tree.Root, func(id cst.NodeID) bool {
		kinds = append(kinds, tree.Kind(id))
		return tree.Kind(id) != token.Expr
	})
	assert.Equal(t, []token.Kind{token.Module, token.Expr}, kinds)
	assert.Len(t, tree.Significant(tree.FirstChild(tree.Root)), 2)
}
