package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xqfront/internal/cst"
	"xqfront/internal/nav"
	"xqfront/internal/source"
	"xqfront/internal/token"
)

func tok(k token.Kind, start uint32, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{File: 1, Start: start, End: start + uint32(len(text))}, Text: text}
}

// build returns the tree for "1+2" as Module(AdditiveExpr(Literal(1) + Literal(2))).
func build(t *testing.T) (tree *cst.Tree, add, lit, leaf cst.NodeID) {
	t.Helper()
	file := &source.File{ID: 1, Content: []byte("1+2")}
	b := cst.NewBuilder(file, 0)
	outer := b.Open()
	m := b.Open()
	b.Token(tok(token.IntegerLiteral, 0, "1"))
	lit = b.Close(m, token.Literal)
	b.Token(tok(token.Plus, 1, "+"))
	m2 := b.Open()
	b.Token(tok(token.IntegerLiteral, 2, "2"))
	b.Close(m2, token.Literal)
	add = b.Close(outer, token.AdditiveExpr)
	tree = b.Finish(token.Module)
	leaf = tree.FirstChild(lit)
	require.Equal(t, token.IntegerLiteral, tree.Kind(leaf))
	return tree, add, lit, leaf
}

func kindIs(k token.Kind) nav.Projection[cst.NodeID] {
	return func(t *cst.Tree, id cst.NodeID) (cst.NodeID, bool) {
		return id, t.Kind(id) == k
	}
}

func TestAncestorIncludesStart(t *testing.T) {
	tree, add, lit, leaf := build(t)

	got, ok := nav.Ancestor(tree, lit, kindIs(token.Literal))
	require.True(t, ok)
	assert.Equal(t, lit, got)

	got, ok = nav.Ancestor(tree, leaf, kindIs(token.AdditiveExpr))
	require.True(t, ok)
	assert.Equal(t, add, got)

	_, ok = nav.Ancestor(tree, leaf, kindIs(token.FLWORExpr))
	assert.False(t, ok)

	_, ok = nav.Ancestor(tree, cst.NoNodeID, kindIs(token.Module))
	assert.False(t, ok)
}

func TestFirstChildDescendantExcludesStart(t *testing.T) {
	tree, add, lit, leaf := build(t)

	got, ok := nav.FirstChildDescendant(tree, tree.Root, kindIs(token.IntegerLiteral))
	require.True(t, ok)
	assert.Equal(t, leaf, got)

	got, ok = nav.FirstChildDescendant(tree, add, kindIs(token.Literal))
	require.True(t, ok)
	assert.Equal(t, lit, got)

	_, ok = nav.FirstChildDescendant(tree, add, kindIs(token.AdditiveExpr))
	assert.False(t, ok)

	// the second operand is not on the first-child chain
	_, ok = nav.FirstChildDescendant(tree, add, kindIs(token.Plus))
	assert.False(t, ok)
}

func TestAncestors(t *testing.T) {
	tree, add, lit, leaf := build(t)
	assert.Equal(t, []cst.NodeID{lit, add, tree.Root}, nav.Ancestors(tree, leaf))
	assert.Empty(t, nav.Ancestors(tree, tree.Root))
}
