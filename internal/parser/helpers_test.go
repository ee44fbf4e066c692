package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"xqfront/internal/cst"
	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/token"
)

func parse(t *testing.T, src string, cfg dialect.Config) Result {
	t.Helper()
	res := ParseString(context.Background(), "test.xq", src, Options{Dialect: cfg})
	require.NotNil(t, res.Tree)
	return res
}

func parseDefault(t *testing.T, src string) Result {
	t.Helper()
	return parse(t, src, dialect.Default())
}

func preset(t *testing.T, name string) dialect.Config {
	t.Helper()
	cfg, err := dialect.Preset(name)
	require.NoError(t, err)
	return cfg
}

// shape renders id as Kind(children...) with leaves as their text.
// Whitespace and comments are left out.
func shape(tr *cst.Tree, id cst.NodeID) string {
	n := tr.Get(id)
	if n.Kind.IsToken() {
		return n.Text
	}
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if k := tr.Kind(c); token.Trivia.Has(k) || k == token.Comment {
			continue
		}
		parts = append(parts, shape(tr, c))
	}
	return n.Kind.String() + "(" + strings.Join(parts, " ") + ")"
}

// find returns the first node of kind k in document order.
func find(tr *cst.Tree, k token.Kind) cst.NodeID {
	found := cst.NoNodeID
	tr.Walk(tr.Root, func(id cst.NodeID) bool {
		if found.IsValid() {
			return false
		}
		if tr.Kind(id) == k {
			found = id
			return false
		}
		return true
	})
	return found
}

func count(tr *cst.Tree, k token.Kind) int {
	n := 0
	tr.Walk(tr.Root, func(id cst.NodeID) bool {
		if tr.Kind(id) == k {
			n++
		}
		return true
	})
	return n
}

// bodyShape is the shape of the query body's expression.
func bodyShape(t *testing.T, res Result) string {
	t.Helper()
	qb := find(res.Tree, token.QueryBody)
	require.True(t, qb.IsValid(), "no query body")
	sig := res.Tree.Significant(qb)
	require.Len(t, sig, 1, "query body: %s", shape(res.Tree, qb))
	return shape(res.Tree, sig[0])
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

// text concatenates all leaves under the root.
func text(tr *cst.Tree) string {
	var sb strings.Builder
	for _, id := range tr.Leaves(tr.Root) {
		sb.WriteString(tr.Get(id).Text)
	}
	return sb.String()
}
