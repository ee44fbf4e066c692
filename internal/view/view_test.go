package view_test

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xqfront/internal/cst"
	"xqfront/internal/dialect"
	"xqfront/internal/parser"
	"xqfront/internal/token"
	"xqfront/internal/view"
)

func parse(t *testing.T, src string) *cst.Tree {
	t.Helper()
	res := parser.ParseString(context.Background(), "view.xq", src, parser.Options{Dialect: dialect.Default()})
	require.False(t, res.Bag.HasErrors(), "%v", res.Bag.Items())
	return res.Tree
}

// parseBroken parses input that is expected to carry errors.
func parseBroken(t *testing.T, src string) *cst.Tree {
	t.Helper()
	res := parser.ParseString(context.Background(), "view.xq", src, parser.Options{Dialect: dialect.Default()})
	require.True(t, res.Bag.HasErrors())
	return res.Tree
}

func all(tr *cst.Tree, k token.Kind) []cst.NodeID {
	var out []cst.NodeID
	tr.Walk(tr.Root, func(id cst.NodeID) bool {
		if tr.Kind(id) == k {
			out = append(out, id)
		}
		return true
	})
	return out
}

func first(t *testing.T, tr *cst.Tree, k token.Kind) cst.NodeID {
	t.Helper()
	ids := all(tr, k)
	require.NotEmpty(t, ids, "no %s node", k)
	return ids[0]
}

func TestOfIsTotalAndDeterministic(t *testing.T) {
	tr := parse(t, `xquery version "3.1";
declare variable $v := <a x="1">{ "s" }<!--c--></a>;
(: comment :)
for $i in 1 to 3 return f($i, 1.5, 2e0, Q{urn:x}n)`)
	tr.Walk(tr.Root, func(id cst.NodeID) bool {
		v := view.Of(tr, id)
		require.NotNil(t, v)
		assert.Equal(t, id, v.ID())
		assert.Equal(t, tr.Kind(id), v.Kind())
		assert.Equal(t, reflect.TypeOf(v), reflect.TypeOf(view.Of(tr, id)))
		return true
	})
	assert.Nil(t, view.Of(tr, cst.NoNodeID))
}

func TestGenericFallback(t *testing.T) {
	tr := parse(t, "1 + 2")
	v := view.Of(tr, first(t, tr, token.AdditiveExpr))
	assert.IsType(t, view.Generic{}, v)
	assert.Equal(t, "1 + 2", v.Text())
}

func TestNumericLiterals(t *testing.T) {
	tr := parse(t, "(123456789012345678901234567890, 1.50, .5, 1.5e2, 1e400)")

	i, ok := view.Of(tr, first(t, tr, token.IntegerLiteral)).(view.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, "123456789012345678901234567890", i.Value().String())

	decs := all(tr, token.DecimalLiteral)
	require.Len(t, decs, 2)
	d := view.Of(tr, decs[0]).(view.DecimalLiteral)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "1.5", v.String())
	assert.Equal(t, "0.5", view.Of(tr, decs[1]).(view.DecimalLiteral).StringValue())

	dbls := all(tr, token.DoubleLiteral)
	require.Len(t, dbls, 2)
	assert.InDelta(t, 150.0, view.Of(tr, dbls[0]).(view.DoubleLiteral).Value(), 0)
	assert.True(t, math.IsInf(view.Of(tr, dbls[1]).(view.DoubleLiteral).Value(), 1))
}

func TestStringLiteral(t *testing.T) {
	tr := parse(t, `"a""b&amp;&#65;{}"`)
	s := view.Of(tr, first(t, tr, token.StringLiteral)).(view.StringLiteral)
	assert.Equal(t, `a"b&A{}`, s.Value())
	assert.True(t, s.Terminated())

	tr = parse(t, `'it''s'`)
	assert.Equal(t, "it's", view.Of(tr, first(t, tr, token.StringLiteral)).(view.StringLiteral).Value())
}

func TestUnterminatedStringLiteral(t *testing.T) {
	res := parser.ParseString(context.Background(), "s.xq", `"abc`, parser.Options{Dialect: dialect.Default()})
	tr := res.Tree
	s := view.Of(tr, first(t, tr, token.StringLiteral)).(view.StringLiteral)
	assert.Equal(t, "abc", s.Value())
	assert.False(t, s.Terminated())
}

func TestReferences(t *testing.T) {
	tr := parse(t, `<a>&lt;&#x263A;{{</a>`)
	p := view.Of(tr, first(t, tr, token.PredefinedEntityReference)).(view.PredefinedEntityReference)
	assert.Equal(t, "lt", p.Name())
	assert.True(t, p.Known())
	assert.Equal(t, "<", p.StringValue())

	c := view.Of(tr, first(t, tr, token.CharacterReference)).(view.CharacterReference)
	r, ok := c.Rune()
	assert.True(t, ok)
	assert.Equal(t, '☺', r)

	e := view.Of(tr, first(t, tr, token.EscapedCharacter)).(view.EscapedCharacter)
	assert.Equal(t, "{", e.StringValue())
}

func TestQNames(t *testing.T) {
	tr := parse(t, "p:local")
	q := view.Of(tr, first(t, tr, token.QName)).(view.QName)
	assert.Equal(t, "p", q.Prefix())
	assert.Equal(t, "local", q.LocalName())
	_, hasNS := q.Namespace()
	assert.False(t, hasNS)
	assert.Equal(t, "p:local", q.String())

	tr = parse(t, "Q{urn:example}name")
	q = view.Of(tr, first(t, tr, token.URIQualifiedName)).(view.QName)
	ns, hasNS := q.Namespace()
	assert.True(t, hasNS)
	assert.Equal(t, "urn:example", ns)
	assert.Equal(t, "", q.Prefix())
	assert.Equal(t, "name", q.LocalName())
	assert.Equal(t, "Q{urn:example}name", q.String())
}

func TestKeywordLeafIsNCName(t *testing.T) {
	tr := parse(t, "for $x in 1 return $x")
	kw := first(t, tr, token.KwFor)
	n, ok := view.Of(tr, kw).(view.NCName)
	require.True(t, ok)
	assert.Equal(t, "for", n.LocalName())
}

func TestFunctionCall(t *testing.T) {
	tr := parse(t, "fn:concat($a, ?, 'x')")
	f := view.Of(tr, first(t, tr, token.FunctionCall)).(view.FunctionCall)
	name, ok := f.Name()
	require.True(t, ok)
	assert.Equal(t, "fn:concat", name.String())
	assert.Equal(t, 3, f.Arity())
	args := f.Arguments()
	require.Len(t, args, 3)
	assert.IsType(t, view.VarRef{}, args[0])
	assert.Equal(t, token.Optional, args[1].Kind())

	tr = parse(t, "f()")
	assert.Equal(t, 0, view.Of(tr, first(t, tr, token.FunctionCall)).(view.FunctionCall).Arity())
}

func TestVersionDecl(t *testing.T) {
	tr := parse(t, `xquery version "3.1" encoding "UTF-8"; 1`)
	d := view.Of(tr, first(t, tr, token.VersionDecl)).(view.VersionDecl)
	v, ok := d.Version()
	assert.True(t, ok)
	assert.Equal(t, "3.1", v)
	enc, ok := d.Encoding()
	assert.True(t, ok)
	assert.Equal(t, "UTF-8", enc)

	tr = parse(t, `xquery version "3.0"; 1`)
	_, ok = view.Of(tr, first(t, tr, token.VersionDecl)).(view.VersionDecl).Encoding()
	assert.False(t, ok)
}

func TestModuleDeclAndImport(t *testing.T) {
	tr := parse(t, `module namespace m = "urn:m";
import module namespace o = "urn:o" at "a.xqm", "b.xqm";
import module "urn:p";`)
	m := view.Of(tr, first(t, tr, token.ModuleDecl)).(view.ModuleDecl)
	assert.Equal(t, "m", m.Prefix())
	assert.Equal(t, "urn:m", m.URI())

	imports := all(tr, token.ModuleImport)
	require.Len(t, imports, 2)
	o := view.Of(tr, imports[0]).(view.ModuleImport)
	assert.Equal(t, "o", o.Prefix())
	assert.Equal(t, "urn:o", o.URI())
	assert.Equal(t, []string{"a.xqm", "b.xqm"}, o.Locations())

	p := view.Of(tr, imports[1]).(view.ModuleImport)
	assert.Equal(t, "", p.Prefix())
	assert.Equal(t, "urn:p", p.URI())
	assert.Nil(t, p.Locations())
}

func TestContentViews(t *testing.T) {
	tr := parse(t, "(: outer (: inner :) :) <a><!-- x --><![CDATA[<y>]]></a>")
	c := view.Of(tr, first(t, tr, token.Comment)).(view.Comment)
	assert.Equal(t, " outer (: inner :) ", c.Content())

	x, ok := view.As[view.Content](tr, first(t, tr, token.DirCommentConstructor))
	require.True(t, ok)
	assert.Equal(t, " x ", x.Content())

	cd, ok := view.As[view.Content](tr, first(t, tr, token.CDataSection))
	require.True(t, ok)
	assert.Equal(t, "<y>", cd.Content())
}

func TestContentViewsTermination(t *testing.T) {
	tr := parse(t, "(: a :) <a><!-- x --><![CDATA[y]]></a>")
	assert.True(t, view.Of(tr, first(t, tr, token.Comment)).(view.Comment).Terminated())
	assert.True(t, view.Of(tr, first(t, tr, token.DirCommentConstructor)).(view.XMLComment).Terminated())
	assert.True(t, view.Of(tr, first(t, tr, token.CDataSection)).(view.CDataSection).Terminated())

	tr = parseBroken(t, "(: unterminated")
	c := view.Of(tr, first(t, tr, token.Comment)).(view.Comment)
	assert.False(t, c.Terminated())
	assert.Equal(t, " unterminated", c.Content())

	tr = parseBroken(t, "<!-- open")
	assert.False(t, view.Of(tr, first(t, tr, token.DirCommentConstructor)).(view.XMLComment).Terminated())

	tr = parseBroken(t, "<a><![CDATA[open")
	assert.False(t, view.Of(tr, first(t, tr, token.CDataSection)).(view.CDataSection).Terminated())
}

func TestDirElemConstructor(t *testing.T) {
	tr := parse(t, `<p:a x="1" y="2"><b/>text<c></c></p:a>`)
	e := view.Of(tr, first(t, tr, token.DirElemConstructor)).(view.DirElemConstructor)
	name, ok := e.Name()
	require.True(t, ok)
	assert.Equal(t, "p:a", name.String())

	var attrs []string
	for _, q := range e.AttributeNames() {
		attrs = append(attrs, q.String())
	}
	assert.Equal(t, []string{"x", "y"}, attrs)

	children := e.Children()
	require.Len(t, children, 2)
	n, _ := children[1].Name()
	assert.Equal(t, "c", n.LocalName())
}

func TestErrorView(t *testing.T) {
	res := parser.ParseString(context.Background(), "e.xq", "1 )", parser.Options{Dialect: dialect.Default()})
	tr := res.Tree
	e, ok := view.Of(tr, first(t, tr, token.Error)).(view.Error)
	require.True(t, ok)
	assert.NotEmpty(t, e.Message())
}

func TestCapabilities(t *testing.T) {
	tr := parse(t, "let $x := 1 return $x")
	ref := all(tr, token.VarRef)[0]

	named, ok := view.As[view.Named](tr, ref)
	require.True(t, ok)
	name, _ := named.Name()
	assert.Equal(t, "x", name.String())

	_, ok = view.As[view.Valued](tr, first(t, tr, token.QueryBody))
	assert.False(t, ok)

	binder, ok := view.As[view.VariableBinder](tr, first(t, tr, token.LetBinding))
	require.True(t, ok)
	bound, _ := binder.Variable()
	assert.Equal(t, "x", bound.LocalName())
}

func TestValueOfFollowsFirstChildren(t *testing.T) {
	tr := parse(t, "42")
	v, ok := view.ValueOf(tr, first(t, tr, token.QueryBody))
	require.True(t, ok)
	assert.Equal(t, "42", v.StringValue())
	assert.Equal(t, token.IntegerLiteral, v.Kind())
}

func TestEnclosingBinder(t *testing.T) {
	tr := parse(t, "for $x in (1, 2) return $x")
	lit := first(t, tr, token.IntegerLiteral)
	b, ok := view.Enclosing[view.VariableBinder](tr, lit)
	require.True(t, ok)
	assert.Equal(t, token.ForBinding, b.Kind())

	_, ok = view.Enclosing[view.VariableBinder](tr, all(tr, token.VarRef)[0])
	assert.False(t, ok, "the return clause is outside the binding")
}
