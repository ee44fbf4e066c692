package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xqfront/internal/diag"
	"xqfront/internal/token"
)

func TestDirectElement(t *testing.T) {
	src := `<a x="1" p:y='{$v}'>text {1 + 2} &amp; &#x41; {{<b/></a>`
	res := parseDefault(t, src)
	tr := res.Tree
	require.Zero(t, res.Bag.Len(), "%v", res.Bag.Items())

	assert.Equal(t, 2, count(tr, token.DirElemConstructor))
	assert.Equal(t, 2, count(tr, token.DirAttribute))
	assert.Equal(t, 2, count(tr, token.EnclosedExpr))
	assert.Equal(t, 1, count(tr, token.DirElemContent))
	assert.True(t, find(tr, token.AdditiveExpr).IsValid())

	attr := find(tr, token.DirAttribute)
	assert.Equal(t, `DirAttribute(QName(x) = DirAttributeValue(" 1 "))`, shape(tr, attr))
	assert.Equal(t, src, text(tr))
}

func TestSelfClosingElement(t *testing.T) {
	res := parseDefault(t, `<a/>`)
	assert.Zero(t, res.Bag.Len())
	assert.Equal(t, "DirElemConstructor(< QName(a) />)", bodyShape(t, res))
}

func TestElementInExpression(t *testing.T) {
	res := parseDefault(t, `for $i in 1 to 2 return <i n="{$i}">{$i * 2}</i>`)
	assert.Zero(t, res.Bag.Len(), "%v", res.Bag.Items())
	assert.True(t, find(res.Tree, token.ReturnClause).IsValid())
	assert.True(t, find(res.Tree, token.MultiplicativeExpr).IsValid())
}

func TestLessThanStaysComparison(t *testing.T) {
	res := parseDefault(t, `$a < $b`)
	assert.Zero(t, res.Bag.Len())
	assert.Equal(t, "ComparisonExpr(VarRef($ QName(a)) < VarRef($ QName(b)))", bodyShape(t, res))
}

func TestElementMarkupContent(t *testing.T) {
	res := parseDefault(t, `<a><!-- c --><?target data?><![CDATA[<not a tag>]]></a>`)
	tr := res.Tree
	assert.Zero(t, res.Bag.Len(), "%v", res.Bag.Items())
	assert.True(t, find(tr, token.DirCommentConstructor).IsValid())
	assert.True(t, find(tr, token.DirPIConstructor).IsValid())
	assert.True(t, find(tr, token.CDataSection).IsValid())
	assert.Equal(t, 1, count(tr, token.DirElemConstructor))
}

func TestStandaloneMarkupConstructors(t *testing.T) {
	for src, kind := range map[string]token.Kind{
		`<!-- note -->`:    token.DirCommentConstructor,
		`<?pi some data?>`: token.DirPIConstructor,
		`<![CDATA[x]]>`:    token.CDataSection,
	} {
		res := parseDefault(t, src)
		assert.Zero(t, res.Bag.Len(), "%s: %v", src, res.Bag.Items())
		assert.Equal(t, kind, res.Tree.Kind(res.Tree.Significant(find(res.Tree, token.QueryBody))[0]), src)
	}
}

func TestTagMismatch(t *testing.T) {
	res := parseDefault(t, `<a>x</b>`)
	require.Equal(t, []diag.Code{diag.SynTagMismatch}, codes(res.Bag))
	d := res.Bag.Items()[0]
	assert.Equal(t, uint32(6), d.Primary.Start)
	require.Len(t, d.Notes, 1)
	assert.Equal(t, uint32(1), d.Notes[0].Span.Start)
	assert.Equal(t, 1, count(res.Tree, token.DirElemConstructor))
}

func TestPrefixedTagMismatch(t *testing.T) {
	res := parseDefault(t, `<p:a></q:a>`)
	assert.Equal(t, []diag.Code{diag.SynTagMismatch}, codes(res.Bag))

	res = parseDefault(t, `<p:a></p:a>`)
	assert.Zero(t, res.Bag.Len())
}

func TestUnterminatedElement(t *testing.T) {
	res := parseDefault(t, `<a>text`)
	assert.Equal(t, []diag.Code{diag.SynUnterminatedElement}, codes(res.Bag))
	assert.Equal(t, `<a>text`, text(res.Tree))

	res = parseDefault(t, `<a x="1"`)
	assert.Contains(t, codes(res.Bag), diag.SynUnterminatedElement)
	assert.Equal(t, `<a x="1"`, text(res.Tree))
}

func TestUnterminatedAttribute(t *testing.T) {
	res := parseDefault(t, `<a x="1`)
	assert.Contains(t, codes(res.Bag), diag.LexUnterminatedAttribute)
	assert.Equal(t, `<a x="1`, text(res.Tree))
}

func TestElementContinuesAfter(t *testing.T) {
	res := parseDefault(t, `(<a/>, <b>{1}</b>)[2]`)
	assert.Zero(t, res.Bag.Len(), "%v", res.Bag.Items())
	assert.Equal(t, token.FilterExpr, res.Tree.Kind(res.Tree.Significant(find(res.Tree, token.QueryBody))[0]))
}
