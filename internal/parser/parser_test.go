package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xqfront/internal/cst"
	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/token"
)

func TestExpressionShapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1", "Literal(1)"},
		{"'a'", "StringLiteral(' a ')"},
		{"1 + 2 * 3", "AdditiveExpr(Literal(1) + MultiplicativeExpr(Literal(2) * Literal(3)))"},
		{"1 - 2 - 3", "AdditiveExpr(AdditiveExpr(Literal(1) - Literal(2)) - Literal(3))"},
		{"1 to 3", "RangeExpr(Literal(1) to Literal(3))"},
		{"'a' || 'b'", "StringConcatExpr(StringLiteral(' a ') || StringLiteral(' b '))"},
		{"1, 2", "Expr(Literal(1) , Literal(2))"},
		{"(1)", "ParenthesizedExpr(( Literal(1) ))"},
		{"()", "ParenthesizedExpr(( ))"},
		{"-1", "UnaryExpr(- Literal(1))"},
		{"$x", "VarRef($ QName(x))"},
		{"$a ! $b", "SimpleMapExpr(VarRef($ QName(a)) ! VarRef($ QName(b)))"},
		{"/", "PathExpr(/)"},
		{"//a", "PathExpr(// NameTest(QName(a)))"},
		{"a/b", "RelativePathExpr(NameTest(QName(a)) / NameTest(QName(b)))"},
		{"a//b", "RelativePathExpr(NameTest(QName(a)) // NameTest(QName(b)))"},
		{"p:local", "NameTest(QName(p : local))"},
		{"*:a", "NameTest(Wildcard(* : a))"},
		{"p:*", "NameTest(Wildcard(p : *))"},
		{"@id", "AbbrevForwardStep(@ NameTest(QName(id)))"},
		{"..", "AbbrevReverseStep(..)"},
		{"child::a", "AxisStep(Axis(child ::) NameTest(QName(a)))"},
		{"a[1]", "AxisStep(NameTest(QName(a)) Predicate([ Literal(1) ]))"},
		{"$x[1]", "FilterExpr(VarRef($ QName(x)) Predicate([ Literal(1) ]))"},
		{"f(1, ?)", "FunctionCall(QName(f) ArgumentList(( Literal(1) , ? )))"},
		{"f#2", "NamedFunctionRef(QName(f) # 2)"},
		{".", "ContextItemExpr(.)"},
		{"1.5e", "Literal(1.5 Error(e))"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			res := parseDefault(t, c.src)
			assert.Equal(t, c.want, bodyShape(t, res))
		})
	}
}

func TestEmptyFileIsBareModule(t *testing.T) {
	res := parseDefault(t, "")
	assert.Equal(t, "Module()", shape(res.Tree, res.Tree.Root))
	assert.Zero(t, res.Bag.Len())

	res = parseDefault(t, "  (: nothing :) ")
	assert.Equal(t, "Module()", shape(res.Tree, res.Tree.Root))
	assert.Zero(t, res.Bag.Len())
}

func TestModuleShape(t *testing.T) {
	res := parseDefault(t, "1")
	assert.Equal(t, "Module(MainModule(QueryBody(Literal(1))))", shape(res.Tree, res.Tree.Root))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"1 + 2",
		"  for $x at $i in (1, 2, 3)\n  where $x > 1\n  order by $x descending\n  return $x  ",
		"(: a (: nested :) comment :) 1",
		"1 (: unterminated",
		"'unterminated",
		"declare variable $x := ; declare variable $y := 2; $y",
		"<a x=\"1 &amp; {$v}\">t{{ }}<b/><!--c--><?pi d?><![CDATA[<x>]]></a>",
		"<a><b></a>",
		"1.5e + ]]] ) }",
		"xquery version \"3.1\" encoding \"utf-8\"; Q{urn:x}f(1)",
		"(# ext:p contents #) { 1 }",
		"module namespace m = \"urn:m\"; declare %private function m:f($a as xs:int*) as item()? { $a };",
		"élément/中",
		"& # ^",
	}
	for _, src := range inputs {
		res := parseDefault(t, src)
		assert.Equal(t, src, text(res.Tree), "round trip of %q", src)
		sp := res.Tree.Span(res.Tree.Root)
		assert.Equal(t, uint32(0), sp.Start)
		assert.Equal(t, uint32(len(src)), sp.End)
	}
}

func TestParentLinks(t *testing.T) {
	res := parseDefault(t, "for $x in a/b[1] return <e>{$x}</e>")
	tr := res.Tree
	tr.Walk(tr.Root, func(id cst.NodeID) bool {
		for _, c := range tr.ChildrenOf(id) {
			assert.Equal(t, id, tr.Parent(c))
		}
		return true
	})
	assert.False(t, tr.Parent(tr.Root).IsValid())
}

func TestPrologErrorIsIsolated(t *testing.T) {
	const valid = "declare variable $y := 2; $y"
	alone := parseDefault(t, valid)
	require.Zero(t, alone.Bag.Len(), "%v", alone.Bag.Items())
	aloneTree := alone.Tree
	aloneDecl := shape(aloneTree, find(aloneTree, token.VarDecl))

	for _, broken := range []string{
		"declare variable $x := ; ",
		"import module 'x' at ; ",
		"declare namespace = 'x'; ",
	} {
		t.Run(broken, func(t *testing.T) {
			res := parseDefault(t, broken+valid)
			tr := res.Tree
			assert.Equal(t, broken+valid, text(tr))

			require.Equal(t, 1, count(tr, token.MainModule), shape(tr, tr.Root))
			require.Equal(t, 1, count(tr, token.Prolog))
			assert.Equal(t, 1, count(tr, token.Error), shape(tr, tr.Root))

			decls := tr.Significant(find(tr, token.Prolog))
			require.Len(t, decls, 2, shape(tr, tr.Root))
			brokenSpan := tr.Span(decls[0])
			assert.Equal(t, uint32(len(broken)-1), brokenSpan.End, "the ';' belongs to the broken declaration")
			assert.Equal(t, aloneDecl, shape(tr, decls[1]))
			assert.Equal(t, "VarRef($ QName(y))", bodyShape(t, res))

			require.True(t, res.Bag.HasErrors())
			for _, d := range res.Bag.Items() {
				assert.Less(t, int(d.Code), 3000, "unexpected %s: %s", d.Code.ID(), d.Message)
				assert.LessOrEqual(t, d.Primary.End, brokenSpan.End, "diagnostic outside the broken declaration: %s", d.Message)
			}
		})
	}
}

func TestEmptyErrorNodeBeforeSemicolon(t *testing.T) {
	res := parseDefault(t, "declare variable $x := ; 1")
	tr := res.Tree
	errID := find(tr, token.Error)
	require.True(t, errID.IsValid())
	assert.Empty(t, tr.ChildrenOf(errID))
	assert.True(t, tr.Span(errID).Empty())
	assert.Equal(t, tr.Span(errID).Start, uint32(len("declare variable $x := ")))
	assert.Equal(t, "VarDecl(declare variable $ QName(x) := Error() ;)", shape(tr, find(tr, token.VarDecl)))
}

func TestExtensionGateMessage(t *testing.T) {
	res := parse(t, "delete node $x", preset(t, "w3c/3.1"))
	require.Equal(t, []diag.Code{diag.SemRequiresExtension}, codes(res.Bag))
	assert.Equal(t, "update expressions: requires the 'update' extension", res.Bag.Items()[0].Message)
}

func TestRecoveryWrapsUnexpectedTokens(t *testing.T) {
	res := parseDefault(t, "1 )")
	assert.Contains(t, codes(res.Bag), diag.SynUnexpectedToken)
	assert.Equal(t, 1, count(res.Tree, token.Error))
	assert.Equal(t, "1 )", text(res.Tree))
}

func TestFLWOR(t *testing.T) {
	res := parseDefault(t, "for $x at $i in 1 to 3 let $y := $x where $y gt 1 order by $y return ($x, $i)")
	tr := res.Tree
	assert.Zero(t, res.Bag.Len(), "%v", res.Bag.Items())
	for _, k := range []token.Kind{
		token.FLWORExpr, token.ForClause, token.ForBinding, token.PositionalVar,
		token.LetClause, token.LetBinding, token.WhereClause, token.OrderByClause, token.ReturnClause,
	} {
		assert.True(t, find(tr, k).IsValid(), "missing %s", k)
	}
}

func TestMissingReturn(t *testing.T) {
	res := parseDefault(t, "for $x in 1")
	assert.Contains(t, codes(res.Bag), diag.SynExpectKeyword)
	assert.True(t, find(res.Tree, token.FLWORExpr).IsValid())
}

func TestComments(t *testing.T) {
	res := parseDefault(t, "(: a (: b :) c :) 1")
	assert.Zero(t, res.Bag.Len())
	assert.Equal(t, 1, count(res.Tree, token.Comment))
	assert.Equal(t, "Literal(1)", bodyShape(t, res))

	res = parseDefault(t, "1 (: open")
	assert.Equal(t, []diag.Code{diag.LexUnterminatedComment}, codes(res.Bag))
	assert.Equal(t, "1 (: open", text(res.Tree))
}

func TestPartialExponentReportedOnce(t *testing.T) {
	res := parseDefault(t, "1.5e")
	assert.Equal(t, []diag.Code{diag.LexIncompleteExponent}, codes(res.Bag))
}

func TestDialectGating(t *testing.T) {
	cases := []struct {
		src    string
		preset string
		code   diag.Code
	}{
		{"$a ! $b", "w3c/1.0", diag.SemRequiresVersion},
		{"'a' || 'b'", "w3c/1.0", diag.SemRequiresVersion},
		{"f#1", "w3c/1.0", diag.SemRequiresVersion},
		{"Q{urn:x}a", "w3c/1.0", diag.SemRequiresVersion},
		{"$a => f()", "w3c/3.0", diag.SemRequiresVersion},
		{"declare %private function f() { 1 }; f()", "w3c/1.0", diag.SemRequiresVersion},
		{"insert node <a/> into $x", "w3c/3.1", diag.SemRequiresExtension},
		{"delete node $x", "w3c/3.1", diag.SemRequiresExtension},
		{"copy $c := $x modify delete node $c/a return $c", "w3c/3.1", diag.SemRequiresExtension},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			gated := parse(t, c.src, preset(t, c.preset))
			assert.Contains(t, codes(gated.Bag), c.code)

			open := parse(t, c.src, preset(t, "basex"))
			assert.Zero(t, open.Bag.Len(), "%v", open.Bag.Items())

			assert.Equal(t, shape(open.Tree, open.Tree.Root), shape(gated.Tree, gated.Tree.Root),
				"gating must not change the tree")
		})
	}
}

func TestVersionDecl(t *testing.T) {
	res := parseDefault(t, `xquery version "1.0"; $a ! $b`)
	assert.Equal(t, dialect.V10, res.Version)
	assert.Equal(t, []diag.Code{diag.SemRequiresVersion}, codes(res.Bag))
	assert.True(t, find(res.Tree, token.VersionDecl).IsValid())

	res = parse(t, `xquery version "3.1"; $a => f()`, preset(t, "w3c/1.0"))
	assert.Equal(t, dialect.V31, res.Version)
	assert.Zero(t, res.Bag.Len())

	res = parseDefault(t, `xquery version "4.0"; 1`)
	assert.Equal(t, dialect.V31, res.Version)
	require.Equal(t, []diag.Code{diag.SemUnsupportedVersion}, codes(res.Bag))
	assert.Equal(t, diag.SevWarning, res.Bag.Items()[0].Severity)

	res = parseDefault(t, `xquery version "1.0-ml"; 1`)
	assert.Equal(t, []diag.Code{diag.SemRequiresExtension}, codes(res.Bag))

	res = parse(t, `xquery version "1.0-ml"; 1`, preset(t, "marklogic"))
	assert.Equal(t, dialect.V10, res.Version)
	assert.Zero(t, res.Bag.Len())
}

func TestVersionDeclEncoding(t *testing.T) {
	res := parseDefault(t, `xquery version "3.1" encoding "UTF-8"; 1`)
	assert.Zero(t, res.Bag.Len())
	assert.Equal(t, "UTF-8", res.Encoding)

	res = parseDefault(t, `xquery encoding "no-such-charset"; 1`)
	assert.Equal(t, []diag.Code{diag.SemUnsupportedEncoding}, codes(res.Bag))
	assert.Empty(t, res.Encoding)
}

func TestMultipleMainModules(t *testing.T) {
	res := parseDefault(t, "1; 2")
	assert.Equal(t, []diag.Code{diag.SemRequiresExtension}, codes(res.Bag))
	assert.Equal(t, 2, count(res.Tree, token.MainModule))

	res = parse(t, "1; 2", preset(t, "marklogic"))
	assert.Zero(t, res.Bag.Len())
	assert.Equal(t, 2, count(res.Tree, token.MainModule))
}

func TestLibraryModule(t *testing.T) {
	src := `module namespace m = "urn:m";
import module namespace o = "urn:o" at "o.xqm";
declare namespace x = "urn:x";
declare default function namespace "urn:f";
declare variable $m:v as xs:integer external;
declare function m:f($a as xs:string, $b) as item()* { ($a, $b) };
declare option x:opt "on";`
	res := parseDefault(t, src)
	tr := res.Tree
	assert.Zero(t, res.Bag.Len(), "%v", res.Bag.Items())
	for _, k := range []token.Kind{
		token.LibraryModule, token.ModuleDecl, token.Prolog, token.ModuleImport,
		token.NamespaceDecl, token.DefaultNamespaceDecl, token.VarDecl, token.FunctionDecl,
		token.ParamList, token.Param, token.TypeDeclaration, token.SequenceType, token.OptionDecl,
	} {
		assert.True(t, find(tr, k).IsValid(), "missing %s", k)
	}
	assert.Equal(t, 2, count(tr, token.Param))
	assert.False(t, find(tr, token.QueryBody).IsValid())
}

func TestLibraryModuleRejectsBody(t *testing.T) {
	res := parseDefault(t, `module namespace m = "urn:m"; 1`)
	assert.Contains(t, codes(res.Bag), diag.SynUnexpectedToken)
}

func TestTypeOperators(t *testing.T) {
	res := parseDefault(t, "$x instance of xs:integer+")
	assert.Equal(t, token.InstanceofExpr, res.Tree.Kind(res.Tree.Significant(find(res.Tree, token.QueryBody))[0]))

	res = parseDefault(t, "$x cast as xs:integer?")
	assert.True(t, find(res.Tree, token.CastExpr).IsValid())
	assert.True(t, find(res.Tree, token.SingleType).IsValid())

	res = parseDefault(t, "$x treat as element(a)")
	assert.True(t, find(res.Tree, token.KindTest).IsValid())
	assert.Zero(t, res.Bag.Len())
}

func TestExtensionExpr(t *testing.T) {
	res := parseDefault(t, "(# ext:p some contents #) { 1 }")
	assert.Zero(t, res.Bag.Len(), "%v", res.Bag.Items())
	assert.True(t, find(res.Tree, token.ExtensionExpr).IsValid())
	assert.Equal(t, "QName(ext : p)", shape(res.Tree, find(res.Tree, token.QName)))
}

func TestMissingCloserCarriesInsertFix(t *testing.T) {
	res := parseDefault(t, "(1, 2")
	var found bool
	for _, d := range res.Bag.Items() {
		if d.Code != diag.SynUnclosedParen {
			continue
		}
		found = true
		require.Len(t, d.Fixes, 1)
		fix := d.Fixes[0]
		assert.Equal(t, "insert ')'", fix.Title)
		require.Len(t, fix.Edits, 1)
		assert.Equal(t, ")", fix.Edits[0].NewText)
		assert.Equal(t, uint32(5), fix.Edits[0].Span.Start)
		assert.True(t, fix.Edits[0].Span.Empty())
	}
	assert.True(t, found, "codes: %v", codes(res.Bag))
}
