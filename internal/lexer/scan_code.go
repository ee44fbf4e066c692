package lexer

import (
	"xqfront/internal/diag"
	"xqfront/internal/token"
)

func (lx *Lexer) scanWhitespace(start Mark) token.Token {
	for isXMLSpace(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

func (lx *Lexer) scanCode() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch {
	case isXMLSpace(ch):
		return lx.scanWhitespace(start)
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case ch == '"':
		lx.cursor.Bump()
		lx.push(ModeStringQuot)
		return lx.emit(token.StringLiteralStart, start)
	case ch == '\'':
		lx.cursor.Bump()
		lx.push(ModeStringApos)
		return lx.emit(token.StringLiteralStart, start)
	case ch == '&':
		return lx.scanEntityRef(false)
	case ch == 'Q' && lx.cursor.PeekAt(1) == '{':
		lx.cursor.Advance(2)
		lx.push(ModeBracedURI)
		return lx.emit(token.BracedURILiteralStart, start)
	case lx.atNameStart():
		return lx.scanName(true)
	}
	return lx.scanPunct()
}

type punct struct {
	text string
	kind token.Kind
	mode Mode // pushed after the token when non-zero
}

// codePunct is ordered longest match first.
var codePunct = []punct{
	{"<![CDATA[", token.CDataSectionStartTag, ModeCDATA},
	{"<!--", token.XMLCommentStartTag, ModeXMLComment},
	{"(:", token.CommentStartTag, ModeComment},
	{"(#", token.PragmaBegin, ModePragma},
	{"<?", token.ProcessingInstructionBegin, ModePI},
	{":)", token.CommentEndTag, 0},
	{"!=", token.NotEqual, 0},
	{"::", token.AxisSeparator, 0},
	{":=", token.AssignEqual, 0},
	{"<=", token.LessThanOrEqual, 0},
	{">=", token.GreaterThanOrEqual, 0},
	{"<<", token.NodeBefore, 0},
	{">>", token.NodeAfter, 0},
	{"//", token.AllDescendantsPath, 0},
	{"..", token.ParentSelector, 0},
	{"||", token.Concatenation, 0},
	{"=>", token.ArrowOperator, 0},
	{"(", token.ParenOpen, 0},
	{")", token.ParenClose, 0},
	{"$", token.VariableIndicator, 0},
	{"*", token.Star, 0},
	{",", token.Comma, 0},
	{"-", token.Minus, 0},
	{".", token.Dot, 0},
	{";", token.Separator, 0},
	{"+", token.Plus, 0},
	{"=", token.Equal, 0},
	{"{", token.BlockOpen, 0},
	{"}", token.BlockClose, 0},
	{"<", token.LessThan, 0},
	{">", token.GreaterThan, 0},
	{"|", token.UnionOperator, 0},
	{"?", token.Optional, 0},
	{"/", token.DirectDescendantsPath, 0},
	{"@", token.AttributeSelector, 0},
	{"[", token.PredicateBegin, 0},
	{"]", token.PredicateEnd, 0},
	{":", token.QNameSeparator, 0},
	{"!", token.MapOperator, 0},
	{"#", token.FunctionRefOperator, 0},
	{"%", token.AnnotationIndicator, 0},
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	for _, p := range codePunct {
		if !lx.cursor.EatString(p.text) {
			continue
		}
		tok := lx.emit(p.kind, start)
		if p.mode != ModeCode {
			lx.push(p.mode)
		}
		if p.kind == token.CommentEndTag {
			lx.report(tok, diag.LexUnmatchedCommentEnd, "':)' without a matching '(:'")
		}
		return tok
	}
	return lx.invalid(start)
}
