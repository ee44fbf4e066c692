package parser

import (
	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/token"
)

// exprStart are the tokens besides names that can begin an expression.
var exprStart = token.NewSet(
	token.IntegerLiteral, token.DecimalLiteral, token.DoubleLiteral, token.StringLiteralStart,
	token.VariableIndicator, token.ParenOpen, token.Dot, token.ParentSelector, token.Star,
	token.AttributeSelector, token.DirectDescendantsPath, token.AllDescendantsPath,
	token.Minus, token.Plus, token.BracedURILiteralStart, token.LessThan,
	token.XMLCommentStartTag, token.ProcessingInstructionBegin, token.CDataSectionStartTag,
	token.PragmaBegin,
)

func (p *Parser) canStartExpr() bool {
	tok := p.peek()
	return tok.Kind.IsNameLike() || exprStart.Has(tok.Kind)
}

// parseExpr parses `ExprSingle (, ExprSingle)*`. A single operand gets no
// Expr node.
func (p *Parser) parseExpr() bool {
	m := p.open()
	if !p.parseExprSingle() {
		return false
	}
	if !p.at(token.Comma) {
		return true
	}
	for p.eat(token.Comma) {
		p.expectExprSingle()
	}
	p.close(m, token.Expr)
	return true
}

func (p *Parser) expectExprSingle() bool {
	if p.parseExprSingle() {
		return true
	}
	p.errorf(diag.SynExpectExpression, "expected expression, got %s", p.peek().Kind.Describe())
	return false
}

// parseExprSingle dispatches keyword-led expressions on the token after the
// keyword, because XQuery keywords are also valid names.
func (p *Parser) parseExprSingle() bool {
	next := func() token.Kind { return p.peekAt(1).Kind }
	switch p.peek().Kind {
	case token.KwFor, token.KwLet:
		if n := next(); n == token.VariableIndicator {
			p.parseFLWOR()
			return true
		}
	case token.KwSome, token.KwEvery:
		if n := next(); n == token.VariableIndicator {
			p.parseQuantified()
			return true
		}
	case token.KwIf:
		if n := next(); n == token.ParenOpen {
			p.parseIf()
			return true
		}
	case token.KwInsert, token.KwDelete:
		if n := next(); n == token.KwNode || n == token.KwNodes {
			p.parseInsertDelete()
			return true
		}
	case token.KwReplace:
		if n := next(); n == token.KwNode || n == token.KwValue {
			p.parseReplace()
			return true
		}
	case token.KwRename:
		if n := next(); n == token.KwNode {
			p.parseRename()
			return true
		}
	case token.KwCopy:
		if n := next(); n == token.VariableIndicator {
			p.parseCopyModify()
			return true
		}
	}
	return p.parseOrExpr()
}

// parseEnclosedExpr parses `{ Expr? }`.
func (p *Parser) parseEnclosedExpr() bool {
	m := p.open()
	if !p.expect(token.BlockOpen, diag.SynUnexpectedToken, "'{'") {
		return false
	}
	if !p.at(token.BlockClose) && !p.parseExpr() {
		p.errorf(diag.SynExpectExpression, "expected expression, got %s", p.peek().Kind.Describe())
		p.recover(token.NewSet(token.BlockClose, token.Separator), "unexpected input in enclosed expression")
	}
	p.expect(token.BlockClose, diag.SynUnclosedBrace, "'}'")
	p.close(m, token.EnclosedExpr)
	return true
}

func (p *Parser) parseFLWOR() {
	m := p.open()
	for {
		switch p.peek().Kind {
		case token.KwFor:
			p.parseForClause()
			continue
		case token.KwLet:
			p.parseLetClause()
			continue
		case token.KwWhere:
			c := p.open()
			p.bump()
			p.expectExprSingle()
			p.close(c, token.WhereClause)
			continue
		case token.KwOrder, token.KwStable:
			p.parseOrderBy()
			continue
		}
		break
	}
	r := p.open()
	if p.expect(token.KwReturn, diag.SynExpectKeyword, "'return'") {
		p.expectExprSingle()
		p.close(r, token.ReturnClause)
	}
	p.close(m, token.FLWORExpr)
}

// parseForClause parses `for ForBinding (, ForBinding)*` where ForBinding is
// `$ VarName TypeDeclaration? PositionalVar? in ExprSingle`.
func (p *Parser) parseForClause() {
	m := p.open()
	p.bump() // for
	for {
		b := p.open()
		if p.expectVarName() {
			p.parseTypeDeclaration()
			if p.at(token.KwAt) {
				pv := p.open()
				p.bump()
				p.expectVarName()
				p.close(pv, token.PositionalVar)
			}
			if p.expect(token.KwIn, diag.SynExpectKeyword, "'in'") {
				p.expectExprSingle()
			}
		}
		p.close(b, token.ForBinding)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.close(m, token.ForClause)
}

// parseLetClause parses `let LetBinding (, LetBinding)*` where LetBinding is
// `$ VarName TypeDeclaration? := ExprSingle`.
func (p *Parser) parseLetClause() {
	m := p.open()
	p.bump() // let
	for {
		b := p.open()
		if p.expectVarName() {
			p.parseTypeDeclaration()
			if p.expect(token.AssignEqual, diag.SynExpectAssign, "':='") {
				p.expectExprSingle()
			}
		}
		p.close(b, token.LetBinding)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.close(m, token.LetClause)
}

// parseOrderBy parses `stable? order by OrderSpec (, OrderSpec)*`.
func (p *Parser) parseOrderBy() {
	m := p.open()
	p.eat(token.KwStable)
	if p.expect(token.KwOrder, diag.SynExpectKeyword, "'order'") &&
		p.expect(token.KwBy, diag.SynExpectKeyword, "'by'") {
		for {
			s := p.open()
			p.expectExprSingle()
			if !p.eat(token.KwAscending) {
				p.eat(token.KwDescending)
			}
			if p.eat(token.KwEmpty) {
				p.expectOneOf("'greatest' or 'least'", token.KwGreatest, token.KwLeast)
			}
			if p.eat(token.KwCollation) {
				p.expectURILiteral()
			}
			p.close(s, token.OrderSpec)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	p.close(m, token.OrderByClause)
}

// parseQuantified parses `(some | every) QuantifiedBinding (, ...)* satisfies ExprSingle`.
func (p *Parser) parseQuantified() {
	m := p.open()
	p.bump()
	for {
		b := p.open()
		if p.expectVarName() {
			p.parseTypeDeclaration()
			if p.expect(token.KwIn, diag.SynExpectKeyword, "'in'") {
				p.expectExprSingle()
			}
		}
		p.close(b, token.QuantifiedBinding)
		if !p.eat(token.Comma) {
			break
		}
	}
	if p.expect(token.KwSatisfies, diag.SynExpectKeyword, "'satisfies'") {
		p.expectExprSingle()
	}
	p.close(m, token.QuantifiedExpr)
}

// parseIf parses `if ( Expr ) then ExprSingle else ExprSingle`.
func (p *Parser) parseIf() {
	m := p.open()
	p.bump() // if
	p.bump() // (
	if !p.parseExpr() {
		p.errorf(diag.SynExpectExpression, "expected condition, got %s", p.peek().Kind.Describe())
	}
	if p.expect(token.ParenClose, diag.SynUnclosedParen, "')'") &&
		p.expect(token.KwThen, diag.SynExpectKeyword, "'then'") &&
		p.expectExprSingle() &&
		p.expect(token.KwElse, diag.SynExpectKeyword, "'else'") {
		p.expectExprSingle()
	}
	p.close(m, token.IfExpr)
}

// parseInsertDelete parses
// `insert (node|nodes) ExprSingle ((as (first|last))? into | after | before) ExprSingle`
// and `delete (node|nodes) ExprSingle`.
func (p *Parser) parseInsertDelete() {
	m := p.open()
	kw := p.bump()
	p.gate(dialect.FeatureUpdate, kw.Span)
	p.bump() // node | nodes
	p.expectExprSingle()
	if kw.Kind == token.KwDelete {
		p.close(m, token.DeleteExpr)
		return
	}
	if p.eat(token.KwAs) {
		p.expectOneOf("'first' or 'last'", token.KwFirst, token.KwLast)
		p.expect(token.KwInto, diag.SynExpectKeyword, "'into'")
	} else {
		p.expectOneOf("'into', 'after' or 'before'", token.KwInto, token.KwAfter, token.KwBefore)
	}
	p.expectExprSingle()
	p.close(m, token.InsertExpr)
}

// parseReplace parses `replace (value of)? node ExprSingle with ExprSingle`.
func (p *Parser) parseReplace() {
	m := p.open()
	kw := p.bump()
	p.gate(dialect.FeatureUpdate, kw.Span)
	if p.eat(token.KwValue) {
		p.expect(token.KwOf, diag.SynExpectKeyword, "'of'")
	}
	if p.expect(token.KwNode, diag.SynExpectKeyword, "'node'") &&
		p.expectExprSingle() &&
		p.expect(token.KwWith, diag.SynExpectKeyword, "'with'") {
		p.expectExprSingle()
	}
	p.close(m, token.ReplaceExpr)
}

// parseRename parses `rename node ExprSingle as ExprSingle`.
func (p *Parser) parseRename() {
	m := p.open()
	kw := p.bump()
	p.gate(dialect.FeatureUpdate, kw.Span)
	p.bump() // node
	if p.expectExprSingle() && p.expect(token.KwAs, diag.SynExpectKeyword, "'as'") {
		n := p.open()
		if p.expectExprSingle() {
			p.close(n, token.NewNameExpr)
		}
	}
	p.close(m, token.RenameExpr)
}

// parseCopyModify parses
// `copy $ VarName := ExprSingle (, ...)* modify ExprSingle return ExprSingle`.
func (p *Parser) parseCopyModify() {
	m := p.open()
	kw := p.bump()
	p.gate(dialect.FeatureUpdate, kw.Span)
	for {
		b := p.open()
		if p.expectVarName() && p.expect(token.AssignEqual, diag.SynExpectAssign, "':='") {
			p.expectExprSingle()
		}
		p.close(b, token.CopyBinding)
		if !p.eat(token.Comma) {
			break
		}
	}
	if p.expect(token.KwModify, diag.SynExpectKeyword, "'modify'") &&
		p.expectExprSingle() &&
		p.expect(token.KwReturn, diag.SynExpectKeyword, "'return'") {
		p.expectExprSingle()
	}
	p.close(m, token.CopyModifyExpr)
}
