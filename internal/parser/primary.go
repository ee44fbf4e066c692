package parser

import (
	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/token"
)

// parsePrimary parses a primary expression. It reports nothing when the
// next token cannot start one.
func (p *Parser) parsePrimary() bool {
	tok := p.peek()
	switch tok.Kind {
	case token.IntegerLiteral, token.DecimalLiteral, token.DoubleLiteral, token.StringLiteralStart:
		return p.parseLiteral()
	case token.VariableIndicator:
		p.parseVarRef()
		return true
	case token.ParenOpen:
		p.parseParenthesized()
		return true
	case token.Dot:
		m := p.open()
		p.bump()
		p.close(m, token.ContextItemExpr)
		return true
	case token.LessThan, token.OpenXMLTag:
		p.parseDirElem()
		return true
	case token.XMLCommentStartTag:
		p.parseDirComment()
		return true
	case token.ProcessingInstructionBegin:
		p.parseDirPI()
		return true
	case token.CDataSectionStartTag:
		p.parseCDataSection()
		return true
	case token.PragmaBegin:
		p.parseExtensionExpr()
		return true
	}
	if !tok.Kind.IsNameLike() && tok.Kind != token.BracedURILiteralStart {
		return false
	}
	switch next := p.afterEQName(); {
	case (tok.Kind == token.KwOrdered || tok.Kind == token.KwUnordered) && next == token.BlockOpen:
		m := p.open()
		p.bump()
		p.parseEnclosedExpr()
		if tok.Kind == token.KwOrdered {
			p.close(m, token.OrderedExpr)
		} else {
			p.close(m, token.UnorderedExpr)
		}
		return true
	case next == token.ParenOpen:
		m := p.open()
		p.parseEQName()
		p.parseArgumentList()
		p.close(m, token.FunctionCall)
		return true
	case next == token.FunctionRefOperator:
		m := p.open()
		p.parseEQName()
		op := p.bump()
		p.gate(dialect.FeatureFunctionRef, op.Span)
		if !p.eat(token.IntegerLiteral) {
			p.errorf(diag.SynExpectNumber, "expected arity after '#', got %s", p.peek().Kind.Describe())
		}
		p.close(m, token.NamedFunctionRef)
		return true
	}
	return false
}

// parseVarRef parses `$ EQName`.
func (p *Parser) parseVarRef() {
	m := p.open()
	p.bump() // $
	if !p.parseEQName() {
		p.errorf(diag.SynExpectVarName, "expected variable name, got %s", p.peek().Kind.Describe())
	}
	p.close(m, token.VarRef)
}

// parseParenthesized parses `( Expr? )`.
func (p *Parser) parseParenthesized() {
	m := p.open()
	p.bump() // (
	if !p.at(token.ParenClose) && !p.parseExpr() {
		p.errorf(diag.SynExpectExpression, "expected expression, got %s", p.peek().Kind.Describe())
	}
	p.expect(token.ParenClose, diag.SynUnclosedParen, "')'")
	p.close(m, token.ParenthesizedExpr)
}

// parseArgumentList parses `( (ExprSingle | ?) (, ...)* )`.
func (p *Parser) parseArgumentList() {
	m := p.open()
	p.bump() // (
	if !p.at(token.ParenClose) {
		for {
			if !p.eat(token.Optional) && !p.parseExprSingle() {
				p.errorf(diag.SynExpectExpression, "expected argument, got %s", p.peek().Kind.Describe())
				break
			}
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	p.expect(token.ParenClose, diag.SynUnclosedParen, "')'")
	p.close(m, token.ArgumentList)
}

// parseExtensionExpr parses `Pragma+ { Expr? }`.
func (p *Parser) parseExtensionExpr() {
	m := p.open()
	for p.at(token.PragmaBegin) {
		p.parsePragma()
	}
	p.parseEnclosedExpr()
	p.close(m, token.ExtensionExpr)
}

// parsePragma parses `(# S? EQName (S PragmaContents)? #)`. The lexer
// switches modes on its own, so the tokens are taken raw.
func (p *Parser) parsePragma() {
	m := p.open()
	p.bump() // (#
	hasName := false
	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
		case tok.Kind.IsNameLike() && !hasName:
			q := p.b.Open()
			p.take()
			if p.lx.Peek().Kind == token.QNameSeparator {
				p.take()
				if p.lx.Peek().Kind.IsNameLike() {
					p.take()
				}
			}
			p.b.Close(q, token.QName)
			hasName = true
			continue
		default:
			p.take()
			if tok.Kind != token.PragmaEnd && tok.Kind != token.UnexpectedEndOfBlock {
				continue
			}
		}
		break
	}
	if !hasName {
		p.errorAt(p.lastSpan, diag.SynExpectName, "expected pragma name")
	}
	p.close(m, token.Pragma)
}
