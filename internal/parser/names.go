package parser

import (
	"strings"

	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/lexer"
	"xqfront/internal/token"
)

// parseQName parses `NCName (: NCName)?` into a QName node. The parts must
// be adjacent; whitespace around ':' is not part of a QName.
func (p *Parser) parseQName() bool {
	if !p.atName() {
		return false
	}
	m := p.open()
	p.bump()
	if p.colonName() {
		p.take() // :
		p.take() // local part
	}
	p.close(m, token.QName)
	return true
}

// colonName reports whether the raw tokens after the last consumed one are
// an adjacent ':' and name.
func (p *Parser) colonName() bool {
	snap := p.lx.Snapshot()
	defer p.lx.Restore(snap)
	colon := p.lx.Next()
	if colon.Kind != token.QNameSeparator || colon.Span.Start != p.lastSpan.End {
		return false
	}
	next := p.lx.Next()
	return next.Kind.IsNameLike() && next.Span.Start == colon.Span.End
}

// parseEQName parses a QName or a URIQualifiedName `Q{uri}local`.
func (p *Parser) parseEQName() bool {
	if !p.at(token.BracedURILiteralStart) {
		return p.parseQName()
	}
	m := p.open()
	p.parseBracedURILiteral()
	if p.lx.Peek().Kind.IsNameLike() {
		p.take()
	} else {
		p.errorf(diag.SynExpectName, "expected local name after braced URI literal")
	}
	p.close(m, token.URIQualifiedName)
	return true
}

// parseBracedURILiteral parses `Q{ ... }`.
func (p *Parser) parseBracedURILiteral() {
	m := p.open()
	tok := p.bump()
	p.gate(dialect.FeatureBracedURI, tok.Span)
	p.takeUntil(token.BracedURILiteralEnd)
	p.close(m, token.BracedURILiteral)
}

// takeUntil appends raw tokens up to and including end. It also stops at
// UnexpectedEndOfBlock or EOF, which the lexer emits for unterminated
// constructs.
func (p *Parser) takeUntil(end ...token.Kind) token.Token {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			return tok
		}
		p.take()
		if tok.Kind == token.UnexpectedEndOfBlock {
			return tok
		}
		for _, k := range end {
			if tok.Kind == k {
				return tok
			}
		}
	}
}

func (p *Parser) expectNCName() bool {
	if p.atName() {
		p.bump()
		return true
	}
	p.errorf(diag.SynExpectName, "expected name, got %s", p.peek().Kind.Describe())
	return false
}

// expectVarName parses `$ EQName` inside a binding node.
func (p *Parser) expectVarName() bool {
	if !p.eat(token.VariableIndicator) {
		p.errorf(diag.SynExpectVarName, "expected '$', got %s", p.peek().Kind.Describe())
		return false
	}
	if !p.parseEQName() {
		p.errorf(diag.SynExpectVarName, "expected variable name, got %s", p.peek().Kind.Describe())
		return false
	}
	return true
}

// parseStringLiteral parses a string literal and returns its value.
func (p *Parser) parseStringLiteral() (string, bool) {
	if !p.at(token.StringLiteralStart) {
		return "", false
	}
	m := p.open()
	p.bump()
	var sb strings.Builder
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.StringLiteralEnd || tok.Kind == token.UnexpectedEndOfBlock || tok.Kind == token.EOF {
			break
		}
		sb.WriteString(lexer.FragmentValue(p.take()))
	}
	if !p.at(token.EOF) {
		p.take()
	}
	p.close(m, token.StringLiteral)
	return sb.String(), true
}

func (p *Parser) expectURILiteral() bool {
	m := p.open()
	if _, ok := p.parseStringLiteral(); !ok {
		p.errorf(diag.SynExpectStringLiteral, "expected URI string literal, got %s", p.peek().Kind.Describe())
		return false
	}
	p.close(m, token.URILiteral)
	return true
}

// parseLiteral parses a numeric or string literal.
func (p *Parser) parseLiteral() bool {
	switch tok := p.peek(); {
	case token.NumericLiterals.Has(tok.Kind):
		m := p.open()
		p.bump()
		if p.lx.Peek().Kind == token.PartialDoubleLiteralExponent {
			e := p.b.Open()
			p.take()
			p.b.CloseError(e, "incomplete exponent")
		}
		p.close(m, token.Literal)
		return true
	case tok.Kind == token.StringLiteralStart:
		_, ok := p.parseStringLiteral()
		return ok
	}
	return false
}
