package parser

import (
	"xqfront/internal/diag"
	"xqfront/internal/token"
)

var occurrenceIndicators = token.NewSet(token.Optional, token.Star, token.Plus)

// parseTypeDeclaration parses `(as SequenceType)?`.
func (p *Parser) parseTypeDeclaration() {
	if !p.at(token.KwAs) {
		return
	}
	m := p.open()
	p.bump()
	if !p.parseSequenceType() {
		p.errorf(diag.SynExpectType, "expected type after 'as', got %s", p.peek().Kind.Describe())
	}
	p.close(m, token.TypeDeclaration)
}

// parseSequenceType parses `empty-sequence()` or `ItemType OccurrenceIndicator?`.
func (p *Parser) parseSequenceType() bool {
	m := p.open()
	if p.atSeq(token.KwEmptySequence, token.ParenOpen) {
		p.bump()
		p.bump()
		p.expect(token.ParenClose, diag.SynUnclosedParen, "')'")
		p.close(m, token.SequenceType)
		return true
	}
	if !p.parseItemType() {
		return false
	}
	if p.atSet(occurrenceIndicators) {
		p.bump()
	}
	p.close(m, token.SequenceType)
	return true
}

// parseItemType parses a KindTest, `item()` or an atomic type name.
func (p *Parser) parseItemType() bool {
	tok := p.peek()
	switch {
	case kindTestKeywords.Has(tok.Kind) && p.afterEQName() == token.ParenOpen:
		p.parseKindTest()
		return true
	case tok.Kind == token.KwItem && p.afterEQName() == token.ParenOpen:
		m := p.open()
		p.bump()
		p.bump()
		p.expect(token.ParenClose, diag.SynUnclosedParen, "')'")
		p.close(m, token.AnyItemType)
		return true
	}
	return p.parseEQName()
}

// parseSingleType parses `EQName ?`.
func (p *Parser) parseSingleType() bool {
	m := p.open()
	if !p.parseEQName() {
		return false
	}
	p.eat(token.Optional)
	p.close(m, token.SingleType)
	return true
}

// parseKindTest parses `keyword ( args )`. The arguments are names,
// wildcards, string literals and nested kind tests.
func (p *Parser) parseKindTest() {
	m := p.open()
	p.bump() // keyword
	p.bump() // (
loop:
	for {
		tok := p.peek()
		switch {
		case kindTestKeywords.Has(tok.Kind) && p.afterEQName() == token.ParenOpen:
			p.parseKindTest()
		case tok.Kind.IsNameLike() || tok.Kind == token.BracedURILiteralStart:
			p.parseEQName()
		case tok.Kind == token.StringLiteralStart:
			p.parseStringLiteral()
		case tok.Kind == token.Star || tok.Kind == token.Comma || tok.Kind == token.Optional:
			p.bump()
		default:
			break loop
		}
	}
	p.expect(token.ParenClose, diag.SynUnclosedParen, "')'")
	p.close(m, token.KindTest)
}
