package parser

import (
	"fmt"

	"xqfront/internal/diag"
	"xqfront/internal/lexer"
	"xqfront/internal/source"
	"xqfront/internal/token"
)

// parseDirElem parses a direct element constructor. The lexer does not know
// where a tag starts, so the parser switches its modes:
// StartTag for the tag, ElementContent after '>', EndTag after '</'.
func (p *Parser) parseDirElem() {
	p.peek()
	p.lx.PushMode(lexer.ModeStartTag)
	m := p.b.Open()
	open := p.take() // <

	var name string
	var nameSpan source.Span
	if p.lx.Peek().Kind.IsNameLike() {
		name, nameSpan = p.parseTagName()
	} else {
		p.errorf(diag.SynExpectName, "expected element name after '<', got %s", p.peek().Kind.Describe())
	}

	al := p.open()
	attrs := 0
	for {
		tok := p.peek()
		if tok.Kind.IsNameLike() {
			p.parseDirAttribute()
			attrs++
			continue
		}
		if tok.Kind == token.EndXMLTag || tok.Kind == token.SelfClosingXMLTag || tok.Kind == token.EOF {
			break
		}
		p.unexpected("attribute, '>' or '/>'")
	}
	if attrs > 0 {
		p.close(al, token.DirAttributeList)
	}

	switch p.peek().Kind {
	case token.SelfClosingXMLTag:
		p.bump()
		p.lx.PopMode()
	case token.EndXMLTag:
		p.bump()
		p.lx.ReplaceMode(lexer.ModeElementContent)
		p.parseElemContent()
		p.parseEndTag(open.Span, name, nameSpan)
	default:
		p.errorAt(open.Span, diag.SynUnterminatedElement, fmt.Sprintf("unterminated start tag <%s>", name))
		p.lx.PopMode()
	}
	p.b.Close(m, token.DirElemConstructor)
}

// parseTagName parses an adjacent QName inside a tag and returns its text.
func (p *Parser) parseTagName() (string, source.Span) {
	m := p.b.Open()
	first := p.take()
	text, sp := first.Text, first.Span
	if p.colonName() {
		p.take()
		local := p.take()
		text += ":" + local.Text
		sp = sp.Cover(local.Span)
	}
	p.b.Close(m, token.QName)
	return text, sp
}

// parseDirAttribute parses `QName S? = S? AttributeValue`.
func (p *Parser) parseDirAttribute() {
	m := p.open()
	p.parseTagName()
	if p.expect(token.XMLEqual, diag.SynExpectAttributeValue, "'='") {
		if p.at(token.XMLAttributeValueStart) {
			p.parseAttrValue()
		} else {
			p.errorf(diag.SynExpectAttributeValue, "expected quoted attribute value, got %s", p.peek().Kind.Describe())
		}
	}
	p.close(m, token.DirAttribute)
}

func (p *Parser) parseAttrValue() {
	m := p.open()
	p.bump() // opening quote; the lexer enters the value mode
loop:
	for {
		switch tok := p.lx.Peek(); tok.Kind {
		case token.XMLAttributeValueEnd, token.UnexpectedEndOfBlock:
			p.take()
			break loop
		case token.EOF:
			break loop
		case token.BlockOpen:
			p.parseMarkupEnclosedExpr()
		default:
			p.take()
		}
	}
	p.close(m, token.DirAttributeValue)
}

// parseElemContent parses everything between the start and end tag.
func (p *Parser) parseElemContent() {
	m := p.b.Open()
loop:
	for {
		switch tok := p.lx.Peek(); tok.Kind {
		case token.CloseXMLTag, token.EOF:
			break loop
		case token.OpenXMLTag:
			p.parseDirElem()
		case token.XMLCommentStartTag:
			p.parseDirComment()
		case token.ProcessingInstructionBegin:
			p.parseDirPI()
		case token.CDataSectionStartTag:
			p.parseCDataSection()
		case token.BlockOpen:
			p.parseMarkupEnclosedExpr()
		default:
			p.take()
		}
	}
	if p.b.Pending(m) > 0 {
		p.b.Close(m, token.DirElemContent)
	}
}

// parseMarkupEnclosedExpr parses `{ Expr? }` inside element content or an
// attribute value, lexing the expression in code mode.
func (p *Parser) parseMarkupEnclosedExpr() {
	m := p.b.Open()
	p.take() // {
	p.lx.PushMode(lexer.ModeCode)
	if !p.at(token.BlockClose) && !p.parseExpr() {
		p.errorf(diag.SynExpectExpression, "expected expression, got %s", p.peek().Kind.Describe())
		p.recover(token.NewSet(token.BlockClose), "unexpected input in enclosed expression")
	}
	p.expect(token.BlockClose, diag.SynUnclosedBrace, "'}'")
	p.lx.PopMode()
	p.b.Close(m, token.EnclosedExpr)
}

// parseEndTag parses `</ QName S? >` and checks it against the start tag.
func (p *Parser) parseEndTag(open source.Span, name string, nameSpan source.Span) {
	if p.lx.Peek().Kind != token.CloseXMLTag {
		diag.ReportError(p.rep, diag.SynUnterminatedElement, open,
			fmt.Sprintf("element <%s> has no end tag", name)).Emit()
		p.lx.PopMode()
		return
	}
	p.take() // </
	p.lx.ReplaceMode(lexer.ModeEndTag)
	if p.lx.Peek().Kind.IsNameLike() {
		end, endSpan := p.parseTagName()
		if end != name {
			diag.ReportError(p.rep, diag.SynTagMismatch, endSpan,
				fmt.Sprintf("end tag </%s> does not match start tag <%s>", end, name)).
				WithNote(nameSpan, "start tag is here").
				Emit()
		}
	} else {
		p.errorf(diag.SynExpectName, "expected element name after '</', got %s", p.peek().Kind.Describe())
	}
	for !p.at(token.EndXMLTag) && !p.at(token.EOF) {
		p.unexpected("'>'")
	}
	p.expect(token.EndXMLTag, diag.SynUnterminatedElement, "'>'")
	p.lx.PopMode()
}

// parseDirComment parses `<!-- ... -->`.
func (p *Parser) parseDirComment() {
	m := p.open()
	p.bump()
	p.takeUntil(token.XMLCommentEndTag)
	p.close(m, token.DirCommentConstructor)
}

// parseDirPI parses `<?target contents?>`.
func (p *Parser) parseDirPI() {
	m := p.open()
	p.bump()
	if !p.lx.Peek().Kind.IsNameLike() {
		p.errorAt(source.At(p.file.ID, p.lastSpan.End), diag.SynExpectName, "expected processing instruction target")
	}
	p.takeUntil(token.ProcessingInstructionEnd)
	p.close(m, token.DirPIConstructor)
}

// parseCDataSection parses `<![CDATA[ ... ]]>`.
func (p *Parser) parseCDataSection() {
	m := p.open()
	p.bump()
	p.takeUntil(token.CDataSectionEndTag)
	p.close(m, token.CDataSection)
}
