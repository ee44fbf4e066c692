package parser

import (
	"xqfront/internal/cst"
	"xqfront/internal/diag"
	"xqfront/internal/token"
)

var axisKeywords = token.NewSet(
	token.KwChild, token.KwDescendant, token.KwAttribute, token.KwSelf,
	token.KwDescendantOrSelf, token.KwFollowingSibling, token.KwFollowing, token.KwNamespace,
	token.KwParent, token.KwAncestor, token.KwPrecedingSibling, token.KwPreceding, token.KwAncestorOrSelf,
)

var kindTestKeywords = token.NewSet(
	token.KwDocumentNode, token.KwElement, token.KwAttribute, token.KwSchemaElement,
	token.KwSchemaAttribute, token.KwProcessingInstruction, token.KwComment, token.KwText,
	token.KwNamespaceNode, token.KwNode,
)

// stepStart are the tokens besides names that make a leading '/' the root
// of a longer path. '<' is left out so that `/ < 1` stays a comparison.
var stepStart = token.NewSet(
	token.Star, token.AttributeSelector, token.Dot, token.ParentSelector, token.VariableIndicator,
	token.ParenOpen, token.IntegerLiteral, token.DecimalLiteral, token.DoubleLiteral,
	token.StringLiteralStart, token.BracedURILiteralStart,
)

func (p *Parser) canStartStep() bool {
	tok := p.peek()
	return tok.Kind.IsNameLike() || stepStart.Has(tok.Kind)
}

// parsePath parses `/ RelativePathExpr?`, `// RelativePathExpr` or a
// RelativePathExpr. Only absolute paths get a PathExpr node.
func (p *Parser) parsePath() bool {
	switch p.peek().Kind {
	case token.DirectDescendantsPath:
		m := p.open()
		p.bump()
		if p.canStartStep() {
			p.parseRelativePath()
		}
		p.close(m, token.PathExpr)
		return true
	case token.AllDescendantsPath:
		m := p.open()
		p.bump()
		if !p.parseRelativePath() {
			p.errorf(diag.SynExpectStep, "expected path step after '//', got %s", p.peek().Kind.Describe())
		}
		p.close(m, token.PathExpr)
		return true
	}
	return p.parseRelativePath()
}

// parseRelativePath parses `StepExpr ((/ | //) StepExpr)*`. A single step
// gets no RelativePathExpr node.
func (p *Parser) parseRelativePath() bool {
	m := p.open()
	if !p.parseStep() {
		return false
	}
	if !p.at(token.DirectDescendantsPath) && !p.at(token.AllDescendantsPath) {
		return true
	}
	for p.at(token.DirectDescendantsPath) || p.at(token.AllDescendantsPath) {
		p.bump()
		if !p.parseStep() {
			p.errorf(diag.SynExpectStep, "expected path step after %s, got %s", p.lastText(), p.peek().Kind.Describe())
		}
	}
	p.close(m, token.RelativePathExpr)
	return true
}

// parseStep parses an axis step or a postfix expression. Names are node
// tests unless a '(' or '#' makes them a function call or reference.
func (p *Parser) parseStep() bool {
	tok := p.peek()
	m := p.open()
	switch {
	case tok.Kind == token.ParentSelector:
		r := p.open()
		p.bump()
		p.close(r, token.AbbrevReverseStep)
		p.parsePredicates(m, false)
		return true
	case tok.Kind == token.AttributeSelector:
		f := p.open()
		p.bump()
		if !p.parseNodeTest() {
			p.errorf(diag.SynExpectName, "expected node test after '@', got %s", p.peek().Kind.Describe())
		}
		p.close(f, token.AbbrevForwardStep)
		p.parsePredicates(m, false)
		return true
	case tok.Kind == token.Star:
		p.parseNodeTest()
		p.parsePredicates(m, false)
		return true
	case tok.Kind.IsNameLike() || tok.Kind == token.BracedURILiteralStart:
		next := p.afterEQName()
		switch {
		case next == token.AxisSeparator && axisKeywords.Has(tok.Kind):
			a := p.open()
			p.bump()
			p.bump()
			p.close(a, token.Axis)
			if !p.parseNodeTest() {
				p.errorf(diag.SynExpectName, "expected node test after '::', got %s", p.peek().Kind.Describe())
			}
			p.parsePredicates(m, true)
			return true
		case next == token.ParenOpen && kindTestKeywords.Has(tok.Kind):
			p.parseKindTest()
			p.parsePredicates(m, false)
			return true
		case next == token.ParenOpen, next == token.FunctionRefOperator:
		case (tok.Kind == token.KwOrdered || tok.Kind == token.KwUnordered) && next == token.BlockOpen:
		default:
			p.parseNodeTest()
			p.parsePredicates(m, false)
			return true
		}
	}
	return p.parsePostfix()
}

// parsePredicates parses `[Expr]*` after a step that started at m. The step
// gets an AxisStep node when it has predicates or an explicit axis.
func (p *Parser) parsePredicates(m cst.Marker, explicitAxis bool) {
	n := 0
	for p.at(token.PredicateBegin) {
		p.parsePredicate()
		n++
	}
	if n > 0 || explicitAxis {
		p.close(m, token.AxisStep)
	}
}

func (p *Parser) parsePredicate() {
	m := p.open()
	p.bump() // [
	if !p.parseExpr() {
		p.errorf(diag.SynExpectExpression, "expected predicate expression, got %s", p.peek().Kind.Describe())
	}
	p.expect(token.PredicateEnd, diag.SynUnclosedBracket, "']'")
	p.close(m, token.Predicate)
}

// parseNodeTest parses a KindTest or a NameTest (QName or wildcard).
func (p *Parser) parseNodeTest() bool {
	tok := p.peek()
	if kindTestKeywords.Has(tok.Kind) && p.afterEQName() == token.ParenOpen {
		p.parseKindTest()
		return true
	}
	m := p.open()
	switch {
	case tok.Kind == token.Star:
		w := p.open()
		p.bump()
		if p.colonName() {
			p.take()
			p.take()
		}
		p.close(w, token.Wildcard)
	case tok.Kind.IsNameLike() && p.colonStar():
		w := p.open()
		p.bump()
		p.take() // :
		p.take() // *
		p.close(w, token.Wildcard)
	case tok.Kind == token.BracedURILiteralStart:
		w := p.open()
		p.parseBracedURILiteral()
		switch next := p.lx.Peek(); {
		case next.Kind == token.Star:
			p.take()
			p.close(w, token.Wildcard)
		case next.Kind.IsNameLike():
			p.take()
			p.close(w, token.URIQualifiedName)
		default:
			p.errorf(diag.SynExpectName, "expected local name or '*' after braced URI literal")
			p.close(w, token.URIQualifiedName)
		}
	case tok.Kind.IsNameLike():
		p.parseQName()
	default:
		return false
	}
	p.close(m, token.NameTest)
	return true
}

// colonStar reports whether the next name is followed by an adjacent ":*".
func (p *Parser) colonStar() bool {
	tok := p.peek()
	snap := p.lx.Snapshot()
	defer p.lx.Restore(snap)
	p.lx.Next()
	colon := p.lx.Next()
	star := p.lx.Next()
	return colon.Kind == token.QNameSeparator && colon.Span.Start == tok.Span.End &&
		star.Kind == token.Star && star.Span.Start == colon.Span.End
}

// afterEQName returns the kind of the first significant token after the
// EQName at the current position.
func (p *Parser) afterEQName() token.Kind {
	first := p.peek()
	snap := p.lx.Snapshot()
	defer p.lx.Restore(snap)
	p.lx.Next()
	last := first
	if first.Kind == token.BracedURILiteralStart {
		for last.Kind != token.BracedURILiteralEnd && last.Kind != token.UnexpectedEndOfBlock && last.Kind != token.EOF {
			last = p.lx.Next()
		}
		if next := p.lx.Peek(); next.Kind.IsNameLike() && next.Span.Start == last.Span.End {
			p.lx.Next()
		}
	} else if colon := p.lx.Peek(); colon.Kind == token.QNameSeparator && colon.Span.Start == last.Span.End {
		p.lx.Next()
		if local := p.lx.Peek(); local.Kind.IsNameLike() && local.Span.Start == colon.Span.End {
			p.lx.Next()
		} else {
			return token.QNameSeparator
		}
	}
	for {
		tok := p.lx.Next()
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.CommentStartTag:
			for tok.Kind != token.CommentEndTag && tok.Kind != token.UnexpectedEndOfBlock && tok.Kind != token.EOF {
				tok = p.lx.Next()
			}
			continue
		}
		return tok.Kind
	}
}

// parsePostfix parses `PrimaryExpr (Predicate | ArgumentList)*`. A primary
// without postfixes gets no FilterExpr node.
func (p *Parser) parsePostfix() bool {
	m := p.open()
	if !p.parsePrimary() {
		return false
	}
	if !p.at(token.PredicateBegin) && !p.at(token.ParenOpen) {
		return true
	}
	for {
		switch {
		case p.at(token.PredicateBegin):
			p.parsePredicate()
			continue
		case p.at(token.ParenOpen):
			p.parseArgumentList()
			continue
		}
		break
	}
	p.close(m, token.FilterExpr)
	return true
}
