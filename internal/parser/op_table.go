package parser

import (
	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/token"
)

type binaryLevel struct {
	kind token.Kind
	ops  token.Set
	// single levels take at most one operator: `a = b = c` does not chain.
	single bool
}

// binaryLevels lists the binary operator levels from loosest to tightest.
var binaryLevels = []binaryLevel{
	{kind: token.OrExpr, ops: token.NewSet(token.KwOr)},
	{kind: token.AndExpr, ops: token.NewSet(token.KwAnd)},
	{kind: token.ComparisonExpr, single: true, ops: token.NewSet(
		token.Equal, token.NotEqual, token.LessThan, token.LessThanOrEqual,
		token.GreaterThan, token.GreaterThanOrEqual,
		token.KwEq, token.KwNe, token.KwLt, token.KwLe, token.KwGt, token.KwGe,
		token.KwIs, token.NodeBefore, token.NodeAfter,
	)},
	{kind: token.StringConcatExpr, ops: token.NewSet(token.Concatenation)},
	{kind: token.RangeExpr, single: true, ops: token.NewSet(token.KwTo)},
	{kind: token.AdditiveExpr, ops: token.NewSet(token.Plus, token.Minus)},
	{kind: token.MultiplicativeExpr, ops: token.NewSet(token.Star, token.KwDiv, token.KwIDiv, token.KwMod)},
	{kind: token.UnionExpr, ops: token.NewSet(token.KwUnion, token.UnionOperator)},
	{kind: token.IntersectExceptExpr, ops: token.NewSet(token.KwIntersect, token.KwExcept)},
}

// operatorFeature gates operators that newer versions introduced.
var operatorFeature = map[token.Kind]dialect.Feature{
	token.Concatenation: dialect.FeatureStringConcat,
	token.MapOperator:   dialect.FeatureMapOperator,
	token.ArrowOperator: dialect.FeatureArrow,
}

func (p *Parser) parseOrExpr() bool { return p.parseBinary(0) }

// parseBinary parses one level and folds its operators to the left.
// A miss on the left operand is not an error: the caller tries something else.
func (p *Parser) parseBinary(level int) bool {
	if level == len(binaryLevels) {
		return p.parseInstanceof()
	}
	l := binaryLevels[level]
	m := p.open()
	if !p.parseBinary(level + 1) {
		return false
	}
	for p.atSet(l.ops) {
		p.operator()
		if !p.parseBinary(level + 1) {
			p.errorf(diag.SynExpectExpression, "expected expression after %s, got %s", p.lastText(), p.peek().Kind.Describe())
		}
		p.close(m, l.kind)
		if l.single {
			break
		}
	}
	return true
}

func (p *Parser) operator() {
	tok := p.bump()
	if f, ok := operatorFeature[tok.Kind]; ok {
		p.gate(f, tok.Span)
	}
}

// parseTypeOperator parses `next (kw1 kw2 type)?`. Type operators never chain.
func (p *Parser) parseTypeOperator(kind, kw1, kw2 token.Kind, next, typ func() bool) bool {
	m := p.open()
	if !next() {
		return false
	}
	if p.atSeq(kw1, kw2) {
		p.bump()
		p.bump()
		if !typ() {
			p.errorf(diag.SynExpectType, "expected type, got %s", p.peek().Kind.Describe())
		}
		p.close(m, kind)
	}
	return true
}

func (p *Parser) parseInstanceof() bool {
	return p.parseTypeOperator(token.InstanceofExpr, token.KwInstance, token.KwOf, p.parseTreat, p.parseSequenceType)
}

func (p *Parser) parseTreat() bool {
	return p.parseTypeOperator(token.TreatExpr, token.KwTreat, token.KwAs, p.parseCastable, p.parseSequenceType)
}

func (p *Parser) parseCastable() bool {
	return p.parseTypeOperator(token.CastableExpr, token.KwCastable, token.KwAs, p.parseCast, p.parseSingleType)
}

func (p *Parser) parseCast() bool {
	return p.parseTypeOperator(token.CastExpr, token.KwCast, token.KwAs, p.parseArrow, p.parseSingleType)
}

// parseArrow parses `UnaryExpr (=> ArrowFunctionSpecifier ArgumentList)*`.
func (p *Parser) parseArrow() bool {
	m := p.open()
	if !p.parseUnary() {
		return false
	}
	for p.at(token.ArrowOperator) {
		p.operator()
		switch {
		case p.at(token.VariableIndicator):
			p.parseVarRef()
		case p.at(token.ParenOpen):
			p.parseParenthesized()
		case !p.parseEQName():
			p.errorf(diag.SynExpectName, "expected function name after '=>', got %s", p.peek().Kind.Describe())
		}
		if p.at(token.ParenOpen) {
			p.parseArgumentList()
		} else {
			p.errorf(diag.SynUnexpectedToken, "expected argument list, got %s", p.peek().Kind.Describe())
		}
		p.close(m, token.ArrowExpr)
	}
	return true
}

// parseUnary parses `(- | +)* ValueExpr`.
func (p *Parser) parseUnary() bool {
	if !p.at(token.Minus) && !p.at(token.Plus) {
		return p.parseValue()
	}
	m := p.open()
	for p.eat(token.Minus) || p.eat(token.Plus) {
	}
	if !p.parseValue() {
		p.errorf(diag.SynExpectExpression, "expected expression after unary %s, got %s", p.lastText(), p.peek().Kind.Describe())
	}
	p.close(m, token.UnaryExpr)
	return true
}

func (p *Parser) parseValue() bool {
	if p.at(token.PragmaBegin) {
		p.parseExtensionExpr()
		return true
	}
	return p.parseSimpleMap()
}

// parseSimpleMap parses `PathExpr (! PathExpr)*`.
func (p *Parser) parseSimpleMap() bool {
	m := p.open()
	if !p.parsePath() {
		return false
	}
	for p.at(token.MapOperator) {
		p.operator()
		if !p.parsePath() {
			p.errorf(diag.SynExpectExpression, "expected expression after '!', got %s", p.peek().Kind.Describe())
		}
		p.close(m, token.SimpleMapExpr)
	}
	return true
}
