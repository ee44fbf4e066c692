package view

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"xqfront/internal/lexer"
	"xqfront/internal/token"
)

// IntegerLiteral is an exact base-10 integer.
type IntegerLiteral struct{ node }

// Value returns nil only for text the lexer would not produce.
func (l IntegerLiteral) Value() *big.Int {
	v, ok := new(big.Int).SetString(l.Text(), 10)
	if !ok {
		return nil
	}
	return v
}

func (l IntegerLiteral) StringValue() string {
	if v := l.Value(); v != nil {
		return v.String()
	}
	return l.Text()
}

// DecimalLiteral is an arbitrary-precision fixed-point number.
type DecimalLiteral struct{ node }

func (l DecimalLiteral) Value() (decimal.Decimal, error) {
	return decimal.NewFromString(l.Text())
}

func (l DecimalLiteral) StringValue() string {
	v, err := l.Value()
	if err != nil {
		return l.Text()
	}
	return v.String()
}

// DoubleLiteral is an IEEE-754 binary64 number. Values out of range
// become ±Inf, as XQuery requires.
type DoubleLiteral struct{ node }

func (l DoubleLiteral) Value() float64 {
	v, _ := strconv.ParseFloat(l.Text(), 64) //nolint:errcheck // ErrRange still yields ±Inf
	return v
}

func (l DoubleLiteral) StringValue() string {
	return strconv.FormatFloat(l.Value(), 'g', -1, 64)
}

// StringLiteral is a quoted string. Its value has escapes and references
// resolved.
type StringLiteral struct{ node }

func (s StringLiteral) Value() string {
	var sb strings.Builder
	for _, c := range s.tree.ChildrenOf(s.id) {
		n := s.tree.Get(c)
		switch n.Kind {
		case token.StringLiteralStart, token.StringLiteralEnd, token.UnexpectedEndOfBlock:
			continue
		}
		sb.WriteString(lexer.FragmentValue(token.Token{Kind: n.Kind, Span: n.Span, Text: n.Text}))
	}
	return sb.String()
}

func (s StringLiteral) StringValue() string { return s.Value() }

// Terminated reports whether the closing quote is present.
func (s StringLiteral) Terminated() bool {
	return s.child(token.StringLiteralEnd).IsValid()
}

// URILiteral is a string literal in a URI position.
type URILiteral struct{ node }

func (u URILiteral) Value() string {
	if id := u.child(token.StringLiteral); id.IsValid() {
		return StringLiteral{node{u.tree, id}}.Value()
	}
	return ""
}

func (u URILiteral) StringValue() string { return u.Value() }

// EscapedCharacter is a doubled quote or brace.
type EscapedCharacter struct{ node }

func (e EscapedCharacter) StringValue() string { return leafValue(e.node) }

// CharacterReference is &#N; or &#xH;.
type CharacterReference struct{ node }

// Rune returns the referenced code point; ok is false when it is not a
// valid XML character.
func (c CharacterReference) Rune() (rune, bool) { return lexer.CharRefValue(c.Text()) }

func (c CharacterReference) StringValue() string { return leafValue(c.node) }

// PredefinedEntityReference is &name;.
type PredefinedEntityReference struct{ node }

// Name returns the entity name without '&' and ';'.
func (p PredefinedEntityReference) Name() string {
	return strings.TrimSuffix(strings.TrimPrefix(p.Text(), "&"), ";")
}

// Known reports whether the name is one of lt, gt, amp, quot and apos.
func (p PredefinedEntityReference) Known() bool {
	_, ok := lexer.PredefinedEntity(p.Name())
	return ok
}

func (p PredefinedEntityReference) StringValue() string { return leafValue(p.node) }

func leafValue(n node) string {
	l := n.tree.Get(n.id)
	return lexer.FragmentValue(token.Token{Kind: l.Kind, Span: l.Span, Text: l.Text})
}
