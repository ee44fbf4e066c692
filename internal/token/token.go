package token

import (
	"xqfront/internal/source"
)

// Token is a classified slice of the source.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric literal or starts a string literal.
func (t Token) IsLiteral() bool {
	return NumericLiterals.Has(t.Kind) || t.Kind == StringLiteralStart
}

// IsTrivia reports whether the parser skips the token.
func (t Token) IsTrivia() bool { return Trivia.Has(t.Kind) }

// IsError reports whether the token is an error-kind token.
func (t Token) IsError() bool { return ErrorTokens.Has(t.Kind) }

// IsName reports whether the token can be used as an NCName.
func (t Token) IsName() bool { return t.Kind.IsNameLike() }
