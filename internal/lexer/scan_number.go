package lexer

import (
	"xqfront/internal/diag"
	"xqfront/internal/token"
)

// scanNumber lexes IntegerLiteral, DecimalLiteral or DoubleLiteral.
// An exponent marker without digits ends the literal before the marker and
// arms pendingExp so the marker becomes its own PartialDoubleLiteralExponent.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntegerLiteral

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		lx.cursor.Bump()
		kind = token.DecimalLiteral
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		exp := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.emit(token.DoubleLiteral, start)
		}
		lx.cursor.Reset(exp)
		lx.pendingExp = true
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) scanPartialExponent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // e or E
	if s := lx.cursor.Peek(); s == '+' || s == '-' {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.PartialDoubleLiteralExponent, start)
	lx.report(tok, diag.LexIncompleteExponent, "expected digits after the exponent marker")
	return tok
}
