package lexer

import (
	"xqfront/internal/token"
)

// scanName lexes an NCName. With keywords set, reserved words are classified
// as their keyword kind; the parser still accepts them as names.
func (lx *Lexer) scanName(keywords bool) token.Token {
	start := lx.cursor.Mark()
	lx.scanNCName()
	tok := lx.emit(token.NCName, start)
	if keywords {
		if k, ok := token.LookupKeyword(tok.Text); ok {
			tok.Kind = k
		}
	}
	return tok
}
