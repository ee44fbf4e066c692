package lexer

import (
	"fmt"
	"strconv"

	"xqfront/internal/diag"
	"xqfront/internal/token"
)

// scanStringPart lexes one piece of a string literal delimited by q.
func (lx *Lexer) scanStringPart(q byte) token.Token {
	start := lx.cursor.Mark()
	switch lx.cursor.Peek() {
	case q:
		lx.cursor.Bump()
		if lx.cursor.Peek() == q {
			lx.cursor.Bump()
			return lx.emit(token.EscapedCharacter, start)
		}
		lx.pop()
		return lx.emit(token.StringLiteralEnd, start)
	case '&':
		return lx.scanEntityRef(true)
	}
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b == q || b == '&' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.StringLiteralContents, start)
}

// scanBracedURI lexes the inside of Q{...}.
func (lx *Lexer) scanBracedURI() token.Token {
	start := lx.cursor.Mark()
	switch lx.cursor.Peek() {
	case '}':
		lx.cursor.Bump()
		lx.pop()
		return lx.emit(token.BracedURILiteralEnd, start)
	case '{':
		return lx.invalid(start)
	case '&':
		return lx.scanEntityRef(true)
	}
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b == '}' || b == '{' || b == '&' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.StringLiteralContents, start)
}

// scanEntityRef lexes a reference starting at '&'. Outside string and XML
// content (inString false) well-formed references become
// EntityReferenceNotInString.
func (lx *Lexer) scanEntityRef(inString bool) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // &

	var tok token.Token
	switch {
	case lx.cursor.Peek() == ';':
		lx.cursor.Bump()
		tok = lx.emit(token.EmptyEntityReference, start)
		lx.report(tok, diag.LexEmptyEntityRef, "empty entity reference '&;'")
		return tok
	case lx.cursor.Peek() == '#':
		tok = lx.scanCharRef(start)
	case lx.atNameStart():
		lx.scanNCName()
		if !lx.cursor.Eat(';') {
			tok = lx.emit(token.PartialEntityReference, start)
			lx.report(tok, diag.LexPartialEntityRef, fmt.Sprintf("entity reference %q is missing ';'", tok.Text))
			return tok
		}
		tok = lx.emit(token.PredefinedEntityReference, start)
		name := tok.Text[1 : len(tok.Text)-1]
		if _, ok := predefinedEntities[name]; !ok && inString {
			lx.report(tok, diag.LexUnknownEntity, fmt.Sprintf("unknown entity '%s', expected one of lt, gt, amp, quot, apos", name))
		}
	default:
		tok = lx.emit(token.PartialEntityReference, start)
		lx.report(tok, diag.LexPartialEntityRef, "'&' must start an entity or character reference")
		return tok
	}

	if tok.Kind == token.PartialEntityReference || inString {
		return tok
	}
	tok.Kind = token.EntityReferenceNotInString
	lx.report(tok, diag.LexEntityRefNotInString, fmt.Sprintf("%s is only allowed in string literals and XML content", tok.Text))
	return tok
}

// scanCharRef continues after "&" at '#'.
func (lx *Lexer) scanCharRef(start Mark) token.Token {
	lx.cursor.Bump() // #
	hex := lx.cursor.Eat('x')
	digits := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if (hex && isHex(b)) || (!hex && isDec(b)) {
			lx.cursor.Bump()
			continue
		}
		break
	}
	hasDigits := uint32(digits) != lx.cursor.Off
	if !hasDigits || !lx.cursor.Eat(';') {
		tok := lx.emit(token.PartialEntityReference, start)
		lx.report(tok, diag.LexPartialEntityRef, fmt.Sprintf("incomplete character reference %q", tok.Text))
		return tok
	}
	tok := lx.emit(token.CharacterReference, start)
	if _, ok := CharRefValue(tok.Text); !ok {
		lx.report(tok, diag.LexInvalidCharRef, fmt.Sprintf("%s does not reference a valid XML character", tok.Text))
	}
	return tok
}

// CharRefValue decodes "&#N;" or "&#xH;".
func CharRefValue(text string) (rune, bool) {
	if len(text) < 4 || text[0] != '&' || text[1] != '#' || text[len(text)-1] != ';' {
		return 0, false
	}
	body, base := text[2:len(text)-1], 10
	if body != "" && body[0] == 'x' {
		body, base = body[1:], 16
	}
	v, err := strconv.ParseUint(body, base, 32)
	if err != nil || v > 0x10FFFF {
		return 0, false
	}
	r := rune(v) // #nosec G115 -- bounded above
	return r, isXMLChar(r)
}

// FragmentValue returns the characters a string or XML content fragment
// stands for. Malformed references keep their source text.
func FragmentValue(tok token.Token) string {
	switch tok.Kind {
	case token.EscapedCharacter:
		if tok.Text != "" {
			return tok.Text[:1]
		}
	case token.CharacterReference:
		if r, ok := CharRefValue(tok.Text); ok {
			return string(r)
		}
	case token.PredefinedEntityReference, token.EntityReferenceNotInString:
		if len(tok.Text) > 2 {
			if s, ok := predefinedEntities[tok.Text[1:len(tok.Text)-1]]; ok {
				return s
			}
		}
	}
	return tok.Text
}
