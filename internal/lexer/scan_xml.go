package lexer

import (
	"xqfront/internal/token"
)

// scanTag lexes inside a start tag ("<a b='c'>") or an end tag ("</a>").
func (lx *Lexer) scanTag() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	switch {
	case isXMLSpace(ch):
		return lx.scanWhitespace(start)
	case lx.cursor.EatString("</"):
		return lx.emit(token.CloseXMLTag, start)
	case lx.cursor.EatString("/>"):
		return lx.emit(token.SelfClosingXMLTag, start)
	case ch == '<':
		lx.cursor.Bump()
		return lx.emit(token.OpenXMLTag, start)
	case ch == '>':
		lx.cursor.Bump()
		return lx.emit(token.EndXMLTag, start)
	case ch == ':':
		lx.cursor.Bump()
		return lx.emit(token.QNameSeparator, start)
	case lx.atNameStart():
		return lx.scanName(false)
	case lx.mode() == ModeStartTag && ch == '=':
		lx.cursor.Bump()
		return lx.emit(token.XMLEqual, start)
	case lx.mode() == ModeStartTag && (ch == '"' || ch == '\''):
		lx.cursor.Bump()
		if ch == '"' {
			lx.push(ModeAttrQuot)
		} else {
			lx.push(ModeAttrApos)
		}
		return lx.emit(token.XMLAttributeValueStart, start)
	}
	return lx.invalid(start)
}

// scanAttrValue lexes a direct attribute value delimited by q.
// '{' is returned as BlockOpen; the parser decides to enter code mode.
func (lx *Lexer) scanAttrValue(q byte) token.Token {
	start := lx.cursor.Mark()
	switch ch := lx.cursor.Peek(); {
	case ch == q:
		lx.cursor.Bump()
		if lx.cursor.Peek() == q {
			lx.cursor.Bump()
			return lx.emit(token.EscapedCharacter, start)
		}
		lx.pop()
		return lx.emit(token.XMLAttributeValueEnd, start)
	case lx.cursor.EatString("{{"), lx.cursor.EatString("}}"):
		return lx.emit(token.EscapedCharacter, start)
	case ch == '{':
		lx.cursor.Bump()
		return lx.emit(token.BlockOpen, start)
	case ch == '}', ch == '<':
		return lx.invalid(start)
	case ch == '&':
		return lx.scanEntityRef(true)
	}
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case q, '{', '}', '<', '&':
			return lx.emit(token.XMLAttributeValueContents, start)
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.XMLAttributeValueContents, start)
}

// scanElementContent lexes character data and markup between tags.
func (lx *Lexer) scanElementContent() token.Token {
	start := lx.cursor.Mark()
	switch ch := lx.cursor.Peek(); {
	case lx.cursor.EatString("</"):
		return lx.emit(token.CloseXMLTag, start)
	case lx.cursor.EatString("<!--"):
		lx.push(ModeXMLComment)
		return lx.emit(token.XMLCommentStartTag, start)
	case lx.cursor.EatString("<![CDATA["):
		lx.push(ModeCDATA)
		return lx.emit(token.CDataSectionStartTag, start)
	case lx.cursor.EatString("<?"):
		lx.push(ModePI)
		return lx.emit(token.ProcessingInstructionBegin, start)
	case ch == '<':
		lx.cursor.Bump()
		return lx.emit(token.OpenXMLTag, start)
	case lx.cursor.EatString("{{"), lx.cursor.EatString("}}"):
		return lx.emit(token.EscapedCharacter, start)
	case ch == '{':
		lx.cursor.Bump()
		return lx.emit(token.BlockOpen, start)
	case ch == '}':
		return lx.invalid(start)
	case ch == '&':
		return lx.scanEntityRef(true)
	}
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '<', '{', '}', '&':
			return lx.emit(token.XMLElementContents, start)
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.XMLElementContents, start)
}
