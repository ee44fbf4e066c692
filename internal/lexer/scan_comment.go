package lexer

import (
	"xqfront/internal/token"
)

// scanComment lexes inside "(: ... :)". Nested comments are part of the
// contents; only the ':)' balancing the outermost '(:' ends the comment.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.EatString(":)") {
		lx.pop()
		return lx.emit(token.CommentEndTag, start)
	}
	depth := 0
	for !lx.cursor.EOF() {
		switch {
		case lx.cursor.HasPrefix("(:"):
			depth++
			lx.cursor.Advance(2)
		case lx.cursor.HasPrefix(":)"):
			if depth == 0 {
				return lx.emit(token.CommentContents, start)
			}
			depth--
			lx.cursor.Advance(2)
		default:
			lx.cursor.Bump()
		}
	}
	return lx.emit(token.CommentContents, start)
}

// scanDelimited lexes a non-nesting construct closed by end.
func (lx *Lexer) scanDelimited(end string, contents, endKind token.Kind) token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.EatString(end) {
		lx.pop()
		return lx.emit(endKind, start)
	}
	for !lx.cursor.EOF() && !lx.cursor.HasPrefix(end) {
		lx.cursor.Bump()
	}
	return lx.emit(contents, start)
}

// scanPITarget lexes the target name of "<?target contents?>".
func (lx *Lexer) scanPITarget() token.Token {
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.EatString("?>"):
		lx.pop()
		return lx.emit(token.ProcessingInstructionEnd, start)
	case isXMLSpace(lx.cursor.Peek()):
		lx.replace(ModePIContents)
		return lx.scanWhitespace(start)
	case lx.atNameStart():
		return lx.scanName(false)
	case lx.cursor.Peek() == ':':
		lx.cursor.Bump()
		return lx.emit(token.QNameSeparator, start)
	}
	return lx.invalid(start)
}

// scanPragmaName lexes the QName of "(# name contents #)". Whitespace after
// the name switches to the contents.
func (lx *Lexer) scanPragmaName() token.Token {
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.EatString("#)"):
		lx.pop()
		return lx.emit(token.PragmaEnd, start)
	case isXMLSpace(lx.cursor.Peek()):
		if lx.mode() == ModePragmaName {
			lx.replace(ModePragmaContents)
		}
		return lx.scanWhitespace(start)
	case lx.atNameStart():
		lx.replace(ModePragmaName)
		return lx.scanName(false)
	case lx.cursor.Peek() == ':':
		lx.cursor.Bump()
		return lx.emit(token.QNameSeparator, start)
	}
	return lx.invalid(start)
}
