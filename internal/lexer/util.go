package lexer

import (
	"unicode"
	"unicode/utf8"
)

func (lx *Lexer) peekRune() (r rune, size uint32) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
	return r, uint32(sz) // #nosec G115 -- at most utf8.UTFMax
}

func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	lx.cursor.Advance(sz)
}

func isXMLSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isNameStart follows the XML NameStartChar production without ':'.
func isNameStart(r rune) bool {
	switch {
	case r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
		return true
	case r < 0xC0:
		return false
	case r == 0xD7 || r == 0xF7 || r == 0x37E:
		return false
	case r >= 0x300 && r <= 0x36F, r >= 0x2000 && r <= 0x200B, r >= 0x200E && r <= 0x206F,
		r >= 0x2190 && r <= 0x2BFF, r >= 0x2FF0 && r <= 0x3000, r >= 0xD800 && r <= 0xF8FF,
		r >= 0xFDD0 && r <= 0xFDEF, r == 0xFFFE || r == 0xFFFF, r == utf8.RuneError:
		return false
	}
	return r <= 0xEFFFF
}

// isNameChar follows the XML NameChar production without ':'.
func isNameChar(r rune) bool {
	switch {
	case isNameStart(r):
		return true
	case r == '-' || r == '.' || (r >= '0' && r <= '9') || r == 0xB7:
		return true
	case r >= 0x300 && r <= 0x36F, r == 0x203F || r == 0x2040:
		return true
	}
	return r >= 0x80 && unicode.In(r, unicode.Mn, unicode.Mc)
}

// scanNCName consumes an NCName if one starts at the cursor.
func (lx *Lexer) scanNCName() bool {
	r, sz := lx.peekRune()
	if sz == 0 || !isNameStart(r) {
		return false
	}
	lx.cursor.Advance(sz)
	for {
		r, sz = lx.peekRune()
		if sz == 0 || !isNameChar(r) {
			return true
		}
		lx.cursor.Advance(sz)
	}
}

func (lx *Lexer) atNameStart() bool {
	r, sz := lx.peekRune()
	return sz > 0 && isNameStart(r)
}

// isXMLChar reports whether r may appear in an XML 1.0 document.
func isXMLChar(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

var predefinedEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": "\"",
	"apos": "'",
}

// PredefinedEntity returns the replacement text of a predefined entity name.
func PredefinedEntity(name string) (string, bool) {
	s, ok := predefinedEntities[name]
	return s, ok
}
