package lexer

// Mode selects the character classification rules for the next token.
type Mode uint8

const (
	ModeCode Mode = iota
	ModeStringQuot
	ModeStringApos
	ModeComment
	ModeCDATA
	ModeXMLComment
	// ModePI expects the target name of a processing instruction.
	ModePI
	ModePIContents
	// ModePragma expects the name of a pragma.
	ModePragma
	ModePragmaName
	ModePragmaContents
	ModeBracedURI
	// ModeStartTag lexes the name and attributes of a direct element.
	ModeStartTag
	ModeEndTag
	ModeAttrQuot
	ModeAttrApos
	// ModeElementContent lexes character data between tags.
	ModeElementContent
)

var modeNames = [...]string{
	ModeCode:           "code",
	ModeStringQuot:     "string-quot",
	ModeStringApos:     "string-apos",
	ModeComment:        "comment",
	ModeCDATA:          "cdata",
	ModeXMLComment:     "xml-comment",
	ModePI:             "pi",
	ModePIContents:     "pi-contents",
	ModePragma:         "pragma",
	ModePragmaName:     "pragma-name",
	ModePragmaContents: "pragma-contents",
	ModeBracedURI:      "braced-uri",
	ModeStartTag:       "start-tag",
	ModeEndTag:         "end-tag",
	ModeAttrQuot:       "attr-quot",
	ModeAttrApos:       "attr-apos",
	ModeElementContent: "element-content",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "mode?"
}

// delimited modes end with a closing delimiter pushed and popped by the lexer.
// Reaching EOF inside one yields UnexpectedEndOfBlock.
func (m Mode) delimited() bool {
	switch m {
	case ModeCode, ModeStartTag, ModeEndTag, ModeElementContent:
		return false
	}
	return true
}
