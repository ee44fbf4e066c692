package lexer

import (
	"slices"

	"xqfront/internal/source"
	"xqfront/internal/token"
)

// state is everything that determines the next token besides the file.
type state struct {
	off   uint32
	modes []Mode
	// partialExp is set after a mantissa whose exponent marker had no digits.
	partialExp bool
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	modes  []Mode
	// pendingExp: the next token is a PartialDoubleLiteralExponent.
	pendingExp bool

	look      *token.Token
	lookState state

	reported map[reportKey]struct{}
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		opts:     opts,
		modes:    []Mode{opts.Initial},
		reported: make(map[reportKey]struct{}),
	}
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File { return lx.file }

// Next returns the next token, trivia included. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.scan()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		lx.lookState = lx.save()
		t := lx.scan()
		lx.look = &t
	}
	return *lx.look
}

// Mode returns the mode the next token will be lexed in.
func (lx *Lexer) Mode() Mode {
	if lx.look != nil {
		return lx.lookState.modes[len(lx.lookState.modes)-1]
	}
	return lx.mode()
}

// Depth returns the size of the mode stack.
func (lx *Lexer) Depth() int {
	if lx.look != nil {
		return len(lx.lookState.modes)
	}
	return len(lx.modes)
}

// PushMode enters m. A buffered lookahead is re-lexed in the new mode.
func (lx *Lexer) PushMode(m Mode) {
	lx.unpeek()
	lx.modes = append(lx.modes, m)
}

// PopMode leaves the current mode. The bottom mode is never popped.
func (lx *Lexer) PopMode() {
	lx.unpeek()
	lx.pop()
}

// ReplaceMode swaps the current mode for m.
func (lx *Lexer) ReplaceMode(m Mode) {
	lx.unpeek()
	lx.modes[len(lx.modes)-1] = m
}

// Snapshot captures the lexer position for backtracking.
type Snapshot struct {
	st        state
	look      *token.Token
	lookState state
}

func (lx *Lexer) Snapshot() Snapshot {
	s := Snapshot{st: lx.save(), lookState: lx.lookState}
	if lx.look != nil {
		t := *lx.look
		s.look = &t
		s.lookState.modes = slices.Clone(lx.lookState.modes)
	}
	return s
}

func (lx *Lexer) Restore(s Snapshot) {
	lx.load(s.st)
	lx.look = s.look
	lx.lookState = s.lookState
}

func (lx *Lexer) save() state {
	return state{off: lx.cursor.Off, modes: slices.Clone(lx.modes), partialExp: lx.pendingExp}
}

func (lx *Lexer) load(s state) {
	lx.cursor.Off = s.off
	lx.modes = slices.Clone(s.modes)
	lx.pendingExp = s.partialExp
}

func (lx *Lexer) unpeek() {
	if lx.look == nil {
		return
	}
	lx.load(lx.lookState)
	lx.look = nil
}

func (lx *Lexer) mode() Mode { return lx.modes[len(lx.modes)-1] }

func (lx *Lexer) push(m Mode) { lx.modes = append(lx.modes, m) }

func (lx *Lexer) pop() {
	if len(lx.modes) > 1 {
		lx.modes = lx.modes[:len(lx.modes)-1]
	}
}

func (lx *Lexer) replace(m Mode) { lx.modes[len(lx.modes)-1] = m }

func (lx *Lexer) scan() token.Token {
	if lx.pendingExp {
		lx.pendingExp = false
		return lx.scanPartialExponent()
	}
	if lx.cursor.EOF() {
		if m := lx.mode(); m.delimited() {
			lx.pop()
			tok := lx.emitEmpty(token.UnexpectedEndOfBlock)
			lx.reportUnterminated(tok, m)
			return tok
		}
		return lx.emitEmpty(token.EOF)
	}
	switch lx.mode() {
	case ModeStringQuot:
		return lx.scanStringPart('"')
	case ModeStringApos:
		return lx.scanStringPart('\'')
	case ModeComment:
		return lx.scanComment()
	case ModeCDATA:
		return lx.scanDelimited("]]>", token.CDataSectionContents, token.CDataSectionEndTag)
	case ModeXMLComment:
		return lx.scanDelimited("-->", token.XMLCommentContents, token.XMLCommentEndTag)
	case ModePI:
		return lx.scanPITarget()
	case ModePIContents:
		return lx.scanDelimited("?>", token.ProcessingInstructionContents, token.ProcessingInstructionEnd)
	case ModePragma, ModePragmaName:
		return lx.scanPragmaName()
	case ModePragmaContents:
		return lx.scanDelimited("#)", token.PragmaContents, token.PragmaEnd)
	case ModeBracedURI:
		return lx.scanBracedURI()
	case ModeStartTag, ModeEndTag:
		return lx.scanTag()
	case ModeAttrQuot:
		return lx.scanAttrValue('"')
	case ModeAttrApos:
		return lx.scanAttrValue('\'')
	case ModeElementContent:
		return lx.scanElementContent()
	default:
		return lx.scanCode()
	}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) emitEmpty(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.At(lx.file.ID, lx.cursor.Off)}
}

// invalid consumes one rune (one byte for malformed UTF-8) as an Invalid token.
func (lx *Lexer) invalid(start Mark) token.Token {
	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.reportInvalid(tok)
	return tok
}
