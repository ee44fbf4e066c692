package lexer

import (
	"fmt"

	"xqfront/internal/diag"
	"xqfront/internal/token"
)

type reportKey struct {
	start uint32
	kind  token.Kind
}

// report emits at most one diagnostic per (offset, kind), so re-lexing a
// token after a mode switch or a backtrack does not duplicate it.
func (lx *Lexer) report(tok token.Token, code diag.Code, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	key := reportKey{start: tok.Span.Start, kind: tok.Kind}
	if _, dup := lx.reported[key]; dup {
		return
	}
	lx.reported[key] = struct{}{}
	lx.opts.Reporter.Report(code, diag.SevError, tok.Span, msg, nil, nil)
}

func (lx *Lexer) reportInvalid(tok token.Token) {
	switch tok.Text {
	case "{", "}":
		lx.report(tok, diag.LexUnescapedBrace, fmt.Sprintf("'%s' must be written as '%s%s' here", tok.Text, tok.Text, tok.Text))
	default:
		lx.report(tok, diag.LexUnknownChar, fmt.Sprintf("invalid character %q", tok.Text))
	}
}

func (lx *Lexer) reportUnterminated(tok token.Token, m Mode) {
	switch m {
	case ModeStringQuot, ModeStringApos:
		lx.report(tok, diag.LexUnterminatedString, "unterminated string literal")
	case ModeComment:
		lx.report(tok, diag.LexUnterminatedComment, "unterminated comment, expected ':)'")
	case ModeCDATA:
		lx.report(tok, diag.LexUnterminatedCData, "unterminated CDATA section, expected ']]>'")
	case ModeXMLComment:
		lx.report(tok, diag.LexUnterminatedXMLComment, "unterminated XML comment, expected '-->'")
	case ModePI, ModePIContents:
		lx.report(tok, diag.LexUnterminatedPI, "unterminated processing instruction, expected '?>'")
	case ModePragma, ModePragmaName, ModePragmaContents:
		lx.report(tok, diag.LexUnterminatedPragma, "unterminated pragma, expected '#)'")
	case ModeBracedURI:
		lx.report(tok, diag.LexUnterminatedURILiteral, "unterminated braced URI literal, expected '}'")
	case ModeAttrQuot, ModeAttrApos:
		lx.report(tok, diag.LexUnterminatedAttribute, "unterminated attribute value")
	}
}
