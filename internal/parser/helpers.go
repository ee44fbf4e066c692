package parser

import (
	"fmt"

	"xqfront/internal/cst"
	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/source"
	"xqfront/internal/token"
	"xqfront/internal/trace"
)

// peek returns the next significant token. Whitespace and comments in
// front of it are appended to the tree as they are passed.
func (p *Parser) peek() token.Token {
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Whitespace:
			p.b.Token(p.lx.Next())
		case token.CommentStartTag:
			p.comment()
		case token.CommentEndTag:
			// stray ':)', already reported by the lexer
			m := p.b.Open()
			p.b.Token(p.lx.Next())
			p.b.CloseError(m, "unmatched ':)'")
		default:
			return tok
		}
	}
}

// comment consumes "(: ... :)". The lexer tracks nesting, so the contents
// arrive as one token.
func (p *Parser) comment() {
	m := p.b.Open()
	p.b.Token(p.lx.Next())
	for {
		tok := p.lx.Next()
		p.b.Token(tok)
		if tok.Kind == token.CommentEndTag || tok.Kind == token.UnexpectedEndOfBlock || tok.Kind == token.EOF {
			break
		}
	}
	p.b.Close(m, token.Comment)
}

// peekAt returns the n-th significant token ahead (0 is peek) without
// consuming anything.
func (p *Parser) peekAt(n int) token.Token {
	tok := p.peek()
	if n == 0 {
		return tok
	}
	snap := p.lx.Snapshot()
	defer p.lx.Restore(snap)
	p.lx.Next()
	for n > 0 {
		tok = p.lx.Next()
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.CommentStartTag:
			for tok.Kind != token.CommentEndTag && tok.Kind != token.UnexpectedEndOfBlock && tok.Kind != token.EOF {
				tok = p.lx.Next()
			}
			continue
		}
		n--
		if tok.Kind == token.EOF {
			break
		}
	}
	return tok
}

// adjacent reports whether the token after the next one starts exactly
// where the next one ends and has kind k.
func (p *Parser) adjacent(k token.Kind) bool {
	tok := p.peek()
	snap := p.lx.Snapshot()
	defer p.lx.Restore(snap)
	p.lx.Next()
	next := p.lx.Peek()
	return next.Kind == k && next.Span.Start == tok.Span.End
}

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) atSet(s token.Set) bool { return s.Has(p.peek().Kind) }

// atSeq reports whether the next significant tokens have the given kinds.
func (p *Parser) atSeq(kinds ...token.Kind) bool {
	for i, k := range kinds {
		if p.peekAt(i).Kind != k {
			return false
		}
	}
	return true
}

func (p *Parser) atName() bool { return p.peek().Kind.IsNameLike() }

// bump appends the next significant token as a leaf.
func (p *Parser) bump() token.Token {
	p.peek()
	return p.take()
}

// take appends the next raw token as a leaf. Used inside string literals
// and markup where whitespace is content.
func (p *Parser) take() token.Token {
	tok := p.lx.Next()
	p.b.Token(tok)
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	return false
}

// expect consumes a token of kind k or reports code.
func (p *Parser) expect(k token.Kind, code diag.Code, what string) bool {
	if p.eat(k) {
		return true
	}
	if !insertable.Has(k) || token.ErrorTokens.Has(p.peek().Kind) {
		p.errorf(code, "expected %s, got %s", what, p.peek().Kind.Describe())
		return false
	}
	ins := source.At(p.file.ID, p.lastSpan.End)
	p.errorAt(p.diagSpan(), code, fmt.Sprintf("expected %s, got %s", what, p.peek().Kind.Describe()),
		diag.Fix{Title: "insert " + what, Edits: []diag.FixEdit{{Span: ins, NewText: k.Spelling()}}})
	return false
}

// insertable are the tokens whose absence gets an "insert" fix.
var insertable = token.NewSet(token.ParenClose, token.BlockClose, token.PredicateEnd, token.Separator)

func (p *Parser) open() cst.Marker {
	p.peek()
	return p.b.Open()
}

func (p *Parser) close(m cst.Marker, k token.Kind) cst.NodeID {
	return p.b.Close(m, k)
}

// diagSpan is where a diagnostic about the next token points. At the end
// of input it points just past the last consumed token.
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF || tok.Span.Empty() {
		return source.At(p.file.ID, p.lastSpan.End)
	}
	return tok.Span
}

// errorf reports a syntax error at the next token. Only the first error at
// a given offset is kept, and tokens that already carry a lexical error
// are not reported again.
func (p *Parser) errorf(code diag.Code, format string, args ...any) {
	sp := p.diagSpan()
	if token.ErrorTokens.Has(p.peek().Kind) {
		return
	}
	p.errorAt(sp, code, fmt.Sprintf(format, args...))
}

func (p *Parser) errorAt(sp source.Span, code diag.Code, msg string, fixes ...diag.Fix) {
	if p.lastErr == sp.Start+1 {
		return
	}
	p.lastErr = sp.Start + 1
	p.rep.Report(code, diag.SevError, sp, msg, nil, fixes)
}

// gate reports a configuration error when f is disabled. The construct is
// parsed either way.
func (p *Parser) gate(f dialect.Feature, sp source.Span) bool {
	if p.cfg.Allows(f) {
		return true
	}
	if ext := f.Extension(); ext != 0 && !p.cfg.Extensions.Has(ext) {
		diag.ReportError(p.rep, diag.SemRequiresExtension, sp,
			fmt.Sprintf("%s: requires the '%s' extension", f, ext)).Emit()
		return false
	}
	diag.ReportError(p.rep, diag.SemRequiresVersion, sp,
		fmt.Sprintf("%s requires XQuery %s or later, the configured version is %s", f, f.MinVersion(), p.cfg.Version)).Emit()
	return false
}

// recover wraps tokens up to the next token in stop (or EOF) into an Error
// node. A ';' that ends the skipped run is included. It returns false when
// nothing had to be skipped.
func (p *Parser) recover(stop token.Set, msg string) bool {
	m := p.open()
	for !p.at(token.EOF) && !p.atSet(stop) {
		p.bump()
	}
	if p.b.Pending(m) == 0 {
		return false
	}
	if p.at(token.Separator) {
		p.bump()
	}
	p.b.CloseError(m, msg)
	trace.Point(p.tracer, trace.ScopeNode, "recover", p.spanID, msg)
	return true
}

// recoverDecl recovers inside a prolog declaration. When nothing is left to
// skip before the declaration's ';', the missing part becomes an empty Error
// node and the ';' still ends the declaration.
func (p *Parser) recoverDecl(msg string) {
	if p.recover(declStop, msg) || !p.at(token.Separator) {
		return
	}
	m := p.open()
	p.b.CloseError(m, msg)
	p.bump()
	trace.Point(p.tracer, trace.ScopeNode, "recover", p.spanID, msg)
}

// unexpected wraps the next token into an Error node and reports it.
func (p *Parser) unexpected(what string) {
	p.errorf(diag.SynUnexpectedToken, "unexpected %s, expected %s", p.peek().Kind.Describe(), what)
	m := p.open()
	p.bump()
	p.b.CloseError(m, "unexpected "+p.lastText())
}

func (p *Parser) lastText() string {
	return string(p.file.Content[p.lastSpan.Start:p.lastSpan.End])
}
