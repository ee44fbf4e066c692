package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"xqfront/internal/source"
	"xqfront/internal/token"
)

type SpanJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type TokenOutput struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Span  SpanJSON `json:"span"`
	Line  uint32   `json:"line"`
	Col   uint32   `json:"col"`
	Error bool     `json:"error,omitempty"`
}

func tokenColor(k token.Kind, enabled bool) *color.Color {
	switch {
	case token.ErrorTokens.Has(k):
		return newColor(enabled, color.FgRed, color.Bold)
	case k.IsKeyword():
		return newColor(enabled, color.FgMagenta)
	case token.NumericLiterals.Has(k), token.StringLiteralTokens.Has(k):
		return newColor(enabled, color.FgGreen)
	case token.Trivia.Has(k):
		return newColor(enabled, color.Faint)
	case token.XMLMarkupTokens.Has(k):
		return newColor(enabled, color.FgCyan)
	default:
		return newColor(enabled, color.Reset)
	}
}

// FormatTokensPretty writes one token per line:
//
//	  3: IntegerLiteral  "1" at 1:1-1:2
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, useColor bool) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		kind := tokenColor(tok.Kind, useColor).Sprintf("%-15s", tok.Kind.String())
		if _, err := fmt.Fprintf(w, "%3d: %s", i+1, kind); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// BuildTokensJSON converts tokens for JSON output.
func BuildTokensJSON(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		pos := fs.Get(tok.Span.File).LineCol(tok.Span.Start)
		out = append(out, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Span:  SpanJSON{Start: tok.Span.Start, End: tok.Span.End},
			Line:  pos.Line,
			Col:   pos.Col,
			Error: token.ErrorTokens.Has(tok.Kind),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensJSON writes tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensJSON(tokens, fs))
}
