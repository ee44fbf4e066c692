package driver

import (
	"context"

	"xqfront/internal/diag"
	"xqfront/internal/lexer"
	"xqfront/internal/source"
	"xqfront/internal/token"
	"xqfront/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and returns every token up to and including EOF.
// Read errors are returned; lexical problems are diagnostics in Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := opts.newFileSet()
	loaded := opts.Timer.Track("load")
	fileID, err := fs.Load(path)
	loaded(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	done := opts.Timer.Track("tokenize")
	tokens, bag := tokenizeFile(ctx, file, opts.MaxDiagnostics)
	done("")
	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}, nil
}

func tokenizeFile(ctx context.Context, file *source.File, maxDiagnostics int) ([]token.Token, *diag.Bag) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "tokenize", trace.CurrentSpan(ctx).SpanID)
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	span.End(file.Path)
	return tokens, bag
}
