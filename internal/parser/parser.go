package parser

import (
	"context"
	"strconv"

	"xqfront/internal/cst"
	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/lexer"
	"xqfront/internal/source"
	"xqfront/internal/token"
	"xqfront/internal/trace"
)

type Options struct {
	// Dialect is the configuration at the start of the file. A recognised
	// version declaration replaces its version for the rest of the parse.
	Dialect dialect.Config
	// Reporter also receives every diagnostic collected in Result.Bag.
	Reporter diag.Reporter
	// MaxDiagnostics bounds Result.Bag; 0 means unbounded.
	MaxDiagnostics int
}

type Result struct {
	Tree *cst.Tree
	Bag  *diag.Bag
	// Version is the language version in effect at the end of the parse.
	Version dialect.Version
	// Encoding is the label of the version declaration, if any.
	Encoding string
}

// Parser holds the state of one parse of one file.
type Parser struct {
	lx       *lexer.Lexer
	b        *cst.Builder
	file     *source.File
	cfg      dialect.Config
	rep      diag.Reporter
	lastSpan source.Span // span of the last consumed token
	lastErr  uint32      // offset+1 of the last syntax error, to avoid cascades
	encoding string
	tracer   trace.Tracer
	spanID   uint64 // parent for node-level trace events
}

// ParseFile parses one already-decoded file. It always returns a tree;
// malformed input shows up as Error nodes and diagnostics.
func ParseFile(ctx context.Context, file *source.File, opts Options) Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.NewDedupReporter(diag.TeeReporter{diag.BagReporter{Bag: bag}, opts.Reporter})

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "parse", trace.CurrentSpan(ctx).SpanID)
	defer span.End(file.Path)

	p := &Parser{
		lx:       lexer.New(file, lexer.Options{Reporter: rep}),
		b:        cst.NewBuilder(file, uint(len(file.Content)/2)),
		file:     file,
		cfg:      opts.Dialect,
		rep:      rep,
		lastSpan: source.At(file.ID, 0),
		tracer:   tracer,
		spanID:   span.ID(),
	}
	p.parseModule()
	p.peek() // trailing trivia
	tree := p.b.Finish(token.Module)
	span.WithExtra("nodes", strconv.Itoa(tree.Len()))

	return Result{
		Tree:     tree,
		Bag:      bag,
		Version:  p.cfg.Version,
		Encoding: p.encoding,
	}
}

// ParseString is a convenience for tests and tools.
func ParseString(ctx context.Context, name, text string, opts Options) Result {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	return ParseFile(ctx, fs.Get(id), opts)
}
