package driver

import (
	"context"

	"xqfront/internal/cst"
	"xqfront/internal/diag"
	"xqfront/internal/dialect"
	"xqfront/internal/parser"
	"xqfront/internal/source"
)

type ParseResult struct {
	Path    string
	FileSet *source.FileSet
	// File is the version of the source the tree was built from. After a
	// re-decode it differs from the file first loaded.
	File    *source.File
	Tree    *cst.Tree
	Bag     *diag.Bag
	Version dialect.Version
	// Encoding is the label declared by the version declaration, if any.
	Encoding string
	// Cached results were answered from the disk cache and have no Tree.
	Cached bool
}

// Parse loads path and builds its syntax tree. A version declaration that
// names a non-Unicode encoding makes Parse read the file again in that
// encoding and parse the decoded text.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := opts.newFileSet()
	loaded := opts.Timer.Track("load")
	fileID, err := fs.Load(path)
	loaded(path)
	if err != nil {
		return nil, err
	}

	done := opts.Timer.Track("parse")
	res := parseFile(ctx, fs, fs.Get(fileID), opts)
	done("")

	if needsRedecode(res) {
		done = opts.Timer.Track("redecode")
		res = redecode(ctx, res, opts)
		done(res.Encoding)
	}
	if opts.Timer != nil {
		report := opts.Timer.Report()
		appendTimingDiagnostic(res.Bag, timingPayload{
			Kind:    "parse",
			Path:    path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}
	return res, nil
}

func parseFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *ParseResult {
	r := parser.ParseFile(ctx, file, parser.Options{
		Dialect:        opts.Dialect,
		MaxDiagnostics: opts.MaxDiagnostics,
	})
	return &ParseResult{
		Path:     file.Path,
		FileSet:  fs,
		File:     file,
		Tree:     r.Tree,
		Bag:      r.Bag,
		Version:  r.Version,
		Encoding: r.Encoding,
	}
}

// needsRedecode reports whether the declared encoding differs from the
// UTF-8 text the file was read as. Files decoded from a UTF-16 BOM keep
// their decoding.
func needsRedecode(res *ParseResult) bool {
	if res.Cached || res.Encoding == "" || source.IsUnicodeLabel(res.Encoding) {
		return false
	}
	if res.File.Flags&(source.FileTranscoded|source.FileVirtual) != 0 {
		return false
	}
	_, err := source.LookupEncoding(res.Encoding)
	return err == nil
}

// redecode reloads res.File in its declared encoding and parses it again.
// It must not run concurrently with other users of res.FileSet.
func redecode(ctx context.Context, res *ParseResult, opts Options) *ParseResult {
	id, err := res.FileSet.Reload(res.File.Path, res.Encoding)
	if err != nil {
		diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOLoadFileError, source.Span{},
			"re-decode as "+res.Encoding+": "+err.Error()).Emit()
		return res
	}
	again := parseFile(ctx, res.FileSet, res.FileSet.Get(id), opts)
	again.Path = res.Path
	return again
}
