package driver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"xqfront/internal/diag"
	"xqfront/internal/source"
	"xqfront/internal/token"
	"xqfront/internal/trace"
)

// QueryExtensions are the file suffixes directory runs pick up.
var QueryExtensions = []string{".xq", ".xql", ".xqm", ".xqy", ".xquery"}

// TokenizeDirResult is the outcome for one file of TokenizeDir.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// IsQueryFile reports whether path has one of QueryExtensions.
func IsQueryFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range QueryExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ListQueryFiles returns the query files under dir in lexical order.
func ListQueryFiles(fs afero.Fs, dir string) ([]string, error) {
	var files []string
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && IsQueryFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// loadAll reads every file up front: FileSet is not safe for concurrent
// Add, workers only read it.
func loadAll(fileSet *source.FileSet, files []string, opts Options) (map[string]source.FileID, map[string]error) {
	done := opts.Timer.Track("load")
	defer done("")
	ids := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		ids[path] = id
	}
	return ids, loadErrors
}

func loadErrorBag(err error, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
	return bag
}

func workers(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(min(jobs, files), 1)
}

func newDirFileSet(dir string, opts Options) *source.FileSet {
	fs := opts.newFileSet()
	fs.SetBaseDir(dir)
	return fs
}

// TokenizeDir tokenizes every query file under dir in parallel. Results
// follow the sorted file order. Unreadable files get an IO diagnostic.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListQueryFiles(opts.fs(), dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := newDirFileSet(dir, opts)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	fileIDs, loadErrors := loadAll(fileSet, files, opts)

	// each goroutine owns one index
	results := make([]TokenizeDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(opts.Jobs, len(files)))

	done := opts.Timer.Track("tokenize")
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, ok := loadErrors[path]; ok {
				results[i] = TokenizeDirResult{Path: path, Bag: loadErrorBag(loadErr, opts.MaxDiagnostics)}
				return nil
			}
			id := fileIDs[path]
			tokens, bag := tokenizeFile(gctx, fileSet.Get(id), opts.MaxDiagnostics)
			results[i] = TokenizeDirResult{Path: path, FileID: id, Tokens: tokens, Bag: bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	done("")
	return fileSet, results, nil
}

// ParseDir parses every query file under dir in parallel. With
// opts.DiagnosticsOnly and opts.Cache set, unchanged files are answered
// from the cache. Files whose version declaration names another encoding
// are re-decoded serially after the parallel pass.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*ParseResult, error) {
	dirSpan := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse-dir", trace.CurrentSpan(ctx).SpanID)
	defer dirSpan.End(dir)
	ctx = trace.WithSpan(ctx, dirSpan)

	files, err := ListQueryFiles(opts.fs(), dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := newDirFileSet(dir, opts)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}
	fileIDs, loadErrors := loadAll(fileSet, files, opts)
	useCache := opts.Cache != nil && opts.DiagnosticsOnly

	results := make([]*ParseResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(opts.Jobs, len(files)))

	done := opts.Timer.Track("parse")
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, ok := loadErrors[path]; ok {
				results[i] = &ParseResult{Path: path, FileSet: fileSet, Bag: loadErrorBag(loadErr, opts.MaxDiagnostics)}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}
			file := fileSet.Get(fileIDs[path])
			start := time.Now()

			var key Digest
			if useCache {
				key = Key(file, opts.Dialect, opts.MaxDiagnostics)
				var payload DiskPayload
				if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
					results[i] = resultFromPayload(&payload, fileSet, file, opts.MaxDiagnostics)
					emit(opts.Progress, Event{File: path, Stage: StageCache, Status: statusOf(results[i]), Elapsed: time.Since(start)})
					return nil
				}
			}

			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
			res := parseFile(gctx, fileSet, file, opts)
			res.Path = path
			results[i] = res
			if useCache && !needsRedecode(res) {
				if err := opts.Cache.Put(key, payloadFromResult(res)); err != nil {
					trace.Point(trace.FromContext(gctx), trace.ScopeFile, "cache-put", dirSpan.ID(), err.Error())
				}
			}
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: statusOf(res), Elapsed: time.Since(start)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	done("")

	for i, res := range results {
		if res.File != nil && needsRedecode(res) {
			results[i] = redecode(ctx, res, opts)
		}
	}
	return fileSet, results, nil
}

func statusOf(res *ParseResult) Status {
	if res.Bag.HasErrors() {
		return StatusError
	}
	return StatusDone
}
