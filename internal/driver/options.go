package driver

import (
	"github.com/spf13/afero"

	"xqfront/internal/dialect"
	"xqfront/internal/observ"
	"xqfront/internal/source"
)

// Options configures tokenize and parse runs.
type Options struct {
	Dialect        dialect.Config
	MaxDiagnostics int
	// FS is where sources are read from; nil means the OS filesystem.
	FS afero.Fs
	// Jobs bounds directory parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set together with DiagnosticsOnly, lets directory parses
	// reuse diagnostics of unchanged files.
	Cache *DiskCache
	// DiagnosticsOnly tells directory runs that callers will not look at
	// trees, so cached results without a tree are acceptable.
	DiagnosticsOnly bool
	Progress        ProgressSink
	Timer           *observ.Timer
}

func (o Options) newFileSet() *source.FileSet {
	if o.FS == nil {
		return source.NewFileSet()
	}
	return source.NewFileSetFS(o.FS)
}

func (o Options) fs() afero.Fs {
	if o.FS == nil {
		return afero.NewOsFs()
	}
	return o.FS
}
