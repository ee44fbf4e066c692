// Package prof writes CPU, heap and execution-trace profiles of one CLI run.
package prof

import (
	"errors"
	"io"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/spf13/afero"
)

// Config names the output files. Empty paths disable that profile.
type Config struct {
	CPU   string
	Mem   string
	Trace string
}

// Session is a running set of profiles. Stop must be called once.
type Session struct {
	fs        afero.Fs
	cfg       Config
	cpuFile   afero.File
	traceFile afero.File
}

// Start begins the CPU profile and runtime trace requested by cfg. The
// heap profile is written by Stop.
func Start(fs afero.Fs, cfg Config) (*Session, error) {
	s := &Session{fs: fs, cfg: cfg}
	if cfg.CPU != "" {
		f, err := fs.Create(cfg.CPU)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, err
		}
		s.cpuFile = f
	}
	if cfg.Trace != "" {
		f, err := fs.Create(cfg.Trace)
		if err != nil {
			s.stopCPU()
			return nil, err
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			s.stopCPU()
			return nil, err
		}
		s.traceFile = f
	}
	return s, nil
}

// Stop ends running profiles and writes the heap profile.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	var errs []error
	errs = append(errs, s.stopCPU())
	if s.traceFile != nil {
		trace.Stop()
		errs = append(errs, s.traceFile.Close())
		s.traceFile = nil
	}
	if s.cfg.Mem != "" {
		errs = append(errs, s.writeFile(s.cfg.Mem, func(w io.Writer) error {
			runtime.GC()
			return pprof.WriteHeapProfile(w)
		}))
	}
	return errors.Join(errs...)
}

func (s *Session) stopCPU() error {
	if s.cpuFile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := s.cpuFile.Close()
	s.cpuFile = nil
	return err
}

func (s *Session) writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := s.fs.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return write(f)
}
