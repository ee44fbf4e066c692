package prof

import (
	"testing"

	"github.com/spf13/afero"
)

func TestSessionWritesProfiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Start(fs, Config{CPU: "/out/cpu.pprof", Mem: "/out/mem.pprof"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	for _, path := range []string{"/out/cpu.pprof", "/out/mem.pprof"} {
		info, err := fs.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestSessionNothingRequested(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Start(fs, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	var nilSession *Session
	if err := nilSession.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestStartFailsOnReadOnlyFS(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if _, err := Start(fs, Config{CPU: "/cpu.pprof"}); err == nil {
		t.Fatal("expected an error")
	}
}
