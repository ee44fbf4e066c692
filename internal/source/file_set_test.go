package source

import (
	"testing"

	"github.com/spf13/afero"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSetFS(afero.NewMemMapFs())

	id1 := fs.Add("query.xq", []byte("1 + 2"), 0)
	id2 := fs.Add("query.xq", []byte("1 + 3"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("unexpected ids %d, %d", id1, id2)
	}
	latest, ok := fs.GetLatest("query.xq")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "1 + 2" {
		t.Errorf("old version content = %q", got)
	}
}

func TestLoadStripsUTF8BOM(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "/q/a.xq", []byte("\xEF\xBB\xBF1"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetFS(mem)
	id, err := fs.Load("/q/a.xq")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "1" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM")
	}
}

func TestLoadTranscodesUTF16(t *testing.T) {
	mem := afero.NewMemMapFs()
	// "(:é:)" in UTF-16LE with BOM
	raw := []byte{0xFF, 0xFE, '(', 0, ':', 0, 0xE9, 0, ':', 0, ')', 0}
	if err := afero.WriteFile(mem, "u16.xq", raw, 0o644); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetFS(mem)
	id, err := fs.Load("u16.xq")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "(:é:)" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileTranscoded == 0 {
		t.Error("expected FileTranscoded")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSetFS(afero.NewMemMapFs())
	if _, err := fs.Load("nope.xq"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReloadWithDeclaredEncoding(t *testing.T) {
	mem := afero.NewMemMapFs()
	// 'é' in ISO-8859-1
	if err := afero.WriteFile(mem, "latin.xq", []byte{'"', 0xE9, '"'}, 0o644); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetFS(mem)
	id, err := fs.Reload("latin.xq", "ISO-8859-1")
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := string(fs.Get(id).Content); got != `"é"` {
		t.Errorf("content = %q", got)
	}
	if _, err := fs.Reload("latin.xq", "no-such-charset"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.xq", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, expected)
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.xq", []byte("let $x := 1\nreturn $x\n"))
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{4, LineCol{1, 5}},
		{11, LineCol{1, 12}},
		{12, LineCol{2, 1}},
		{19, LineCol{2, 8}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	f := &File{Content: []byte("first\r\nsecond\nthird")}
	f.LineIdx = buildLineIndex(f.Content)
	tests := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for line, want := range tests {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}
