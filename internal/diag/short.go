package diag

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"xqfront/internal/source"
)

// WriteShort prints one line per diagnostic in the compiler-style form
// path:line:col: severity CODE: message, which editors and CI annotators
// can match. Notes follow their diagnostic as "note" lines. Unlocated
// diagnostics use "-" as the position. Paths are relative to the
// FileSet's base directory when one is set.
func WriteShort(w io.Writer, diags []Diagnostic, fs *source.FileSet, notes bool) error {
	for _, d := range diags {
		if err := writeShortLine(w, fs, d, d.Primary, d.Severity.Label(), d.Code, d.Message); err != nil {
			return err
		}
		if !notes {
			continue
		}
		for _, n := range d.Notes {
			if err := writeShortLine(w, fs, d, n.Span, "note", d.Code, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeShortLine(w io.Writer, fs *source.FileSet, d Diagnostic, sp source.Span, label string, code Code, msg string) error {
	_, err := fmt.Fprintf(w, "%s: %s %s: %s\n", shortPosition(fs, d, sp), label, code.ID(), oneLine(msg))
	return err
}

func shortPosition(fs *source.FileSet, d Diagnostic, sp source.Span) string {
	if fs == nil || !d.Located() || int(sp.File) >= fs.Len() {
		return "-"
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	path := filepath.ToSlash(f.FormatPath("relative", fs.BaseDir()))
	path = strings.TrimPrefix(path, "./")
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

func oneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	return strings.TrimSpace(strings.ReplaceAll(msg, "\n", " "))
}
