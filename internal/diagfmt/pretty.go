package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"xqfront/internal/diag"
	"xqfront/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
	note, fix       *color.Color
	added, removed  *color.Color
}

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func newPalette(enabled bool) palette {
	return palette{
		err:     newColor(enabled, color.FgRed, color.Bold),
		warn:    newColor(enabled, color.FgYellow, color.Bold),
		info:    newColor(enabled, color.FgCyan, color.Bold),
		code:    newColor(enabled, color.Bold),
		path:    newColor(enabled, color.Bold),
		gutter:  newColor(enabled, color.FgBlue),
		caret:   newColor(enabled, color.FgRed, color.Bold),
		note:    newColor(enabled, color.FgCyan),
		fix:     newColor(enabled, color.FgGreen),
		added:   newColor(enabled, color.FgGreen),
		removed: newColor(enabled, color.FgRed),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for a terminal. It walks bag.Items() in
// order, so callers sort the bag first. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with the span underlined ^~~~, then notes
// and fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeDiagnostic(w, d, fs, opts, p)
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fs.Get(sp.File)
	pos := f.LineCol(sp.Start)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), pos.Line, pos.Col)
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sev := p.severity(d.Severity).Sprint(d.Severity.String())
	code := p.code.Sprint(d.Code.ID())
	if !located(d, d.Primary, fs) {
		fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
		return
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", p.path.Sprint(location(fs, d.Primary, opts.PathMode)), sev, code, d.Message)
	writeSnippet(w, fs.Get(d.Primary.File), d.Primary, opts, p)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			if located(d, n.Span, fs) {
				fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
			} else {
				fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			}
		}
	}
	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", p.fix.Sprintf("fix #%d:", i+1), fix.Title)
			for _, e := range fix.Edits {
				fmt.Fprintf(w, "    %s apply=%q\n", location(fs, e.Span, opts.PathMode), e.NewText)
				if !opts.ShowPreview {
					continue
				}
				preview, err := buildFixEditPreview(fs, e)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, l := range preview.before {
					fmt.Fprintf(w, "      %s\n", p.removed.Sprint("- "+l))
				}
				for _, l := range preview.after {
					fmt.Fprintf(w, "      %s\n", p.added.Sprint("+ "+l))
				}
			}
		}
	}
}

// writeSnippet quotes the primary line with opts.Context lines above it
// and underlines the part of the span on the primary line.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, opts PrettyOpts, p palette) {
	start := f.LineCol(sp.Start)
	end := f.LineCol(sp.End)
	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), clip(expandTabs(text), opts.Width))
	}

	line := f.GetLine(start.Line)
	col := min(int(start.Col)-1, len(line))
	stop := len(line)
	if end.Line == start.Line {
		stop = min(int(end.Col)-1, len(line))
	}
	pad := runewidth.StringWidth(expandTabs(line[:col]))
	width := max(runewidth.StringWidth(expandTabs(line[col:max(stop, col)])), 1)
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	w := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - w%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			w += n
			continue
		}
		sb.WriteRune(r)
		w += runewidth.RuneWidth(r)
	}
	return sb.String()
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}
