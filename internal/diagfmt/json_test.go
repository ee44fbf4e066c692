package diagfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"xqfront/internal/diag"
	"xqfront/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.xq", []byte("(1, 2\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnclosedParen, source.Span{File: id, Start: 6, End: 6}, "expected ')', got end of input").
		WithNote(source.Span{File: id, Start: 0, End: 1}, "opened here").
		WithFix("insert ')'", diag.FixEdit{Span: source.At(id, 5), NewText: ")"}))
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownEntity, source.Span{File: id, Start: 1, End: 2}, "w"))

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
		IncludeFixes:     true,
		IncludePreviews:  true,
	}))
	doc := buf.String()
	require.True(t, gjson.Valid(doc))

	assert.Equal(t, int64(2), gjson.Get(doc, "count").Int())
	assert.Equal(t, int64(1), gjson.Get(doc, "errors").Int())
	assert.Equal(t, int64(1), gjson.Get(doc, "warnings").Int())

	first := gjson.Get(doc, "diagnostics.0")
	assert.Equal(t, "ERROR", first.Get("severity").String())
	assert.Equal(t, "SYN2005", first.Get("code").String())
	assert.Equal(t, "q.xq", first.Get("location.file").String())
	assert.Equal(t, int64(2), first.Get("location.start_line").Int())
	assert.Equal(t, int64(1), first.Get("location.start_col").Int())
	assert.Equal(t, "opened here", first.Get("notes.0.message").String())
	assert.Equal(t, int64(1), first.Get("notes.0.location.end_byte").Int())
	assert.Equal(t, "insert ')'", first.Get("fixes.0.title").String())
	assert.Equal(t, ")", first.Get("fixes.0.edits.0.new_text").String())
	assert.Equal(t, "(1, 2)", first.Get("fixes.0.edits.0.after_lines.0").String())
	assert.Equal(t, "WARNING", gjson.Get(doc, "diagnostics.1.severity").String())
}

func TestJSONOmitsOptionalParts(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.xq", []byte("1 +"))
	bag := diag.NewBag(10)
	for range 3 {
		bag.Add(diag.NewError(diag.SynExpectExpression, source.Span{File: id, Start: 3, End: 3}, "expected expression").
			WithNote(source.Span{File: id, Start: 2, End: 3}, "operator"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	assert.Equal(t, 2, out.Count)
	require.NotNil(t, out.Diagnostics[0].Location)
	assert.Zero(t, out.Diagnostics[0].Location.StartLine)
	assert.Empty(t, out.Diagnostics[0].Notes)
	assert.Empty(t, out.Diagnostics[0].Fixes)
}

func TestJSONTimingNotesAlwaysIncluded(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, "parse timings").
		WithNote(source.Span{}, `{"kind":"parse","total_ms":1.5}`))

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, bag, fs, JSONOpts{}))
	d := gjson.Get(buf.String(), "diagnostics.0")
	assert.Equal(t, "OBS6001", d.Get("code").String())
	assert.False(t, d.Get("location").Exists())
	assert.Equal(t, "parse", gjson.Parse(d.Get("notes.0.message").String()).Get("kind").String())
	assert.False(t, d.Get("notes.0.location").Exists())
}
