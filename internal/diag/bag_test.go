package diag

import (
	"strings"
	"testing"

	"xqfront/internal/source"
)

func TestBagLimitAndCounts(t *testing.T) {
	b := NewBag(2)
	r := BagReporter{Bag: b}
	r.Report(LexUnknownChar, SevError, source.Span{Start: 1, End: 2}, "bad", nil, nil)
	r.Report(SemRequiresVersion, SevWarning, source.Span{Start: 0, End: 1}, "old", nil, nil)
	r.Report(SynUnexpectedToken, SevError, source.Span{Start: 3, End: 4}, "dropped", nil, nil)

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatal("expected errors and warnings")
	}
	if b.Count(SevError) != 1 || b.Count(SevWarning) != 1 {
		t.Fatalf("unexpected counts: %d errors, %d warnings", b.Count(SevError), b.Count(SevWarning))
	}

	b.Sort()
	if b.Items()[0].Code != SemRequiresVersion {
		t.Fatalf("Sort must order by start offset, got %v first", b.Items()[0].Code)
	}
}

func TestBagUnboundedAndMerge(t *testing.T) {
	a := NewBag(0)
	for i := 0; i < 100; i++ {
		a.Add(NewError(SynUnexpectedToken, source.Span{}, "x"))
	}
	if a.Len() != 100 {
		t.Fatalf("unbounded bag kept %d", a.Len())
	}
	small := NewBag(1)
	small.Add(NewError(LexUnknownChar, source.Span{}, "y"))
	small.Merge(a)
	if small.Len() != 101 || small.Cap() != 101 {
		t.Fatalf("Merge: len %d cap %d", small.Len(), small.Cap())
	}
	small.Dedup()
	if small.Len() != 2 {
		t.Fatalf("Dedup left %d items", small.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})
	sp := source.Span{Start: 4, End: 5}
	r.Report(LexInvalidCharRef, SevError, sp, "same", nil, nil)
	r.Report(LexInvalidCharRef, SevError, sp, "same", nil, nil)
	r.Report(LexInvalidCharRef, SevError, sp, "other", nil, nil)
	r.Report(LexInvalidCharRef, SevError, source.Span{Start: 6, End: 7}, "same", nil, nil)
	if b.Len() != 3 {
		t.Fatalf("DedupReporter forwarded %d diagnostics, want 3", b.Len())
	}
	if r.Suppressed() != 1 {
		t.Fatalf("Suppressed = %d, want 1", r.Suppressed())
	}
	var nilReporter *DedupReporter
	nilReporter.Report(LexInvalidCharRef, SevError, sp, "x", nil, nil)
	if nilReporter.Suppressed() != 0 {
		t.Fatal("nil reporter must be inert")
	}
}

func TestTeeReporterSkipsNil(t *testing.T) {
	a, b := NewBag(0), NewBag(0)
	tee := TeeReporter{BagReporter{Bag: a}, nil, BagReporter{Bag: b}}
	tee.Report(SynExpectExpression, SevError, source.Span{}, "expected an expression", nil, nil)
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("tee delivered %d and %d", a.Len(), b.Len())
	}
}

func TestFilterBySeverity(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevInfo, IOInfo, source.Span{}, "note"))
	b.Add(New(SevWarning, SemRequiresVersion, source.Span{Start: 9, End: 10}, "needs 3.0"))
	b.Add(NewError(SynUnclosedParen, source.Span{Start: 2, End: 3}, "missing ')'"))
	b.Add(NewError(SynUnclosedParen, source.Span{Start: 2, End: 3}, "missing ')'"))

	if got := Filter(b, SevInfo).Len(); got != 3 {
		t.Fatalf("Filter(info) kept %d, want 3 after dedup", got)
	}
	warn := Filter(b, SevWarning)
	if warn.Len() != 2 || warn.Items()[0].Code != SynUnclosedParen {
		t.Fatalf("Filter(warning) = %+v", warn.Items())
	}
	if got := Filter(b, SevError).Len(); got != 1 {
		t.Fatalf("Filter(error) kept %d", got)
	}
}

func TestParseSeverity(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Severity
	}{
		{"info", SevInfo},
		{"Warning", SevWarning},
		{"ERROR", SevError},
	} {
		got, err := ParseSeverity(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseSeverity(%q) = %v, %v", tc.in, got, err)
		}
		if got.Label() != strings.ToLower(tc.in) {
			t.Errorf("Label() = %q", got.Label())
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatal("expected error for unknown severity")
	}

	var s Severity
	if err := s.UnmarshalText([]byte("warning")); err != nil || s != SevWarning {
		t.Fatalf("UnmarshalText: %v %v", s, err)
	}
	text, _ := SevError.MarshalText()
	if string(text) != "error" {
		t.Fatalf("MarshalText = %q", text)
	}
}

func TestWithNoteDoesNotAlias(t *testing.T) {
	base := NewError(SynUnexpectedToken, source.Span{}, "x").WithNote(source.Span{}, "first")
	a := base.WithNote(source.Span{}, "a")
	b := base.WithNote(source.Span{}, "b")
	if a.Notes[1].Msg != "a" || b.Notes[1].Msg != "b" || len(base.Notes) != 1 {
		t.Fatalf("notes aliased: %+v %+v", a.Notes, b.Notes)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(10)
	rb := ReportError(BagReporter{Bag: b}, SynUnclosedParen, source.Span{Start: 0, End: 1}, "missing ')'").
		WithNote(source.Span{Start: 0, End: 1}, "opened here").
		WithFix("insert ')'", FixEdit{Span: source.Span{Start: 5, End: 5}, NewText: ")"})
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("Emit delivered %d diagnostics", b.Len())
	}
	d := b.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != ")" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Code.ID() != "SYN2005" || d.Code.Title() != "Unclosed parenthesis" {
		t.Fatalf("code rendering: %s", d.Code)
	}
}
