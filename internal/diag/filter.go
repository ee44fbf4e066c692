package diag

import "xqfront/internal/source"

type dedupKey struct {
	code Code
	span source.Span
	msg  string
}

// DedupReporter forwards each (code, span, message) once. Error recovery
// can revisit a position and would otherwise repeat the same complaint.
type DedupReporter struct {
	next       Reporter
	seen       map[dedupKey]struct{}
	suppressed int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	if r == nil {
		return
	}
	key := dedupKey{code: code, span: primary, msg: msg}
	if _, ok := r.seen[key]; ok {
		r.suppressed++
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes, fixes)
	}
}

// Suppressed is the number of repeats dropped so far.
func (r *DedupReporter) Suppressed() int {
	if r == nil {
		return 0
	}
	return r.suppressed
}

// TeeReporter sends every diagnostic to each non-nil reporter in order.
type TeeReporter []Reporter

func (t TeeReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note, fixes []Fix) {
	for _, r := range t {
		if r != nil {
			r.Report(code, sev, primary, msg, notes, fixes)
		}
	}
}

// Filter returns the diagnostics of b at or above floor, sorted and with
// duplicates removed. The result is unbounded so nothing already accepted
// by b is lost.
func Filter(b *Bag, floor Severity) *Bag {
	out := NewBag(0)
	for _, d := range b.Items() {
		if d.Severity >= floor {
			out.Add(d)
		}
	}
	out.Sort()
	out.Dedup()
	return out
}
