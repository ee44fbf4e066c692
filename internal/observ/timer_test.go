package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := time.Unix(0, 0)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(step)
		return now
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	load := tm.Begin("load")
	tm.End(load, "2 files")
	tm.Track("parse")("")
	tm.Add("cache", 3*time.Millisecond, "hit")

	r := tm.Report()
	if len(r.Phases) != 3 {
		t.Fatalf("got %d phases, want 3", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 1 || r.Phases[0].Note != "2 files" {
		t.Errorf("load phase = %+v", r.Phases[0])
	}
	if r.Phases[2].DurationMS != 3 {
		t.Errorf("cache phase = %+v", r.Phases[2])
	}
	if r.TotalMS != 5 {
		t.Errorf("TotalMS = %v, want 5", r.TotalMS)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:", "load", "// 2 files", "total"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestTimerIgnoresBadIndexAndNil(t *testing.T) {
	tm := NewTimer()
	tm.End(5, "")
	tm.End(-1, "")
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Errorf("unexpected phases: %+v", got)
	}

	var nilTimer *Timer
	nilTimer.Track("x")("")
	if got := nilTimer.Report(); got.TotalMS != 0 {
		t.Errorf("nil timer report = %+v", got)
	}
}

func TestTimerConcurrentAdd(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("file", time.Millisecond, "")
		}()
	}
	wg.Wait()
	if got := len(tm.Report().Phases); got != 16 {
		t.Errorf("got %d phases, want 16", got)
	}
}
