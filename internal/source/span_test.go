package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Span
		want  Span
	}{
		{"disjoint", Span{1, 2, 4}, Span{1, 8, 10}, Span{1, 2, 10}},
		{"nested", Span{1, 2, 10}, Span{1, 4, 5}, Span{1, 2, 10}},
		{"other file ignored", Span{1, 2, 4}, Span{2, 0, 100}, Span{1, 2, 4}},
		{"zero width", Span{1, 5, 5}, Span{1, 3, 3}, Span{1, 3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanBasics(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 7}
	if s.Len() != 4 || s.Empty() {
		t.Fatalf("unexpected Len/Empty for %v", s)
	}
	if !s.Contains(3) || s.Contains(7) {
		t.Error("Contains must be half-open")
	}
	if !At(0, 9).Empty() {
		t.Error("At must be zero width")
	}
	if s.String() != "0:3-7" {
		t.Errorf("String = %q", s.String())
	}
}
