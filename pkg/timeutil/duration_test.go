package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	w, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != (Window{Days: 7}) {
		t.Fatalf("expected one week, got %+v", w)
	}
	if w.String() != "1w" {
		t.Fatalf("expected label 1w, got %s", w)
	}
}

func TestParseWindowComposite(t *testing.T) {
	tests := []struct {
		in    string
		want  Window
		label string
	}{
		{"1mo2w", Window{Months: 1, Days: 14}, "1mo2w"},
		{"10d", Window{Days: 10}, "1w3d"},
		{" 1 year 3 months ", Window{Months: 15}, "1y3mo"},
		{"2W", Window{Days: 14}, "2w"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := ParseWindow(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, w)
			}
			if w.String() != tt.label {
				t.Fatalf("expected label %s, got %s", tt.label, w)
			}
		})
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d", "2w garbage"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestWindowSince(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 30, 0, 0, time.Local)
	tests := []struct {
		w    Window
		want time.Time
	}{
		{Window{Days: 1}, time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)},
		{Window{Days: 7}, time.Date(2025, 3, 8, 0, 0, 0, 0, time.Local)},
		{Window{Months: 1}, time.Date(2025, 2, 15, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		if got := tt.w.Since(now); !got.Equal(tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.w, tt.want, got)
		}
	}
}
