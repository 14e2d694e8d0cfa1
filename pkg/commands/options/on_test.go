package options

import (
	"testing"
	"time"
)

func TestGetOn(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-3-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)},
		{"2025-03-01 21:30", time.Date(2025, 3, 1, 21, 30, 0, 0, time.Local)},
		{"3/2", time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local)},
		{"12/24", time.Date(2024, 12, 24, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		o := &OnOptions{OnString: tt.in, Now: func() time.Time { return now }}
		got, err := o.GetOn()
		if err != nil {
			t.Fatalf("GetOn(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("GetOn(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	o := &OnOptions{OnString: "yesterday"}
	if _, err := o.GetOn(); err == nil {
		t.Fatalf("expected an error for an unparsable date")
	}
	o = &OnOptions{Now: func() time.Time { return now }}
	if got, err := o.OnOrNow(); err != nil || !got.Equal(now) {
		t.Fatalf("OnOrNow() = %v, %v", got, err)
	}
}

func TestGetMonth(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	o := &MonthOptions{}
	if got, _ := o.GetMonth(now); !got.Equal(now) {
		t.Fatalf("expected now, got %v", got)
	}
	o.MonthString = "2024-12"
	got, err := o.GetMonth(now)
	if err != nil || got.Year() != 2024 || got.Month() != time.December {
		t.Fatalf("GetMonth = %v, %v", got, err)
	}
}
