package collection

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw     string
		want    Name
		wantErr bool
	}{
		{raw: "journal_entries", want: Journal},
		{raw: " MOOD_ENTRIES ", want: Moods},
		{raw: "journal_draft_abc", want: Name("journal_draft_abc")},
		{raw: "journal_draft_", wantErr: true},
		{raw: "entries", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDraftKey(t *testing.T) {
	key := DraftKey("42")
	id, ok := DraftID(string(key))
	if !ok || id != "42" {
		t.Fatalf("expected draft id 42, got %q %v", id, ok)
	}
	if _, ok := DraftID(string(Journal)); ok {
		t.Fatalf("journal key is not a draft")
	}
}

func TestCountRecords(t *testing.T) {
	for raw, want := range map[string]int{
		``:        0,
		`[]`:      0,
		`[{},{}]`: 2,
		`{"a":1}`: 1,
		`"rad"`:   1,
	} {
		got, err := CountRecords([]byte(raw))
		if err != nil {
			t.Fatalf("CountRecords(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("CountRecords(%q) = %d, want %d", raw, got, want)
		}
	}
	if _, err := CountRecords([]byte(`[{`)); err == nil {
		t.Fatalf("expected malformed error")
	}
}
