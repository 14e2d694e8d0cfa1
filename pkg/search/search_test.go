package search

import (
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
)

func journal() []*entry.JournalEntry {
	march := func(d int) time.Time { return time.Date(2025, 3, d, 10, 0, 0, 0, time.Local) }
	return []*entry.JournalEntry{
		{ID: "a", Timestamp: entry.Timestamp{Time: march(1)}, Mood: entry.Mood{Name: "rad"}, Note: "quiet morning", Activities: []int{5}},
		{ID: "b", Timestamp: entry.Timestamp{Time: march(14)}, Mood: entry.Mood{Label: "Meh"}, Note: "Sport on tv", Activities: []int{}},
		{ID: "c", Timestamp: entry.Timestamp{Time: march(20)}, Mood: entry.Mood{Name: "good"}, Note: "read a book", Activities: []int{10}},
		{ID: "d", Timestamp: entry.Timestamp{Time: time.Date(2025, 4, 2, 9, 0, 0, 0, time.Local)}, Mood: entry.Mood{Name: "bad"}, Activities: []int{14}},
	}
}

func ids(entries []*entry.JournalEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	activities := entry.DefaultActivities()
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "activity label without note match", query: "SPORT", want: []string{"a", "b"}},
		{name: "legacy mood label", query: "meh", want: []string{"b"}},
		{name: "formatted date", query: "14 march", want: []string{"b"}},
		{name: "month name", query: "april 2025", want: []string{"d"}},
		{name: "activity with capital label", query: "cooking", want: []string{"d"}},
		{name: "note", query: " Book ", want: []string{"c"}},
		{name: "blank falls back to month", query: "   ", want: []string{"a", "b", "c"}},
		{name: "no match", query: "zebra", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Search(journal(), activities, tt.query, march))
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}
